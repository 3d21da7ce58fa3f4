package main

import (
	"github.com/puzzlecraft/cryptogram-go/internal/cli"
)

func main() {
	cli.Execute()
}
