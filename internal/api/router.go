package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/puzzlecraft/cryptogram-go/internal/api/handler"
	"github.com/puzzlecraft/cryptogram-go/internal/api/middleware"
	"github.com/puzzlecraft/cryptogram-go/internal/api/response"
	"github.com/puzzlecraft/cryptogram-go/internal/services/puzzle"
	"github.com/puzzlecraft/cryptogram-go/internal/services/stats"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger           *slog.Logger
	PuzzleController *puzzle.Controller
	StatsService     *stats.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	puzzleHandler := handler.NewPuzzleHandler(cfg.PuzzleController)
	statsHandler := handler.NewStatsHandler(cfg.StatsService)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Puzzle routes
	api.HandleFunc("/puzzles", puzzleHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/puzzles/{id}", puzzleHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/puzzles/{id}", puzzleHandler.Delete).Methods(http.MethodDelete)

	// Generator statistics
	api.HandleFunc("/stats/attempts", statsHandler.Attempts).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}
