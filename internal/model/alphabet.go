package model

// Alphabet is the fixed ordered sequence of letters a cryptogram substitutes
// over. Substitution operates on lowercase input letters; replacements are
// always uppercase.
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

// AlphabetSize is the number of letters in Alphabet.
const AlphabetSize = len(Alphabet)
