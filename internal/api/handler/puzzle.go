package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/puzzlecraft/cryptogram-go/internal/api/apierr"
	"github.com/puzzlecraft/cryptogram-go/internal/api/request"
	"github.com/puzzlecraft/cryptogram-go/internal/api/response"
	"github.com/puzzlecraft/cryptogram-go/internal/model"
	"github.com/puzzlecraft/cryptogram-go/internal/services/puzzle"
)

// PuzzleHandler handles puzzle endpoints
type PuzzleHandler struct {
	controller *puzzle.Controller
}

// NewPuzzleHandler creates a new PuzzleHandler
func NewPuzzleHandler(controller *puzzle.Controller) *PuzzleHandler {
	return &PuzzleHandler{controller: controller}
}

// Create handles POST /puzzles
func (h *PuzzleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePuzzle
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid JSON body"))
		return
	}

	// An empty phrase is a valid (if trivial) puzzle
	created, err := h.controller.CreatePuzzle(r.Context(), req.Phrase)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, created)
}

// Get handles GET /puzzles/{id}
func (h *PuzzleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.PuzzleID(mux.Vars(r)["id"])

	found, err := h.controller.GetPuzzle(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, found)
}

// Delete handles DELETE /puzzles/{id}
func (h *PuzzleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.PuzzleID(mux.Vars(r)["id"])

	if err := h.controller.DeletePuzzle(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}
