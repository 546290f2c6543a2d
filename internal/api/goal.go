package api

import (
	"encoding/json"
	"net/http"

	"github.com/readnest/readnest-server/internal/db"
	"github.com/readnest/readnest-server/internal/validation"
)

type GoalHandler struct {
	DB *db.DB
}

type upsertGoalRequest struct {
	Year   int `json:"year" validate:"required,gt=0"`
	Target int `json:"target" validate:"required,gt=0"`
}

// Upsert sets the caller's reading goal for a year. A first write answers
// 201, overwriting an existing goal answers 200. The row itself is written
// atomically against the UNIQUE(user_id, year) constraint.
func (h *GoalHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r)
	if !ok {
		JSONError(w, "Authentication failed", http.StatusUnauthorized)
		return
	}

	var req upsertGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validation.Struct(req); err != nil {
		WriteError(w, "save goal", err)
		return
	}

	created, err := h.DB.UpsertGoal(userID, req.Year, req.Target)
	if err != nil {
		WriteError(w, "save goal", err)
		return
	}

	if created {
		WriteJSON(w, http.StatusCreated, MessageResponse{Message: "Goal set successfully"})
		return
	}
	WriteJSON(w, http.StatusOK, MessageResponse{Message: "Goal updated successfully"})
}
