package api

import (
	"net/http"

	"github.com/readnest/readnest-server/internal/db"
)

type UserHandler struct {
	DB *db.DB
}

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r)
	if !ok {
		JSONError(w, "Authentication failed", http.StatusUnauthorized)
		return
	}

	user, err := h.DB.GetUserByID(userID)
	if err != nil {
		JSONError(w, "User not found", http.StatusNotFound)
		return
	}

	WriteJSON(w, http.StatusOK, UserResponse{ID: user.ID, Email: user.Email})
}
