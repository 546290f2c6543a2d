package api

import (
	"net/http"
	"time"

	"github.com/readnest/readnest-server/internal/db"
)

type StatsHandler struct {
	DB *db.DB
}

// Get returns the caller's aggregate stats: the goal target for the
// current calendar year (null when unset), the count of Read books, and
// the mean rating over rated Read books (0 when none are rated).
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r)
	if !ok {
		JSONError(w, "Authentication failed", http.StatusUnauthorized)
		return
	}

	stats, err := h.DB.StatsForUser(userID, time.Now().Year())
	if err != nil {
		WriteError(w, "fetch stats", err)
		return
	}

	WriteJSON(w, http.StatusOK, stats)
}
