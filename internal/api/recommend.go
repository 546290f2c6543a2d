package api

import (
	"net/http"

	"github.com/readnest/readnest-server/internal/db"
	"github.com/readnest/readnest-server/internal/model"
	"github.com/readnest/readnest-server/internal/recommend"
)

type RecommendHandler struct {
	DB     *db.DB
	Client *recommend.Client // nil when no API key is configured
}

// Get returns AI-generated book suggestions seeded with the caller's
// logged titles.
func (h *RecommendHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r)
	if !ok {
		JSONError(w, "Authentication failed", http.StatusUnauthorized)
		return
	}

	if h.Client == nil {
		JSONError(w, "Recommendations are not configured", http.StatusServiceUnavailable)
		return
	}

	books, err := h.DB.BooksByUser(userID)
	if err != nil {
		WriteError(w, "fetch recommendations", err)
		return
	}

	titles := make([]string, 0, len(books))
	for _, b := range books {
		titles = append(titles, b.Title)
	}

	recs, err := h.Client.Recommend(r.Context(), titles)
	if err != nil {
		WriteError(w, "fetch recommendations", err)
		return
	}

	WriteJSON(w, http.StatusOK, model.RecommendationsResponse{Recommendations: recs})
}
