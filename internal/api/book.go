package api

import (
	"encoding/json"
	"net/http"

	"github.com/readnest/readnest-server/internal/apperr"
	"github.com/readnest/readnest-server/internal/db"
	"github.com/readnest/readnest-server/internal/model"
	"github.com/readnest/readnest-server/internal/validation"
)

type BookHandler struct {
	DB *db.DB
}

// MessageResponse is the acknowledgment body for mutations that don't
// return the updated row.
type MessageResponse struct {
	Message string `json:"message"`
}

type addBookRequest struct {
	Title         string  `json:"title" validate:"required"`
	Author        string  `json:"author" validate:"required"`
	CoverImageURL *string `json:"coverImageUrl"`
	Status        string  `json:"status" validate:"required"`
}

// Add creates a book owned by the caller. The owner is always the
// authenticated identity; a user_id in the body is ignored.
func (h *BookHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r)
	if !ok {
		JSONError(w, "Authentication failed", http.StatusUnauthorized)
		return
	}

	var req addBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validation.Struct(req); err != nil {
		WriteError(w, "add book", err)
		return
	}
	if !model.ValidStatus(req.Status) {
		WriteError(w, "add book", apperr.Validation("status must be one of: Want to Read, Currently Reading, Read"))
		return
	}

	book := &model.Book{
		Title:         req.Title,
		Author:        req.Author,
		CoverImageURL: req.CoverImageURL,
		Status:        req.Status,
	}
	saved, err := h.DB.InsertBook(userID, book)
	if err != nil {
		WriteError(w, "add book", err)
		return
	}

	WriteJSON(w, http.StatusCreated, saved)
}

// List returns all of the caller's books.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r)
	if !ok {
		JSONError(w, "Authentication failed", http.StatusUnauthorized)
		return
	}

	books, err := h.DB.BooksByUser(userID)
	if err != nil {
		WriteError(w, "list books", err)
		return
	}
	if books == nil {
		books = []model.Book{}
	}

	WriteJSON(w, http.StatusOK, books)
}

// Rating and review use json.RawMessage so an absent field ("leave
// unchanged") is distinguishable from an explicit null ("clear").
type updateBookRequest struct {
	ID     int64           `json:"id" validate:"required"`
	Status string          `json:"status" validate:"required"`
	Rating json.RawMessage `json:"rating"`
	Review json.RawMessage `json:"review"`
}

// Update changes a book's status, and rating/review when supplied. The
// write is scoped to (id, owner); no matching row yields 404 rather than
// a silent success.
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserID(r)
	if !ok {
		JSONError(w, "Authentication failed", http.StatusUnauthorized)
		return
	}

	var req updateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validation.Struct(req); err != nil {
		WriteError(w, "update book", err)
		return
	}
	if !model.ValidStatus(req.Status) {
		WriteError(w, "update book", apperr.Validation("status must be one of: Want to Read, Currently Reading, Read"))
		return
	}

	upd := db.BookUpdate{Status: req.Status}
	if req.Rating != nil {
		upd.SetRating = true
		if err := json.Unmarshal(req.Rating, &upd.Rating); err != nil {
			JSONError(w, "rating must be an integer", http.StatusBadRequest)
			return
		}
	}
	if req.Review != nil {
		upd.SetReview = true
		if err := json.Unmarshal(req.Review, &upd.Review); err != nil {
			JSONError(w, "review must be a string", http.StatusBadRequest)
			return
		}
	}

	updated, err := h.DB.UpdateBook(userID, req.ID, upd)
	if err != nil {
		WriteError(w, "update book", err)
		return
	}
	if !updated {
		WriteError(w, "update book", apperr.NotFound("Book not found"))
		return
	}

	WriteJSON(w, http.StatusOK, MessageResponse{Message: "Book updated successfully"})
}
