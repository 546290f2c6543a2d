package db

import (
	"strings"
	"time"

	"github.com/readnest/readnest-server/internal/model"
)

// InsertBook persists a new book for the given owner and fills in the
// generated id and creation timestamp. The owner always comes from the
// authenticated identity, never from the request body.
func (db *DB) InsertBook(userID string, book *model.Book) (*model.Book, error) {
	book.UserID = userID
	book.CreatedAt = time.Now().UnixMilli()

	res, err := db.Exec(
		`INSERT INTO books (user_id, title, author, cover_image_url, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		book.UserID, book.Title, book.Author, book.CoverImageURL, book.Status, book.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	book.ID = id
	return book, nil
}

// BooksByUser returns all books owned by the given user, newest first.
func (db *DB) BooksByUser(userID string) ([]model.Book, error) {
	var books []model.Book
	err := db.Select(&books,
		`SELECT * FROM books WHERE user_id = ? ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	return books, nil
}

// BookUpdate describes a status change. Rating and Review are applied only
// when their Set flag is true; a set field with a nil value clears the column.
type BookUpdate struct {
	Status    string
	SetRating bool
	Rating    *int
	SetReview bool
	Review    *string
}

// UpdateBook applies upd to the book matching both id and owner. Returns
// false when no such row exists, so a caller cannot touch another user's
// book by guessing ids.
func (db *DB) UpdateBook(userID string, id int64, upd BookUpdate) (bool, error) {
	sets := []string{"status = ?"}
	args := []interface{}{upd.Status}

	if upd.SetRating {
		sets = append(sets, "rating = ?")
		args = append(args, upd.Rating)
	}
	if upd.SetReview {
		sets = append(sets, "review = ?")
		args = append(args, upd.Review)
	}
	args = append(args, id, userID)

	res, err := db.Exec(
		`UPDATE books SET `+strings.Join(sets, ", ")+` WHERE id = ? AND user_id = ?`,
		args...,
	)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
