package db

import (
	"database/sql"

	"github.com/readnest/readnest-server/internal/model"
)

// StatsForUser aggregates the caller's reading stats for the given year.
// Only the caller's own rows participate: the goal lookup and both
// aggregates are filtered by user_id.
func (db *DB) StatsForUser(userID string, year int) (*model.Stats, error) {
	stats := &model.Stats{}

	goal, err := db.GoalForYear(userID, year)
	if err != nil && err != ErrNoRows {
		return nil, err
	}
	if goal != nil {
		target := goal.Target
		stats.Goal = &target
	}

	var row struct {
		TotalBooks    int             `db:"total_books"`
		AverageRating sql.NullFloat64 `db:"average_rating"`
	}
	err = db.Get(&row,
		`SELECT COUNT(*) AS total_books, AVG(rating) AS average_rating
		 FROM books WHERE user_id = ? AND status = ?`,
		userID, model.StatusRead)
	if err != nil {
		return nil, err
	}

	stats.TotalBooks = row.TotalBooks
	// AVG ignores NULL ratings; no rated books yields NULL, reported as 0.
	if row.AverageRating.Valid {
		stats.AverageRating = row.AverageRating.Float64
	}
	return stats, nil
}
