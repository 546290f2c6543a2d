package db

import (
	"time"

	"github.com/readnest/readnest-server/internal/model"
)

// UpsertGoal writes the reading goal for (userID, year) in a single
// conditional insert guarded by the UNIQUE(user_id, year) constraint, so
// concurrent writes for the same year can never produce duplicate rows.
// Returns true when a new row was created, false when an existing one was
// updated. Under a write race the loser's created flag may be stale; the
// stored row is still the single winner.
func (db *DB) UpsertGoal(userID string, year, target int) (bool, error) {
	existing, err := db.GoalForYear(userID, year)
	if err != nil && err != ErrNoRows {
		return false, err
	}
	created := existing == nil

	query := `INSERT INTO goals (user_id, year, target, created_at) VALUES (?, ?, ?, ?)
	          ON CONFLICT(user_id, year) DO UPDATE SET target = excluded.target`
	if db.IsMySQL() {
		query = `INSERT INTO goals (user_id, year, target, created_at) VALUES (?, ?, ?, ?)
		         ON DUPLICATE KEY UPDATE target = VALUES(target)`
	}

	if _, err := db.Exec(query, userID, year, target, time.Now().UnixMilli()); err != nil {
		return false, err
	}
	return created, nil
}

// GoalForYear returns the goal row for (userID, year), or ErrNoRows.
func (db *DB) GoalForYear(userID string, year int) (*model.Goal, error) {
	var goal model.Goal
	if err := db.Get(&goal, `SELECT * FROM goals WHERE user_id = ? AND year = ?`, userID, year); err != nil {
		return nil, err
	}
	return &goal, nil
}
