package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/readnest/readnest-server/internal/model"
)

// CreateUser inserts a new user and returns it with a generated UUID.
func (db *DB) CreateUser(email, passwordHash string) (*model.User, error) {
	user := &model.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UnixMilli(),
	}
	_, err := db.Exec(
		`INSERT INTO users (id, email, password_hash, created_at) VALUES (?, ?, ?, ?)`,
		user.ID, user.Email, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (db *DB) GetUserByEmail(email string) (*model.User, error) {
	var user model.User
	if err := db.Get(&user, `SELECT * FROM users WHERE email = ?`, email); err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *DB) GetUserByID(id string) (*model.User, error) {
	var user model.User
	if err := db.Get(&user, `SELECT * FROM users WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *DB) UserExists(id string) (bool, error) {
	var exists bool
	err := db.Get(&exists, `SELECT EXISTS(SELECT 1 FROM users WHERE id = ?)`, id)
	return exists, err
}

func (db *DB) SetPasswordResetToken(userID, tokenHash string, expiresAt int64) error {
	_, err := db.Exec(
		`UPDATE users SET password_reset_token_hash = ?, password_reset_token_expires_at = ? WHERE id = ?`,
		tokenHash, expiresAt, userID,
	)
	return err
}

func (db *DB) GetUserByResetToken(tokenHash string) (*model.User, error) {
	var user model.User
	if err := db.Get(&user, `SELECT * FROM users WHERE password_reset_token_hash = ?`, tokenHash); err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *DB) UpdatePassword(userID, passwordHash string) error {
	_, err := db.Exec(`UPDATE users SET password_hash = ? WHERE id = ?`, passwordHash, userID)
	return err
}

func (db *DB) ClearResetToken(userID string) error {
	_, err := db.Exec(
		`UPDATE users SET password_reset_token_hash = NULL, password_reset_token_expires_at = NULL WHERE id = ?`,
		userID,
	)
	return err
}
