package testutil

import (
	"path/filepath"
	"testing"

	"github.com/readnest/readnest-server/internal/db"
	"github.com/readnest/readnest-server/internal/model"
)

// SetupTestDB creates a throwaway SQLite DB with the schema applied.
func SetupTestDB(t *testing.T) *db.DB {
	t.Helper()

	database, err := db.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to init test db: %v", err)
	}
	t.Cleanup(func() {
		_ = database.Close()
	})
	return database
}

// SeedUser inserts a user and returns it. The password hash is a dummy;
// tests exercising real verification hash their own.
func SeedUser(t *testing.T, database *db.DB, email string) *model.User {
	t.Helper()

	user, err := database.CreateUser(email, "dummyhash")
	if err != nil {
		t.Fatalf("Failed to seed user %s: %v", email, err)
	}
	return user
}

// MockMailSender captures emails for testing
type MockMailSender struct {
	SentEmails []SentEmail
}

type SentEmail struct {
	To       string
	Subject  string
	TextBody string
	HtmlBody string
}

func (m *MockMailSender) Send(to string, subject string, textBody string, htmlBody string) error {
	m.SentEmails = append(m.SentEmails, SentEmail{to, subject, textBody, htmlBody})
	return nil
}
