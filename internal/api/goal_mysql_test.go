package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/readnest/readnest-server/internal/testutil"
)

// Exercises the MySQL upsert dialect (ON DUPLICATE KEY UPDATE) against a
// real server. Skipped unless MYSQL_TEST_DSN is set.
func TestGoalUpsertMySQL(t *testing.T) {
	database := testutil.SetupMySQLTestDB(t)
	user := testutil.SeedUser(t, database, "mysql-goal@example.com")

	handler := &GoalHandler{DB: database}

	req := newRequest(t, "POST", "/api/goal", map[string]int{"year": 2024, "target": 12}, user.ID)
	rr := httptest.NewRecorder()
	handler.Upsert(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("First upsert returned %v body: %s", rr.Code, rr.Body.String())
	}

	req = newRequest(t, "POST", "/api/goal", map[string]int{"year": 2024, "target": 20}, user.ID)
	rr = httptest.NewRecorder()
	handler.Upsert(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("Second upsert returned %v body: %s", rr.Code, rr.Body.String())
	}

	var count int
	if err := database.Get(&count, "SELECT COUNT(*) FROM goals WHERE user_id = ? AND year = ?", user.ID, 2024); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("Expected exactly one goal row, got %d", count)
	}

	goal, err := database.GoalForYear(user.ID, 2024)
	if err != nil {
		t.Fatal(err)
	}
	if goal.Target != 20 {
		t.Errorf("Target = %d, want 20", goal.Target)
	}
}
