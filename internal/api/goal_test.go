package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/readnest/readnest-server/internal/testutil"
)

func TestGoalUpsert(t *testing.T) {
	database := testutil.SetupTestDB(t)
	user := testutil.SeedUser(t, database, "goal@example.com")

	handler := &GoalHandler{DB: database}

	// First write creates.
	req := newRequest(t, "POST", "/api/goal", map[string]int{"year": 2024, "target": 12}, user.ID)
	rr := httptest.NewRecorder()
	handler.Upsert(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("First upsert returned %v want 201 body: %s", rr.Code, rr.Body.String())
	}
	if msg := decodeBody[MessageResponse](t, rr); msg.Message != "Goal set successfully" {
		t.Errorf("Unexpected message %q", msg.Message)
	}

	// Second write updates in place.
	req = newRequest(t, "PUT", "/api/goal", map[string]int{"year": 2024, "target": 20}, user.ID)
	rr = httptest.NewRecorder()
	handler.Upsert(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Second upsert returned %v want 200 body: %s", rr.Code, rr.Body.String())
	}
	if msg := decodeBody[MessageResponse](t, rr); msg.Message != "Goal updated successfully" {
		t.Errorf("Unexpected message %q", msg.Message)
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

func TestGoalUpsertIdempotent(t *testing.T) {
	database := testutil.SetupTestDB(t)
	user := testutil.SeedUser(t, database, "goal@example.com")

	handler := &GoalHandler{DB: database}

	for i := 0; i < 2; i++ {
		req := newRequest(t, "POST", "/api/goal", map[string]int{"year": 2025, "target": 30}, user.ID)
		rr := httptest.NewRecorder()
		handler.Upsert(rr, req)
		if rr.Code != http.StatusCreated && rr.Code != http.StatusOK {
			t.Fatalf("Upsert %d returned %v", i, rr.Code)
		}
	}

	var count int
	if err := database.Get(&count, "SELECT COUNT(*) FROM goals WHERE user_id = ? AND year = ?", user.ID, 2025); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("Repeated identical upserts left %d rows, want 1", count)
	}
}

func TestGoalUpsertValidation(t *testing.T) {
	database := testutil.SetupTestDB(t)
	user := testutil.SeedUser(t, database, "goal@example.com")

	handler := &GoalHandler{DB: database}

	cases := []map[string]int{
		{"target": 12},           // year missing
		{"year": 2024},           // target missing
		{"year": -1, "target": 5},
		{"year": 2024, "target": 0},
	}
	for _, payload := range cases {
		req := newRequest(t, "POST", "/api/goal", payload, user.ID)
		rr := httptest.NewRecorder()
		handler.Upsert(rr, req)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("Upsert %v returned %v want 400", payload, rr.Code)
		}
	}
}
