package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/readnest/readnest-server/internal/model"
	"github.com/readnest/readnest-server/internal/testutil"
)

func TestAddBook(t *testing.T) {
	database := testutil.SetupTestDB(t)
	user := testutil.SeedUser(t, database, "reader@example.com")

	handler := &BookHandler{DB: database}

	payload := map[string]any{
		"title":  "Dune",
		"author": "Herbert",
		"status": "Want to Read",
		// A client-supplied owner must be ignored.
		"userId": "someone-else",
	}
	req := newRequest(t, "POST", "/api/books", payload, user.ID)
	rr := httptest.NewRecorder()

	handler.Add(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("Add returned %v want %v body: %s", rr.Code, http.StatusCreated, rr.Body.String())
	}

	book := decodeBody[model.Book](t, rr)
	if book.ID == 0 {
		t.Error("Expected generated id in response")
	}
	if book.UserID != user.ID {
		t.Errorf("Owner should be the authenticated user, got %q want %q", book.UserID, user.ID)
	}
	if book.Status != model.StatusWantToRead {
		t.Errorf("Status = %q, want %q", book.Status, model.StatusWantToRead)
	}
	if book.Rating != nil || book.Review != nil {
		t.Error("New book should have no rating or review")
	}
}

func TestAddBookMissingAuthor(t *testing.T) {
	database := testutil.SetupTestDB(t)
	user := testutil.SeedUser(t, database, "reader@example.com")

	handler := &BookHandler{DB: database}

	req := newRequest(t, "POST", "/api/books", map[string]string{
		"title":  "Dune",
		"status": "Want to Read",
	}, user.ID)
	rr := httptest.NewRecorder()

	handler.Add(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Add with missing author returned %v want %v", rr.Code, http.StatusBadRequest)
	}

	books, err := database.BooksByUser(user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(books) != 0 {
		t.Errorf("Store should be unchanged, found %d rows", len(books))
	}
}

func TestAddBookInvalidStatus(t *testing.T) {
	database := testutil.SetupTestDB(t)
	user := testutil.SeedUser(t, database, "reader@example.com")

	handler := &BookHandler{DB: database}

	req := newRequest(t, "POST", "/api/books", map[string]string{
		"title":  "Dune",
		"author": "Herbert",
		"status": "Finished",
	}, user.ID)
	rr := httptest.NewRecorder()

	handler.Add(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Add with invalid status returned %v want %v", rr.Code, http.StatusBadRequest)
	}
}

func TestListBooks(t *testing.T) {
	database := testutil.SetupTestDB(t)
	user := testutil.SeedUser(t, database, "reader@example.com")
	other := testutil.SeedUser(t, database, "other@example.com")

	if _, err := database.InsertBook(user.ID, &model.Book{Title: "Dune", Author: "Herbert", Status: model.StatusRead}); err != nil {
		t.Fatal(err)
	}
	if _, err := database.InsertBook(other.ID, &model.Book{Title: "Emma", Author: "Austen", Status: model.StatusRead}); err != nil {
		t.Fatal(err)
	}

	handler := &BookHandler{DB: database}

	req := newRequest(t, "GET", "/api/books", nil, user.ID)
	rr := httptest.NewRecorder()
	handler.List(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("List returned %v", rr.Code)
	}
	books := decodeBody[[]model.Book](t, rr)
	if len(books) != 1 || books[0].Title != "Dune" {
		t.Errorf("Expected only the caller's book, got %+v", books)
	}
}

func TestUpdateBook(t *testing.T) {
	database := testutil.SetupTestDB(t)
	user := testutil.SeedUser(t, database, "reader@example.com")

	book, err := database.InsertBook(user.ID, &model.Book{Title: "Dune", Author: "Herbert", Status: model.StatusWantToRead})
	if err != nil {
		t.Fatal(err)
	}

	handler := &BookHandler{DB: database}

	req := newRequest(t, "PUT", "/api/books", map[string]any{
		"id":     book.ID,
		"status": "Read",
		"rating": 5,
	}, user.ID)
	rr := httptest.NewRecorder()
	handler.Update(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Update returned %v body: %s", rr.Code, rr.Body.String())
	}
	resp := decodeBody[MessageResponse](t, rr)
	if resp.Message != "Book updated successfully" {
		t.Errorf("Unexpected message %q", resp.Message)
	}

	books, _ := database.BooksByUser(user.ID)
	if books[0].Status != model.StatusRead {
		t.Errorf("Status = %q, want Read", books[0].Status)
	}
	if books[0].Rating == nil || *books[0].Rating != 5 {
		t.Errorf("Rating not applied: %+v", books[0].Rating)
	}
}

func TestUpdateBookMissingStatus(t *testing.T) {
	database := testutil.SetupTestDB(t)
	user := testutil.SeedUser(t, database, "reader@example.com")

	handler := &BookHandler{DB: database}

	req := newRequest(t, "PUT", "/api/books", map[string]any{"id": 1}, user.ID)
	rr := httptest.NewRecorder()
	handler.Update(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Update without status returned %v want 400", rr.Code)
	}
}

func TestUpdateBookWrongOwner(t *testing.T) {
	database := testutil.SetupTestDB(t)
	owner := testutil.SeedUser(t, database, "owner@example.com")
	intruder := testutil.SeedUser(t, database, "intruder@example.com")

	book, err := database.InsertBook(owner.ID, &model.Book{Title: "Dune", Author: "Herbert", Status: model.StatusWantToRead})
	if err != nil {
		t.Fatal(err)
	}

	handler := &BookHandler{DB: database}

	req := newRequest(t, "PUT", "/api/books", map[string]any{
		"id":     book.ID,
		"status": "Read",
		"rating": 1,
	}, intruder.ID)
	rr := httptest.NewRecorder()
	handler.Update(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("Cross-user update returned %v want %v", rr.Code, http.StatusNotFound)
	}

	books, _ := database.BooksByUser(owner.ID)
	if books[0].Status != model.StatusWantToRead || books[0].Rating != nil {
		t.Errorf("Target row must be untouched, got %+v", books[0])
	}
}

func TestUpdateBookFieldPresence(t *testing.T) {
	database := testutil.SetupTestDB(t)
	user := testutil.SeedUser(t, database, "reader@example.com")

	book, err := database.InsertBook(user.ID, &model.Book{Title: "Dune", Author: "Herbert", Status: model.StatusWantToRead})
	if err != nil {
		t.Fatal(err)
	}

	handler := &BookHandler{DB: database}

	// Set rating and review.
	req := newRequest(t, "PUT", "/api/books", map[string]any{
		"id": book.ID, "status": "Read", "rating": 4, "review": "great",
	}, user.ID)
	rr := httptest.NewRecorder()
	handler.Update(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("Update returned %v", rr.Code)
	}

	// Absent rating/review means leave unchanged.
	req = newRequest(t, "PUT", "/api/books", map[string]any{
		"id": book.ID, "status": "Read",
	}, user.ID)
	rr = httptest.NewRecorder()
	handler.Update(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("Update returned %v", rr.Code)
	}

	books, _ := database.BooksByUser(user.ID)
	if books[0].Rating == nil || *books[0].Rating != 4 {
		t.Errorf("Absent rating must not clear the stored value, got %+v", books[0].Rating)
	}
	if books[0].Review == nil || *books[0].Review != "great" {
		t.Errorf("Absent review must not clear the stored value, got %+v", books[0].Review)
	}

	// Explicit null clears.
	req = newRequest(t, "PUT", "/api/books", map[string]any{
		"id": book.ID, "status": "Read", "rating": nil,
	}, user.ID)
	rr = httptest.NewRecorder()
	handler.Update(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("Update returned %v", rr.Code)
	}

	books, _ = database.BooksByUser(user.ID)
	if books[0].Rating != nil {
		t.Errorf("Explicit null rating should clear the column, got %+v", books[0].Rating)
	}
}
