package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/readnest/readnest-server/internal/auth"
	"github.com/readnest/readnest-server/internal/templates"
)

func TestMain(m *testing.M) {
	auth.Init("test-secret")
	os.Exit(m.Run())
}

// newRequest builds a JSON request with the given user identity injected
// into the context, the way AuthMiddleware would.
func newRequest(t *testing.T, method, path string, payload any, userID string) *http.Request {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewBuffer(data)
	} else {
		body = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, body)
	if userID != "" {
		req = req.WithContext(context.WithValue(req.Context(), UserIDKey, userID))
	}
	return req
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	if err := json.NewDecoder(rr.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

// newTestTemplates loads the real templates relative to this package.
func newTestTemplates(t *testing.T) *templates.Manager {
	t.Helper()
	return templates.NewManager("../../templates")
}

func TestHealth(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()

	Health(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
	}
	if rr.Body.String() != "Alive" {
		t.Errorf("handler returned unexpected body: got %v want Alive", rr.Body.String())
	}
}
