// Package client is a typed Go client for the ReadNest API, plus a small
// cached store mirroring the server state for a signed-in user.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

func New(baseURL, token string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
	}
}

// SetToken replaces the bearer token, e.g. after a fresh login.
func (c *Client) SetToken(token string) {
	c.token = token
}

// do sends a request and decodes the JSON response into out (when non-nil).
// Any non-2xx response is returned as *APIError and out is left untouched.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		return &APIError{Status: resp.StatusCode, Message: errResp.Error}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Login exchanges credentials for a bearer token and installs it on the
// client. An unknown email registers a new account server-side.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var resp struct {
		Token string `json:"token"`
	}
	err := c.do(ctx, http.MethodPost, "/auth", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return err
	}
	c.token = resp.Token
	return nil
}

func (c *Client) Books(ctx context.Context) ([]Book, error) {
	var books []Book
	if err := c.do(ctx, http.MethodGet, "/api/books", nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// AddBookInput are the fields for a new book. CoverImageURL may be nil.
type AddBookInput struct {
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	CoverImageURL *string `json:"coverImageUrl,omitempty"`
	Status        string  `json:"status"`
}

func (c *Client) AddBook(ctx context.Context, in AddBookInput) (*Book, error) {
	var book Book
	if err := c.do(ctx, http.MethodPost, "/api/books", in, &book); err != nil {
		return nil, err
	}
	return &book, nil
}

// UpdateBookInput updates a book's status. Rating and Review are sent only
// when non-nil, which the server reads as "leave unchanged".
type UpdateBookInput struct {
	ID     int64   `json:"id"`
	Status string  `json:"status"`
	Rating *int    `json:"rating,omitempty"`
	Review *string `json:"review,omitempty"`
}

func (c *Client) UpdateBook(ctx context.Context, in UpdateBookInput) error {
	return c.do(ctx, http.MethodPut, "/api/books", in, nil)
}

func (c *Client) SaveGoal(ctx context.Context, year, target int) error {
	return c.do(ctx, http.MethodPost, "/api/goal", map[string]int{
		"year":   year,
		"target": target,
	}, nil)
}

func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var stats Stats
	if err := c.do(ctx, http.MethodGet, "/api/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) Recommendations(ctx context.Context) ([]Recommendation, error) {
	var resp struct {
		Recommendations []Recommendation `json:"recommendations"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/recommendations", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Recommendations, nil
}
