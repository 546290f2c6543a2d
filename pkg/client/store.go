package client

import (
	"context"
	"sync"
)

// Store caches the signed-in user's books and stats. The cache reflects
// server state as of the last successful fetch or mutation: mutations
// that fail leave it untouched, mutations that succeed either patch it
// locally or re-fetch, matching what the server reported back.
type Store struct {
	client *Client

	mu    sync.RWMutex
	books []Book
	stats Stats
}

func NewStore(client *Client) *Store {
	return &Store{client: client}
}

// Refresh re-fetches books and stats from the server.
func (s *Store) Refresh(ctx context.Context) error {
	books, err := s.client.Books(ctx)
	if err != nil {
		return err
	}
	stats, err := s.client.Stats(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.books = books
	s.stats = *stats
	s.mu.Unlock()
	return nil
}

// AddBook creates the book and appends the persisted record to the cache.
func (s *Store) AddBook(ctx context.Context, in AddBookInput) (*Book, error) {
	book, err := s.client.AddBook(ctx, in)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.books = append(s.books, *book)
	s.mu.Unlock()
	return book, nil
}

// UpdateBook applies the update on the server, patches the cached row,
// and re-fetches stats since a status or rating change moves the
// aggregates.
func (s *Store) UpdateBook(ctx context.Context, in UpdateBookInput) error {
	if err := s.client.UpdateBook(ctx, in); err != nil {
		return err
	}

	s.mu.Lock()
	for i := range s.books {
		if s.books[i].ID == in.ID {
			s.books[i].Status = in.Status
			if in.Rating != nil {
				s.books[i].Rating = in.Rating
			}
			if in.Review != nil {
				s.books[i].Review = in.Review
			}
			break
		}
	}
	s.mu.Unlock()

	return s.refreshStats(ctx)
}

// SaveGoal upserts the goal and re-fetches stats.
func (s *Store) SaveGoal(ctx context.Context, year, target int) error {
	if err := s.client.SaveGoal(ctx, year, target); err != nil {
		return err
	}
	return s.refreshStats(ctx)
}

func (s *Store) refreshStats(ctx context.Context) error {
	stats, err := s.client.Stats(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.stats = *stats
	s.mu.Unlock()
	return nil
}

// Books returns a copy of the cached book list.
func (s *Store) Books() []Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Book, len(s.books))
	copy(out, s.books)
	return out
}

// Stats returns the cached aggregates.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}
