package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/2yum7/forword/pkg/entry"
	"github.com/2yum7/forword/pkg/store"
)

// Service owns the entry collection. It wraps persistence so the CLI, the
// write session and the MCP server share one newest-first view of entries.
type Service struct {
	Persistence store.Persistence

	mu      sync.RWMutex
	entries []*entry.Entry
	loaded  bool
}

var (
	ErrNoPersistence = errors.New("app: no persistence configured")
	ErrNotFound      = errors.New("app: entry not found")
	ErrAmbiguous     = errors.New("app: entry id is ambiguous")
)

// NewService creates a Service over p.
func NewService(p store.Persistence) *Service {
	return &Service{Persistence: p}
}

// Refresh reloads the collection from persistence.
func (s *Service) Refresh(ctx context.Context) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	all := s.Persistence.ListAll(ctx)
	s.mu.Lock()
	s.entries = all
	s.loaded = true
	s.mu.Unlock()
	return nil
}

func (s *Service) ensureLoaded(ctx context.Context) error {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded {
		return nil
	}
	return s.Refresh(ctx)
}

// InsertEntry stores e and places it at the head of the collection.
func (s *Service) InsertEntry(ctx context.Context, e *entry.Entry) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	if e == nil {
		return errors.New("app: nil entry")
	}
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}
	if err := s.Persistence.Store(e); err != nil {
		return err
	}
	s.mu.Lock()
	s.entries = append([]*entry.Entry{e}, s.entries...)
	s.mu.Unlock()
	return nil
}

// Entries returns the collection, newest first.
func (s *Service) Entries(ctx context.Context) ([]*entry.Entry, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entry.Entry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// Count returns the number of entries.
func (s *Service) Count(ctx context.Context) (int, error) {
	if err := s.ensureLoaded(ctx); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries), nil
}

// Search returns entries whose text contains query, ignoring case. A blank
// query returns everything.
func (s *Service) Search(ctx context.Context, query string) ([]*entry.Entry, error) {
	all, err := s.Entries(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(query) == "" {
		return all, nil
	}
	matches := make([]*entry.Entry, 0, len(all))
	for _, e := range all {
		if e.Matches(query) {
			matches = append(matches, e)
		}
	}
	return matches, nil
}

// Since returns entries written at or after now minus window.
func (s *Service) Since(ctx context.Context, now time.Time, window time.Duration) ([]*entry.Entry, error) {
	all, err := s.Entries(ctx)
	if err != nil {
		return nil, err
	}
	cutoff := now.Add(-window)
	out := make([]*entry.Entry, 0, len(all))
	for _, e := range all {
		if !e.Date.Before(cutoff) {
			out = append(out, e)
		}
	}
	return out, nil
}

// Get finds an entry by id. A unique id prefix is accepted.
func (s *Service) Get(ctx context.Context, id string) (*entry.Entry, error) {
	id = strings.ToUpper(strings.TrimSpace(id))
	if id == "" {
		return nil, ErrNotFound
	}
	all, err := s.Entries(ctx)
	if err != nil {
		return nil, err
	}
	var found *entry.Entry
	for _, e := range all {
		eid := strings.ToUpper(e.ID)
		if eid == id {
			return e, nil
		}
		if strings.HasPrefix(eid, id) {
			if found != nil {
				return nil, fmt.Errorf("%w: %s", ErrAmbiguous, id)
			}
			found = e
		}
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return found, nil
}

// Delete removes an entry permanently.
func (s *Service) Delete(ctx context.Context, id string) (*entry.Entry, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.Persistence.Delete(e); err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	s.mu.Lock()
	for i, cur := range s.entries {
		if cur.ID == e.ID {
			s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return e, nil
}
