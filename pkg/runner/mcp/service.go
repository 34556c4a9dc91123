// Package mcp provides the Model Context Protocol server integration for forword.
package mcp

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/2yum7/forword/pkg/app"
	"github.com/2yum7/forword/pkg/draft"
	"github.com/2yum7/forword/pkg/entry"
)

// Service coordinates the journal operations shared by the MCP server.
type Service struct {
	App *app.Service
	Now func() time.Time
}

// EntryDTO is a transport-friendly projection of an entry.
type EntryDTO struct {
	ID          string `json:"id"`
	Text        string `json:"text,omitempty"`
	Snippet     string `json:"snippet"`
	WordCount   int    `json:"wordCount"`
	CreatedISO  string `json:"created"`
	CreatedUnix int64  `json:"createdUnix"`
}

// NewService builds a service wrapper around the journal.
func NewService(a *app.Service) *Service {
	return &Service{App: a, Now: time.Now}
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *Service) ready() error {
	if s.App == nil {
		return errors.New("journal is not configured")
	}
	return nil
}

// fresh reloads the collection. The server outlives any one write, and other
// forword processes add and delete entries behind its back.
func (s *Service) fresh(ctx context.Context) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.App.Refresh(ctx)
}

// ListEntries returns the newest entries first, at most limit when positive.
func (s *Service) ListEntries(ctx context.Context, limit int) ([]EntryDTO, error) {
	if err := s.fresh(ctx); err != nil {
		return nil, err
	}
	all, err := s.App.Entries(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(clip(all, limit), false), nil
}

// SearchEntries performs a case-insensitive substring match on entry text.
func (s *Service) SearchEntries(ctx context.Context, query string, limit int) ([]EntryDTO, error) {
	if err := s.fresh(ctx); err != nil {
		return nil, err
	}
	if strings.TrimSpace(query) == "" {
		return []EntryDTO{}, nil
	}
	if limit <= 0 {
		limit = 20
	}
	found, err := s.App.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return toDTOs(clip(found, limit), false), nil
}

// EntryByID locates an entry by id or unique id prefix.
func (s *Service) EntryByID(ctx context.Context, id string) (*EntryDTO, error) {
	if err := s.fresh(ctx); err != nil {
		return nil, err
	}
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("id is required")
	}
	e, err := s.App.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := toDTO(e, true)
	return &dto, nil
}

// CreateEntry saves text as a new entry. The session gets its own draft
// slot so the user's pending draft is left alone.
func (s *Service) CreateEntry(ctx context.Context, text string) (*EntryDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("text is required")
	}

	session := draft.NewSession(draft.Options{
		Storage: draft.NewMemoryStorage(),
		Entries: s.App,
		Clock:   clockFunc(s.now),
	})
	session.Initialize("")
	session.ProposeEdit(text)

	e, err := session.Finalize(ctx)
	if err != nil {
		return nil, err
	}
	dto := toDTO(e, true)
	return &dto, nil
}

// Stats returns writing totals as of now.
func (s *Service) Stats(ctx context.Context) (app.Stats, error) {
	if err := s.fresh(ctx); err != nil {
		return app.Stats{}, err
	}
	return s.App.Stats(ctx, s.now())
}

// clockFunc lets entries created over MCP share the service clock.
type clockFunc func() time.Time

func (c clockFunc) Now() time.Time { return c() }

func (c clockFunc) NewTicker(d time.Duration) draft.Ticker {
	return draft.RealClock.NewTicker(d)
}

func clip(entries []*entry.Entry, limit int) []*entry.Entry {
	if limit > 0 && len(entries) > limit {
		return entries[:limit]
	}
	return entries
}

func toDTOs(entries []*entry.Entry, full bool) []EntryDTO {
	out := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toDTO(e, full))
	}
	return out
}

func toDTO(e *entry.Entry, full bool) EntryDTO {
	dto := EntryDTO{
		ID:          e.ID,
		Snippet:     e.Snippet(),
		WordCount:   e.WordCount,
		CreatedISO:  entry.FormatTime(e.Date.Time),
		CreatedUnix: e.Date.Unix(),
	}
	if full {
		dto.Text = e.Text
	}
	return dto
}
