package draft

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/2yum7/forword/pkg/entry"
)

// EntryInserter receives finalized entries. The entry collection owner
// implements it.
type EntryInserter interface {
	InsertEntry(ctx context.Context, e *entry.Entry) error
}

// Observer is notified whenever the draft text changes.
type Observer interface {
	DraftChanged(text string)
}

// ObserverFunc adapts a function to an Observer.
type ObserverFunc func(text string)

func (f ObserverFunc) DraftChanged(text string) { f(text) }

// EditResult describes the outcome of ProposeEdit.
type EditResult struct {
	// Accepted is false when the edit was blocked by the no-delete policy.
	Accepted bool
	// Text is the buffer after the edit; the last accepted text on rejection.
	Text string
	// ShowHint is set on the first rejection of a session only.
	ShowHint bool
}

// Options configure a Session.
type Options struct {
	Storage Storage
	Entries EntryInserter
	Clock   Clock
	Logger  *zap.Logger
}

// Session is the draft session controller. All methods are safe for
// concurrent use; the autosave goroutine reads Text while the input loop
// calls ProposeEdit.
type Session struct {
	id      string
	storage Storage
	entries EntryInserter
	clock   Clock
	log     *zap.Logger

	mu           sync.Mutex
	current      string
	lastAccepted string
	paused       bool
	hinted       bool
	// unreadable is set when a stored draft exists but could not be read.
	// Nothing may overwrite or remove the stored slot while it is set.
	unreadable bool

	obsMu     sync.Mutex
	observers map[int]Observer
	nextObs   int
}

// NewSession creates an empty session. Call Restore or Initialize before use.
func NewSession(opts Options) *Session {
	s := &Session{
		id:        uuid.NewString(),
		storage:   opts.Storage,
		entries:   opts.Entries,
		clock:     opts.Clock,
		log:       opts.Logger,
		observers: make(map[int]Observer),
	}
	if s.storage == nil {
		s.storage = NewMemoryStorage()
	}
	if s.clock == nil {
		s.clock = RealClock
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	s.log = s.log.With(zap.String("session", s.id))
	return s
}

// ID identifies the session in logs.
func (s *Session) ID() string {
	return s.id
}

// Storage returns the draft storage the session clears on save and discard.
func (s *Session) Storage() Storage {
	return s.storage
}

// Initialize seeds the buffer with prior draft text.
func (s *Session) Initialize(prior string) {
	s.mu.Lock()
	s.current = prior
	s.lastAccepted = prior
	s.hinted = false
	s.mu.Unlock()
	s.notify(prior)
}

// Restore initializes the session from the persisted draft. A missing draft
// starts an empty session. A draft that cannot be read also starts an empty
// session, but the error wraps ErrDraftUnreadable and the stored slot is
// protected from autosave, Finalize and Discard for the life of the session.
func (s *Session) Restore() (string, error) {
	prior, err := s.storage.Get(DraftKey)
	switch {
	case errors.Is(err, ErrNotFound):
		s.Initialize("")
		return "", nil
	case err != nil:
		s.log.Warn("restore draft", zap.Error(err))
		s.Initialize("")
		s.mu.Lock()
		s.unreadable = true
		s.mu.Unlock()
		return "", fmt.Errorf("%w: %v", ErrDraftUnreadable, err)
	}
	s.log.Debug("restored draft", zap.Int("chars", utf8.RuneCountInString(prior)))
	s.Initialize(prior)
	return prior, nil
}

// Writable returns ErrDraftUnreadable when the stored draft failed to load and
// must not be replaced.
func (s *Session) Writable() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.unreadable {
		return ErrDraftUnreadable
	}
	return nil
}

// ProposeEdit applies newText unless it would shorten the buffer outside
// pause mode.
func (s *Session) ProposeEdit(newText string) EditResult {
	s.mu.Lock()
	if !s.paused && utf8.RuneCountInString(newText) < utf8.RuneCountInString(s.lastAccepted) {
		s.current = s.lastAccepted
		res := EditResult{Text: s.current, ShowHint: !s.hinted}
		s.hinted = true
		s.mu.Unlock()
		s.log.Debug("edit rejected", zap.Bool("hint", res.ShowHint))
		return res
	}
	s.current = newText
	s.lastAccepted = newText
	s.mu.Unlock()

	s.notify(newText)
	return EditResult{Accepted: true, Text: newText}
}

// Text returns the current buffer.
func (s *Session) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// WordCount counts whitespace separated words in the current buffer.
func (s *Session) WordCount() int {
	return entry.CountWords(s.Text())
}

// Pause allows any edit, deletions included, until Resume.
func (s *Session) Pause() {
	s.mu.Lock()
	s.paused = true
	s.mu.Unlock()
}

func (s *Session) Resume() {
	s.mu.Lock()
	s.paused = false
	s.mu.Unlock()
}

// TogglePause flips pause mode and returns the new state.
func (s *Session) TogglePause() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = !s.paused
	return s.paused
}

func (s *Session) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// Finalize turns the draft into an entry and ends the draft. A blank draft
// produces no entry. If the entry cannot be inserted the draft is kept.
func (s *Session) Finalize(ctx context.Context) (*entry.Entry, error) {
	trimmed := strings.TrimSpace(s.Text())
	if trimmed == "" {
		s.clear()
		return nil, nil
	}
	if s.entries == nil {
		return nil, errors.New("draft: no entry collection configured")
	}

	e := entry.New(trimmed, s.clock.Now())
	if err := s.entries.InsertEntry(ctx, e); err != nil {
		return nil, fmt.Errorf("draft: insert entry: %w", err)
	}
	s.log.Info("entry saved", zap.String("entry", e.ID), zap.Int("words", e.WordCount))
	s.clear()
	return e, nil
}

// Discard drops the draft without creating an entry.
func (s *Session) Discard() error {
	return s.clear()
}

func (s *Session) clear() error {
	s.mu.Lock()
	s.current = ""
	s.lastAccepted = ""
	unreadable := s.unreadable
	s.mu.Unlock()
	s.notify("")

	if unreadable {
		s.log.Warn("stored draft left in place, it could not be read")
		return nil
	}
	if err := s.storage.Remove(DraftKey); err != nil {
		s.log.Warn("remove persisted draft", zap.Error(err))
		return fmt.Errorf("draft: remove persisted draft: %w", err)
	}
	return nil
}

// Subscribe registers o for draft changes. The returned func unsubscribes.
func (s *Session) Subscribe(o Observer) func() {
	s.obsMu.Lock()
	id := s.nextObs
	s.nextObs++
	s.observers[id] = o
	s.obsMu.Unlock()

	return func() {
		s.obsMu.Lock()
		delete(s.observers, id)
		s.obsMu.Unlock()
	}
}

func (s *Session) notify(text string) {
	s.obsMu.Lock()
	observers := make([]Observer, 0, len(s.observers))
	for _, o := range s.observers {
		observers = append(observers, o)
	}
	s.obsMu.Unlock()

	for _, o := range observers {
		o.DraftChanged(text)
	}
}
