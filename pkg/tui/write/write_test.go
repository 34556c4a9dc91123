package write

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/2yum7/forword/pkg/draft"
	"github.com/2yum7/forword/pkg/entry"
)

type collection struct {
	mu      sync.Mutex
	entries []*entry.Entry
}

func (c *collection) InsertEntry(_ context.Context, e *entry.Entry) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append([]*entry.Entry{e}, c.entries...)
	return nil
}

func newTestModel(t *testing.T, prior string) (*Model, *draft.MemoryStorage, *collection) {
	t.Helper()
	storage := draft.NewMemoryStorage()
	entries := &collection{}
	session := draft.NewSession(draft.Options{Storage: storage, Entries: entries})
	session.Initialize(prior)

	scheduler := draft.NewScheduler(session, storage, draft.SchedulerOptions{Interval: time.Hour})
	scheduler.Start()
	t.Cleanup(scheduler.Stop)

	m := New(context.Background(), session, scheduler, nil)
	m.SetSize(80, 24)
	return m, storage, entries
}

func ctrl(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func TestBackspaceIsReverted(t *testing.T) {
	m, _, _ := newTestModel(t, "abc")

	_, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyBackspace})

	if got := m.input.Value(); got != "abc" {
		t.Fatalf("expected editor to keep %q, got %q", "abc", got)
	}
	if m.hint == "" {
		t.Fatalf("expected hint after first rejected edit")
	}
	if !strings.Contains(m.statusLine(), "no going back") {
		t.Fatalf("status line should show hint: %q", m.statusLine())
	}
}

func TestRejectedBackspaceKeepsCursor(t *testing.T) {
	m, _, _ := newTestModel(t, "abc\ndef")

	left := tea.KeyPressMsg{Code: tea.KeyLeft}
	_, _ = m.Update(left)
	_, _ = m.Update(left)
	_, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyBackspace})
	_, _ = m.Update(tea.KeyPressMsg{Code: 'X', Text: "X"})

	if got := m.session.Text(); got != "abc\ndXef" {
		t.Fatalf("expected insert where the cursor was, got %q", got)
	}
}

func TestProposeRevertsAndHintsOnce(t *testing.T) {
	m, _, _ := newTestModel(t, "hello")

	m.propose("hell")
	if m.input.Value() != "hello" || m.hint != hintText {
		t.Fatalf("expected revert with hint, got %q %q", m.input.Value(), m.hint)
	}
	m.hint = ""
	m.propose("hel")
	if m.hint != "" {
		t.Fatalf("hint should only be shown once")
	}

	m.propose("hello there")
	if m.session.Text() != "hello there" {
		t.Fatalf("expected longer text accepted, got %q", m.session.Text())
	}
	if n := m.words.Load(); n != 2 {
		t.Fatalf("expected observer to update word count to 2, got %d", n)
	}
}

func TestPauseAllowsBackspace(t *testing.T) {
	m, _, _ := newTestModel(t, "abc")

	_, _ = m.Update(ctrl('p'))
	if !m.session.Paused() {
		t.Fatalf("expected paused")
	}
	_, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyBackspace})
	if got := m.session.Text(); got != "ab" {
		t.Fatalf("expected deletion while paused, got %q", got)
	}
	if !strings.Contains(m.statusLine(), "paused") {
		t.Fatalf("status line should say paused: %q", m.statusLine())
	}
}

func TestSaveFinalizes(t *testing.T) {
	m, storage, entries := newTestModel(t, "hello world")

	_, cmd := m.Update(ctrl('s'))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	o, e := m.Outcome()
	if o != OutcomeSaved || e == nil {
		t.Fatalf("expected saved entry, got %v %v", o, e)
	}
	if len(entries.entries) != 1 || entries.entries[0].WordCount != 2 {
		t.Fatalf("expected one entry with 2 words, got %+v", entries.entries)
	}
	if storage.Has(draft.DraftKey) {
		t.Fatalf("draft should be cleared after save")
	}
	if m.scheduler.Running() {
		t.Fatalf("autosave should be stopped after save")
	}
}

func TestCloseKeepsDraft(t *testing.T) {
	m, storage, entries := newTestModel(t, "keep me")

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if o, _ := m.Outcome(); o != OutcomeClosed {
		t.Fatalf("expected closed, got %v", o)
	}
	got, err := storage.Get(draft.DraftKey)
	if err != nil || got != "keep me" {
		t.Fatalf("expected flushed draft, got %q %v", got, err)
	}
	if len(entries.entries) != 0 {
		t.Fatalf("closing must not create an entry")
	}
}

func TestDiscardNeedsConfirmation(t *testing.T) {
	m, storage, entries := newTestModel(t, "scrap")
	_ = storage.Set(draft.DraftKey, "scrap")

	if _, cmd := m.Update(ctrl('x')); cmd != nil {
		t.Fatalf("first ctrl+x should only arm discard")
	}
	if !strings.Contains(m.statusLine(), "again to discard") {
		t.Fatalf("expected confirmation prompt: %q", m.statusLine())
	}
	if _, cmd := m.Update(ctrl('x')); cmd == nil {
		t.Fatalf("second ctrl+x should quit")
	}
	if o, _ := m.Outcome(); o != OutcomeDiscarded {
		t.Fatalf("expected discarded, got %v", o)
	}
	if storage.Has(draft.DraftKey) || len(entries.entries) != 0 {
		t.Fatalf("discard must clear the draft and create nothing")
	}
}

func TestViewShowsWordCount(t *testing.T) {
	m, _, _ := newTestModel(t, "one two three")
	view := m.View()
	if !strings.Contains(view, "3 words") {
		t.Fatalf("expected word count in view")
	}
}

func TestInterruptedProgramKeepsDraft(t *testing.T) {
	m, storage, entries := newTestModel(t, "")
	_, _ = m.Update(tea.KeyPressMsg{Code: 'h', Text: "h"})
	_, _ = m.Update(tea.KeyPressMsg{Code: 'i', Text: "i"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	outcome, e, err := m.settle(ctx, errors.New("program was killed"))
	if err != nil {
		t.Fatalf("interrupt should not be an error, got %v", err)
	}
	if outcome != OutcomeClosed || e != nil {
		t.Fatalf("expected closed without entry, got %v %v", outcome, e)
	}
	if got, _ := storage.Get(draft.DraftKey); got != "hi" {
		t.Fatalf("expected draft flushed, got %q", got)
	}
	if len(entries.entries) != 0 {
		t.Fatalf("expected no entry")
	}
}
