// Package write is the full screen writing session. Every keystroke is routed
// through the draft session, so text can only grow unless writing is paused.
package write

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/v2/textarea"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/2yum7/forword/pkg/draft"
	"github.com/2yum7/forword/pkg/entry"
	"github.com/2yum7/forword/pkg/tui/theme"
)

const (
	hintText = "no going back: keep moving forward (ctrl+p pauses)"
	helpText = "ctrl+s save • ctrl+p pause • ctrl+x discard • esc close"

	layoutHeader = "Monday, January 2"
)

// Outcome is how a writing session ended.
type Outcome int

const (
	// OutcomeClosed left the draft in place for the next session.
	OutcomeClosed Outcome = iota
	OutcomeSaved
	OutcomeDiscarded
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSaved:
		return "saved"
	case OutcomeDiscarded:
		return "discarded"
	default:
		return "closed"
	}
}

type statusTickMsg time.Time

// Model is the Bubble Tea model for one writing session.
type Model struct {
	ctx       context.Context
	session   *draft.Session
	scheduler *draft.Scheduler
	log       *zap.Logger
	theme     theme.Theme
	now       func() time.Time

	input  textarea.Model
	width  int
	height int

	words       atomic.Int64
	unsubscribe func()

	hint           string
	err            error
	confirmDiscard bool

	outcome Outcome
	saved   *entry.Entry
	done    bool
}

// New builds a model over a restored session. The scheduler is expected to be
// running; the model stops it when the session ends.
func New(ctx context.Context, session *draft.Session, scheduler *draft.Scheduler, log *zap.Logger) *Model {
	if log == nil {
		log = zap.NewNop()
	}
	ta := textarea.New()
	ta.Placeholder = "What's on your mind?"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetValue(session.Text())
	ta.Focus()

	m := &Model{
		ctx:       ctx,
		session:   session,
		scheduler: scheduler,
		log:       log,
		theme:     theme.Default(),
		now:       time.Now,
		input:     ta,
	}
	m.words.Store(int64(session.WordCount()))
	m.unsubscribe = session.Subscribe(draft.ObserverFunc(func(text string) {
		m.words.Store(int64(entry.CountWords(text)))
	}))
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return statusTick()
}

func statusTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return statusTickMsg(t)
	})
}

// Update processes Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	case statusTickMsg:
		if m.done {
			return m, nil
		}
		return m, statusTick()
	case tea.KeyPressMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
		m.confirmDiscard = false
	}

	before := m.input.Value()
	cursor := cursorOffset(&m.input)
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		if !m.propose(after) {
			m.moveCursor(cursor)
		}
	}
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+s":
		return m.save(), true
	case "ctrl+p":
		paused := m.session.TogglePause()
		m.log.Debug("pause toggled", zap.Bool("paused", paused))
		return nil, true
	case "ctrl+x":
		if !m.confirmDiscard {
			m.confirmDiscard = true
			return nil, true
		}
		return m.discard(), true
	case "esc", "ctrl+c":
		return m.close(), true
	}
	return nil, false
}

// propose hands the edited buffer to the session and reverts the editor when
// the edit is rejected. After a revert the cursor sits at the end.
func (m *Model) propose(text string) bool {
	res := m.session.ProposeEdit(text)
	if res.Accepted {
		return true
	}
	m.input.SetValue(res.Text)
	if res.ShowHint {
		m.hint = hintText
	}
	return false
}

// cursorOffset is the cursor position in runes from the start of the buffer,
// each line break counting as one.
func cursorOffset(ta *textarea.Model) int {
	lines := strings.Split(ta.Value(), "\n")
	off := 0
	for i := 0; i < ta.Line() && i < len(lines); i++ {
		off += utf8.RuneCountInString(lines[i]) + 1
	}
	li := ta.LineInfo()
	return off + li.StartColumn + li.ColumnOffset
}

// moveCursor walks the cursor back from the end of the buffer to offset.
func (m *Model) moveCursor(offset int) {
	left := tea.KeyPressMsg{Code: tea.KeyLeft}
	for n := utf8.RuneCountInString(m.input.Value()); n > offset; n-- {
		m.input, _ = m.input.Update(left)
	}
}

func (m *Model) save() tea.Cmd {
	m.scheduler.Stop()
	e, err := m.session.Finalize(m.ctx)
	if err != nil {
		m.log.Error("save failed", zap.Error(err))
		m.err = err
		m.scheduler.Start()
		return nil
	}
	m.saved = e
	return m.finish(OutcomeSaved)
}

func (m *Model) discard() tea.Cmd {
	m.scheduler.Stop()
	if err := m.session.Discard(); err != nil {
		m.err = err
	}
	return m.finish(OutcomeDiscarded)
}

func (m *Model) close() tea.Cmd {
	m.scheduler.Hide()
	return m.finish(OutcomeClosed)
}

func (m *Model) finish(o Outcome) tea.Cmd {
	m.outcome = o
	m.done = true
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
	return tea.Quit
}

// SetSize resizes the editor to fill the window.
func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
	m.input.SetWidth(max(20, width-4))
	m.input.SetHeight(max(3, height-6))
}

// View renders the header, the framed editor and the status line.
func (m *Model) View() string {
	t := m.theme

	header := t.Header.Title.Render("forword") + "  " + t.Header.Date.Render(m.now().Format(layoutHeader))

	frame := t.Panel.Frame
	if m.session.Paused() {
		frame = t.Panel.PausedFrame
	}
	body := frame.Render(m.input.View())

	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.statusLine(), t.Footer.Help.Render(helpText))
}

func (m *Model) statusLine() string {
	t := m.theme
	parts := []string{t.Footer.Status.Render(entry.WordsLabel(int(m.words.Load())))}
	if m.session.Paused() {
		parts = append(parts, t.Footer.Paused.Render("paused"))
	}
	switch {
	case m.err != nil:
		parts = append(parts, t.Footer.Error.Render(m.err.Error()))
	case m.scheduler.PersistErr() != nil:
		parts = append(parts, t.Footer.Error.Render("autosave failing, retrying"))
	case m.confirmDiscard:
		parts = append(parts, t.Footer.Hint.Render("press ctrl+x again to discard"))
	case m.hint != "":
		parts = append(parts, t.Footer.Hint.Render(m.hint))
	}
	return strings.Join(parts, "  ")
}

// Outcome reports how the session ended and the saved entry, if any.
func (m *Model) Outcome() (Outcome, *entry.Entry) {
	return m.outcome, m.saved
}

// Options configure Run.
type Options struct {
	Drafts   draft.Storage
	Entries  draft.EntryInserter
	Interval time.Duration
	Logger   *zap.Logger
}

// Run restores the draft, starts autosave and blocks until the session ends.
func Run(ctx context.Context, opts Options) (Outcome, *entry.Entry, error) {
	if opts.Entries == nil {
		return OutcomeClosed, nil, errors.New("write: no entry collection")
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	session := draft.NewSession(draft.Options{
		Storage: opts.Drafts,
		Entries: opts.Entries,
		Logger:  log,
	})
	if _, err := session.Restore(); err != nil {
		return OutcomeClosed, nil, fmt.Errorf("write: %w", err)
	}

	scheduler := draft.NewScheduler(session, session.Storage(), draft.SchedulerOptions{
		Interval: opts.Interval,
		Logger:   log,
	})
	scheduler.Show()

	m := New(ctx, session, scheduler, log)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return m.settle(ctx, err)
}

// settle ends the session once the program has exited. A program stopped by
// ctx, or one that exits without a save or discard, keeps the draft.
func (m *Model) settle(ctx context.Context, runErr error) (Outcome, *entry.Entry, error) {
	if !m.done {
		m.close()
	}
	if runErr != nil {
		if ctx.Err() != nil {
			return OutcomeClosed, nil, nil
		}
		return OutcomeClosed, nil, fmt.Errorf("write: %w", runErr)
	}
	o, e := m.Outcome()
	return o, e, m.err
}
