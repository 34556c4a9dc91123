package write

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/2yum7/forword/pkg/draft"
	"github.com/2yum7/forword/pkg/entry"
	tuiwrite "github.com/2yum7/forword/pkg/tui/write"
)

// Write adds to the draft and, unless KeepDraft is set, saves it as an
// entry. Without Text it opens the interactive editor.
type Write struct {
	Entries draft.EntryInserter
	Drafts  draft.Storage
	Text    string
	// KeepDraft appends Text to the draft without saving an entry.
	KeepDraft   bool
	Interactive bool
	// Interval is the autosave period of the interactive editor.
	Interval time.Duration
	JSON     bool

	Clock  draft.Clock
	Logger *zap.Logger
	Out    io.Writer
}

func (n *Write) Do(ctx context.Context) error {
	if n.Entries == nil {
		return errors.New("can not write, no entry collection")
	}
	if n.Out == nil {
		n.Out = color.Output
	}
	if n.Logger == nil {
		n.Logger = zap.NewNop()
	}

	if n.Interactive {
		return n.interactive(ctx)
	}

	session := draft.NewSession(draft.Options{
		Storage: n.Drafts,
		Entries: n.Entries,
		Clock:   n.Clock,
		Logger:  n.Logger,
	})
	prior, err := session.Restore()
	if err != nil {
		return fmt.Errorf("write: %w", err)
	}

	if res := session.ProposeEdit(Append(prior, n.Text)); !res.Accepted {
		return errors.New("write: draft rejected appended text")
	}

	if n.KeepDraft {
		scheduler := draft.NewScheduler(session, session.Storage(), draft.SchedulerOptions{
			Clock:  n.Clock,
			Logger: n.Logger,
		})
		scheduler.Persist()
		if err := scheduler.PersistErr(); err != nil {
			return fmt.Errorf("write: keep draft: %w", err)
		}
		return n.printDraft(session.Text())
	}

	e, err := session.Finalize(ctx)
	if err != nil {
		return err
	}
	return n.printSaved(e)
}

func (n *Write) interactive(ctx context.Context) error {
	outcome, e, err := tuiwrite.Run(ctx, tuiwrite.Options{
		Drafts:   n.Drafts,
		Entries:  n.Entries,
		Interval: n.Interval,
		Logger:   n.Logger,
	})
	if err != nil {
		return err
	}
	switch outcome {
	case tuiwrite.OutcomeSaved:
		return n.printSaved(e)
	case tuiwrite.OutcomeDiscarded:
		_, _ = fmt.Fprintln(n.Out, "draft discarded")
	default:
		_, _ = color.New(color.Faint).Fprintln(n.Out, "draft kept for next time")
	}
	return nil
}

func (n *Write) printSaved(e *entry.Entry) error {
	if n.JSON {
		return json.NewEncoder(n.Out).Encode(e)
	}
	if e == nil {
		_, _ = color.New(color.Faint, color.Italic).Fprintln(n.Out, "nothing to save")
		return nil
	}
	_, _ = fmt.Fprintf(n.Out, "saved %s, %s\n", e.ID, entry.WordsLabel(e.WordCount))
	return nil
}

func (n *Write) printDraft(text string) error {
	if n.JSON {
		return json.NewEncoder(n.Out).Encode(map[string]any{
			"draft":     text,
			"wordCount": entry.CountWords(text),
		})
	}
	_, _ = fmt.Fprintf(n.Out, "draft kept, %s\n", entry.WordsLabel(entry.CountWords(text)))
	return nil
}

// Append joins new text onto a prior draft on its own line. The result is
// never shorter than prior.
func Append(prior, text string) string {
	switch {
	case strings.TrimSpace(prior) == "":
		return prior + text
	case text == "":
		return prior
	case strings.HasSuffix(prior, "\n"):
		return prior + text
	default:
		return prior + "\n" + text
	}
}
