package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/2yum7/forword/pkg/draft"
	"github.com/2yum7/forword/pkg/printers"
)

// Draft shows the pending draft or discards it.
type Draft struct {
	Drafts  draft.Storage
	Discard bool
	JSON    bool
	Width   int
	Logger  *zap.Logger
	Out     io.Writer
}

func (n *Draft) Do(_ context.Context) error {
	if n.Drafts == nil {
		return errors.New("can not read draft, no storage")
	}
	if n.Out == nil {
		n.Out = color.Output
	}

	session := draft.NewSession(draft.Options{Storage: n.Drafts, Logger: n.Logger})
	text, err := session.Restore()
	if err != nil {
		return err
	}

	if n.Discard {
		if err := session.Discard(); err != nil {
			return err
		}
		if n.JSON {
			return json.NewEncoder(n.Out).Encode(map[string]bool{"discarded": text != ""})
		}
		if text == "" {
			_, _ = fmt.Fprintln(n.Out, "no draft to discard")
			return nil
		}
		_, _ = fmt.Fprintln(n.Out, "draft discarded")
		return nil
	}

	if n.JSON {
		return json.NewEncoder(n.Out).Encode(map[string]any{
			"draft":     text,
			"wordCount": session.WordCount(),
		})
	}
	pp := printers.PrettyPrint{Width: n.Width, Out: n.Out}
	pp.Draft(text)
	return nil
}
