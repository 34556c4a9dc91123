package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/2yum7/forword/pkg/app"
	"github.com/2yum7/forword/pkg/draft"
	"github.com/2yum7/forword/pkg/entry"
	"github.com/2yum7/forword/pkg/store"
)

type Info struct {
	Config  store.Config
	Service *app.Service
	Out     io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	if n.Out == nil {
		n.Out = color.Output
	}
	w := n.Out

	if override := os.Getenv("FORWORD_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(w, "FORWORD_CONFIG_PATH found on env, using ", override)
	} else {
		_, _ = fmt.Fprintln(w, "FORWORD_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	if f := n.Config.ConfigFile(); f != "" {
		_, _ = fmt.Fprintln(w, "Config file: ", f)
	} else {
		_, _ = fmt.Fprintln(w, "Config file:  none, using defaults")
	}
	_, _ = fmt.Fprintln(w, "Config.path: ", n.Config.BasePath())
	_, _ = fmt.Fprintln(w, "Config.autosave_interval: ", n.Config.AutosaveInterval())

	if n.Service == nil || n.Service.Persistence == nil {
		return errors.New("failed to create persistence object")
	}

	count, err := n.Service.Count(ctx)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "Entries: %d\n", count)

	text, err := n.Service.Persistence.Drafts().Get(draft.DraftKey)
	switch {
	case errors.Is(err, draft.ErrNotFound) || (err == nil && text == ""):
		_, _ = fmt.Fprintln(w, "Draft:   none")
	case err != nil:
		_, _ = fmt.Fprintln(w, "Draft:   unreadable, ", err)
	default:
		_, _ = fmt.Fprintf(w, "Draft:   %s\n", entry.WordsLabel(entry.CountWords(text)))
	}
	return nil
}
