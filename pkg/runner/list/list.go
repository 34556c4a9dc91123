package list

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/2yum7/forword/pkg/app"
	"github.com/2yum7/forword/pkg/entry"
	"github.com/2yum7/forword/pkg/printers"
	"github.com/2yum7/forword/pkg/store"
	"github.com/2yum7/forword/pkg/timeutil"
)

type List struct {
	Service *app.Service
	// Since is a window such as "1w" or "3d". Empty lists everything.
	Since  string
	Limit  int
	ShowID bool
	JSON   bool
	// Watch redraws the listing whenever the entries on disk change.
	Watch bool

	Now    func() time.Time
	Out    io.Writer
	Logger *zap.Logger
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list, no service")
	}
	if n.Out == nil {
		n.Out = color.Output
	}
	if n.Now == nil {
		n.Now = time.Now
	}
	if n.Logger == nil {
		n.Logger = zap.NewNop()
	}

	if err := n.render(ctx); err != nil {
		return err
	}
	if !n.Watch {
		return nil
	}

	events, err := n.Service.Persistence.Watch(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Type == store.EventDraftChanged {
				continue
			}
			n.Logger.Debug("entries changed", zap.Stringer("event", ev.Type))
			if err := n.Service.Refresh(ctx); err != nil {
				return err
			}
			if err := n.render(ctx); err != nil {
				return err
			}
		}
	}
}

// Entries returns what Do would print.
func (n *List) Entries(ctx context.Context) ([]*entry.Entry, string, error) {
	title := "Entries"
	var (
		all []*entry.Entry
		err error
	)
	if n.Since != "" {
		window, label, perr := timeutil.ParseWindow(n.Since)
		if perr != nil {
			return nil, "", perr
		}
		title = fmt.Sprintf("Entries - last %s", label)
		all, err = n.Service.Since(ctx, n.now(), window)
	} else {
		all, err = n.Service.Entries(ctx)
	}
	if err != nil {
		return nil, "", err
	}
	if n.Limit > 0 && len(all) > n.Limit {
		all = all[:n.Limit]
	}
	return all, title, nil
}

func (n *List) now() time.Time {
	if n.Now == nil {
		return time.Now()
	}
	return n.Now()
}

func (n *List) render(ctx context.Context) error {
	all, title, err := n.Entries(ctx)
	if err != nil {
		return err
	}
	if n.JSON {
		return json.NewEncoder(n.Out).Encode(all)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.NewLine()
	pp.TitleWithCount(title, len(all))
	pp.NewLine()
	pp.Entries(all...)
	return nil
}
