package stats

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/2yum7/forword/pkg/app"
	"github.com/2yum7/forword/pkg/printers"
)

type Stats struct {
	Service *app.Service
	// Calendar also prints the current month with written days marked.
	Calendar bool
	JSON     bool
	Now      func() time.Time
	Out      io.Writer
}

func (n *Stats) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not compute stats, no service")
	}
	if n.Out == nil {
		n.Out = color.Output
	}
	now := time.Now()
	if n.Now != nil {
		now = n.Now()
	}

	st, err := n.Service.Stats(ctx, now)
	if err != nil {
		return err
	}
	if n.JSON {
		return json.NewEncoder(n.Out).Encode(st)
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	pp.Stats(st.Entries, st.ThisMonth, st.DayStreak, st.TotalWords, st.LastEntry)
	if n.Calendar {
		all, err := n.Service.Entries(ctx)
		if err != nil {
			return err
		}
		pp.Calendar(now, all...)
	}
	return nil
}
