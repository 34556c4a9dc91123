package show

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/fatih/color"

	"github.com/2yum7/forword/pkg/app"
	"github.com/2yum7/forword/pkg/printers"
)

// Show prints one entry in full.
type Show struct {
	Service *app.Service
	ID      string
	ShowID  bool
	JSON    bool
	Width   int
	Out     io.Writer
}

func (n *Show) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show, no service")
	}
	if n.Out == nil {
		n.Out = color.Output
	}

	e, err := n.Service.Get(ctx, n.ID)
	if err != nil {
		return err
	}
	if n.JSON {
		return json.NewEncoder(n.Out).Encode(e)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Width: n.Width, Out: n.Out}
	pp.NewLine()
	pp.Entry(e)
	return nil
}
