package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/2yum7/forword/pkg/app"
	"github.com/2yum7/forword/pkg/printers"
)

type Search struct {
	Service *app.Service
	Query   string
	Limit   int
	ShowID  bool
	JSON    bool
	Out     io.Writer
}

func (n *Search) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not search, no service")
	}
	if n.Out == nil {
		n.Out = color.Output
	}

	found, err := n.Service.Search(ctx, n.Query)
	if err != nil {
		return err
	}
	if n.Limit > 0 && len(found) > n.Limit {
		found = found[:n.Limit]
	}

	if n.JSON {
		return json.NewEncoder(n.Out).Encode(found)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.NewLine()
	pp.TitleWithCount(fmt.Sprintf("Matching %q", n.Query), len(found))
	pp.NewLine()
	pp.Entries(found...)
	return nil
}
