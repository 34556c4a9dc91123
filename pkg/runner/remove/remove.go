package remove

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/2yum7/forword/pkg/app"
)

// Remove deletes an entry. This is the only way an entry goes away.
type Remove struct {
	Service *app.Service
	ID      string
	JSON    bool
	Out     io.Writer
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete, no service")
	}
	if n.Out == nil {
		n.Out = color.Output
	}

	e, err := n.Service.Delete(ctx, n.ID)
	if err != nil {
		return err
	}
	if n.JSON {
		return json.NewEncoder(n.Out).Encode(map[string]string{"deleted": e.ID})
	}
	_, _ = fmt.Fprintf(n.Out, "deleted %s (%s)\n", e.ID, e.Date.Local().Format("Jan 2, 2006"))
	return nil
}
