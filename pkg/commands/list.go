package commands

import (
	"github.com/spf13/cobra"

	"github.com/2yum7/forword/pkg/commands/options"
	"github.com/2yum7/forword/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	lo := &options.ListOptions{}
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List entries, newest first",
		Example: `
forword list
forword list --limit 3
forword list --since 1w --show-id
forword list --watch
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := load(false)
			if err != nil {
				return oo.HandleError(err)
			}
			defer e.close()

			s := list.List{
				Service: e.svc,
				Since:   lo.Since,
				Limit:   lo.Limit,
				Watch:   lo.Watch,
				ShowID:  io.ShowID,
				JSON:    oo.JSON,
				Logger:  e.log,
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddListArgs(cmd, lo)
	options.AddWatchArg(cmd, lo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
