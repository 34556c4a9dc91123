package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/2yum7/forword/pkg/commands/options"
	"github.com/2yum7/forword/pkg/runner/search"
)

func addSearch(topLevel *cobra.Command) {
	lo := &options.ListOptions{}
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Find entries containing text, ignoring case",
		Example: `
forword search coffee
forword search "long walk" --limit 5
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := load(false)
			if err != nil {
				return oo.HandleError(err)
			}
			defer e.close()

			s := search.Search{
				Service: e.svc,
				Query:   strings.Join(args, " "),
				Limit:   lo.Limit,
				ShowID:  io.ShowID,
				JSON:    oo.JSON,
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddLimitArg(cmd, lo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
