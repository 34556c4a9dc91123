package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/2yum7/forword/pkg/commands/options"
	"github.com/2yum7/forword/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	oo := &options.OutputOptions{}
	width := 0

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one entry in full",
		Long:  options.Wrap80("Show one entry in full. Any unique prefix of the id works; see ids with `forword list --show-id`."),
		Example: `
forword show 01K5Q8Z3
`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return entryCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			e, err := load(false)
			if err != nil {
				return oo.HandleError(err)
			}
			defer e.close()

			s := show.Show{
				Service: e.svc,
				ID:      args[0],
				ShowID:  io.ShowID,
				JSON:    oo.JSON,
				Width:   width,
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 0, "Wrap the entry at this column (default 80).")
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
