package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/2yum7/forword/pkg/commands/options"
	"github.com/2yum7/forword/pkg/runner/stats"
)

func addStats(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	oo := &options.OutputOptions{}
	calendar := false

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Entries, this month, day streak and words written",
		Example: `
forword stats
forword stats --calendar
forword stats --on 2025-8-31
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			when, err := on.GetOn()
			if err != nil {
				return oo.HandleError(err)
			}

			e, err := load(false)
			if err != nil {
				return oo.HandleError(err)
			}
			defer e.close()

			s := stats.Stats{
				Service:  e.svc,
				Calendar: calendar,
				JSON:     oo.JSON,
				Out:      cmd.OutOrStdout(),
			}
			if when != nil {
				s.Now = func() time.Time { return *when }
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	cmd.Flags().BoolVarP(&calendar, "calendar", "c", false, "Also show the month with written days marked.")
	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
