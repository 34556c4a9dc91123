package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/2yum7/forword/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the journal and where it is stored.",
		Example: `
forword info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := load(false)
			if err != nil {
				return err
			}
			defer e.close()

			s := info.Info{
				Config:  e.cfg,
				Service: e.svc,
				Out:     cmd.OutOrStdout(),
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
