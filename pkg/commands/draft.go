package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/2yum7/forword/pkg/commands/options"
	"github.com/2yum7/forword/pkg/runner/draft"
)

func addDraft(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Show the unsaved draft",
		Example: `
forword draft
forword draft discard
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDraft(cmd, oo, false)
		},
	}
	options.AddOutputArg(cmd, oo)

	discard := &cobra.Command{
		Use:   "discard",
		Short: "Throw the unsaved draft away",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDraft(cmd, oo, true)
		},
	}
	options.AddOutputArg(discard, oo)
	cmd.AddCommand(discard)

	topLevel.AddCommand(cmd)
}

func runDraft(cmd *cobra.Command, oo *options.OutputOptions, discard bool) error {
	cmd.SilenceUsage = true
	e, err := load(false)
	if err != nil {
		return oo.HandleError(err)
	}
	defer e.close()

	s := draft.Draft{
		Drafts:  e.persist.Drafts(),
		Discard: discard,
		JSON:    oo.JSON,
		Logger:  e.log,
		Out:     cmd.OutOrStdout(),
	}
	return oo.HandleError(s.Do(context.Background()))
}
