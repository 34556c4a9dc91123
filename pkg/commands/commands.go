package commands

import (
	"github.com/spf13/cobra"

	"github.com/2yum7/forword/pkg/commands/options"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "forword",
		Short: options.Wrap80("Journaling that only moves forward: no deleting while you write."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addWrite(topLevel)
	addList(topLevel)
	addSearch(topLevel)
	addShow(topLevel)
	addDelete(topLevel)
	addStats(topLevel)
	addDraft(topLevel)
	addInfo(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addUpgrade(topLevel)
	addCompletions(topLevel)
}
