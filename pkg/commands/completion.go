package commands

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(forword completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(forword completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// entryCompletions offers entry ids starting with toComplete, with the
// snippet as the description.
func entryCompletions(toComplete string) []string {
	e, err := load(false)
	if err != nil {
		return nil
	}
	defer e.close()

	all, err := e.svc.Entries(context.Background())
	if err != nil {
		return nil
	}
	prefix := strings.ToUpper(toComplete)
	out := make([]string, 0, len(all))
	for _, en := range all {
		if strings.HasPrefix(en.ID, prefix) {
			desc := strings.Join(strings.Fields(en.Snippet()), " ")
			out = append(out, en.ID+"\t"+desc)
		}
	}
	return out
}
