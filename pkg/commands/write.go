package commands

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/2yum7/forword/pkg/commands/options"
	"github.com/2yum7/forword/pkg/runner/write"
)

func addWrite(topLevel *cobra.Command) {
	wo := &options.WriteOptions{}
	i := &options.InteractiveOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "write [text...]",
		Short: "Write an entry",
		Long: options.Wrap80("Write an entry. With no text and a terminal, opens the editor: " +
			"you can only add, never delete, unless you pause. The draft is autosaved and comes " +
			"back next time. With text or --stdin, the text is added to any pending draft and saved."),
		Example: `
forword write
forword write "Slept well, long walk before work."
echo "from a script" | forword write --stdin
forword write --keep "not done yet"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			text := strings.Join(args, " ")

			interactive := i.Interactive
			if !interactive && !wo.Stdin && len(args) == 0 {
				if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
					interactive = true
				} else {
					wo.Stdin = true
				}
			}
			if interactive && (wo.Stdin || len(args) > 0) {
				return oo.HandleError(errors.New("--interactive can not be combined with text or --stdin"))
			}

			if wo.Stdin {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return oo.HandleError(err)
				}
				text = string(b)
			}

			e, err := load(interactive)
			if err != nil {
				return oo.HandleError(err)
			}
			defer e.close()

			s := write.Write{
				Entries:     e.svc,
				Drafts:      e.persist.Drafts(),
				Text:        text,
				KeepDraft:   wo.Keep,
				Interactive: interactive,
				Interval:    e.cfg.AutosaveInterval(),
				JSON:        oo.JSON,
				Logger:      e.log,
				Out:         cmd.OutOrStdout(),
			}
			return oo.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddWriteArgs(cmd, wo)
	options.InteractiveArgs(cmd, i)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
