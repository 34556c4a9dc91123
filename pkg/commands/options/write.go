package options

import (
	"github.com/spf13/cobra"
)

// WriteOptions
type WriteOptions struct {
	Stdin bool
	Keep  bool
}

func AddWriteArgs(cmd *cobra.Command, o *WriteOptions) {
	cmd.Flags().BoolVar(&o.Stdin, "stdin", false,
		"Read the entry text from stdin.")
	cmd.Flags().BoolVarP(&o.Keep, "keep", "k", false,
		"Add the text to the draft without saving an entry.")
}
