package options

import (
	"github.com/spf13/cobra"
)

// ListOptions
type ListOptions struct {
	Since string
	Limit int
	Watch bool
}

func AddListArgs(cmd *cobra.Command, o *ListOptions) {
	cmd.Flags().StringVar(&o.Since, "since", "",
		`Only entries newer than this, example: --since=1w, --since=3d or --since=2mo.`)
	AddLimitArg(cmd, o)
}

func AddLimitArg(cmd *cobra.Command, o *ListOptions) {
	cmd.Flags().IntVarP(&o.Limit, "limit", "n", 0,
		"Show at most this many entries.")
}

func AddWatchArg(cmd *cobra.Command, o *ListOptions) {
	cmd.Flags().BoolVar(&o.Watch, "watch", false,
		"Keep running and reprint when entries change.")
}
