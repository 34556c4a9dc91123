package options

import (
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2020-2-28" or --on="2/28".`)
}

// GetOn parses --on as the end of that day, local time.
func (o *OnOptions) GetOn() (*time.Time, error) {
	return parseOn(o.OnString, time.Now())
}

func parseOn(s string, now time.Time) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(layoutISO, s, time.Local)
	if err != nil {
		t, err = time.ParseInLocation(layoutISOShort, s, time.Local)
		if err != nil {
			return nil, err
		}
		t = t.AddDate(now.Year(), 0, 0)
		// Looking back: 12/5 asked in January means last December.
		if t.After(now) {
			t = t.AddDate(-1, 0, 0)
		}
	}
	t = t.Add(24*time.Hour - time.Nanosecond)
	return &t, nil
}
