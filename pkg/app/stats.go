package app

import (
	"context"
	"time"

	"github.com/2yum7/forword/pkg/timeutil"
)

// Stats summarizes writing activity as of a point in time.
type Stats struct {
	Entries    int `json:"entries"`
	ThisMonth  int `json:"thisMonth"`
	DayStreak  int `json:"dayStreak"`
	TotalWords int `json:"totalWords"`
	// LastEntry is zero when there are no entries.
	LastEntry time.Time `json:"lastEntry,omitempty"`
}

// Stats computes totals, the number of entries written in now's month, and
// the run of consecutive days with at least one entry ending today.
func (s *Service) Stats(ctx context.Context, now time.Time) (Stats, error) {
	all, err := s.Entries(ctx)
	if err != nil {
		return Stats{}, err
	}

	st := Stats{Entries: len(all)}
	days := make(map[string]struct{}, len(all))
	for _, e := range all {
		st.TotalWords += e.WordCount
		if e.Date.SameMonth(now) {
			st.ThisMonth++
		}
		days[timeutil.DayKey(e.Date.Time)] = struct{}{}
		if e.Date.After(st.LastEntry) {
			st.LastEntry = e.Date.Time
		}
	}

	day := timeutil.StartOfDay(now)
	for {
		if _, ok := days[timeutil.DayKey(day)]; !ok {
			break
		}
		st.DayStreak++
		day = timeutil.PreviousDay(day)
	}
	return st, nil
}
