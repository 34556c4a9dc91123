package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/2yum7/forword/pkg/entry"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Calendar prints the month containing on, days with entries in bold.
func (pp *PrettyPrint) Calendar(on time.Time, entries ...*entry.Entry) {
	days := DaysIn(on)

	count := make([]int, days)

	for _, e := range entries {
		if e.Date.SameMonth(on) {
			count[e.Date.Local().Day()-1]++
		}
	}

	pp.PrintMonthCount(on, count)
}

func (pp *PrettyPrint) PrintMonthCount(then time.Time, count []int) {
	w := pp.out()
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(w, "%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	days := DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		_, _ = fmt.Fprint(w, "   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for i := 0; i < days; i++ {
		if i < len(count) && count[i] > 0 {
			_, _ = l2.Fprintf(w, "%2d ", i+1)
		} else {
			_, _ = l1.Fprintf(w, "%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(w, "\n")
		}
	}
	_, _ = fmt.Fprint(w, "\n\n")
}

func DaysIn(then time.Time) int {
	l := then.Local()
	return time.Date(l.Year(), l.Month()+1, 0, 0, 0, 0, 0, time.Local).Day()
}

func StartDay(then time.Time) time.Weekday {
	l := then.Local()
	return time.Date(l.Year(), l.Month(), 1, 1, 0, 0, 0, time.Local).Weekday()
}
