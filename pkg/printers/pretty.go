package printers

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"github.com/2yum7/forword/pkg/entry"
)

// DefaultWidth is the column entry bodies are wrapped at.
const DefaultWidth = 80

const (
	layoutCard   = "Jan 2, 2006 3:04 PM"
	layoutDetail = "Monday, January 2, 2006 at 3:04 PM"
)

type PrettyPrint struct {
	ShowID bool
	// Width wraps entry bodies; zero means DefaultWidth.
	Width int
	// Out defaults to color.Output.
	Out io.Writer
}

var (
	spacing = strings.Repeat(" ", len("01K5Q8Z3C4VJ2N7RYX0T9E1M6B  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) width() int {
	if pp.Width > 0 {
		return pp.Width
	}
	return DefaultWidth
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

// Entries prints one card per entry: date and word count, then the snippet.
func (pp *PrettyPrint) Entries(entries ...*entry.Entry) {
	w := pp.out()
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Fprint(w, spacing)
		}
		_, _ = f.Fprint(w, " no entries yet\n\n")
		return
	}

	d := color.New(color.Bold)
	c := color.New(color.Faint)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, e := range entries {
		date, words, snippet := e.Row()
		indent := ""
		if pp.ShowID {
			_, _ = y.Fprint(w, e.ID)
			_, _ = y.Fprint(w, strings.Repeat(" ", max(1, len(spacing)-len(e.ID))))
			indent = spacing
		}
		_, _ = d.Fprint(w, date)
		_, _ = c.Fprintf(w, "  %s\n", words)

		body := wordwrap.String(snippet, pp.width()-len(indent))
		for _, line := range strings.Split(body, "\n") {
			_, _ = fmt.Fprintf(w, "%s%s\n", indent, line)
		}
		_, _ = fmt.Fprintln(w)
	}
}

// Entry prints a full entry with a date and word count header.
func (pp *PrettyPrint) Entry(e *entry.Entry) {
	w := pp.out()
	h := color.New(color.Bold)
	c := color.New(color.Faint)

	_, _ = h.Fprintln(w, e.Date.Local().Format(layoutDetail))
	_, _ = c.Fprint(w, entry.WordsLabel(e.WordCount))
	if pp.ShowID {
		_, _ = c.Fprintf(w, "  %s", e.ID)
	}
	_, _ = fmt.Fprint(w, "\n\n")
	_, _ = fmt.Fprintln(w, wordwrap.String(e.Text, pp.width()))
	_, _ = fmt.Fprintln(w)
}

// Draft prints the pending draft, if any.
func (pp *PrettyPrint) Draft(text string) {
	w := pp.out()
	if strings.TrimSpace(text) == "" {
		_, _ = color.New(color.Faint, color.Italic).Fprintln(w, "no draft")
		return
	}
	_, _ = color.New(color.Faint).Fprintf(w, "draft, %s\n\n", entry.WordsLabel(entry.CountWords(text)))
	_, _ = fmt.Fprintln(w, wordwrap.String(text, pp.width()))
}

// Stats renders writing totals as a two column table.
func (pp *PrettyPrint) Stats(entries, thisMonth, streak, words int, last time.Time) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Entries"), entries)
	tbl.AddRow(bold.Sprint("This month"), thisMonth)
	tbl.AddRow(bold.Sprint("Day streak"), streak)
	tbl.AddRow(bold.Sprint("Words written"), words)
	if !last.IsZero() {
		tbl.AddRow(bold.Sprint("Last entry"), last.Local().Format(layoutCard))
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = fmt.Fprintln(pp.out())
}
