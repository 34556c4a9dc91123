package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/2yum7/forword/pkg/entry"
)

func init() {
	color.NoColor = true
}

func TestEntriesPrintsSnippet(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}

	long := strings.Repeat("a", entry.SnippetLength+20)
	pp.Entries(entry.New("hello world", time.Now()), entry.New(long, time.Now()))

	got := buf.String()
	if !strings.Contains(got, "hello world") || !strings.Contains(got, "2 words") {
		t.Fatalf("missing first card: %q", got)
	}
	if !strings.Contains(got, "…") {
		t.Fatalf("expected truncated snippet: %q", got)
	}
	if strings.Contains(got, long) {
		t.Fatalf("long text should not be printed in full")
	}
}

func TestEntriesEmpty(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Entries()
	if !strings.Contains(buf.String(), "no entries yet") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestEntryWraps(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf, Width: 20}
	e := entry.New("the quick brown fox jumps over the lazy dog", time.Date(2025, 9, 1, 9, 30, 0, 0, time.Local))
	pp.Entry(e)

	got := buf.String()
	if !strings.Contains(got, "Monday, September 1, 2025 at 9:30 AM") {
		t.Fatalf("missing header: %q", got)
	}
	if !strings.Contains(got, "9 words") {
		t.Fatalf("missing word count: %q", got)
	}
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 20 && !strings.Contains(line, "September") {
			t.Fatalf("line not wrapped: %q", line)
		}
	}
}

func TestCalendarMarksDays(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	on := time.Date(2025, time.September, 10, 12, 0, 0, 0, time.Local)
	pp.Calendar(on, entry.New("x", on))

	got := buf.String()
	if !strings.Contains(got, "September") || !strings.Contains(got, "30") {
		t.Fatalf("unexpected calendar %q", got)
	}
}

func TestDaysIn(t *testing.T) {
	if got := DaysIn(time.Date(2024, time.February, 10, 0, 0, 0, 0, time.Local)); got != 29 {
		t.Fatalf("expected 29 days, got %d", got)
	}
	if got := StartDay(time.Date(2025, time.September, 10, 0, 0, 0, 0, time.Local)); got != time.Monday {
		t.Fatalf("expected Monday, got %v", got)
	}
}
