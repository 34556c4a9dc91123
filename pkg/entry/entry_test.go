package entry

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestCountWords(t *testing.T) {
	tests := map[string]struct {
		text string
		want int
	}{
		"mixed whitespace": {text: "hello   world\nfoo", want: 3},
		"empty":            {text: "", want: 0},
		"only whitespace":  {text: " \n\t  ", want: 0},
		"tabs and crlf":    {text: "one\ttwo\r\nthree ", want: 3},
		"unicode":          {text: "こんにちは 世界", want: 2},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := CountWords(tc.text); got != tc.want {
				t.Fatalf("CountWords(%q) = %d, want %d", tc.text, got, tc.want)
			}
		})
	}
}

func TestNewPopulatesFields(t *testing.T) {
	now := time.Date(2025, time.September, 11, 9, 30, 0, 0, time.UTC)
	e := New("hello world", now)
	if e.ID == "" {
		t.Fatalf("expected id")
	}
	if !e.Date.Equal(now) {
		t.Fatalf("expected date %v, got %v", now, e.Date)
	}
	if e.WordCount != 2 {
		t.Fatalf("expected 2 words, got %d", e.WordCount)
	}
}

func TestNewIDSortsByTime(t *testing.T) {
	now := time.Now()
	first := NewID(now)
	second := NewID(now)
	later := NewID(now.Add(time.Second))
	if !(first < second && second < later) {
		t.Fatalf("expected ordered ids, got %s %s %s", first, second, later)
	}
}

func TestSnippet(t *testing.T) {
	short := "a short note"
	if got := Snippet(short, SnippetLength); got != short {
		t.Fatalf("expected unchanged snippet, got %q", got)
	}

	long := strings.Repeat("é", SnippetLength+5)
	got := Snippet(long, SnippetLength)
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("expected ellipsis, got %q", got)
	}
	if n := len([]rune(got)); n != SnippetLength+1 {
		t.Fatalf("expected %d runes, got %d", SnippetLength+1, n)
	}
}

func TestMatches(t *testing.T) {
	e := &Entry{Text: "Walked along the River today"}
	for _, q := range []string{"river", "RIVER", "", "   ", "along the"} {
		if !e.Matches(q) {
			t.Fatalf("expected %q to match", q)
		}
	}
	if e.Matches("ocean") {
		t.Fatalf("expected no match for ocean")
	}
}

func TestTimestampJSONRoundTripKeepsNanos(t *testing.T) {
	now := time.Date(2025, time.October, 1, 8, 0, 0, 123456789, time.UTC)
	b, err := json.Marshal(New("x", now))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got Entry
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.Date.Equal(now) {
		t.Fatalf("expected %v, got %v", now, got.Date.Time)
	}
}

func TestTimestampDay(t *testing.T) {
	ts := Timestamp{Time: time.Date(2025, time.March, 3, 23, 59, 0, 0, time.Local)}
	day := ts.Day()
	if day.Hour() != 0 || day.Minute() != 0 || day.Day() != 3 {
		t.Fatalf("unexpected day %v", day)
	}
	if !ts.SameDay(day) {
		t.Fatalf("expected same day")
	}
}
