package options

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseOn(t *testing.T) {
	now := time.Date(2025, time.January, 10, 9, 0, 0, 0, time.Local)

	got, err := parseOn("2024-12-5", now)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Year() != 2024 || got.Month() != time.December || got.Day() != 5 || got.Hour() != 23 {
		t.Fatalf("unexpected time %v", got)
	}

	got, err = parseOn("12/5", now)
	if err != nil {
		t.Fatalf("parse short: %v", err)
	}
	if got.Year() != 2024 || got.Month() != time.December {
		t.Fatalf("expected last December, got %v", got)
	}

	got, err = parseOn("1/3", now)
	if err != nil {
		t.Fatalf("parse short: %v", err)
	}
	if got.Year() != 2025 || got.Day() != 3 {
		t.Fatalf("expected this year, got %v", got)
	}

	if got, err := parseOn("", now); got != nil || err != nil {
		t.Fatalf("empty should be nil, nil")
	}
	if _, err := parseOn("someday", now); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestWrap(t *testing.T) {
	got := Wrap("one two three four", 9)
	if got != "one two\nthree\nfour" {
		t.Fatalf("unexpected wrap %q", got)
	}
}

func TestHandleErrorJSON(t *testing.T) {
	var buf bytes.Buffer
	oo := &OutputOptions{JSON: true, Out: &buf}
	if err := oo.HandleError(errors.New("boom")); err != nil {
		t.Fatalf("json mode should swallow the error, got %v", err)
	}
	if strings.TrimSpace(buf.String()) != `{"error":"boom"}` {
		t.Fatalf("unexpected output %q", buf.String())
	}

	plain := &OutputOptions{}
	if err := plain.HandleError(errors.New("boom")); err == nil {
		t.Fatalf("plain mode should return the error")
	}
}
