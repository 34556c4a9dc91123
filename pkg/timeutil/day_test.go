package timeutil

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	in := time.Date(2025, time.March, 9, 17, 45, 12, 0, time.Local)
	got := StartOfDay(in)
	want := time.Date(2025, time.March, 9, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestPreviousDayCrossesMonth(t *testing.T) {
	in := time.Date(2025, time.March, 1, 8, 0, 0, 0, time.Local)
	got := PreviousDay(in)
	if got.Month() != time.February || got.Day() != 28 {
		t.Fatalf("expected Feb 28, got %v", got)
	}
	if DayKey(got) != "2025-02-28" {
		t.Fatalf("unexpected key %s", DayKey(got))
	}
}
