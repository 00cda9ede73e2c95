package pricing

import (
	"errors"
	"testing"
	"time"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func TestNightsBetween(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
		wantErr  bool
	}{
		{"one night", "2026-01-10", "2026-01-11", 1, false},
		{"week", "2026-01-10", "2026-01-17", 7, false},
		{"across year end", "2025-12-30", "2026-01-09", 10, false},
		{"same day", "2026-01-10", "2026-01-10", 0, true},
		{"reversed", "2026-01-12", "2026-01-10", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NightsBetween(date(t, tt.checkIn), date(t, tt.checkOut))
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidRange) {
					t.Fatalf("expected ErrInvalidRange, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("NightsBetween = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStayDatesMatchesNightCount(t *testing.T) {
	ranges := []struct{ checkIn, checkOut string }{
		{"2026-01-10", "2026-01-11"},
		{"2026-01-10", "2026-01-17"},
		{"2025-12-20", "2026-01-05"},
		{"2026-02-27", "2026-03-02"}, // across month end
	}
	for _, r := range ranges {
		in, out := date(t, r.checkIn), date(t, r.checkOut)
		nights, err := NightsBetween(in, out)
		if err != nil {
			t.Fatalf("NightsBetween(%s, %s): %v", r.checkIn, r.checkOut, err)
		}
		count := 0
		var last time.Time
		for d := range StayDates(in, out) {
			count++
			last = d
		}
		if count != nights {
			t.Errorf("%s..%s: StayDates yielded %d dates, NightsBetween says %d", r.checkIn, r.checkOut, count, nights)
		}
		if FormatDate(last) == r.checkOut {
			t.Errorf("%s..%s: check-out date must be excluded from the stay", r.checkIn, r.checkOut)
		}
	}
}

func TestStayDatesRestartable(t *testing.T) {
	seq := StayDates(date(t, "2026-01-10"), date(t, "2026-01-14"))
	first, second := 0, 0
	for range seq {
		first++
	}
	for range seq {
		second++
	}
	if first != 4 || second != 4 {
		t.Errorf("sequence not restartable: first pass %d, second pass %d", first, second)
	}
}

func TestStayDatesEmptyOnBadRange(t *testing.T) {
	for range StayDates(date(t, "2026-01-14"), date(t, "2026-01-10")) {
		t.Fatal("reversed range must yield nothing")
	}
}

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{"identical", "2026-01-10", "2026-01-15", "2026-01-10", "2026-01-15", true},
		{"contained", "2026-01-10", "2026-01-20", "2026-01-12", "2026-01-14", true},
		{"partial", "2026-01-10", "2026-01-15", "2026-01-13", "2026-01-18", true},
		{"changeover day shared", "2026-01-10", "2026-01-15", "2026-01-15", "2026-01-20", false},
		{"changeover day shared reversed", "2026-01-15", "2026-01-20", "2026-01-10", "2026-01-15", false},
		{"disjoint", "2026-01-10", "2026-01-12", "2026-01-20", "2026-01-25", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RangesOverlap(date(t, tt.aStart), date(t, tt.aEnd), date(t, tt.bStart), date(t, tt.bEnd))
			if got != tt.want {
				t.Errorf("RangesOverlap = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	if got := DaysBetween(date(t, "2026-01-10"), date(t, "2026-02-09")); got != 30 {
		t.Errorf("DaysBetween = %d, want 30", got)
	}
	if got := DaysBetween(date(t, "2026-01-10"), date(t, "2026-01-05")); got != -5 {
		t.Errorf("DaysBetween = %d, want -5", got)
	}
}
