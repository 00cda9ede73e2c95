// File: services/pricing/calendar.go
package pricing

import (
	"errors"
	"iter"
	"time"
)

// DateLayout is the canonical date-only format used on the wire and in Mongo.
const DateLayout = "2006-01-02"

// ErrInvalidRange is returned for reversed or empty date ranges. Always a
// caller error, never retried.
var ErrInvalidRange = errors.New("check-out must be after check-in")

// ParseDate parses a "2006-01-02" date. The result is normalized to midnight
// UTC; the engine only ever compares whole days.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate renders a date back to its canonical string form.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Midnight truncates an instant to its calendar date in the instant's
// location, re-anchored to UTC so date arithmetic is DST-proof.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NightsBetween returns the number of elapsed nights between check-in and
// check-out. Fails with ErrInvalidRange when checkOut <= checkIn.
func NightsBetween(checkIn, checkOut time.Time) (int, error) {
	in, out := Midnight(checkIn), Midnight(checkOut)
	if !out.After(in) {
		return 0, ErrInvalidRange
	}
	return int(out.Sub(in).Hours() / 24), nil
}

// DaysBetween counts whole days from one date to another; negative when `to`
// is earlier. Used for lead-time computation against today.
func DaysBetween(from, to time.Time) int {
	return int(Midnight(to).Sub(Midnight(from)).Hours() / 24)
}

// StayDates yields one date per occupied night of the stay. The check-out
// date itself is excluded: it is a changeover day, not an occupied night.
// The sequence is lazy, finite, and restartable; an empty or reversed range
// yields nothing.
func StayDates(checkIn, checkOut time.Time) iter.Seq[time.Time] {
	in, out := Midnight(checkIn), Midnight(checkOut)
	return func(yield func(time.Time) bool) {
		for d := in; d.Before(out); d = d.AddDate(0, 0, 1) {
			if !yield(d) {
				return
			}
		}
	}
}

// RangesOverlap reports whether two stays' occupied nights intersect, using
// half-open [start, end) semantics: one stay's check-out equalling another's
// check-in is not a conflict.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return Midnight(aStart).Before(Midnight(bEnd)) && Midnight(bStart).Before(Midnight(aEnd))
}
