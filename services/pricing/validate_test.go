package pricing

import (
	"testing"

	"villamar/models"
)

func TestValidateRuleOrder(t *testing.T) {
	seasons := []models.SeasonPeriod{highSeasonWinter()}
	settings := testSettings()
	today := date(t, "2025-11-01")

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		wantCode string // empty = accepted
	}{
		{"past check-in", "2025-10-20", "2025-10-25", ReasonCheckInPast},
		// A past check-in with a reversed range still reports the past date first.
		{"past check-in beats reversed range", "2025-10-25", "2025-10-20", ReasonCheckInPast},
		{"reversed range", "2026-02-15", "2026-02-10", ReasonInvalidRange},
		{"zero nights", "2026-02-10", "2026-02-10", ReasonInvalidRange},
		{"six nights in high season", "2025-12-28", "2026-01-03", ReasonBelowMinimumStay},
		{"seven nights in high season", "2025-12-28", "2026-01-04", ""},
		{"three nights in low season", "2026-02-10", "2026-02-13", ""},
		{"two nights in low season", "2026-02-10", "2026-02-12", ReasonBelowMinimumStay},
		{"check-in today", "2025-11-01", "2025-11-05", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rej := Validate(date(t, tt.checkIn), date(t, tt.checkOut), today, seasons, settings)
			if tt.wantCode == "" {
				if rej != nil {
					t.Fatalf("expected acceptance, got %+v", rej)
				}
				return
			}
			if rej == nil {
				t.Fatalf("expected rejection %s, stay accepted", tt.wantCode)
			}
			if rej.Code != tt.wantCode {
				t.Errorf("code = %s, want %s", rej.Code, tt.wantCode)
			}
			if rej.Message.EN == "" || rej.Message.FR == "" {
				t.Errorf("rejection must carry both languages: %+v", rej.Message)
			}
		})
	}
}

func TestValidateMinimumStayUsesCheckInDateOnly(t *testing.T) {
	// The stay starts in low season (min 3) and ends inside the high period
	// (min 7). Only the check-in date's rule is authoritative.
	seasons := []models.SeasonPeriod{highSeasonWinter()}
	settings := testSettings()

	rej := Validate(date(t, "2025-12-17"), date(t, "2025-12-22"), date(t, "2025-11-01"), seasons, settings)
	if rej != nil {
		t.Errorf("5-night stay starting in low season must pass, got %+v", rej)
	}
}
