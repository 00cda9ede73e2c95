// File: database/repository/reservation/transaction_test.go
package reservationRepo

import (
	"testing"
)

func TestNightsOf(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     []string
		wantErr  bool
	}{
		{
			name:    "four night stay excludes the check-out date",
			checkIn: "2026-02-10", checkOut: "2026-02-14",
			want: []string{"2026-02-10", "2026-02-11", "2026-02-12", "2026-02-13"},
		},
		{
			name:    "single night",
			checkIn: "2026-02-10", checkOut: "2026-02-11",
			want: []string{"2026-02-10"},
		},
		{
			name:    "year boundary",
			checkIn: "2025-12-30", checkOut: "2026-01-02",
			want: []string{"2025-12-30", "2025-12-31", "2026-01-01"},
		},
		{
			name:    "empty range",
			checkIn: "2026-02-10", checkOut: "2026-02-10",
			wantErr: true,
		},
		{
			name:    "reversed range",
			checkIn: "2026-02-14", checkOut: "2026-02-10",
			wantErr: true,
		},
		{
			name:    "malformed date",
			checkIn: "02/10/2026", checkOut: "2026-02-14",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := nightsOf(tt.checkIn, tt.checkOut)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("nightsOf(%s, %s) = %v, want error", tt.checkIn, tt.checkOut, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("nightsOf(%s, %s): %v", tt.checkIn, tt.checkOut, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("nightsOf(%s, %s) = %v, want %v", tt.checkIn, tt.checkOut, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("night %d = %s, want %s", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// The unique night index can only arbitrate the commit race if two ranges
// share at least one claimed date exactly when their occupied nights
// intersect. Back-to-back stays must claim disjoint sets.
func TestNightClaimsCollideIffRangesOverlap(t *testing.T) {
	tests := []struct {
		name            string
		aIn, aOut       string
		bIn, bOut       string
		wantSharedClaim bool
	}{
		{"identical ranges", "2026-03-10", "2026-03-15", "2026-03-10", "2026-03-15", true},
		{"partial overlap", "2026-03-10", "2026-03-15", "2026-03-13", "2026-03-18", true},
		{"contained range", "2026-03-10", "2026-03-20", "2026-03-12", "2026-03-14", true},
		{"single shared night", "2026-03-10", "2026-03-15", "2026-03-14", "2026-03-16", true},
		{"back to back on changeover day", "2026-03-10", "2026-03-15", "2026-03-15", "2026-03-20", false},
		{"disjoint", "2026-03-10", "2026-03-12", "2026-03-20", "2026-03-22", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := nightsOf(tt.aIn, tt.aOut)
			if err != nil {
				t.Fatalf("nightsOf(a): %v", err)
			}
			b, err := nightsOf(tt.bIn, tt.bOut)
			if err != nil {
				t.Fatalf("nightsOf(b): %v", err)
			}

			claimed := make(map[string]bool, len(a))
			for _, d := range a {
				claimed[d] = true
			}
			shared := false
			for _, d := range b {
				if claimed[d] {
					shared = true
					break
				}
			}
			if shared != tt.wantSharedClaim {
				t.Errorf("shared claim = %v, want %v", shared, tt.wantSharedClaim)
			}
		})
	}
}
