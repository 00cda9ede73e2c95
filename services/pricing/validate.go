// File: services/pricing/validate.go
package pricing

import (
	"fmt"
	"time"

	"villamar/models"
)

// Rejection reason codes. Machine-readable; the bilingual text next to them
// is safe to show to guests as-is.
const (
	ReasonCheckInPast      = "check_in_past"
	ReasonInvalidRange     = "invalid_range"
	ReasonBelowMinimumStay = "below_minimum_stay"
)

// LocalizedText carries guest-facing copy in both site languages.
type LocalizedText struct {
	EN string `json:"en"`
	FR string `json:"fr"`
}

// Rejection is a business-rule failure. It is a normal result value the
// caller branches on, not an error that aborts the request.
type Rejection struct {
	Code    string        `json:"code"`
	Message LocalizedText `json:"message"`
}

// Validate applies the stay rules in order and returns the first failure, or
// nil when the stay is acceptable. Rules, in order: check-in must not be in
// the past (date-only, property-local today), the range must be forward and
// non-empty, and the stay must meet the minimum resolved at the check-in
// date. Only the check-in date's minimum is authoritative; a stricter
// minimum in a period the stay ends in is not separately enforced.
func Validate(checkIn, checkOut, today time.Time, seasons []models.SeasonPeriod, settings models.PricingSettings) *Rejection {
	if Midnight(checkIn).Before(Midnight(today)) {
		return &Rejection{
			Code: ReasonCheckInPast,
			Message: LocalizedText{
				EN: "The arrival date is in the past.",
				FR: "La date d'arrivée est passée.",
			},
		}
	}

	nights, err := NightsBetween(checkIn, checkOut)
	if err != nil {
		return &Rejection{
			Code: ReasonInvalidRange,
			Message: LocalizedText{
				EN: "The departure date must be after the arrival date.",
				FR: "La date de départ doit être après la date d'arrivée.",
			},
		}
	}

	rule := Resolve(checkIn, seasons, settings)
	if nights < rule.MinimumStay {
		return &Rejection{
			Code: ReasonBelowMinimumStay,
			Message: LocalizedText{
				EN: fmt.Sprintf("A minimum stay of %d nights is required for these dates.", rule.MinimumStay),
				FR: fmt.Sprintf("Un séjour minimum de %d nuits est requis pour ces dates.", rule.MinimumStay),
			},
		}
	}

	return nil
}
