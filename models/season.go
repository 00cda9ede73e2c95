package models

import "time"

// Season type for a period or a resolved rule.
const (
	SeasonHigh = "high"
	SeasonLow  = "low"
)

// SeasonPeriod is a named, date-bounded override of the global pricing
// defaults. Dates are inclusive calendar dates in "2006-01-02" form; a period
// covering a single day has StartDate == EndDate.
//
// Periods are operator-maintained and may overlap; the pricing resolver picks
// a deterministic winner. A period referenced by an existing reservation is
// deactivated (IsActive=false), never deleted.
type SeasonPeriod struct {
	ID           string    `bson:"id" json:"id"`
	Label        string    `bson:"label" json:"label"`
	StartDate    string    `bson:"startDate" json:"startDate"`
	EndDate      string    `bson:"endDate" json:"endDate"`
	SeasonType   string    `bson:"seasonType" json:"seasonType"` // "high" or "low"
	IsActive     bool      `bson:"isActive" json:"isActive"`
	NightlyPrice *Cents    `bson:"nightlyPrice,omitempty" json:"nightlyPrice,omitempty"` // nil => inherit default for SeasonType
	MinimumStay  *int      `bson:"minimumStay,omitempty" json:"minimumStay,omitempty"`   // nil => inherit default for SeasonType
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
