// File: services/pricing/season.go
package pricing

import (
	"time"

	"villamar/models"
)

// EffectiveRule is the resolved pricing/stay rule governing a single date.
type EffectiveRule struct {
	SeasonType   string
	NightlyPrice models.Cents
	MinimumStay  int
	PeriodID     string // empty when the global defaults apply
}

// Resolve returns the one rule governing the given date. Active periods
// containing the date are reduced to a single winner via preferPeriod; when
// nothing matches, the global low-season defaults apply. Resolution is total:
// it always returns exactly one rule, for any date and any configuration.
func Resolve(date time.Time, seasons []models.SeasonPeriod, settings models.PricingSettings) EffectiveRule {
	d := Midnight(date)

	var winner *models.SeasonPeriod
	for i := range seasons {
		p := &seasons[i]
		if !p.IsActive || !periodContains(*p, d) {
			continue
		}
		if winner == nil {
			winner = p
			continue
		}
		w := preferPeriod(*winner, *p)
		winner = &w
	}

	if winner == nil {
		// Absence of configuration means low season, never high.
		return EffectiveRule{
			SeasonType:   models.SeasonLow,
			NightlyPrice: settings.DefaultLowSeasonPrice,
			MinimumStay:  settings.DefaultMinimumStay,
		}
	}

	rule := EffectiveRule{
		SeasonType:   winner.SeasonType,
		NightlyPrice: settings.NightlyPriceFor(winner.SeasonType),
		MinimumStay:  settings.MinimumStayFor(winner.SeasonType),
		PeriodID:     winner.ID,
	}
	if winner.NightlyPrice != nil {
		rule.NightlyPrice = *winner.NightlyPrice
	}
	if winner.MinimumStay != nil {
		rule.MinimumStay = *winner.MinimumStay
	}
	return rule
}

// preferPeriod is the tie-break policy for overlapping periods: the shorter
// span wins, then the more recently created. Kept as a single function so the
// policy can change without touching resolution call sites.
func preferPeriod(a, b models.SeasonPeriod) models.SeasonPeriod {
	spanA, spanB := periodSpan(a), periodSpan(b)
	if spanB < spanA {
		return b
	}
	if spanA < spanB {
		return a
	}
	if b.CreatedAt.After(a.CreatedAt) {
		return b
	}
	return a
}

// periodContains reports whether the period's inclusive [StartDate, EndDate]
// bounds cover the date. Periods with malformed stored dates never match.
func periodContains(p models.SeasonPeriod, date time.Time) bool {
	start, err := ParseDate(p.StartDate)
	if err != nil {
		return false
	}
	end, err := ParseDate(p.EndDate)
	if err != nil {
		return false
	}
	return !date.Before(start) && !date.After(end)
}

// periodSpan is the inclusive length of the period in days; malformed
// periods sort last.
func periodSpan(p models.SeasonPeriod) int {
	start, err := ParseDate(p.StartDate)
	if err != nil {
		return 1 << 30
	}
	end, err := ParseDate(p.EndDate)
	if err != nil {
		return 1 << 30
	}
	return DaysBetween(start, end) + 1
}
