package pricing

import (
	"testing"
	"time"

	"villamar/models"
)

func cents(v int64) models.Cents { return models.Cents(v) }

func centsPtr(v int64) *models.Cents {
	c := models.Cents(v)
	return &c
}

func intPtr(v int) *int { return &v }

func testSettings() models.PricingSettings {
	return models.PricingSettings{
		DefaultHighSeasonPrice:      cents(41000),
		DefaultLowSeasonPrice:       cents(31000),
		DefaultMinimumStay:          3,
		HighSeasonMinimumStay:       7,
		CleaningFee:                 cents(20000),
		TouristTaxPerPersonPerNight: cents(200),
		DepositPercentage:           30,
		FullPaymentLeadTimeDays:     30,
	}
}

func highSeasonWinter() models.SeasonPeriod {
	return models.SeasonPeriod{
		ID:         "winter-high",
		Label:      "Winter holidays",
		StartDate:  "2025-12-20",
		EndDate:    "2026-01-05",
		SeasonType: models.SeasonHigh,
		IsActive:   true,
		CreatedAt:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestResolveFallbackIsLowSeason(t *testing.T) {
	settings := testSettings()
	rule := Resolve(date(t, "2026-03-15"), []models.SeasonPeriod{highSeasonWinter()}, settings)

	if rule.SeasonType != models.SeasonLow {
		t.Errorf("fallback season = %q, want low", rule.SeasonType)
	}
	if rule.NightlyPrice != settings.DefaultLowSeasonPrice {
		t.Errorf("fallback price = %d, want %d", rule.NightlyPrice, settings.DefaultLowSeasonPrice)
	}
	if rule.MinimumStay != settings.DefaultMinimumStay {
		t.Errorf("fallback minimum stay = %d, want %d", rule.MinimumStay, settings.DefaultMinimumStay)
	}
	if rule.PeriodID != "" {
		t.Errorf("fallback must not name a period, got %q", rule.PeriodID)
	}
}

func TestResolveInclusiveBounds(t *testing.T) {
	seasons := []models.SeasonPeriod{highSeasonWinter()}
	settings := testSettings()

	for _, d := range []string{"2025-12-20", "2026-01-05"} {
		rule := Resolve(date(t, d), seasons, settings)
		if rule.PeriodID != "winter-high" {
			t.Errorf("date %s: period = %q, want winter-high (bounds are inclusive)", d, rule.PeriodID)
		}
	}
	for _, d := range []string{"2025-12-19", "2026-01-06"} {
		rule := Resolve(date(t, d), seasons, settings)
		if rule.PeriodID != "" {
			t.Errorf("date %s: period = %q, want fallback", d, rule.PeriodID)
		}
	}
}

func TestResolvePeriodOverrides(t *testing.T) {
	p := highSeasonWinter()
	p.NightlyPrice = centsPtr(45000)
	p.MinimumStay = intPtr(5)
	rule := Resolve(date(t, "2025-12-28"), []models.SeasonPeriod{p}, testSettings())

	if rule.NightlyPrice != cents(45000) {
		t.Errorf("override price = %d, want 45000", rule.NightlyPrice)
	}
	if rule.MinimumStay != 5 {
		t.Errorf("override minimum stay = %d, want 5", rule.MinimumStay)
	}
}

func TestResolveInheritsDefaultsBySeasonType(t *testing.T) {
	rule := Resolve(date(t, "2025-12-28"), []models.SeasonPeriod{highSeasonWinter()}, testSettings())

	if rule.NightlyPrice != cents(41000) {
		t.Errorf("inherited high price = %d, want 41000", rule.NightlyPrice)
	}
	if rule.MinimumStay != 7 {
		t.Errorf("inherited high minimum stay = %d, want 7", rule.MinimumStay)
	}
}

func TestResolveIgnoresInactivePeriods(t *testing.T) {
	p := highSeasonWinter()
	p.IsActive = false
	rule := Resolve(date(t, "2025-12-28"), []models.SeasonPeriod{p}, testSettings())
	if rule.PeriodID != "" {
		t.Errorf("inactive period must not resolve, got %q", rule.PeriodID)
	}
}

func TestResolveTieBreakShortestSpanWins(t *testing.T) {
	wide := highSeasonWinter()
	narrow := models.SeasonPeriod{
		ID:           "new-year-peak",
		StartDate:    "2025-12-30",
		EndDate:      "2026-01-02",
		SeasonType:   models.SeasonHigh,
		IsActive:     true,
		NightlyPrice: centsPtr(52000),
		CreatedAt:    time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), // older than wide
	}

	rule := Resolve(date(t, "2025-12-31"), []models.SeasonPeriod{wide, narrow}, testSettings())
	if rule.PeriodID != "new-year-peak" {
		t.Errorf("winner = %q, want the shorter period regardless of age", rule.PeriodID)
	}
	if rule.NightlyPrice != cents(52000) {
		t.Errorf("price = %d, want 52000", rule.NightlyPrice)
	}
}

func TestResolveTieBreakMostRecentOnEqualSpan(t *testing.T) {
	older := models.SeasonPeriod{
		ID: "a", StartDate: "2026-07-01", EndDate: "2026-07-10",
		SeasonType: models.SeasonHigh, IsActive: true,
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	newer := models.SeasonPeriod{
		ID: "b", StartDate: "2026-07-05", EndDate: "2026-07-14",
		SeasonType: models.SeasonHigh, IsActive: true,
		CreatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}

	rule := Resolve(date(t, "2026-07-07"), []models.SeasonPeriod{older, newer}, testSettings())
	if rule.PeriodID != "b" {
		t.Errorf("winner = %q, want the most recently created on equal span", rule.PeriodID)
	}

	// Determinism does not depend on slice order.
	rule = Resolve(date(t, "2026-07-07"), []models.SeasonPeriod{newer, older}, testSettings())
	if rule.PeriodID != "b" {
		t.Errorf("winner after reorder = %q, want b", rule.PeriodID)
	}
}

func TestResolveIsTotal(t *testing.T) {
	// Every date gets exactly one rule, whatever the configuration.
	seasons := []models.SeasonPeriod{
		highSeasonWinter(),
		{ID: "broken", StartDate: "not-a-date", EndDate: "2026-01-01", SeasonType: models.SeasonHigh, IsActive: true},
	}
	settings := testSettings()
	for d := range StayDates(date(t, "2025-12-15"), date(t, "2026-01-15")) {
		rule := Resolve(d, seasons, settings)
		if rule.NightlyPrice <= 0 || rule.MinimumStay <= 0 {
			t.Errorf("date %s: incomplete rule %+v", FormatDate(d), rule)
		}
	}
}
