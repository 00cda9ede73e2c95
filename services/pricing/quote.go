// File: services/pricing/quote.go
package pricing

import (
	"time"

	"villamar/models"
)

// Quote prices an arbitrary stay night by night. A stay straddling several
// season periods is prorated: each night costs exactly what its governing
// period says, never a blended rate. Pure: the result depends only on the
// arguments, so identical inputs under unchanged configuration always
// produce identical quotes.
func Quote(checkIn, checkOut time.Time, guests int, today time.Time, seasons []models.SeasonPeriod, settings models.PricingSettings, currency string) (models.PriceQuote, error) {
	nights, err := NightsBetween(checkIn, checkOut)
	if err != nil {
		return models.PriceQuote{}, err
	}

	var basePrice models.Cents
	for date := range StayDates(checkIn, checkOut) {
		basePrice += Resolve(date, seasons, settings).NightlyPrice
	}

	touristTax := settings.TouristTaxPerPersonPerNight.Times(guests).Times(nights)
	total := basePrice + settings.CleaningFee + touristTax

	leadDays := DaysBetween(today, checkIn)
	requiresFullPayment := leadDays < settings.FullPaymentLeadTimeDays

	deposit := total
	if !requiresFullPayment {
		deposit = depositFor(total, settings)
	}

	return models.PriceQuote{
		CheckIn:             FormatDate(checkIn),
		CheckOut:            FormatDate(checkOut),
		Guests:              guests,
		Nights:              nights,
		BasePrice:           basePrice,
		CleaningFee:         settings.CleaningFee,
		TouristTax:          touristTax,
		Total:               total,
		DepositAmount:       deposit,
		RequiresFullPayment: requiresFullPayment,
		Currency:            currency,
	}, nil
}

// depositFor applies the deposit policy: a fixed amount when configured
// (capped at the total), otherwise a percentage of the total rounded half-up
// once, at the end, so per-night rounding drift cannot compound.
func depositFor(total models.Cents, settings models.PricingSettings) models.Cents {
	if settings.DepositAmount > 0 {
		if settings.DepositAmount > total {
			return total
		}
		return settings.DepositAmount
	}
	return roundHalfUpPercent(total, settings.DepositPercentage)
}

// roundHalfUpPercent computes pct% of an amount in integer minor units,
// rounding half-up.
func roundHalfUpPercent(amount models.Cents, pct int) models.Cents {
	return models.Cents((int64(amount)*int64(pct) + 50) / 100)
}
