package models

// PricingSettings is the single live default record. It is loaded once at the
// orchestrator boundary and passed whole into every pricing computation, so a
// quote never mixes two settings versions mid-calculation.
type PricingSettings struct {
	DefaultHighSeasonPrice Cents `bson:"defaultHighSeasonPrice" json:"defaultHighSeasonPrice"` // nightly
	DefaultLowSeasonPrice  Cents `bson:"defaultLowSeasonPrice" json:"defaultLowSeasonPrice"`   // nightly
	DefaultMinimumStay     int   `bson:"defaultMinimumStay" json:"defaultMinimumStay"`         // nights
	HighSeasonMinimumStay  int   `bson:"highSeasonMinimumStay" json:"highSeasonMinimumStay"`   // nights

	CleaningFee                 Cents `bson:"cleaningFee" json:"cleaningFee"` // flat per stay
	TouristTaxPerPersonPerNight Cents `bson:"touristTaxPerPersonPerNight" json:"touristTaxPerPersonPerNight"`

	// Deposit policy: a fixed amount wins when set (> 0), otherwise the
	// percentage of the total is charged up front.
	DepositAmount     Cents `bson:"depositAmount,omitempty" json:"depositAmount,omitempty"`
	DepositPercentage int   `bson:"depositPercentage" json:"depositPercentage"`

	// Stays starting closer than this many days require full payment.
	FullPaymentLeadTimeDays int `bson:"fullPaymentLeadTimeDays" json:"fullPaymentLeadTimeDays"`
}

// MinimumStayFor returns the default minimum stay for a season type.
func (s PricingSettings) MinimumStayFor(seasonType string) int {
	if seasonType == SeasonHigh {
		return s.HighSeasonMinimumStay
	}
	return s.DefaultMinimumStay
}

// NightlyPriceFor returns the default nightly price for a season type.
func (s PricingSettings) NightlyPriceFor(seasonType string) Cents {
	if seasonType == SeasonHigh {
		return s.DefaultHighSeasonPrice
	}
	return s.DefaultLowSeasonPrice
}
