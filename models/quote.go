package models

// PriceQuote is the priced breakdown for a proposed stay. It is derived, never
// cached across configuration edits, and recomputed on every request. The copy
// embedded in a committed reservation is a snapshot of what was actually
// charged.
type PriceQuote struct {
	CheckIn  string `bson:"checkIn" json:"checkIn"`
	CheckOut string `bson:"checkOut" json:"checkOut"`
	Guests   int    `bson:"guests" json:"guests"`
	Nights   int    `bson:"nights" json:"nights"`

	BasePrice   Cents `bson:"basePrice" json:"basePrice"` // sum of resolved nightly rates
	CleaningFee Cents `bson:"cleaningFee" json:"cleaningFee"`
	TouristTax  Cents `bson:"touristTax" json:"touristTax"`
	Total       Cents `bson:"total" json:"total"`

	DepositAmount       Cents  `bson:"depositAmount" json:"depositAmount"`
	RequiresFullPayment bool   `bson:"requiresFullPayment" json:"requiresFullPayment"`
	Currency            string `bson:"currency" json:"currency"`
}
