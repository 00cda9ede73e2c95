package models

// BookingSession is the cached "quoted" state of a booking attempt. It lives
// in Redis with a TTL; the quote inside is non-binding and is always
// recomputed at confirmation time against current configuration.
type BookingSession struct {
	SessionID string     `json:"sessionId"`
	CheckIn   string     `json:"checkIn"`
	CheckOut  string     `json:"checkOut"`
	Guests    int        `json:"guests"`
	Quote     PriceQuote `json:"quote"`
}
