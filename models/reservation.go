package models

import "time"

// Reservation statuses. Cancelled reservations stay in the collection for
// bookkeeping but are invisible to the availability ledger.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

// GuestDetails is the contact block captured at confirmation time.
type GuestDetails struct {
	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email" json:"email"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Message string `bson:"message,omitempty" json:"message,omitempty"`
}

// Reservation is a committed occupation of the calendar. CheckIn is occupied,
// CheckOut is the changeover day and is not blocked, so back-to-back stays can
// share it.
type Reservation struct {
	ID       string       `bson:"id" json:"id"`
	CheckIn  string       `bson:"checkIn" json:"checkIn"`   // "2006-01-02"
	CheckOut string       `bson:"checkOut" json:"checkOut"` // "2006-01-02", exclusive
	Guests   int          `bson:"guests" json:"guests"`
	Guest    GuestDetails `bson:"guest" json:"guest"`
	Status   string       `bson:"status" json:"status"`

	Quote PriceQuote `bson:"quote" json:"quote"` // snapshot of the amount charged

	PaymentIntentID     string `bson:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`
	PaymentPending      bool   `bson:"paymentPending" json:"paymentPending"`           // payment-intent creation still owed
	NotificationPending bool   `bson:"notificationPending" json:"notificationPending"` // confirmation email still owed

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// BookedPeriod is the calendar-feed view of a reservation: just the occupied
// range, for rendering blocked dates. Never authoritative for booking.
type BookedPeriod struct {
	CheckIn       string `bson:"checkIn" json:"checkIn"`
	CheckOut      string `bson:"checkOut" json:"checkOut"`
	ReservationID string `bson:"id" json:"reservationId"`
	Status        string `bson:"status" json:"status"`
}
