package models

// PaymentRequest is what the engine hands to the payment collaborator after a
// commit: charge the deposit (or the full total inside the lead-time window).
type PaymentRequest struct {
	ReservationID string
	Amount        Cents
	Currency      string
	GuestEmail    string
	Description   string
}

// PaymentHandle is the client-usable result of creating a payment intent.
type PaymentHandle struct {
	PaymentIntentID string `json:"paymentIntentId"`
	ClientSecret    string `json:"clientSecret"`
}
