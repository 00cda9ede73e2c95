package models

// ConfirmationPayload carries everything the notification collaborator needs
// to send a booking confirmation. It is also the asynq task payload for
// retries, so it must round-trip through JSON.
type ConfirmationPayload struct {
	ReservationID string       `json:"reservationId"`
	Guest         GuestDetails `json:"guest"`
	Quote         PriceQuote   `json:"quote"`
}

// PaymentRetryPayload re-drives a failed payment-intent creation.
type PaymentRetryPayload struct {
	ReservationID string `json:"reservationId"`
}
