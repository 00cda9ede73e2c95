// File: services/booking/interface.go
package booking

import (
	"context"
	"time"

	reservationRepo "villamar/database/repository/reservation"
	seasonRepo "villamar/database/repository/season"
	settingsRepo "villamar/database/repository/settings"
	"villamar/models"
	"villamar/services/notification"
	"villamar/services/pricing"
)

// Booking attempt outcomes. Rejected and Conflicted are ordinary results the
// caller presents to the guest, never faults.
const (
	OutcomeCommitted  = "committed"
	OutcomeRejected   = "rejected"
	OutcomeConflicted = "conflicted"
)

// BookingOutcome is the terminal state of one booking attempt.
type BookingOutcome struct {
	Status      string                `json:"status"`
	Reservation *models.Reservation   `json:"reservation,omitempty"`
	Payment     *models.PaymentHandle `json:"payment,omitempty"`
	Rejection   *pricing.Rejection    `json:"rejection,omitempty"`
}

// BookingRequest is a submitted booking attempt. When SessionID is set, the
// stay parameters come from the cached quoted session; otherwise they are
// taken from the request directly. The session's quote is never trusted for
// the amount charged.
type BookingRequest struct {
	SessionID string              `json:"sessionId,omitempty"`
	CheckIn   string              `json:"checkIn"`
	CheckOut  string              `json:"checkOut"`
	Guests    int                 `json:"guests"`
	Guest     models.GuestDetails `json:"guest"`
}

// BookingService is the engine's public surface: quoting, validation,
// availability reads, and the one side-effecting operation, AttemptBooking.
// ConfirmReservation and CancelReservation apply the state transitions the
// payment processor reports back.
type BookingService interface {
	QuoteStay(ctx context.Context, checkIn, checkOut string, guests int) (*models.PriceQuote, error)
	OpenSession(ctx context.Context, checkIn, checkOut string, guests int) (*models.BookingSession, error)
	ValidateStay(ctx context.Context, checkIn, checkOut string) (*pricing.Rejection, error)
	IsAvailable(ctx context.Context, checkIn, checkOut string) (bool, error)
	CalendarFeed(ctx context.Context, from, to string) ([]models.BookedPeriod, error)
	AttemptBooking(ctx context.Context, req BookingRequest) (*BookingOutcome, error)
	ConfirmReservation(ctx context.Context, reservationID string) error
	CancelReservation(ctx context.Context, reservationID string) error
}

// FollowupEnqueuer queues retries for downstream collaborators whose failure
// must not roll back a committed reservation.
type FollowupEnqueuer interface {
	EnqueuePaymentRetry(payload models.PaymentRetryPayload) error
	EnqueueConfirmationResend(payload models.ConfirmationPayload) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	SeasonRepo      seasonRepo.SeasonRepository
	SettingsRepo    settingsRepo.SettingsRepository
	ReservationRepo reservationRepo.ReservationRepository
	PaymentHandler  PaymentHandler
	NotificationSvc notification.NotificationService
	Sessions        SessionStore
	Followups       FollowupEnqueuer

	// Cache, when set, memoizes the calendar feed for a short TTL and is
	// flushed whenever the ledger changes. The feed is never authoritative
	// either way.
	Cache CalendarCache

	Currency string
	Location *time.Location

	// Now is the clock used for "today"; overridable in tests. Nil means
	// time.Now.
	Now func() time.Time
}

// today is the current date in the property's local timezone, truncated to a
// calendar date.
func (s *DefaultBookingService) today() time.Time {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	loc := s.Location
	if loc == nil {
		loc = time.UTC
	}
	return pricing.Midnight(now().In(loc))
}
