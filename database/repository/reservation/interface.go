// File: database/repository/reservation/interface.go
package reservationRepo

import (
	"context"
	"errors"

	"villamar/database"
	"villamar/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDatesConflict is returned when a commit loses the race for an
// overlapping range. It is a normal outcome, not a system fault; callers
// branch on it and re-offer the calendar.
var ErrDatesConflict = errors.New("requested dates overlap an existing reservation")

// ErrNotPending is returned when a confirm transition targets a reservation
// that is not awaiting one (already cancelled).
var ErrNotPending = errors.New("reservation is not awaiting confirmation")

// ReservationRepository is the availability ledger's backing store. Commit is
// the only authoritative write path: it claims every occupied night in the
// booked_nights collection inside one transaction, so at most one of two
// racing commits for overlapping ranges can succeed.
type ReservationRepository interface {
	Commit(ctx context.Context, res models.Reservation) error
	Confirm(ctx context.Context, reservationID string) error
	Cancel(ctx context.Context, reservationID string) error
	GetByID(ctx context.Context, reservationID string) (*models.Reservation, error)
	HasOverlap(ctx context.Context, checkIn, checkOut string) (bool, error)
	ListBookedPeriods(ctx context.Context, from, to string) ([]models.BookedPeriod, error)
	SetPaymentResult(ctx context.Context, reservationID, paymentIntentID string, pending bool) error
	SetNotificationPending(ctx context.Context, reservationID string, pending bool) error
	ListPendingFollowups(ctx context.Context) ([]models.Reservation, error)
	EnsureIndexes() error
}

type mongoReservationRepo struct {
	coll   *mongo.Collection // reservations
	nights *mongo.Collection // one document per occupied night, unique on date
}

// NewMongoReservationRepo constructs a new MongoDB ReservationRepository.
func NewMongoReservationRepo() ReservationRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoReservationRepo{
		coll:   db.Collection("reservations"),
		nights: db.Collection("booked_nights"),
	}
}
