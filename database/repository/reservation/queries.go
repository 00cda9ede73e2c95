// File: database/repository/reservation/queries.go
package reservationRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"villamar/models"
)

// overlapFilter matches reservations whose occupied nights intersect the
// half-open range [checkIn, checkOut). Dates are zero-padded "2006-01-02"
// strings, so lexicographic comparison is date comparison. A stay ending on
// another's check-in shares only the changeover day and does not match.
func overlapFilter(checkIn, checkOut string) bson.M {
	return bson.M{
		"status":   bson.M{"$in": bson.A{models.ReservationPending, models.ReservationConfirmed}},
		"checkIn":  bson.M{"$lt": checkOut},
		"checkOut": bson.M{"$gt": checkIn},
	}
}

func (r *mongoReservationRepo) HasOverlap(ctx context.Context, checkIn, checkOut string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, overlapFilter(checkIn, checkOut))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListBookedPeriods returns the occupied ranges intersecting [from, to) for
// calendar rendering. Read-only and non-authoritative.
func (r *mongoReservationRepo) ListBookedPeriods(ctx context.Context, from, to string) ([]models.BookedPeriod, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "checkIn", Value: 1}}).
		SetProjection(bson.M{"id": 1, "checkIn": 1, "checkOut": 1, "status": 1})
	cursor, err := r.coll.Find(ctx, overlapFilter(from, to), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var periods []models.BookedPeriod
	if err := cursor.All(ctx, &periods); err != nil {
		return nil, err
	}
	return periods, nil
}

// ListPendingFollowups returns committed reservations still owing a payment
// intent or a confirmation email, for the reconciliation worker.
func (r *mongoReservationRepo) ListPendingFollowups(ctx context.Context) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"status": bson.M{"$in": bson.A{models.ReservationPending, models.ReservationConfirmed}},
		"$or": bson.A{
			bson.M{"paymentPending": true},
			bson.M{"notificationPending": true},
		},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}
