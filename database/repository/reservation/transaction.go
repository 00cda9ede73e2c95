// File: database/repository/reservation/transaction.go
package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"villamar/models"
)

const dateLayout = "2006-01-02"

// bookedNight is one occupied calendar date in the booked_nights collection.
// The unique index on date is what serializes racing commits: a transaction's
// snapshot count cannot see the other racer's uncommitted insert, but both
// racers must write the same night documents, and the index lets only one
// land.
type bookedNight struct {
	Date          string `bson:"date"`
	ReservationID string `bson:"reservationId"`
}

// nightsOf expands [checkIn, checkOut) into its occupied dates. The check-out
// date is a changeover day and is excluded, so back-to-back stays claim
// disjoint night sets.
func nightsOf(checkIn, checkOut string) ([]string, error) {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return nil, fmt.Errorf("invalid check-in date %q: %w", checkIn, err)
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return nil, fmt.Errorf("invalid check-out date %q: %w", checkOut, err)
	}
	var nights []string
	for d := in; d.Before(out); d = d.AddDate(0, 0, 1) {
		nights = append(nights, d.Format(dateLayout))
	}
	if len(nights) == 0 {
		return nil, fmt.Errorf("empty stay range %s..%s", checkIn, checkOut)
	}
	return nights, nil
}

// Commit inserts a reservation if and only if its range is still free. The
// overlap check, the night claims, and the reservation insert run in one
// Mongo transaction. The count alone cannot arbitrate the race: transactions
// are snapshot-isolated and only writes to the same documents conflict, so
// the authoritative step is inserting one booked_nights document per occupied
// date. Two overlapping attempts claim at least one identical date; the
// unique index rejects the loser, which surfaces as ErrDatesConflict.
func (r *mongoReservationRepo) Commit(ctx context.Context, res models.Reservation) error {
	nights, err := nightsOf(res.CheckIn, res.CheckOut)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) (interface{}, error) {
		// Fast pre-check against already-committed reservations.
		n, err := r.coll.CountDocuments(sc, overlapFilter(res.CheckIn, res.CheckOut))
		if err != nil {
			return nil, fmt.Errorf("overlap pre-check failed: %w", err)
		}
		if n > 0 {
			return nil, ErrDatesConflict
		}

		claims := make([]interface{}, 0, len(nights))
		for _, d := range nights {
			claims = append(claims, bookedNight{Date: d, ReservationID: res.ID})
		}
		if _, err := r.nights.InsertMany(sc, claims); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, ErrDatesConflict
			}
			return nil, fmt.Errorf("night claims failed: %w", err)
		}

		if _, err := r.coll.InsertOne(sc, res); err != nil {
			return nil, fmt.Errorf("insert reservation failed: %w", err)
		}
		return nil, nil
	}

	// WithTransaction retries on transient errors. The racer that loses a
	// simultaneous night claim aborts with a write conflict, retries, and then
	// sees the winner's committed claim as a duplicate key.
	if _, err := sess.WithTransaction(ctx, txnFn); err != nil {
		if err == ErrDatesConflict {
			return ErrDatesConflict
		}
		return fmt.Errorf("reservation transaction failed: %w", err)
	}

	return nil
}
