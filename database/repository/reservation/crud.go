// File: database/repository/reservation/crud.go
package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"villamar/models"
)

func (r *mongoReservationRepo) GetByID(ctx context.Context, reservationID string) (*models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var res models.Reservation
	if err := r.coll.FindOne(ctx, bson.M{"id": reservationID}).Decode(&res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Confirm records the payment processor's success transition. Cancelled
// reservations cannot come back; re-confirming a confirmed one is a no-op.
func (r *mongoReservationRepo) Confirm(ctx context.Context, reservationID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":    models.ReservationConfirmed,
		"updatedAt": time.Now(),
	}}
	filter := bson.M{"id": reservationID, "status": models.ReservationPending}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount > 0 {
		return nil
	}

	existing, err := r.GetByID(ctx, reservationID)
	if err != nil {
		return err
	}
	if existing.Status == models.ReservationConfirmed {
		return nil
	}
	return ErrNotPending
}

// Cancel releases the reservation's range: the status flip hides it from the
// overlap queries and the night claims are deleted in the same transaction,
// so the dates become claimable again atomically.
func (r *mongoReservationRepo) Cancel(ctx context.Context, reservationID string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) (interface{}, error) {
		update := bson.M{"$set": bson.M{
			"status":    models.ReservationCancelled,
			"updatedAt": time.Now(),
		}}
		res, err := r.coll.UpdateOne(sc, bson.M{"id": reservationID}, update)
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, mongo.ErrNoDocuments
		}
		if _, err := r.nights.DeleteMany(sc, bson.M{"reservationId": reservationID}); err != nil {
			return nil, fmt.Errorf("failed to release night claims: %w", err)
		}
		return nil, nil
	}

	if _, err := sess.WithTransaction(ctx, txnFn); err != nil {
		if err == mongo.ErrNoDocuments {
			return mongo.ErrNoDocuments
		}
		return err
	}
	return nil
}

func (r *mongoReservationRepo) SetPaymentResult(ctx context.Context, reservationID, paymentIntentID string, pending bool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"paymentIntentId": paymentIntentID,
		"paymentPending":  pending,
		"updatedAt":       time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": reservationID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoReservationRepo) SetNotificationPending(ctx context.Context, reservationID string, pending bool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"notificationPending": pending,
		"updatedAt":           time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": reservationID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
