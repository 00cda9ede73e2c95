// File: database/repository/reservation/indexes.go
package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the ledger's overlap queries and the
// commit transaction depend on.
func (r *mongoReservationRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Overlap query pattern: status + date bounds.
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "checkIn", Value: 1}, {Key: "checkOut", Value: 1}},
			Options: options.Index().SetName("status_range_idx"),
		},
		// Reconciliation scan for owed payment intents / confirmations.
		{
			Keys:    bson.D{{Key: "paymentPending", Value: 1}, {Key: "notificationPending", Value: 1}},
			Options: options.Index().SetName("followup_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create reservation indexes: %w", err)
	}

	// The night-claim index is the ledger's serialization point: commits for
	// intersecting ranges must both write the shared dates, and uniqueness
	// lets exactly one land.
	nightModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "date", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_night"),
		},
		{
			Keys:    bson.D{{Key: "reservationId", Value: 1}},
			Options: options.Index().SetName("night_reservation_idx"),
		},
	}
	if _, err := r.nights.Indexes().CreateMany(ctx, nightModels); err != nil {
		return fmt.Errorf("failed to create booked-night indexes: %w", err)
	}
	return nil
}
