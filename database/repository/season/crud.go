// File: database/repository/season/crud.go
package seasonRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"villamar/models"
)

func (r *mongoSeasonRepo) Create(ctx context.Context, period models.SeasonPeriod) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if period.ID == "" {
		period.ID = uuid.New().String()
	}
	if period.CreatedAt.IsZero() {
		period.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, period); err != nil {
		return "", err
	}
	return period.ID, nil
}

func (r *mongoSeasonRepo) Update(ctx context.Context, period models.SeasonPeriod) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": period.ID}
	update := bson.M{"$set": bson.M{
		"label":        period.Label,
		"startDate":    period.StartDate,
		"endDate":      period.EndDate,
		"seasonType":   period.SeasonType,
		"isActive":     period.IsActive,
		"nightlyPrice": period.NightlyPrice,
		"minimumStay":  period.MinimumStay,
	}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Deactivate soft-deletes a period. Periods referenced by reservations are
// never removed from the collection.
func (r *mongoSeasonRepo) Deactivate(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"isActive": false}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoSeasonRepo) GetByID(ctx context.Context, id string) (*models.SeasonPeriod, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var period models.SeasonPeriod
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&period); err != nil {
		return nil, err
	}
	return &period, nil
}

func (r *mongoSeasonRepo) ListAll(ctx context.Context) ([]models.SeasonPeriod, error) {
	return r.list(ctx, bson.M{})
}

func (r *mongoSeasonRepo) ListActive(ctx context.Context) ([]models.SeasonPeriod, error) {
	return r.list(ctx, bson.M{"isActive": true})
}

func (r *mongoSeasonRepo) list(ctx context.Context, filter bson.M) ([]models.SeasonPeriod, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "startDate", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var periods []models.SeasonPeriod
	if err := cursor.All(ctx, &periods); err != nil {
		return nil, err
	}
	return periods, nil
}
