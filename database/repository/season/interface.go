// File: database/repository/season/interface.go
package seasonRepo

import (
	"context"

	"villamar/database"
	"villamar/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SeasonRepository is the configuration source for date-bounded rule periods.
// The pricing path only ever reads; writes come from the operator surface.
type SeasonRepository interface {
	Create(ctx context.Context, period models.SeasonPeriod) (string, error)
	Update(ctx context.Context, period models.SeasonPeriod) error
	Deactivate(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.SeasonPeriod, error)
	ListAll(ctx context.Context) ([]models.SeasonPeriod, error)
	ListActive(ctx context.Context) ([]models.SeasonPeriod, error)
	EnsureIndexes() error
}

type mongoSeasonRepo struct {
	coll *mongo.Collection
}

// NewMongoSeasonRepo constructs a new MongoDB SeasonRepository.
func NewMongoSeasonRepo() SeasonRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoSeasonRepo{
		coll: db.Collection("seasons"),
	}
}
