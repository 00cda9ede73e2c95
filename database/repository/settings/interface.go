// File: database/repository/settings/interface.go
package settingsRepo

import (
	"context"

	"villamar/database"
	"villamar/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SettingsRepository serves the single live PricingSettings record. Get is
// called once per pricing computation at the orchestrator boundary so one
// settings version is used for the whole calculation.
type SettingsRepository interface {
	Get(ctx context.Context) (*models.PricingSettings, error)
	Put(ctx context.Context, settings models.PricingSettings) error
}

type mongoSettingsRepo struct {
	coll *mongo.Collection
}

// NewMongoSettingsRepo constructs a new MongoDB SettingsRepository.
func NewMongoSettingsRepo() SettingsRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &mongoSettingsRepo{
		coll: db.Collection("settings"),
	}
}
