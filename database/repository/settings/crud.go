// File: database/repository/settings/crud.go
package settingsRepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"villamar/models"
)

// settingsDocID pins the collection to exactly one live document.
const settingsDocID = "pricing-settings"

type settingsDoc struct {
	ID       string                 `bson:"_id"`
	Settings models.PricingSettings `bson:"settings"`
}

var ErrSettingsNotConfigured = errors.New("pricing settings have not been configured")

func (r *mongoSettingsRepo) Get(ctx context.Context) (*models.PricingSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc settingsDoc
	err := r.coll.FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSettingsNotConfigured
		}
		return nil, err
	}
	return &doc.Settings, nil
}

func (r *mongoSettingsRepo) Put(ctx context.Context, settings models.PricingSettings) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	doc := settingsDoc{ID: settingsDocID, Settings: settings}
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": settingsDocID}, doc, opts)
	return err
}
