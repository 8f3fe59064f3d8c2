package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"spalatorie/pkg/config"
	"spalatorie/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CollectionName = "settings"

// SettingsRepository stores the single app-state document.
type SettingsRepository interface {
	Get(ctx context.Context) (model.AppSettings, error)
	Set(ctx context.Context, updates model.AppSettings) error
}

type mongoSettingsRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoSettingsRepository(cfg *config.Config) SettingsRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoSettingsRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

// Get returns the app-state document, or an empty map when it has never
// been written.
func (r *mongoSettingsRepository) Get(ctx context.Context) (model.AppSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var doc bson.M
	err := r.collection.FindOne(ctx, bson.M{"_id": model.SettingsDocID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.AppSettings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	delete(doc, "_id")
	settings := make(model.AppSettings, len(doc))
	for k, v := range doc {
		settings[k] = v
	}
	return settings, nil
}

// Set merges the given keys into the document, creating it on first write.
func (r *mongoSettingsRepository) Set(ctx context.Context, updates model.AppSettings) error {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	set := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range updates {
		set[k] = v
	}

	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": model.SettingsDocID},
		bson.M{"$set": set},
		opts,
	)
	if err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
