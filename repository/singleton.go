package repository

import (
	"context"
	"errors"
	"fmt"

	"instituteapi/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SingletonKey is the fixed key of page content documents
const SingletonKey = "singleton"

// Singleton stores exactly one document per collection
type Singleton[T any] interface {
	Get(ctx context.Context) (*T, error)
	Save(ctx context.Context, doc *T) error
}

type MongoSingleton[T any] struct {
	collection *mongo.Collection
	name       string
}

func NewMongoSingleton[T any](db *mongo.Database, name string) *MongoSingleton[T] {
	return &MongoSingleton[T]{collection: db.Collection(name), name: name}
}

// Get returns ErrNotFound until the first Save
func (s *MongoSingleton[T]) Get(ctx context.Context) (*T, error) {
	timer := utils.TrackDBOperation("find_one", s.name)
	defer timer.ObserveDuration()

	var doc T
	err := s.collection.FindOne(ctx, bson.M{"key": SingletonKey}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		utils.TrackError("db")
		return nil, fmt.Errorf("load %s: %w", s.name, err)
	}
	return &doc, nil
}

// Save upserts the document. The caller sets its key field to SingletonKey.
func (s *MongoSingleton[T]) Save(ctx context.Context, doc *T) error {
	timer := utils.TrackDBOperation("upsert", s.name)
	defer timer.ObserveDuration()

	opts := options.Replace().SetUpsert(true)
	if _, err := s.collection.ReplaceOne(ctx, bson.M{"key": SingletonKey}, doc, opts); err != nil {
		utils.TrackError("db")
		return fmt.Errorf("save %s: %w", s.name, err)
	}
	return nil
}
