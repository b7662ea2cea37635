package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"instituteapi/model"
	"instituteapi/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound  = errors.New("document not found")
	ErrDuplicate = errors.New("duplicate key")
)

// Filter holds equality conditions on stored field names
type Filter map[string]any

type Sort struct {
	Field string
	Desc  bool
}

type Query struct {
	Filter Filter
	Sort   []Sort
	Skip   int64
	Limit  int64 // zero means no limit
}

// Store is the persistence contract shared by every content collection.
// Soft-deleted documents are never returned, counted or modified.
type Store[T any] interface {
	Insert(ctx context.Context, doc *T) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*T, error)
	FindOne(ctx context.Context, filter Filter) (*T, error)
	Find(ctx context.Context, q Query) ([]T, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	Replace(ctx context.Context, id primitive.ObjectID, doc *T) error
	SoftDelete(ctx context.Context, id primitive.ObjectID, at time.Time, set map[string]any) error
	Distinct(ctx context.Context, field string, filter Filter) ([]string, error)
	CountBy(ctx context.Context, field string, filter Filter) ([]model.CategoryCount, error)
	Purge(ctx context.Context, before time.Time) (int64, error)
}

type MongoStore[T any] struct {
	collection *mongo.Collection
	name       string
}

func NewMongoStore[T any](db *mongo.Database, name string) *MongoStore[T] {
	return &MongoStore[T]{collection: db.Collection(name), name: name}
}

func (s *MongoStore[T]) Name() string { return s.name }

func live(filter Filter) bson.M {
	m := bson.M{"deletedAt": nil}
	for k, v := range filter {
		m[k] = v
	}
	return m
}

func sortDoc(sorts []Sort) bson.D {
	d := make(bson.D, 0, len(sorts))
	for _, s := range sorts {
		dir := 1
		if s.Desc {
			dir = -1
		}
		d = append(d, bson.E{Key: s.Field, Value: dir})
	}
	return d
}

func (s *MongoStore[T]) Insert(ctx context.Context, doc *T) error {
	timer := utils.TrackDBOperation("insert", s.name)
	defer timer.ObserveDuration()

	if _, err := s.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		utils.TrackError("db")
		return fmt.Errorf("insert into %s: %w", s.name, err)
	}
	return nil
}

func (s *MongoStore[T]) FindByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	return s.FindOne(ctx, Filter{"_id": id})
}

func (s *MongoStore[T]) FindOne(ctx context.Context, filter Filter) (*T, error) {
	timer := utils.TrackDBOperation("find_one", s.name)
	defer timer.ObserveDuration()

	var doc T
	err := s.collection.FindOne(ctx, live(filter)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		utils.TrackError("db")
		return nil, fmt.Errorf("find in %s: %w", s.name, err)
	}
	return &doc, nil
}

func (s *MongoStore[T]) Find(ctx context.Context, q Query) ([]T, error) {
	timer := utils.TrackDBOperation("find", s.name)
	defer timer.ObserveDuration()

	opts := options.Find()
	if len(q.Sort) > 0 {
		opts.SetSort(sortDoc(q.Sort))
	}
	if q.Skip > 0 {
		opts.SetSkip(q.Skip)
	}
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}

	cursor, err := s.collection.Find(ctx, live(q.Filter), opts)
	if err != nil {
		utils.TrackError("db")
		return nil, fmt.Errorf("find in %s: %w", s.name, err)
	}
	defer cursor.Close(ctx)

	docs := make([]T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.name, err)
	}
	return docs, nil
}

func (s *MongoStore[T]) Count(ctx context.Context, filter Filter) (int64, error) {
	timer := utils.TrackDBOperation("count", s.name)
	defer timer.ObserveDuration()

	n, err := s.collection.CountDocuments(ctx, live(filter))
	if err != nil {
		utils.TrackError("db")
		return 0, fmt.Errorf("count %s: %w", s.name, err)
	}
	return n, nil
}

func (s *MongoStore[T]) Replace(ctx context.Context, id primitive.ObjectID, doc *T) error {
	timer := utils.TrackDBOperation("replace", s.name)
	defer timer.ObserveDuration()

	result, err := s.collection.ReplaceOne(ctx, live(Filter{"_id": id}), doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		utils.TrackError("db")
		return fmt.Errorf("replace in %s: %w", s.name, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore[T]) SoftDelete(ctx context.Context, id primitive.ObjectID, at time.Time, set map[string]any) error {
	timer := utils.TrackDBOperation("soft_delete", s.name)
	defer timer.ObserveDuration()

	fields := bson.M{"deletedAt": at, "updatedAt": at}
	for k, v := range set {
		fields[k] = v
	}

	result, err := s.collection.UpdateOne(ctx, live(Filter{"_id": id}), bson.M{"$set": fields})
	if err != nil {
		utils.TrackError("db")
		return fmt.Errorf("soft delete in %s: %w", s.name, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore[T]) Distinct(ctx context.Context, field string, filter Filter) ([]string, error) {
	timer := utils.TrackDBOperation("distinct", s.name)
	defer timer.ObserveDuration()

	raw, err := s.collection.Distinct(ctx, field, live(filter))
	if err != nil {
		utils.TrackError("db")
		return nil, fmt.Errorf("distinct %s.%s: %w", s.name, field, err)
	}
	values := make([]string, 0, len(raw))
	for _, v := range raw {
		if str, ok := v.(string); ok && str != "" {
			values = append(values, str)
		}
	}
	sort.Strings(values)
	return values, nil
}

func (s *MongoStore[T]) CountBy(ctx context.Context, field string, filter Filter) ([]model.CategoryCount, error) {
	timer := utils.TrackDBOperation("aggregate", s.name)
	defer timer.ObserveDuration()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: live(filter)}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$" + field},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
	}

	cursor, err := s.collection.Aggregate(ctx, pipeline)
	if err != nil {
		utils.TrackError("db")
		return nil, fmt.Errorf("aggregate %s: %w", s.name, err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Key   string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode %s aggregate: %w", s.name, err)
	}

	counts := make([]model.CategoryCount, 0, len(rows))
	for _, r := range rows {
		counts = append(counts, model.CategoryCount{Category: r.Key, Count: r.Count})
	}
	return counts, nil
}

// Purge hard-deletes documents soft-deleted before the cutoff
func (s *MongoStore[T]) Purge(ctx context.Context, before time.Time) (int64, error) {
	timer := utils.TrackDBOperation("purge", s.name)
	defer timer.ObserveDuration()

	result, err := s.collection.DeleteMany(ctx, bson.M{"deletedAt": bson.M{"$ne": nil, "$lte": before}})
	if err != nil {
		utils.TrackError("db")
		return 0, fmt.Errorf("purge %s: %w", s.name, err)
	}
	return result.DeletedCount, nil
}
