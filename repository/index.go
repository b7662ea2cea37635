package repository

import (
	"context"
	"fmt"
	"time"

	"instituteapi/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names
const (
	EventsCollection          = "events"
	NewsBlogsCollection       = "newsblogs"
	PublicationsCollection    = "publications"
	JournalArticlesCollection = "journalarticles"
	JournalVolumesCollection  = "journalvolumes"
	JournalContentCollection  = "journalcontents"
	HomeContentCollection     = "homecontents"
	StaffCollection           = "staffs"
	ResourcePersonsCollection = "authors"
	UsersCollection           = "users"
)

// PurgeableCollections are the collections whose soft-deleted documents get reaped
var PurgeableCollections = []string{
	EventsCollection,
	NewsBlogsCollection,
	PublicationsCollection,
	JournalArticlesCollection,
	JournalVolumesCollection,
	StaffCollection,
	ResourcePersonsCollection,
	UsersCollection,
}

func deletedAtIndex() mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    bson.D{{Key: "deletedAt", Value: 1}},
		Options: options.Index().SetName("deleted_at"),
	}
}

func singletonIndex() mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    bson.D{{Key: "key", Value: 1}},
		Options: options.Index().SetName("singleton_key").SetUnique(true),
	}
}

func indexPlan() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		EventsCollection: {
			{
				Keys:    bson.D{{Key: "status", Value: 1}, {Key: "timestamp", Value: -1}},
				Options: options.Index().SetName("status_timestamp"),
			},
			deletedAtIndex(),
		},
		NewsBlogsCollection: {
			{
				Keys:    bson.D{{Key: "category", Value: 1}, {Key: "createdAt", Value: -1}},
				Options: options.Index().SetName("category_created"),
			},
			{
				Keys:    bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}},
				Options: options.Index().SetName("status_created"),
			},
			deletedAtIndex(),
		},
		PublicationsCollection: {
			{
				Keys:    bson.D{{Key: "category", Value: 1}},
				Options: options.Index().SetName("category"),
			},
			deletedAtIndex(),
		},
		JournalArticlesCollection: {
			{
				Keys:    bson.D{{Key: "publishedDate", Value: -1}},
				Options: options.Index().SetName("published_date"),
			},
			{
				Keys:    bson.D{{Key: "category", Value: 1}},
				Options: options.Index().SetName("category"),
			},
			{
				Keys:    bson.D{{Key: "volume", Value: 1}, {Key: "issue", Value: 1}},
				Options: options.Index().SetName("volume_issue"),
			},
			{
				Keys: bson.D{
					{Key: "title", Value: "text"},
					{Key: "abstract", Value: "text"},
					{Key: "keywords", Value: "text"},
				},
				Options: options.Index().
					SetName("text_search").
					SetDefaultLanguage("english").
					SetWeights(bson.D{
						{Key: "title", Value: 10},
						{Key: "keywords", Value: 5},
						{Key: "abstract", Value: 3},
					}),
			},
			deletedAtIndex(),
		},
		JournalVolumesCollection: {
			{
				Keys:    bson.D{{Key: "publishedDate", Value: -1}},
				Options: options.Index().SetName("published_date"),
			},
			deletedAtIndex(),
		},
		StaffCollection:           {{Keys: bson.D{{Key: "order", Value: 1}}, Options: options.Index().SetName("order")}, deletedAtIndex()},
		ResourcePersonsCollection: {{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetName("name")}, deletedAtIndex()},
		JournalContentCollection:  {singletonIndex()},
		HomeContentCollection:     {singletonIndex()},
		UsersCollection: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetName("email_unique").SetUnique(true),
			},
			deletedAtIndex(),
		},
	}
}

func SetupIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	for name, models := range indexPlan() {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", name, err)
		}
	}

	utils.Log().Info().Msg("Successfully created all indexes")
	return nil
}
