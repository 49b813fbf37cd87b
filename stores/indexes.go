package stores

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// indexPlan lists the indexes backing the jurisdiction queries of each collection.
var indexPlan = map[string][]mongo.IndexModel{
	AuthoritiesCollection: {
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	},
	IssuesCollection: {
		{Keys: bson.D{{Key: "panchayatId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "talukId", Value: 1}, {Key: "createdAt", Value: -1}}},
	},
	FundRequestsCollection: {
		{Keys: bson.D{{Key: "issueId", Value: 1}}},
		{Keys: bson.D{{Key: "panchayatId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "talukId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "districtId", Value: 1}, {Key: "createdAt", Value: -1}}},
	},
	VillagersCollection: {
		{Keys: bson.D{{Key: "panchayatId", Value: 1}, {Key: "village", Value: 1}, {Key: "createdAt", Value: -1}}},
	},
}

// EnsureIndexes creates every index in indexPlan. Existing indexes are left alone.
func EnsureIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for collection, models := range indexPlan {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", collection, translate(err))
		}
	}
	return nil
}
