package repository

import (
	"context"
	"fmt"

	"awareness_backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoAssessmentRepo 每个领域一个集合，例如 appperm_assessments
type MongoAssessmentRepo struct {
	client      *mongo.Client
	db          *mongo.Database
	collections map[string]string
}

// NewMongoAssessmentRepo maps domain slugs to collection names.
func NewMongoAssessmentRepo(client *mongo.Client, database string, collections map[string]string) *MongoAssessmentRepo {
	return &MongoAssessmentRepo{
		client:      client,
		db:          client.Database(database),
		collections: collections,
	}
}

func (r *MongoAssessmentRepo) Name() string {
	return "mongo"
}

func (r *MongoAssessmentRepo) collection(domain string) (*mongo.Collection, error) {
	name, ok := r.collections[domain]
	if !ok || name == "" {
		return nil, fmt.Errorf("no collection configured for domain %q", domain)
	}
	return r.db.Collection(name), nil
}

func (r *MongoAssessmentRepo) Save(ctx context.Context, rec *model.AssessmentRecord) error {
	coll, err := r.collection(rec.Domain)
	if err != nil {
		return err
	}
	if rec.ID == "" {
		rec.ID = model.GenerateUUID()
	}
	_, err = coll.InsertOne(ctx, rec)
	return err
}

func (r *MongoAssessmentRepo) Stats(ctx context.Context, domain string) (*model.AssessmentStats, error) {
	coll, err := r.collection(domain)
	if err != nil {
		return nil, err
	}
	filter := bson.M{"domain": domain}

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$overall_knowledge_level"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "sum", Value: bson.D{{Key: "$sum", Value: "$percentage"}}},
		}}},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var groups []struct {
		Level string  `bson:"_id"`
		Count int64   `bson:"count"`
		Sum   float64 `bson:"sum"`
	}
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}

	dist := make(map[string]int64, len(groups))
	var sum float64
	var counted int64
	for _, g := range groups {
		dist[g.Level] = g.Count
		sum += g.Sum
		counted += g.Count
	}
	avg := 0.0
	if counted > 0 {
		avg = sum / float64(counted)
	}
	return newStats(total, avg, dist), nil
}

func (r *MongoAssessmentRepo) ListByEmail(ctx context.Context, domain, email string) ([]model.AssessmentRecord, error) {
	coll, err := r.collection(domain)
	if err != nil {
		return nil, err
	}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cursor, err := coll.Find(ctx, bson.M{"domain": domain, "email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []model.AssessmentRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *MongoAssessmentRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, readpref.Primary())
}

func (r *MongoAssessmentRepo) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
