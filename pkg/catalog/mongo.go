package catalog

import (
	"context"
	stderrors "errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/braidkit/braidkit/pkg/cache"
	"github.com/braidkit/braidkit/pkg/errors"
)

// MongoStore persists runs in a MongoDB collection.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoStore connects to MongoDB and prepares the runs collection.
// An index on (genus, finished_at) backs LatestRun.
func NewMongoStore(ctx context.Context, uri, database, collection string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "connecting to %s", uri)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "pinging %s", uri)
	}

	coll := client.Database(database).Collection(collection)
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "genus", Value: 1}, {Key: "finished_at", Value: -1}},
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "creating index")
	}

	return &MongoStore{client: client, collection: coll}, nil
}

// SaveRun stores a run. Transient write failures are retried with backoff.
func (s *MongoStore) SaveRun(ctx context.Context, run *Run) error {
	if run.ID == "" {
		return errors.New(errors.ErrCodeInvalidInput, "run has no ID")
	}
	err := cache.RetryWithBackoff(ctx, func() error {
		_, err := s.collection.ReplaceOne(ctx,
			bson.M{"_id": run.ID}, run, options.Replace().SetUpsert(true))
		if mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
			return cache.Retryable(err)
		}
		return err
	})
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "saving run %s", run.ID)
	}
	return nil
}

// GetRun retrieves a run by ID.
func (s *MongoStore) GetRun(ctx context.Context, id string) (*Run, error) {
	var run Run
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&run)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.New(errors.ErrCodeRunNotFound, "run %s not found", id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "loading run %s", id)
	}
	return &run, nil
}

// LatestRun retrieves the most recently finished run for a genus.
func (s *MongoStore) LatestRun(ctx context.Context, genus int) (*Run, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "finished_at", Value: -1}})
	var run Run
	err := s.collection.FindOne(ctx, bson.M{"genus": genus}, opts).Decode(&run)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.New(errors.ErrCodeRunNotFound, "no run for genus %d", genus)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "loading latest run for genus %d", genus)
	}
	return &run, nil
}

// ListRuns returns summaries of all runs, newest first. Records are left
// out of the query so listing stays cheap even with large tables stored.
func (s *MongoStore) ListRuns(ctx context.Context) ([]Summary, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "finished_at", Value: -1}}).
		SetProjection(bson.M{"records": 0})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "listing runs")
	}
	defer cursor.Close(ctx)

	var summaries []Summary
	for cursor.Next(ctx) {
		var run Run
		if err := cursor.Decode(&run); err != nil {
			return nil, errors.Wrap(errors.ErrCodeStore, err, "decoding run summary")
		}
		summaries = append(summaries, run.Summary())
	}
	if err := cursor.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "iterating runs")
	}
	return summaries, nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
