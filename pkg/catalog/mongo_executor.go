package catalog

import (
	"context"
	"fmt"

	mongostore "github.com/libreshelf/libreshelf/pkg/store/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoExecutor adapts the store/mongodb adapter to the catalog executor
// contract.
type MongoExecutor struct {
	adapter *mongostore.Adapter
}

// NewMongoExecutor creates a new MongoExecutor instance.
func NewMongoExecutor(adapter *mongostore.Adapter) (*MongoExecutor, error) {
	if adapter == nil {
		return nil, fmt.Errorf("mongodb adapter is required")
	}
	return &MongoExecutor{adapter: adapter}, nil
}

func (e *MongoExecutor) Find(ctx context.Context, collection string, filter interface{}, opts *options.FindOptions, results interface{}) error {
	return e.adapter.Find(ctx, collection, filter, opts, results)
}

func (e *MongoExecutor) FindOne(ctx context.Context, collection string, filter interface{}, result interface{}) error {
	return e.adapter.FindOne(ctx, collection, filter, result)
}

func (e *MongoExecutor) InsertMany(ctx context.Context, collection string, docs []interface{}) (int64, error) {
	result, err := e.adapter.InsertMany(ctx, collection, docs)
	if err != nil {
		return 0, err
	}
	return int64(len(result.InsertedIDs)), nil
}

func (e *MongoExecutor) UpdateOne(ctx context.Context, collection string, filter, update interface{}) (int64, error) {
	result, err := e.adapter.UpdateOne(ctx, collection, filter, update)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

func (e *MongoExecutor) DeleteOne(ctx context.Context, collection string, filter interface{}) (int64, error) {
	result, err := e.adapter.DeleteOne(ctx, collection, filter)
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (e *MongoExecutor) CountDocuments(ctx context.Context, collection string, filter interface{}) (int64, error) {
	return e.adapter.CountDocuments(ctx, collection, filter)
}

func (e *MongoExecutor) Aggregate(ctx context.Context, collection string, pipeline mongo.Pipeline, results interface{}) error {
	return e.adapter.Aggregate(ctx, collection, pipeline, results)
}

func (e *MongoExecutor) CreateIndexes(ctx context.Context, collection string, models []mongo.IndexModel) ([]string, error) {
	return e.adapter.CreateIndexes(ctx, collection, models)
}

func (e *MongoExecutor) Explain(ctx context.Context, collection string, filter interface{}, result interface{}) error {
	return e.adapter.Explain(ctx, collection, filter, result)
}
