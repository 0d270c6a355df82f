package catalog

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Executor is the document execution contract the catalog delegates to.
// Implementations execute the descriptors built by the facade against a named
// collection; the facade never touches the underlying client directly.
type Executor interface {
	// Find runs a filtered query with the given find options and decodes all
	// matches into results, a pointer to a slice.
	Find(ctx context.Context, collection string, filter interface{}, opts *options.FindOptions, results interface{}) error

	// FindOne decodes the first match into result. Implementations return
	// mongo.ErrNoDocuments when nothing matches.
	FindOne(ctx context.Context, collection string, filter interface{}, result interface{}) error

	// InsertMany inserts documents and returns the number inserted.
	InsertMany(ctx context.Context, collection string, docs []interface{}) (int64, error)

	// UpdateOne applies the update to the first match and returns the
	// modified count. No upsert.
	UpdateOne(ctx context.Context, collection string, filter, update interface{}) (int64, error)

	// DeleteOne removes the first match and returns the removed count.
	DeleteOne(ctx context.Context, collection string, filter interface{}) (int64, error)

	// CountDocuments counts documents matching the filter.
	CountDocuments(ctx context.Context, collection string, filter interface{}) (int64, error)

	// Aggregate runs the pipeline and decodes the result set into results,
	// a pointer to a slice.
	Aggregate(ctx context.Context, collection string, pipeline mongo.Pipeline, results interface{}) error

	// CreateIndexes creates the given indexes, idempotently.
	CreateIndexes(ctx context.Context, collection string, models []mongo.IndexModel) ([]string, error)

	// Explain runs the filter under executionStats verbosity and decodes the
	// server response into result.
	Explain(ctx context.Context, collection string, filter interface{}, result interface{}) error
}
