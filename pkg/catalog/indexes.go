package catalog

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// indexModels describes the two indexes the catalog queries rely on: a
// single-field index on title and a compound index on
// (author ascending, published_year descending).
func indexModels() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "title", Value: 1}}},
		{Keys: bson.D{
			{Key: "author", Value: 1},
			{Key: "published_year", Value: -1},
		}},
	}
}

// EnsureIndexes asks the store to guarantee the catalog's indexes. The request
// is idempotent: creating an index that already exists is a no-op, so this is
// safe to call on every startup. It changes no data, only query plans.
func (c *Catalog) EnsureIndexes(ctx context.Context) (err error) {
	defer c.observe("ensure_indexes", time.Now(), &err)
	names, err := c.exec.CreateIndexes(ctx, c.collection, indexModels())
	if err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}
	c.log.Info("catalog indexes ensured", "collection", c.collection, "indexes", names)
	return nil
}
