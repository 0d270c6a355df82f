package catalog

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Aggregation pipeline builders. Stage order is part of the contract: the
// store consumes each pipeline atomically.

// averagePriceByGenrePipeline groups books by genre, averaging price and
// counting group members, then orders rows by average descending. Ties on the
// average are broken by genre ascending so the output is deterministic.
func averagePriceByGenrePipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$genre"},
			{Key: "avgPrice", Value: bson.D{{Key: "$avg", Value: "$price"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "genre", Value: "$_id"},
			{Key: "avgPrice", Value: 1},
			{Key: "count", Value: 1},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "avgPrice", Value: -1},
			{Key: "genre", Value: 1},
		}}},
	}
}

// topAuthorPipeline groups books by author, counts each group, and keeps the
// single largest. Ties are broken by author ascending so repeated runs return
// the same row.
func topAuthorPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$author"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "count", Value: -1},
			{Key: "_id", Value: 1},
		}}},
		{{Key: "$limit", Value: 1}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "author", Value: "$_id"},
			{Key: "count", Value: 1},
		}}},
	}
}

// countByDecadePipeline buckets books into decades via
// published_year - (published_year mod 10) and orders buckets ascending.
func countByDecadePipeline() mongo.Pipeline {
	decadeExpr := bson.D{{Key: "$subtract", Value: bson.A{
		"$published_year",
		bson.D{{Key: "$mod", Value: bson.A{"$published_year", 10}}},
	}}}
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: decadeExpr},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "decade", Value: "$_id"},
			{Key: "count", Value: 1},
		}}},
	}
}

// AveragePriceByGenre returns one row per distinct genre with the arithmetic
// mean price and the group cardinality, ordered by average price descending
// (genre ascending on ties).
func (c *Catalog) AveragePriceByGenre(ctx context.Context) (rows []GenreStats, err error) {
	defer c.observe("average_price_by_genre", time.Now(), &err)
	if err = c.exec.Aggregate(ctx, c.collection, averagePriceByGenrePipeline(), &rows); err != nil {
		return nil, fmt.Errorf("average price by genre: %w", err)
	}
	return normalize(rows), nil
}

// TopAuthorByBookCount returns the author with the most books, or nil on an
// empty collection. Exactly one row comes back even when several authors tie;
// the tie goes to the alphabetically first author.
func (c *Catalog) TopAuthorByBookCount(ctx context.Context) (top *AuthorCount, err error) {
	defer c.observe("top_author_by_book_count", time.Now(), &err)
	var rows []AuthorCount
	if err = c.exec.Aggregate(ctx, c.collection, topAuthorPipeline(), &rows); err != nil {
		return nil, fmt.Errorf("top author by book count: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// CountByDecade returns one row per publication decade, ordered ascending.
// Every book lands in exactly one bucket; the counts sum to the collection
// size. Negative years are out of scope for this domain.
func (c *Catalog) CountByDecade(ctx context.Context) (rows []DecadeCount, err error) {
	defer c.observe("count_by_decade", time.Now(), &err)
	if err = c.exec.Aggregate(ctx, c.collection, countByDecadePipeline(), &rows); err != nil {
		return nil, fmt.Errorf("count by decade: %w", err)
	}
	return normalize(rows), nil
}
