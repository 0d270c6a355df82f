// Package catalog implements a query facade over a MongoDB book collection.
// The facade builds filter, projection, sort, and aggregation descriptors and
// delegates all execution to the injected store executor; it owns no data and
// keeps no state between calls.
package catalog

// Book is the catalog record shape. Documents in the store are schema-less;
// fields missing from a document decode to their zero value.
type Book struct {
	Title         string  `bson:"title" json:"title"`
	Author        string  `bson:"author" json:"author"`
	Genre         string  `bson:"genre" json:"genre"`
	PublishedYear int     `bson:"published_year" json:"published_year"`
	Price         float64 `bson:"price" json:"price"`
	InStock       bool    `bson:"in_stock" json:"in_stock"`
}

// Summary is the {title, author, price} projection used by listing queries.
type Summary struct {
	Title  string  `bson:"title" json:"title"`
	Author string  `bson:"author" json:"author"`
	Price  float64 `bson:"price" json:"price"`
}

// Stocked is the {title, author, published_year} projection returned by
// in-stock queries.
type Stocked struct {
	Title         string `bson:"title" json:"title"`
	Author        string `bson:"author" json:"author"`
	PublishedYear int    `bson:"published_year" json:"published_year"`
}

// PricePoint is the {title, price} projection returned by price-sorted queries.
type PricePoint struct {
	Title string  `bson:"title" json:"title"`
	Price float64 `bson:"price" json:"price"`
}

// GenreStats is one aggregation row of AveragePriceByGenre.
type GenreStats struct {
	Genre    string  `bson:"genre" json:"genre"`
	AvgPrice float64 `bson:"avgPrice" json:"avg_price"`
	Count    int64   `bson:"count" json:"count"`
}

// AuthorCount is the single aggregation row of TopAuthorByBookCount.
type AuthorCount struct {
	Author string `bson:"author" json:"author"`
	Count  int64  `bson:"count" json:"count"`
}

// DecadeCount is one aggregation row of CountByDecade. Decade is the year
// truncated to its enclosing ten-year period (2015 -> 2010).
type DecadeCount struct {
	Decade int   `bson:"decade" json:"decade"`
	Count  int64 `bson:"count" json:"count"`
}

// ExplainStats carries the execution statistics of an explained query. It is
// a diagnostic surface for manual performance comparison, not consumed by the
// facade itself.
type ExplainStats struct {
	ExecutionTimeMillis int64 `bson:"executionTimeMillis" json:"execution_time_millis"`
	TotalKeysExamined   int64 `bson:"totalKeysExamined" json:"total_keys_examined"`
	TotalDocsExamined   int64 `bson:"totalDocsExamined" json:"total_docs_examined"`
	ReturnedDocs        int64 `bson:"nReturned" json:"returned_docs"`
}
