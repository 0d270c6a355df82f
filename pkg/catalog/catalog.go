package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/libreshelf/libreshelf/pkg/observability/logger"
	"github.com/libreshelf/libreshelf/pkg/observability/metrics"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultCollection is the collection name used when none is configured.
const DefaultCollection = "books"

// ErrInvalidPrice is returned by UpdatePrice for a non-positive price.
var ErrInvalidPrice = errors.New("price must be positive")

// Catalog is the query facade over a single book collection. It is stateless:
// every call builds its descriptors, hands them to the executor, and returns
// the decoded result. Failures from the store propagate wrapped, untranslated.
type Catalog struct {
	exec       Executor
	collection string
	log        logger.Logger
}

// New creates a catalog bound to the given executor and collection. The
// collection handle is explicit; there is no ambient database state.
func New(exec Executor, collection string, log logger.Logger) (*Catalog, error) {
	if exec == nil {
		return nil, fmt.Errorf("executor is required")
	}
	if collection == "" {
		collection = DefaultCollection
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Catalog{exec: exec, collection: collection, log: log}, nil
}

// Collection returns the collection name this catalog is bound to.
func (c *Catalog) Collection() string {
	return c.collection
}

// observe records metrics and a debug log line for a completed operation.
func (c *Catalog) observe(op string, start time.Time, err *error) {
	elapsed := time.Since(start)
	metrics.RecordQuery(op, elapsed, *err)
	if *err != nil {
		c.log.Error("catalog operation failed", "operation", op, "error", *err)
		return
	}
	c.log.Debug("catalog operation completed", "operation", op, "elapsed", elapsed)
}

// Insert adds books to the collection and returns the number inserted.
func (c *Catalog) Insert(ctx context.Context, books ...Book) (n int64, err error) {
	defer c.observe("insert", time.Now(), &err)
	if len(books) == 0 {
		return 0, nil
	}
	docs := make([]interface{}, len(books))
	for i, b := range books {
		docs[i] = b
	}
	n, err = c.exec.InsertMany(ctx, c.collection, docs)
	if err != nil {
		return 0, fmt.Errorf("insert books: %w", err)
	}
	return n, nil
}

// Count returns the total number of books in the collection.
func (c *Catalog) Count(ctx context.Context) (n int64, err error) {
	defer c.observe("count", time.Now(), &err)
	n, err = c.exec.CountDocuments(ctx, c.collection, filterAll())
	if err != nil {
		return 0, fmt.Errorf("count books: %w", err)
	}
	return n, nil
}

// FindByGenre returns the {title, author, price} projection of every book in
// the given genre, matched by exact equality. Zero matches yield an empty
// slice, not an error.
func (c *Catalog) FindByGenre(ctx context.Context, genre string) (rows []Summary, err error) {
	defer c.observe("find_by_genre", time.Now(), &err)
	opts := options.Find().SetProjection(projectFields("title", "author", "price"))
	if err = c.exec.Find(ctx, c.collection, filterEquals("genre", genre), opts, &rows); err != nil {
		return nil, fmt.Errorf("find by genre: %w", err)
	}
	return normalize(rows), nil
}

// FindPublishedAfter returns every book with published_year strictly greater
// than year.
func (c *Catalog) FindPublishedAfter(ctx context.Context, year int) (rows []Book, err error) {
	defer c.observe("find_published_after", time.Now(), &err)
	if err = c.exec.Find(ctx, c.collection, filterGreaterThan("published_year", year), options.Find(), &rows); err != nil {
		return nil, fmt.Errorf("find published after %d: %w", year, err)
	}
	return normalize(rows), nil
}

// FindByAuthor returns every book by the given author, matched exactly.
func (c *Catalog) FindByAuthor(ctx context.Context, author string) (rows []Book, err error) {
	defer c.observe("find_by_author", time.Now(), &err)
	if err = c.exec.Find(ctx, c.collection, filterEquals("author", author), options.Find(), &rows); err != nil {
		return nil, fmt.Errorf("find by author: %w", err)
	}
	return normalize(rows), nil
}

// FindByTitle looks up a single book by title. Returns nil with no error when
// the title is absent.
func (c *Catalog) FindByTitle(ctx context.Context, title string) (book *Book, err error) {
	defer c.observe("find_by_title", time.Now(), &err)
	var b Book
	if err = c.exec.FindOne(ctx, c.collection, filterEquals("title", title), &b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			err = nil
			return nil, nil
		}
		return nil, fmt.Errorf("find by title: %w", err)
	}
	return &b, nil
}

// UpdatePrice sets the price of the first book matching the title and returns
// the modified count (0 or 1 when titles are unique). It never creates a
// record; a missing title simply reports 0.
func (c *Catalog) UpdatePrice(ctx context.Context, title string, newPrice float64) (n int64, err error) {
	defer c.observe("update_price", time.Now(), &err)
	if newPrice <= 0 {
		err = fmt.Errorf("%w: %v", ErrInvalidPrice, newPrice)
		return 0, err
	}
	n, err = c.exec.UpdateOne(ctx, c.collection, filterEquals("title", title), setField("price", newPrice))
	if err != nil {
		return 0, fmt.Errorf("update price: %w", err)
	}
	return n, nil
}

// DeleteByTitle removes at most one book matching the title and returns the
// removed count.
func (c *Catalog) DeleteByTitle(ctx context.Context, title string) (n int64, err error) {
	defer c.observe("delete_by_title", time.Now(), &err)
	n, err = c.exec.DeleteOne(ctx, c.collection, filterEquals("title", title))
	if err != nil {
		return 0, fmt.Errorf("delete by title: %w", err)
	}
	return n, nil
}

// FindInStockAfterYear returns the {title, author, published_year} projection
// of books that are in stock and published strictly after year.
func (c *Catalog) FindInStockAfterYear(ctx context.Context, year int) (rows []Stocked, err error) {
	defer c.observe("find_in_stock_after_year", time.Now(), &err)
	opts := options.Find().SetProjection(projectFields("title", "author", "published_year"))
	if err = c.exec.Find(ctx, c.collection, filterInStockAfter(year), opts, &rows); err != nil {
		return nil, fmt.Errorf("find in stock after %d: %w", year, err)
	}
	return normalize(rows), nil
}

// ListAll returns the {title, author, price} projection of every book.
func (c *Catalog) ListAll(ctx context.Context) (rows []Summary, err error) {
	defer c.observe("list_all", time.Now(), &err)
	opts := options.Find().SetProjection(projectFields("title", "author", "price"))
	if err = c.exec.Find(ctx, c.collection, filterAll(), opts, &rows); err != nil {
		return nil, fmt.Errorf("list all: %w", err)
	}
	return normalize(rows), nil
}

// SortByPrice returns every book's {title, price} ordered by price. Ties keep
// the store's order; stability is not guaranteed.
func (c *Catalog) SortByPrice(ctx context.Context, order SortOrder) (rows []PricePoint, err error) {
	defer c.observe("sort_by_price", time.Now(), &err)
	opts := options.Find().
		SetProjection(projectFields("title", "price")).
		SetSort(sortBy("price", order))
	if err = c.exec.Find(ctx, c.collection, filterAll(), opts, &rows); err != nil {
		return nil, fmt.Errorf("sort by price: %w", err)
	}
	return normalize(rows), nil
}

// Page returns one window of the title-sorted {title, author, price} listing:
// sort title ascending, skip (page-1)*size, limit size. The window may be
// shorter than size on the last page and empty beyond it. Pages or sizes below
// one are rejected with ErrInvalidPage.
func (c *Catalog) Page(ctx context.Context, page, size int) (rows []Summary, err error) {
	defer c.observe("page", time.Now(), &err)
	p := Page{Number: page, Size: size}
	if err = p.Validate(); err != nil {
		return nil, err
	}
	opts := options.Find().
		SetProjection(projectFields("title", "author", "price")).
		SetSort(sortBy("title", SortAsc)).
		SetSkip(p.Offset()).
		SetLimit(p.Limit())
	if err = c.exec.Find(ctx, c.collection, filterAll(), opts, &rows); err != nil {
		return nil, fmt.Errorf("page %d size %d: %w", page, size, err)
	}
	return normalize(rows), nil
}

// normalize turns a nil decode target into an empty slice so zero matches read
// as an empty sequence.
func normalize[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}
