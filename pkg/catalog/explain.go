package catalog

import (
	"context"
	"fmt"
	"time"
)

// explainResponse mirrors the slice of the explain command output the catalog
// surfaces. Everything else in the server response is ignored.
type explainResponse struct {
	ExecutionStats ExplainStats `bson:"executionStats"`
}

func (c *Catalog) explain(ctx context.Context, op string, filter interface{}) (stats *ExplainStats, err error) {
	defer c.observe(op, time.Now(), &err)
	var resp explainResponse
	if err = c.exec.Explain(ctx, c.collection, filter, &resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &resp.ExecutionStats, nil
}

// ExplainTitleLookup reports execution statistics for a title equality query,
// useful for comparing plans before and after EnsureIndexes.
func (c *Catalog) ExplainTitleLookup(ctx context.Context, title string) (*ExplainStats, error) {
	return c.explain(ctx, "explain_title_lookup", filterEquals("title", title))
}

// ExplainAuthorQuery reports execution statistics for an author plus
// published_year range query, the shape covered by the compound index.
func (c *Catalog) ExplainAuthorQuery(ctx context.Context, author string, afterYear int) (*ExplainStats, error) {
	filter := filterEquals("author", author)
	filter = append(filter, filterGreaterThan("published_year", afterYear)...)
	return c.explain(ctx, "explain_author_query", filter)
}
