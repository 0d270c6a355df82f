package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Pagination window properties
//
// For any collection of n titles and any page size p >= 1, walking the pages
// must visit every record exactly once, in title order, with disjoint and
// contiguous windows, and pages beyond the last must come back empty.

func titleSortedDataset(n int) []Summary {
	rows := make([]Summary, n)
	for i := range rows {
		rows[i] = Summary{Title: fmt.Sprintf("book-%04d", i), Author: "author", Price: float64(i)}
	}
	return rows
}

func TestProperty_PageWindowsPartitionTheDataset(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("page windows are disjoint, contiguous, and exhaustive", prop.ForAll(
		func(n, size int) bool {
			dataset := titleSortedDataset(n)
			exec := &fakeExecutor{findResult: dataset, applyWindow: true}
			c, err := New(exec, "books", nil)
			if err != nil {
				t.Logf("New failed: %v", err)
				return false
			}

			seen := 0
			fullPages := 0
			for page := 1; ; page++ {
				rows, err := c.Page(context.Background(), page, size)
				if err != nil {
					t.Logf("Page(%d, %d) failed: %v", page, size, err)
					return false
				}
				if len(rows) == 0 {
					break
				}
				if len(rows) > size {
					t.Logf("page %d longer than size: %d > %d", page, len(rows), size)
					return false
				}
				// contiguity: each window starts exactly where the previous ended
				for i, row := range rows {
					if row.Title != dataset[seen+i].Title {
						t.Logf("page %d row %d = %q, want %q", page, i, row.Title, dataset[seen+i].Title)
						return false
					}
				}
				seen += len(rows)
				if len(rows) == size {
					fullPages++
				}
			}

			wantPages := (n + size - 1) / size
			gotPages := fullPages
			if n%size != 0 && n > 0 {
				gotPages++ // the short last page
			}
			return seen == n && gotPages == wantPages
		},
		gen.IntRange(0, 300),
		gen.IntRange(1, 40),
	))

	properties.Property("pages past the end are empty, not errors", prop.ForAll(
		func(n, size int) bool {
			exec := &fakeExecutor{findResult: titleSortedDataset(n), applyWindow: true}
			c, err := New(exec, "books", nil)
			if err != nil {
				return false
			}
			past := n/size + 2
			rows, err := c.Page(context.Background(), past, size)
			return err == nil && len(rows) == 0
		},
		gen.IntRange(0, 100),
		gen.IntRange(1, 20),
	))

	properties.TestingRun(t)
}

func TestProperty_InvalidPageRequestsAlwaysRejected(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("page < 1 or size < 1 is a validation error", prop.ForAll(
		func(page, size int) bool {
			if page >= 1 && size >= 1 {
				return true // not the case under test
			}
			c, err := New(&fakeExecutor{}, "books", nil)
			if err != nil {
				return false
			}
			_, err = c.Page(context.Background(), page, size)
			return err != nil
		},
		gen.IntRange(-5, 5),
		gen.IntRange(-5, 5),
	))

	properties.Property("offset arithmetic matches (page-1)*size", prop.ForAll(
		func(page, size int) bool {
			p := Page{Number: page, Size: size}
			return p.Offset() == int64(page-1)*int64(size)
		},
		gen.IntRange(1, 10000),
		gen.IntRange(1, 1000),
	))

	properties.TestingRun(t)
}
