package catalog

import (
	"errors"
	"fmt"
)

// SortOrder defines the sort direction for queries.
type SortOrder string

// Sort order constants
const (
	// SortAsc sorts in ascending order
	SortAsc SortOrder = "asc"
	// SortDesc sorts in descending order
	SortDesc SortOrder = "desc"
)

// Direction returns the MongoDB sort direction for the order (1 or -1).
// Unknown values sort ascending.
func (o SortOrder) Direction() int {
	if o == SortDesc {
		return -1
	}
	return 1
}

// ErrInvalidPage is returned when a pagination request violates the
// page >= 1 and size >= 1 preconditions. A violated precondition is rejected
// up front rather than silently computing a negative offset.
var ErrInvalidPage = errors.New("page number and page size must be >= 1")

// Page specifies page-based pagination parameters.
type Page struct {
	Number int
	Size   int
}

// Validate rejects pages that would produce a negative or undefined window.
func (p Page) Validate() error {
	if p.Number < 1 || p.Size < 1 {
		return fmt.Errorf("%w: page=%d size=%d", ErrInvalidPage, p.Number, p.Size)
	}
	return nil
}

// Offset calculates the number of records to skip before the page window.
func (p Page) Offset() int64 {
	if p.Number <= 0 {
		return 0
	}
	return int64(p.Number-1) * int64(p.Size)
}

// Limit returns the page size as the window length.
func (p Page) Limit() int64 {
	return int64(p.Size)
}
