// Package query implements the pure filter/sort/paginate pipeline over
// in-memory collections. Nothing here mutates its input; every function
// returns fresh slices so callers can keep snapshots.
package query

import (
	"sort"
	"strings"

	"github.com/universal-funeral/columbary/pkg/types"
)

// PageSize is the fixed number of rows per page.
const PageSize = 10

// RecordFilter is the filter spec for storage records. All active
// predicates must hold for a row to match; empty predicates are inactive.
type RecordFilter struct {
	Text     string // case-insensitive substring over deceased name, storage number, renter name
	Location string // exact match against location
	Date     string // substring of storage start date (supports year or year-month prefixes)
}

// Match reports whether the record satisfies every active predicate.
func (f RecordFilter) Match(r types.StorageRecord) bool {
	if f.Text != "" {
		needle := strings.ToLower(f.Text)
		if !strings.Contains(strings.ToLower(r.DeceasedName), needle) &&
			!strings.Contains(strings.ToLower(r.StorageNumber), needle) &&
			!strings.Contains(strings.ToLower(r.RenterName), needle) {
			return false
		}
	}
	if f.Location != "" && r.Location != f.Location {
		return false
	}
	if f.Date != "" {
		if r.StorageStartDate == "" || !strings.Contains(r.StorageStartDate, f.Date) {
			return false
		}
	}
	return true
}

// LocationFilter is the filter spec for locations.
type LocationFilter struct {
	Name string // case-insensitive substring over name
}

// Match reports whether the location matches the name predicate.
func (f LocationFilter) Match(l types.Location) bool {
	if f.Name == "" {
		return true
	}
	return strings.Contains(strings.ToLower(l.Name), strings.ToLower(f.Name))
}

// Filter returns the rows matching the predicate, in input order.
func Filter[T any](items []T, match func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if match(it) {
			out = append(out, it)
		}
	}
	return out
}

// Sort is a single-key sort spec. A zero Sort (empty Key) leaves the
// collection in its prior order.
type Sort struct {
	Key        string
	Descending bool
}

// Toggle returns the sort spec after clicking the given key: the same key
// flips direction, a new key resets to ascending.
func (s Sort) Toggle(key string) Sort {
	if s.Key == key {
		return Sort{Key: key, Descending: !s.Descending}
	}
	return Sort{Key: key}
}

// Apply returns the items ordered by the sort key's string representation.
// Absent values compare as the empty string. The sort is stable: ties keep
// their relative order from the input. An empty key returns a plain copy.
func Apply[T types.Entity](items []T, s Sort) []T {
	out := make([]T, len(items))
	copy(out, items)
	if s.Key == "" {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Field(s.Key), out[j].Field(s.Key)
		if s.Descending {
			return a > b
		}
		return a < b
	})
	return out
}

// Paginate slices one page out of the collection and returns it together
// with the total page count. The page count is at least 1 even for an empty
// collection; the page number is clamped into the valid range.
func Paginate[T any](items []T, page, pageSize int) ([]T, int) {
	if pageSize <= 0 {
		pageSize = PageSize
	}
	totalPages := (len(items) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}, totalPages
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], totalPages
}
