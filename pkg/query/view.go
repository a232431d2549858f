package query

import "github.com/universal-funeral/columbary/pkg/types"

// View holds the browsing state for one collection: the applied filter, the
// sort spec, and the current page. State transitions mirror the UI rules:
// applying a filter or clicking a sort key resets to page 1, while page
// navigation leaves the filter untouched.
type View[T types.Entity] struct {
	match func(T) bool
	sort  Sort
	page  int
}

// NewView returns a view with no filter, no sort, on page 1.
func NewView[T types.Entity]() *View[T] {
	return &View[T]{page: 1}
}

// SetFilter applies a new filter predicate and resets to page 1.
// A nil predicate clears the filter.
func (v *View[T]) SetFilter(match func(T) bool) {
	v.match = match
	v.page = 1
}

// ClickSort applies a sort key click (toggle on same key, ascending on a
// new key) and resets to page 1.
func (v *View[T]) ClickSort(key string) {
	v.sort = v.sort.Toggle(key)
	v.page = 1
}

// SetSort replaces the sort spec outright and resets to page 1.
func (v *View[T]) SetSort(s Sort) {
	v.sort = s
	v.page = 1
}

// SetPage navigates to the given page. Clamping to the valid range happens
// when the page is rendered, so navigation never re-runs filtering.
func (v *View[T]) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	v.page = page
}

// Page returns the current page number.
func (v *View[T]) Page() int { return v.page }

// Sort returns the current sort spec.
func (v *View[T]) Sort() Sort { return v.sort }

// Filtered returns the filtered, sorted collection without pagination.
// This is the row set the CSV export serializes.
func (v *View[T]) Filtered(items []T) []T {
	if v.match != nil {
		items = Filter(items, v.match)
	}
	return Apply(items, v.sort)
}

// Visible returns the rows of the current page and the total page count.
func (v *View[T]) Visible(items []T) ([]T, int) {
	return Paginate(v.Filtered(items), v.page, PageSize)
}
