package types

import (
	"context"
	"errors"
)

// Standard table names on the remote backend.
const (
	TableRecords   = "ashes_storage"
	TableLocations = "ashes_locations"
	TableUsers     = "app_users"
)

// Row is a single table row keyed by column name, as decoded from the
// gateway's JSON payloads. Absent optional columns may be missing or nil.
type Row map[string]any

// String returns the string value of a column. Missing columns and JSON
// nulls read as the empty string.
func (r Row) String(column string) string {
	v, ok := r[column]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

// SelectOptions narrows and orders a Select call.
type SelectOptions struct {
	OrderBy    string            // column to order by; empty means backend default
	Descending bool              // order direction
	Equals     map[string]string // equality filters, column -> value
}

// Gateway provides CRUD access to the remote backend, addressable by table
// name. Implementations must be safe for use from a single logical caller;
// the registry serializes access on its side.
type Gateway interface {
	// Select returns all rows of the table matching opts.Equals (all rows
	// when empty), ordered per opts.
	Select(ctx context.Context, table string, opts SelectOptions) ([]Row, error)

	// Insert stores the given rows and returns them as stored, with
	// backend-assigned id and created_at columns filled in.
	Insert(ctx context.Context, table string, rows []Row) ([]Row, error)

	// Update overwrites the given columns of the row with the given id and
	// returns the updated row. Returns ErrNotFound if no row has that id.
	Update(ctx context.Context, table, id string, fields Row) (Row, error)

	// Delete removes the row with the given id.
	Delete(ctx context.Context, table, id string) error
}

// Gateway operation errors.
var (
	ErrNotFound      = errors.New("entity not found")
	ErrInvalidID     = errors.New("invalid entity ID")
	ErrTableNotFound = errors.New("table not found")
)
