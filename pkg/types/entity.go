package types

import "errors"

// Entity is implemented by both record kinds managed by the registry.
// Field gives uniform string access to columns for filtering, sorting,
// and CSV serialization; absent values read as the empty string.
type Entity interface {
	EntityID() string
	Field(column string) string
}

// Validation errors for entity required fields.
var (
	ErrStorageNumberEmpty = errors.New("storage number must not be empty")
	ErrDeceasedNameEmpty  = errors.New("deceased name must not be empty")
	ErrLocationNameEmpty  = errors.New("location name must not be empty")
)
