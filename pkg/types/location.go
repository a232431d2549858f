package types

// Column names of the ashes_locations table.
const (
	FieldName        = "name"
	FieldDescription = "description"
)

// Location is a storage location a record may reference by name.
// Name is intended to be unique but uniqueness is not enforced.
type Location struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

// EntityID returns the location id.
func (l Location) EntityID() string { return l.ID }

// Field returns the string value of the named column.
func (l Location) Field(column string) string {
	switch column {
	case FieldID:
		return l.ID
	case FieldName:
		return l.Name
	case FieldDescription:
		return l.Description
	case FieldCreatedAt:
		return l.CreatedAt
	default:
		return ""
	}
}

// Validate checks that the required name field is non-empty.
func (l Location) Validate() error {
	if l.Name == "" {
		return ErrLocationNameEmpty
	}
	return nil
}

// Fields returns the user-editable columns as a Row.
func (l Location) Fields() Row {
	return Row{
		FieldName:        l.Name,
		FieldDescription: l.Description,
	}
}

// LocationFromRow builds a Location from a gateway row.
func LocationFromRow(row Row) Location {
	return Location{
		ID:          row.String(FieldID),
		Name:        row.String(FieldName),
		Description: row.String(FieldDescription),
		CreatedAt:   row.String(FieldCreatedAt),
	}
}
