package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationValidate(t *testing.T) {
	tests := []struct {
		name     string
		location Location
		wantErr  error
	}{
		{
			name:     "valid",
			location: Location{Name: "Section A", Description: "Main area"},
		},
		{
			name:     "description optional",
			location: Location{Name: "Section D"},
		},
		{
			name:     "missing name",
			location: Location{Description: "orphan"},
			wantErr:  ErrLocationNameEmpty,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.location.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestLocationField(t *testing.T) {
	l := Location{ID: "2", Name: "Section B", Description: "Secondary area", CreatedAt: "2024-01-01T00:00:00Z"}

	assert.Equal(t, "2", l.Field(FieldID))
	assert.Equal(t, "Section B", l.Field(FieldName))
	assert.Equal(t, "Secondary area", l.Field(FieldDescription))
	assert.Equal(t, "2024-01-01T00:00:00Z", l.Field(FieldCreatedAt))
	assert.Equal(t, "", l.Field("no_such_column"))
}

func TestLocationFieldsAndFromRow(t *testing.T) {
	l := Location{ID: "2", Name: "Section B", Description: "Secondary area"}

	row := l.Fields()
	assert.Equal(t, Row{FieldName: "Section B", FieldDescription: "Secondary area"}, row)

	row[FieldID] = "2"
	row[FieldCreatedAt] = "2024-01-01T00:00:00Z"
	got := LocationFromRow(row)
	assert.Equal(t, "2", got.ID)
	assert.Equal(t, "Section B", got.Name)
	assert.Equal(t, "2024-01-01T00:00:00Z", got.CreatedAt)
}
