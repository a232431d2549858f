package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageRecordValidate(t *testing.T) {
	tests := []struct {
		name    string
		record  StorageRecord
		wantErr error
	}{
		{
			name:   "valid with only required fields",
			record: StorageRecord{StorageNumber: "A1110/76", DeceasedName: "韋文(男)"},
		},
		{
			name:    "missing storage number",
			record:  StorageRecord{DeceasedName: "韋文(男)"},
			wantErr: ErrStorageNumberEmpty,
		},
		{
			name:    "missing deceased name",
			record:  StorageRecord{StorageNumber: "A1110/76"},
			wantErr: ErrDeceasedNameEmpty,
		},
		{
			name:    "both missing reports storage number first",
			record:  StorageRecord{},
			wantErr: ErrStorageNumberEmpty,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestStorageRecordField(t *testing.T) {
	r := StorageRecord{
		ID:                   "42",
		StorageNumber:        "1975-07-08",
		Location:             "Section A",
		DeceasedName:         "李寶如",
		BurialRegisterNumber: "1975-07-08",
		RenterName:           "Kun",
		StorageStartDate:     "1980-03-24",
		RetrievalDate:        "1990-01-15",
		CremationDate:        "1980-03-20",
		CreatedAt:            "2024-01-01T00:00:00Z",
	}

	tests := []struct {
		column string
		want   string
	}{
		{FieldID, "42"},
		{FieldStorageNumber, "1975-07-08"},
		{FieldLocation, "Section A"},
		{FieldDeceasedName, "李寶如"},
		{FieldBurialRegisterNumber, "1975-07-08"},
		{FieldRenterName, "Kun"},
		{FieldStorageStartDate, "1980-03-24"},
		{FieldRetrievalDate, "1990-01-15"},
		{FieldCremationDate, "1980-03-20"},
		{FieldCreatedAt, "2024-01-01T00:00:00Z"},
		{"no_such_column", ""},
	}
	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Field(tt.column))
		})
	}
}

func TestStorageRecordFields(t *testing.T) {
	r := StorageRecord{
		ID:            "42",
		StorageNumber: "A1110/76",
		DeceasedName:  "韋文(男)",
		CreatedAt:     "2024-01-01T00:00:00Z",
	}

	row := r.Fields()

	assert.Equal(t, "A1110/76", row.String(FieldStorageNumber))
	assert.Equal(t, "韋文(男)", row.String(FieldDeceasedName))

	// The backend owns id and created_at; they are never submitted.
	_, hasID := row[FieldID]
	_, hasCreatedAt := row[FieldCreatedAt]
	assert.False(t, hasID)
	assert.False(t, hasCreatedAt)
}

func TestRecordFromRow(t *testing.T) {
	row := Row{
		FieldID:            "abc",
		FieldStorageNumber: "冇紙",
		FieldDeceasedName:  "黃荷芳(女)",
		FieldLocation:      "Section C",
		FieldCreatedAt:     "2024-01-01T00:00:00Z",
	}

	r := RecordFromRow(row)

	assert.Equal(t, "abc", r.ID)
	assert.Equal(t, "冇紙", r.StorageNumber)
	assert.Equal(t, "黃荷芳(女)", r.DeceasedName)
	assert.Equal(t, "Section C", r.Location)
	assert.Equal(t, "2024-01-01T00:00:00Z", r.CreatedAt)
	// Absent columns read as empty strings.
	assert.Empty(t, r.RenterName)
	assert.Empty(t, r.RetrievalDate)
}

func TestRowString(t *testing.T) {
	row := Row{
		"s":   "text",
		"n":   nil,
		"num": 7,
	}

	require.Equal(t, "text", row.String("s"))
	assert.Equal(t, "", row.String("n"))
	assert.Equal(t, "", row.String("missing"))
}
