package types

// Column names of the ashes_storage table. These double as sort keys in the
// query pipeline and as Row keys on the gateway.
const (
	FieldID                   = "id"
	FieldStorageNumber        = "storage_number"
	FieldLocation             = "location"
	FieldDeceasedName         = "deceased_name"
	FieldBurialRegisterNumber = "burial_register_number"
	FieldRenterName           = "renter_name"
	FieldStorageStartDate     = "storage_start_date"
	FieldRetrievalDate        = "retrieval_date"
	FieldCremationDate        = "cremation_date"
	FieldCreatedAt            = "created_at"
)

// StorageRecord is one ashes-storage entry. Date columns hold ISO
// yyyy-MM-dd strings or the empty string when absent; no ordering among
// the three dates is enforced. Location is free text, not a foreign key.
type StorageRecord struct {
	ID                   string `json:"id"`
	StorageNumber        string `json:"storage_number"`
	Location             string `json:"location"`
	DeceasedName         string `json:"deceased_name"`
	BurialRegisterNumber string `json:"burial_register_number"`
	RenterName           string `json:"renter_name"`
	StorageStartDate     string `json:"storage_start_date"`
	RetrievalDate        string `json:"retrieval_date"`
	CremationDate        string `json:"cremation_date"`
	CreatedAt            string `json:"created_at"` // RFC 3339, set at creation, immutable
}

// EntityID returns the record id.
func (r StorageRecord) EntityID() string { return r.ID }

// Field returns the string value of the named column.
// Unknown columns read as the empty string.
func (r StorageRecord) Field(column string) string {
	switch column {
	case FieldID:
		return r.ID
	case FieldStorageNumber:
		return r.StorageNumber
	case FieldLocation:
		return r.Location
	case FieldDeceasedName:
		return r.DeceasedName
	case FieldBurialRegisterNumber:
		return r.BurialRegisterNumber
	case FieldRenterName:
		return r.RenterName
	case FieldStorageStartDate:
		return r.StorageStartDate
	case FieldRetrievalDate:
		return r.RetrievalDate
	case FieldCremationDate:
		return r.CremationDate
	case FieldCreatedAt:
		return r.CreatedAt
	default:
		return ""
	}
}

// Validate checks the required fields. Storage number and deceased name
// must both be non-empty before a create or update is accepted.
func (r StorageRecord) Validate() error {
	if r.StorageNumber == "" {
		return ErrStorageNumberEmpty
	}
	if r.DeceasedName == "" {
		return ErrDeceasedNameEmpty
	}
	return nil
}

// Fields returns the user-editable columns as a Row, the shape submitted on
// create and update. Id and created_at are owned by the backend.
func (r StorageRecord) Fields() Row {
	return Row{
		FieldStorageNumber:        r.StorageNumber,
		FieldLocation:             r.Location,
		FieldDeceasedName:         r.DeceasedName,
		FieldBurialRegisterNumber: r.BurialRegisterNumber,
		FieldRenterName:           r.RenterName,
		FieldStorageStartDate:     r.StorageStartDate,
		FieldRetrievalDate:        r.RetrievalDate,
		FieldCremationDate:        r.CremationDate,
	}
}

// RecordFromRow builds a StorageRecord from a gateway row.
func RecordFromRow(row Row) StorageRecord {
	return StorageRecord{
		ID:                   row.String(FieldID),
		StorageNumber:        row.String(FieldStorageNumber),
		Location:             row.String(FieldLocation),
		DeceasedName:         row.String(FieldDeceasedName),
		BurialRegisterNumber: row.String(FieldBurialRegisterNumber),
		RenterName:           row.String(FieldRenterName),
		StorageStartDate:     row.String(FieldStorageStartDate),
		RetrievalDate:        row.String(FieldRetrievalDate),
		CremationDate:        row.String(FieldCremationDate),
		CreatedAt:            row.String(FieldCreatedAt),
	}
}
