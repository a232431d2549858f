// Package csvcodec serializes storage records to CSV and parses CSV files
// back into records. The column set and header spellings are fixed; import
// matches columns by exact header text and ignores anything unrecognized.
package csvcodec

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/universal-funeral/columbary/pkg/types"
)

// Headers is the fixed export column order. Import recognizes the same
// spellings.
var Headers = []string{
	"Storage Number",
	"Location",
	"Deceased Name",
	"Burial Register Number",
	"Renter Name",
	"Storage Start Date",
	"Retrieval Date",
	"Cremation Date",
}

// headerFields maps header text to the backing column name.
var headerFields = map[string]string{
	"Storage Number":         types.FieldStorageNumber,
	"Location":               types.FieldLocation,
	"Deceased Name":          types.FieldDeceasedName,
	"Burial Register Number": types.FieldBurialRegisterNumber,
	"Renter Name":            types.FieldRenterName,
	"Storage Start Date":     types.FieldStorageStartDate,
	"Retrieval Date":         types.FieldRetrievalDate,
	"Cremation Date":         types.FieldCremationDate,
}

// ErrParse reports a malformed CSV file. The import is aborted entirely;
// there is no partial acceptance.
var ErrParse = errors.New("failed to parse CSV file")

// WriteRecords serializes the records to comma-separated text with a header
// row. Absent optional fields render as empty strings.
func WriteRecords(w io.Writer, records []types.StorageRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Headers); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	row := make([]string, len(Headers))
	for _, r := range records {
		for i, h := range Headers {
			row[i] = r.Field(headerFields[h])
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportFileName returns the download file name for an export taken at the
// given time, to minute granularity.
func ExportFileName(t time.Time) string {
	return fmt.Sprintf("ashes_records_%s.csv", t.Format("20060102_1504"))
}

// ReadRecords parses comma-separated text with a mandatory header row into
// records, one per data row. Blank lines are skipped and columns not in the
// fixed header set are ignored. Returns ErrParse (wrapped) when the text is
// not well-formed CSV.
func ReadRecords(r io.Reader) ([]types.StorageRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows read as missing columns

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: missing header row", ErrParse)
		}
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	// Column index by backing field name, only for recognized headers.
	index := make(map[string]int, len(header))
	for i, h := range header {
		if field, ok := headerFields[h]; ok {
			index[field] = i
		}
	}

	get := func(rec []string, field string) string {
		i, ok := index[field]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	var records []types.StorageRecord
	for {
		rec, err := cr.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		records = append(records, types.StorageRecord{
			StorageNumber:        get(rec, types.FieldStorageNumber),
			Location:             get(rec, types.FieldLocation),
			DeceasedName:         get(rec, types.FieldDeceasedName),
			BurialRegisterNumber: get(rec, types.FieldBurialRegisterNumber),
			RenterName:           get(rec, types.FieldRenterName),
			StorageStartDate:     get(rec, types.FieldStorageStartDate),
			RetrievalDate:        get(rec, types.FieldRetrievalDate),
			CremationDate:        get(rec, types.FieldCremationDate),
		})
	}
	return records, nil
}
