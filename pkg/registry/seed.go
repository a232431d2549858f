package registry

import "github.com/universal-funeral/columbary/pkg/types"

// seedCreatedAt keeps the seed datasets identical across sessions.
const seedCreatedAt = "2024-01-01T00:00:00Z"

// SeedRecords returns the demo storage records shown when the gateway is
// unreachable or holds no data.
func SeedRecords() []types.StorageRecord {
	return []types.StorageRecord{
		{
			ID:                   "1",
			StorageNumber:        "1975-07-08",
			Location:             "Section A",
			DeceasedName:         "李寶如",
			BurialRegisterNumber: "1975-07-08",
			RenterName:           "",
			StorageStartDate:     "1980-03-24",
			CreatedAt:            seedCreatedAt,
		},
		{
			ID:                   "2",
			StorageNumber:        "A1110/76",
			Location:             "Section B",
			DeceasedName:         "韋文(男)",
			BurialRegisterNumber: "1976-05-20",
			RenterName:           "Kun",
			StorageStartDate:     "1980-03-24",
			CreatedAt:            seedCreatedAt,
		},
		{
			ID:                   "3",
			StorageNumber:        "冇紙",
			Location:             "Section C",
			DeceasedName:         "黃荷芳(女)",
			BurialRegisterNumber: "1976-06-19",
			RenterName:           "",
			StorageStartDate:     "1980-03-24",
			CreatedAt:            seedCreatedAt,
		},
	}
}

// SeedLocations returns the demo storage locations.
func SeedLocations() []types.Location {
	return []types.Location{
		{ID: "1", Name: "Section A", Description: "Main area", CreatedAt: seedCreatedAt},
		{ID: "2", Name: "Section B", Description: "Secondary area", CreatedAt: seedCreatedAt},
		{ID: "3", Name: "Section C", Description: "Annex", CreatedAt: seedCreatedAt},
	}
}
