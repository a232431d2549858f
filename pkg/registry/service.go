package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/universal-funeral/columbary/pkg/types"
)

// Login and import errors surfaced to the user.
var (
	ErrInvalidLogin = errors.New("invalid login name or password")

	// ErrNoValidRecords is returned when every imported CSV row is missing
	// a required column.
	ErrNoValidRecords = errors.New(`no valid records found in CSV: ensure "Storage Number" and "Deceased Name" are present`)
)

// Demo credential accepted when the users table is unreachable or empty.
const (
	fallbackUser     = "admin"
	fallbackPassword = "admin123"
)

// Service bundles the two reconciled collections over one gateway and the
// operations that span them (refresh, login, CSV import).
type Service struct {
	gw  types.Gateway
	log zerolog.Logger

	Records   *Collection[types.StorageRecord]
	Locations *Collection[types.Location]
}

// New builds a Service over the given gateway.
func New(gw types.Gateway, log zerolog.Logger) *Service {
	return &Service{
		gw:  gw,
		log: log,
		Records: NewCollection(gw, log, Spec[types.StorageRecord]{
			Table:      types.TableRecords,
			OrderBy:    types.FieldCreatedAt,
			Descending: true,
			Seed:       SeedRecords(),
			FromRow:    types.RecordFromRow,
			Fields:     types.StorageRecord.Fields,
			Validate:   types.StorageRecord.Validate,
		}),
		Locations: NewCollection(gw, log, Spec[types.Location]{
			Table:    types.TableLocations,
			OrderBy:  types.FieldName,
			Seed:     SeedLocations(),
			FromRow:  types.LocationFromRow,
			Fields:   types.Location.Fields,
			Validate: types.Location.Validate,
		}),
	}
}

// Refresh reloads both collections from the gateway.
func (s *Service) Refresh(ctx context.Context) {
	s.Records.Refresh(ctx)
	s.Locations.Refresh(ctx)
}

// Connected reports whether a record refresh has ever seen real backend
// data. Used only for the demo-mode banner.
func (s *Service) Connected() bool {
	return s.Records.Connected()
}

// Login checks the credential against the users table with an equality
// filter. When the table is unreachable or holds no matching row, the
// hardcoded demo credential is accepted instead.
func (s *Service) Login(ctx context.Context, username, password string) error {
	rows, err := s.gw.Select(ctx, types.TableUsers, types.SelectOptions{
		Equals: map[string]string{"username": username, "password": password},
	})
	if err == nil && len(rows) > 0 {
		return nil
	}
	if username == fallbackUser && password == fallbackPassword {
		return nil
	}
	if err != nil {
		s.log.Warn().Err(err).Msg("login lookup failed")
		return fmt.Errorf("login failed: %w", err)
	}
	return ErrInvalidLogin
}

// ImportRecords filters out rows missing a required field and batch-inserts
// the survivors through the gateway. The whole import is rejected with
// ErrNoValidRecords when nothing survives filtering. Unlike single-record
// operations there is no local fallback: a gateway failure adds nothing and
// is returned to the caller.
func (s *Service) ImportRecords(ctx context.Context, records []types.StorageRecord) ([]types.StorageRecord, error) {
	valid := make([]types.StorageRecord, 0, len(records))
	for _, r := range records {
		if r.Validate() != nil {
			continue
		}
		valid = append(valid, r)
	}
	if len(valid) == 0 {
		return nil, ErrNoValidRecords
	}
	return s.Records.BulkCreate(ctx, valid)
}
