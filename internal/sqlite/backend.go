// Package sqlite implements the types.Gateway interface over a local
// SQLite database, for deployments with no hosted backend. It provides
// the same select/insert/update/delete surface as the remote gateway.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/universal-funeral/columbary/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// dbFileName is the database file created under the data directory.
const dbFileName = "columbary.db"

// editableColumns lists the caller-writable columns per table. Insert and
// update accept only these; id and created_at are owned by the backend.
var editableColumns = map[string][]string{
	types.TableRecords: {
		types.FieldStorageNumber,
		types.FieldLocation,
		types.FieldDeceasedName,
		types.FieldBurialRegisterNumber,
		types.FieldRenterName,
		types.FieldStorageStartDate,
		types.FieldRetrievalDate,
		types.FieldCremationDate,
	},
	types.TableLocations: {
		types.FieldName,
		types.FieldDescription,
	},
	types.TableUsers: {
		"username",
		"password",
	},
}

// Backend implements types.Gateway over a local SQLite database.
type Backend struct {
	mu sync.RWMutex
	db *sql.DB
}

// Open creates the data directory if needed, opens the database, applies
// the schema, and seeds the default credential on first run.
func Open(dataDir string) (*Backend, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	if err := seedDefaultUser(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed users: %w", err)
	}
	return &Backend{db: db}, nil
}

// Close releases the database handle. Idempotent.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.db == nil {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	return err
}

// Select returns the table's rows matching opts.Equals, ordered per opts.
func (b *Backend) Select(ctx context.Context, table string, opts types.SelectOptions) ([]types.Row, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	columns, err := allColumns(table)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT %s FROM %s", strings.Join(columns, ", "), table)

	var args []any
	if len(opts.Equals) > 0 {
		var conds []string
		for column, value := range opts.Equals {
			if !knownColumn(table, column) {
				return nil, fmt.Errorf("unknown filter column %q", column)
			}
			conds = append(conds, column+" = ?")
			args = append(args, value)
		}
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	if opts.OrderBy != "" {
		if !knownColumn(table, opts.OrderBy) {
			return nil, fmt.Errorf("unknown order column %q", opts.OrderBy)
		}
		dir := "ASC"
		if opts.Descending {
			dir = "DESC"
		}
		fmt.Fprintf(&sb, " ORDER BY %s %s", opts.OrderBy, dir)
	}

	rows, err := b.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []types.Row
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(types.Row, len(columns))
		for i, column := range columns {
			switch v := values[i].(type) {
			case string:
				row[column] = v
			case []byte:
				row[column] = string(v)
			case nil:
				row[column] = ""
			default:
				row[column] = fmt.Sprint(v)
			}
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// Insert stores the rows with generated ids and timestamps and returns
// them as stored, in input order.
func (b *Backend) Insert(ctx context.Context, table string, rows []types.Row) ([]types.Row, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	editable, ok := editableColumns[table]
	if !ok {
		return nil, types.ErrTableNotFound
	}

	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	columns := append([]string{types.FieldID}, editable...)
	columns = append(columns, types.FieldCreatedAt)
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(columns, ", "), placeholders)

	inserted := make([]types.Row, 0, len(rows))
	for _, row := range rows {
		id := newID()
		createdAt := time.Now().UTC().Format(time.RFC3339)

		args := make([]any, 0, len(columns))
		args = append(args, id)
		stored := types.Row{types.FieldID: id, types.FieldCreatedAt: createdAt}
		for _, column := range editable {
			value := row.String(column)
			args = append(args, value)
			stored[column] = value
		}
		args = append(args, createdAt)

		if _, err := tx.ExecContext(ctx, stmt, args...); err != nil {
			return nil, fmt.Errorf("insert into %s: %w", table, err)
		}
		inserted = append(inserted, stored)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return inserted, nil
}

// Update overwrites the given columns of the row with the given id and
// returns the full updated row. Returns ErrNotFound for an unknown id.
func (b *Backend) Update(ctx context.Context, table, id string, fields types.Row) (types.Row, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	b.mu.Lock()

	editable, ok := editableColumns[table]
	if !ok {
		b.mu.Unlock()
		return nil, types.ErrTableNotFound
	}

	var sets []string
	var args []any
	for _, column := range editable {
		if _, ok := fields[column]; !ok {
			continue
		}
		sets = append(sets, column+" = ?")
		args = append(args, fields.String(column))
	}
	if len(sets) == 0 {
		b.mu.Unlock()
		return nil, fmt.Errorf("no updatable columns for %s", table)
	}
	args = append(args, id)

	stmt := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", table, strings.Join(sets, ", "))
	res, err := b.db.ExecContext(ctx, stmt, args...)
	if err != nil {
		b.mu.Unlock()
		return nil, err
	}
	affected, err := res.RowsAffected()
	b.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, types.ErrNotFound
	}

	rows, err := b.Select(ctx, table, types.SelectOptions{Equals: map[string]string{types.FieldID: id}})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, types.ErrNotFound
	}
	return rows[0], nil
}

// Delete removes the row with the given id. Deleting an id that does not
// exist succeeds, matching the remote gateway's semantics.
func (b *Backend) Delete(ctx context.Context, table, id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := editableColumns[table]; !ok {
		return types.ErrTableNotFound
	}
	_, err := b.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = ?", table), id)
	return err
}

// allColumns returns the full column list for the table, id first.
func allColumns(table string) ([]string, error) {
	editable, ok := editableColumns[table]
	if !ok {
		return nil, types.ErrTableNotFound
	}
	columns := append([]string{types.FieldID}, editable...)
	return append(columns, types.FieldCreatedAt), nil
}

// knownColumn reports whether the column exists on the table.
func knownColumn(table, column string) bool {
	if column == types.FieldID || column == types.FieldCreatedAt {
		return true
	}
	for _, c := range editableColumns[table] {
		if c == column {
			return true
		}
	}
	return false
}

// seedDefaultUser inserts the demo credential when the users table is
// empty, so a fresh local database accepts the same login as demo mode.
func seedDefaultUser(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM app_users").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err := db.Exec(
		"INSERT INTO app_users (id, username, password, created_at) VALUES (?, ?, ?, ?)",
		newID(), "admin", "admin123", time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// newID generates a UUID v7 string.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
