package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/universal-funeral/columbary/pkg/types"
)

func openTestBackend(t *testing.T) *Backend {
	t.Helper()
	b, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func TestOpen(t *testing.T) {
	t.Run("creates the data directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "data")
		b, err := Open(dir)
		require.NoError(t, err)
		defer b.Close()

		assert.FileExists(t, filepath.Join(dir, dbFileName))
	})

	t.Run("seeds the demo credential once", func(t *testing.T) {
		dir := t.TempDir()
		ctx := context.Background()

		b, err := Open(dir)
		require.NoError(t, err)
		users, err := b.Select(ctx, types.TableUsers, types.SelectOptions{})
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "admin", users[0].String("username"))
		require.NoError(t, b.Close())

		// Reopening must not duplicate the seed row.
		b, err = Open(dir)
		require.NoError(t, err)
		defer b.Close()
		users, err = b.Select(ctx, types.TableUsers, types.SelectOptions{})
		require.NoError(t, err)
		assert.Len(t, users, 1)
	})

	t.Run("close is idempotent", func(t *testing.T) {
		b, err := Open(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, b.Close())
		assert.NoError(t, b.Close())
	})
}

func TestBackendInsertAndSelect(t *testing.T) {
	b := openTestBackend(t)
	ctx := context.Background()

	inserted, err := b.Insert(ctx, types.TableRecords, []types.Row{
		{
			types.FieldStorageNumber: "A1",
			types.FieldDeceasedName:  "李寶如",
			types.FieldLocation:      "Section A",
		},
		{
			types.FieldStorageNumber: "A2",
			types.FieldDeceasedName:  "韋文(男)",
		},
	})
	require.NoError(t, err)
	require.Len(t, inserted, 2)
	assert.NotEmpty(t, inserted[0].String(types.FieldID))
	assert.NotEmpty(t, inserted[0].String(types.FieldCreatedAt))
	assert.NotEqual(t, inserted[0].String(types.FieldID), inserted[1].String(types.FieldID))

	rows, err := b.Select(ctx, types.TableRecords, types.SelectOptions{})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Unsubmitted optional columns come back as empty strings.
	assert.Equal(t, "", inserted[1].String(types.FieldRenterName))
}

func TestBackendSelect(t *testing.T) {
	b := openTestBackend(t)
	ctx := context.Background()

	_, err := b.Insert(ctx, types.TableLocations, []types.Row{
		{types.FieldName: "Section B", types.FieldDescription: "Secondary area"},
		{types.FieldName: "Section A", types.FieldDescription: "Main area"},
		{types.FieldName: "Annex"},
	})
	require.NoError(t, err)

	t.Run("orders ascending", func(t *testing.T) {
		rows, err := b.Select(ctx, types.TableLocations, types.SelectOptions{OrderBy: types.FieldName})
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "Annex", rows[0].String(types.FieldName))
		assert.Equal(t, "Section A", rows[1].String(types.FieldName))
	})

	t.Run("orders descending", func(t *testing.T) {
		rows, err := b.Select(ctx, types.TableLocations, types.SelectOptions{
			OrderBy:    types.FieldName,
			Descending: true,
		})
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "Section B", rows[0].String(types.FieldName))
	})

	t.Run("equality filter", func(t *testing.T) {
		rows, err := b.Select(ctx, types.TableLocations, types.SelectOptions{
			Equals: map[string]string{types.FieldName: "Annex"},
		})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Annex", rows[0].String(types.FieldName))
	})

	t.Run("unknown table", func(t *testing.T) {
		_, err := b.Select(ctx, "no_such_table", types.SelectOptions{})
		assert.ErrorIs(t, err, types.ErrTableNotFound)
	})

	t.Run("unknown order column", func(t *testing.T) {
		_, err := b.Select(ctx, types.TableLocations, types.SelectOptions{OrderBy: "bogus"})
		assert.Error(t, err)
	})
}

func TestBackendUpdate(t *testing.T) {
	b := openTestBackend(t)
	ctx := context.Background()

	inserted, err := b.Insert(ctx, types.TableRecords, []types.Row{
		{types.FieldStorageNumber: "A1", types.FieldDeceasedName: "Someone"},
	})
	require.NoError(t, err)
	id := inserted[0].String(types.FieldID)

	t.Run("updates only the submitted columns", func(t *testing.T) {
		row, err := b.Update(ctx, types.TableRecords, id, types.Row{
			types.FieldRenterName: "Kun",
		})
		require.NoError(t, err)
		assert.Equal(t, "Kun", row.String(types.FieldRenterName))
		assert.Equal(t, "A1", row.String(types.FieldStorageNumber))
		assert.Equal(t, id, row.String(types.FieldID))
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := b.Update(ctx, types.TableRecords, "missing", types.Row{
			types.FieldRenterName: "Kun",
		})
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := b.Update(ctx, types.TableRecords, "", types.Row{
			types.FieldRenterName: "Kun",
		})
		assert.ErrorIs(t, err, types.ErrInvalidID)
	})
}

func TestBackendDelete(t *testing.T) {
	b := openTestBackend(t)
	ctx := context.Background()

	inserted, err := b.Insert(ctx, types.TableRecords, []types.Row{
		{types.FieldStorageNumber: "A1", types.FieldDeceasedName: "Someone"},
	})
	require.NoError(t, err)
	id := inserted[0].String(types.FieldID)

	require.NoError(t, b.Delete(ctx, types.TableRecords, id))

	rows, err := b.Select(ctx, types.TableRecords, types.SelectOptions{})
	require.NoError(t, err)
	assert.Empty(t, rows)

	// Deleting an absent row is not an error.
	assert.NoError(t, b.Delete(ctx, types.TableRecords, id))

	assert.ErrorIs(t, b.Delete(ctx, types.TableRecords, ""), types.ErrInvalidID)
}
