package sms

import (
	"context"
	"testing"
	"time"

	"github.com/durgas/budgetai/internal/model"
	"github.com/durgas/budgetai/internal/service"
	"github.com/durgas/budgetai/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupImportStorage(t *testing.T) service.Storage {
	t.Helper()
	store, err := storage.NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	require.NoError(t, store.Migrate(context.Background()))
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestImporter_Import(t *testing.T) {
	ctx := context.Background()

	t.Run("extracts and persists transactions", func(t *testing.T) {
		store := setupImportStorage(t)
		bridge := NewMemoryBridge(testMessages(), true)

		var calls int
		importer := NewImporter(bridge, store,
			WithProgress(func(processed, total int) {
				calls++
				assert.LessOrEqual(t, processed, total)
			}),
			WithNow(func() time.Time { return parseNow }),
		)

		imported, skipped, err := importer.Import(ctx, "", 100)
		require.NoError(t, err)
		assert.Equal(t, 3, imported)
		assert.Equal(t, 1, skipped) // the sent message
		assert.Equal(t, 4, calls)

		saved, err := store.GetTransactions(ctx, service.TransactionFilter{})
		require.NoError(t, err)
		assert.Len(t, saved, 3)
	})

	t.Run("requests permission when missing", func(t *testing.T) {
		store := setupImportStorage(t)
		bridge := NewMemoryBridge(testMessages(), false)
		importer := NewImporter(bridge, store)

		// MemoryBridge grants on request, so the import proceeds.
		imported, _, err := importer.Import(ctx, "debited", 100)
		require.NoError(t, err)
		assert.Equal(t, 2, imported)
	})

	t.Run("body filter narrows the import", func(t *testing.T) {
		store := setupImportStorage(t)
		bridge := NewMemoryBridge(testMessages(), true)
		importer := NewImporter(bridge, store)

		imported, skipped, err := importer.Import(ctx, "swiggy", 100)
		require.NoError(t, err)
		assert.Equal(t, 1, imported)
		assert.Zero(t, skipped)

		saved, err := store.GetTransactions(ctx, service.TransactionFilter{})
		require.NoError(t, err)
		require.Len(t, saved, 1)
		assert.Equal(t, model.CategoryFood, saved[0].Category)
	})

	t.Run("denied permission surfaces the typed failure", func(t *testing.T) {
		store := setupImportStorage(t)
		bridge := &denyingBridge{}
		importer := NewImporter(bridge, store)

		_, _, err := importer.Import(ctx, "", 10)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})
}

// denyingBridge never grants permission, like a user dismissing the prompt.
type denyingBridge struct{}

func (d *denyingBridge) CheckPermission(context.Context) (bool, error) { return false, nil }
func (d *denyingBridge) RequestPermission(context.Context) error       { return nil }
func (d *denyingBridge) QueryMessages(context.Context, string, int, int) ([]Message, error) {
	return nil, ErrPermissionDenied
}
