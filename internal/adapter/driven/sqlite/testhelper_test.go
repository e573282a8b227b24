package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// setupTestDB returns a migrated in-memory database private to the test.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewMemoryDB(context.Background(), t.Name())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = Migrate(db)
	require.NoError(t, err)

	return db
}
