package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	t.Run("in-memory database", func(t *testing.T) {
		db, err := Initialize(":memory:", false)
		require.NoError(t, err)
		defer db.Close()

		assert.NoError(t, db.HealthCheck())
	})

	t.Run("creates database directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "reports.db")
		db, err := Initialize(path, false)
		require.NoError(t, err)
		defer db.Close()

		assert.FileExists(t, path)
	})
}

func TestHealthCheckAfterClose(t *testing.T) {
	db, err := Initialize(":memory:", false)
	require.NoError(t, err)

	require.NoError(t, db.Close())
	assert.Error(t, db.HealthCheck())
}
