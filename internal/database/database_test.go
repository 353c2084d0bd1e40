package database

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_InMemoryAppliesMigrations(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM asset").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	assert.NoError(t, HealthCheck(db))
}

func TestMigrate_IsIdempotent(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	assert.NoError(t, Migrate(db))
}

func TestOpen_ConcurrentDatabases(t *testing.T) {
	for i := 0; i < 4; i++ {
		t.Run(fmt.Sprintf("db %d", i), func(t *testing.T) {
			t.Parallel()

			db, err := Open(":memory:")
			require.NoError(t, err)
			t.Cleanup(func() { db.Close() })

			_, err = db.Exec("INSERT INTO asset (id, name, type, quantity, invested_amount, current_price, purchase_date) VALUES (?, 'OT', 'TREASURY_BOND', 1, 1, 1, '2024-01-01')", fmt.Sprint(i))
			require.NoError(t, err)

			var count int
			require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM asset").Scan(&count))
			assert.Equal(t, 1, count, "each in-memory database is separate")
		})
	}
}
