package migrate_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmart-ke/farmart-backend/internal/migrate"
	"github.com/farmart-ke/farmart-backend/internal/testutils"
)

var allTables = []string{"users", "farmers", "buyers", "animals", "orders", "wishlists", "audit_logs"}

// TestMigrationRoundTrip drives the runner through a full cycle against a
// real Postgres: down to zero, up, single rollback, and a nuclear reset.
func TestMigrationRoundTrip(t *testing.T) {
	db, cleanup := testutils.SetupPostgresForIntegration()
	defer cleanup()

	runner, err := migrate.NewRunner(db)
	require.NoError(t, err, "create runner")

	ctx := context.Background()

	// Setup already migrated up. Start from a known version.
	version, err := runner.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(6), version)
	for _, table := range allTables {
		assertTablePresence(t, db, table, true)
	}

	// Down to zero removes everything.
	require.NoError(t, runner.DownTo(ctx, 0))
	for _, table := range allTables {
		assertTablePresence(t, db, table, false)
	}

	// Up restores the full schema.
	require.NoError(t, runner.Up(ctx))
	version, err = runner.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(6), version)

	// A single Down only rolls back the newest migration.
	require.NoError(t, runner.Down(ctx))
	version, err = runner.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), version)
	assertTablePresence(t, db, "audit_logs", false)
	assertTablePresence(t, db, "users", true)

	require.NoError(t, runner.Up(ctx))

	// Reset drops the schema wholesale and rebuilds it.
	require.NoError(t, runner.Reset(ctx))
	version, err = runner.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(6), version)
	for _, table := range allTables {
		assertTablePresence(t, db, table, true)
	}

	// Status only reads bookkeeping; it must not error on a migrated DB.
	require.NoError(t, runner.Status(ctx))
}

func assertTablePresence(t *testing.T, db *sql.DB, table string, shouldExist bool) {
	t.Helper()

	const q = `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = 'public'
			AND   table_name   = $1
		)`
	var exists bool
	err := db.QueryRowContext(context.Background(), q, table).Scan(&exists)
	require.NoError(t, err, "check table existence for %q", table)

	if shouldExist {
		assert.True(t, exists, "expected table %q to exist", table)
	} else {
		assert.False(t, exists, "expected table %q to not exist", table)
	}
}
