package repository_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/config"
	"github.com/bilgiteknoresmi-prog/3d-baski-studio/internal/storage/db"
)

var errRollback = errors.New("rollback")

// withTestTx runs fn inside a transaction that is always rolled back, so tests
// never see each other's rows. Requires TEST_DATABASE_URL.
func withTestTx(t *testing.T, fn func(ctx context.Context, tx db.DB)) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" || testing.Short() {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	pool, err := db.NewPgxPool(ctx, config.Postgres{URL: dsn, MaxConns: 2})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, db.Migrate(pool))

	client := db.NewClient(pool)
	err = client.WithTx(ctx, func(tx db.DB) error {
		fn(ctx, tx)
		return errRollback
	})
	require.ErrorIs(t, err, errRollback)
}
