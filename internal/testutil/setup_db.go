package testutil

import (
	"context"
	"fmt"
	"io"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/time"
)

// SetupTestDB starts a Postgres container, waits until it accepts connections, applies
// migrations and returns a gorm handle plus a teardown func. Skipped with -short.
func SetupTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	ctx := context.Background()
	postgresC, err := tcpostgres.Run(ctx,
		"postgres:17-alpine",
		tcpostgres.WithDatabase("wallet_ledger"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("secret"),
	)
	require.NoError(t, err)

	dbURL, err := postgresC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	if err := waitForPostgres(ctx, dbURL); err != nil {
		fmt.Fprintln(os.Stderr, "[testutil] Postgres did not become ready in time. Container logs:")
		if logs, logErr := postgresC.Logs(ctx); logErr == nil {
			_, _ = io.Copy(os.Stderr, logs)
		}
		_ = postgresC.Terminate(ctx)
		require.NoError(t, err, "Postgres did not become ready in time")
	}

	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{
		Logger:                 gormlogger.Discard,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	migrator := migration.NewMigrationManager(db, logger.NewNoopLogger(), timeprovider.NewRealTimeProvider())
	require.NoError(t, migrator.MigrateAll(ctx))

	return db, func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		_ = postgresC.Terminate(ctx)
	}
}

func waitForPostgres(ctx context.Context, dbURL string) error {
	var err error
	for i := 0; i < 20; i++ {
		var pool *pgxpool.Pool
		pool, err = pgxpool.New(ctx, dbURL)
		if err == nil {
			err = pool.Ping(ctx)
			pool.Close()
			if err == nil {
				return nil
			}
		}
		time.Sleep(time.Second)
	}
	return err
}
