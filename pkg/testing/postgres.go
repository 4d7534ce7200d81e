package testing

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/2beens/squadfit/internal/db"
)

// GetDBPool connects to the postgres given by POSTGRES_HOST / POSTGRES_PORT / POSTGRES_DB
// and makes sure the schema is in place.
func GetDBPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	params := db.NewDBPoolParams{
		DBHost: envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort: envOrDefault("POSTGRES_PORT", "5432"),
		DBName: envOrDefault("POSTGRES_DB", "squadfit"),
	}
	t.Logf("using postgres: [%s:%s/%s]", params.DBHost, params.DBPort, params.DBName)

	dbPool, err := db.NewDBPool(ctx, params)
	require.NoError(t, err)
	require.NoError(t, dbPool.Ping(ctx))
	require.NoError(t, db.InitSchema(ctx, dbPool))

	t.Cleanup(dbPool.Close)
	return dbPool
}

// CleanTables empties the service tables, accounts last.
func CleanTables(t *testing.T, dbPool *pgxpool.Pool) {
	t.Helper()
	_, err := dbPool.Exec(context.Background(),
		`TRUNCATE training_event, trainer_plan, trainer_pricing, account RESTART IDENTITY CASCADE`,
	)
	require.NoError(t, err)
}
