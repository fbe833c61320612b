package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-lending-ledger/internal/logger"
	"github.com/sbilibin2017/gw-lending-ledger/internal/migrations"
	"github.com/sbilibin2017/gw-lending-ledger/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupPostgres starts a disposable postgres container with the schema applied.
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	logger.Initialize("debug")
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())
	db, err := sqlx.Connect("pgx", dsn)
	require.NoError(t, err)

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	require.NoError(t, migrations.Up(db.DB))

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

func seedPool(t *testing.T, db *sqlx.DB, token string, liquidity decimal.Decimal, active bool) *models.LendingPool {
	t.Helper()
	pool := &models.LendingPool{
		Token:              token,
		APY:                decimal.RequireFromString("8.5"),
		TotalDeposited:     liquidity,
		AvailableLiquidity: liquidity,
		RiskLevel:          models.RiskLow,
		IsActive:           active,
	}
	require.NoError(t, NewPoolRepository(db, nil).Create(context.Background(), pool))
	return pool
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newUser() uuid.UUID {
	return uuid.New()
}
