package migrations

import (
	"io"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations_UpAndDownPaired(t *testing.T) {
	src, err := iofs.New(files, "sql")
	require.NoError(t, err)
	defer src.Close()

	version, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)

	up, _, err := src.ReadUp(version)
	require.NoError(t, err)
	upSQL, err := io.ReadAll(up)
	require.NoError(t, err)
	up.Close()

	down, _, err := src.ReadDown(version)
	require.NoError(t, err)
	downSQL, err := io.ReadAll(down)
	require.NoError(t, err)
	down.Close()

	for _, table := range []string{"wallets", "lending_pools", "lending_positions", "loans", "transactions"} {
		assert.Contains(t, string(upSQL), "CREATE TABLE IF NOT EXISTS "+table+" (", "up migration must create %s", table)
		assert.Contains(t, strings.ToUpper(string(downSQL)), strings.ToUpper(table), "down migration must drop %s", table)
	}
}

func TestEmbeddedMigrations_ConstraintsPresent(t *testing.T) {
	raw, err := files.ReadFile("sql/000001_init.up.sql")
	require.NoError(t, err)
	ddl := string(raw)

	assert.Contains(t, ddl, "UNIQUE (user_id, token)")
	assert.Contains(t, ddl, "UNIQUE (user_id, pool_id)")
	assert.Contains(t, ddl, "available_liquidity <= total_deposited")
}
