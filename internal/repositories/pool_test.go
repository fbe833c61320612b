package repositories

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-lending-ledger/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolRepository_ListActive(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	first := seedPool(t, db, models.USDT, dec("1000"), true)
	seedPool(t, db, models.ETH, dec("5"), false)
	third := seedPool(t, db, models.BTC, dec("2"), true)

	pools, err := NewPoolRepository(db, nil).ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, pools, 2)
	assert.Equal(t, first.ID, pools[0].ID)
	assert.Equal(t, third.ID, pools[1].ID)
	assert.True(t, dec("8.5").Equal(pools[0].APY))
}

func TestPoolRepository_GetByID(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()
	repo := NewPoolRepository(db, nil)

	pool := seedPool(t, db, models.USDC, dec("10"), true)

	got, err := repo.GetByID(ctx, pool.ID)
	require.NoError(t, err)
	assert.Equal(t, models.USDC, got.Token)
	assert.True(t, dec("10").Equal(got.AvailableLiquidity))

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestPoolRepository_Liquidity(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()
	repo := NewPoolRepository(db, nil)

	pool := seedPool(t, db, models.USDT, dec("0"), true)

	got, err := repo.AddLiquidity(ctx, pool.ID, dec("500"))
	require.NoError(t, err)
	assert.True(t, dec("500").Equal(got.TotalDeposited))
	assert.True(t, dec("500").Equal(got.AvailableLiquidity))

	got, err = repo.RemoveLiquidity(ctx, pool.ID, dec("200"))
	require.NoError(t, err)
	assert.True(t, dec("300").Equal(got.TotalDeposited))
	assert.True(t, dec("300").Equal(got.AvailableLiquidity))

	_, err = repo.RemoveLiquidity(ctx, pool.ID, dec("300.01"))
	assert.ErrorIs(t, err, sql.ErrNoRows)

	got, err = repo.GetByID(ctx, pool.ID)
	require.NoError(t, err)
	assert.True(t, dec("300").Equal(got.AvailableLiquidity))

	_, err = repo.AddLiquidity(ctx, uuid.New(), dec("1"))
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestPoolRepository_ConcurrentRemoveNeverNegative(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()
	repo := NewPoolRepository(db, nil)

	pool := seedPool(t, db, models.USDT, dec("50"), true)

	var wg sync.WaitGroup
	wg.Add(100)
	for i := 0; i < 100; i++ {
		go func() {
			defer wg.Done()
			_, _ = repo.RemoveLiquidity(ctx, pool.ID, dec("1"))
		}()
	}
	wg.Wait()

	got, err := repo.GetByID(ctx, pool.ID)
	require.NoError(t, err)
	assert.True(t, got.AvailableLiquidity.IsZero())
	assert.True(t, got.TotalDeposited.IsZero())
}
