package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradedesk/backend/internal/domain/catalog"
	"github.com/tradedesk/backend/internal/domain/shared"
)

func newTestCommodity(t *testing.T, name string) *catalog.Commodity {
	t.Helper()
	c, err := catalog.NewCommodity(name, name+" description")
	require.NoError(t, err)
	return c
}

func TestGormCommodityRepository_FindByID(t *testing.T) {
	t.Run("finds saved commodity", func(t *testing.T) {
		repo := NewGormCommodityRepository(newTestDB(t))
		ctx := context.Background()

		c := newTestCommodity(t, "HMS 1&2 (80:20)")
		require.NoError(t, c.SetTradeDefaults("7204.49", catalog.UnitMT, "Taiwan", "In bulk"))
		require.NoError(t, repo.Save(ctx, c))

		found, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "HMS 1&2 (80:20)", found.Name)
		assert.Equal(t, "7204.49", found.HSCode)
		assert.Equal(t, catalog.UnitMT, found.DefaultUnit)
	})

	t.Run("returns not found for unknown ID", func(t *testing.T) {
		repo := NewGormCommodityRepository(newTestDB(t))

		found, err := repo.FindByID(context.Background(), uuid.New())
		assert.Nil(t, found)
		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestGormCommodityRepository_FindAll(t *testing.T) {
	t.Run("hides deactivated commodities by default", func(t *testing.T) {
		repo := NewGormCommodityRepository(newTestDB(t))
		ctx := context.Background()

		require.NoError(t, repo.Save(ctx, newTestCommodity(t, "Steel Billets")))
		retired := newTestCommodity(t, "Retired Grade")
		retired.Deactivate()
		require.NoError(t, repo.Save(ctx, retired))

		commodities, err := repo.FindAll(ctx, shared.DefaultFilter())
		require.NoError(t, err)
		require.Len(t, commodities, 1)
		assert.Equal(t, "Steel Billets", commodities[0].Name)
	})

	t.Run("searches name case-insensitively", func(t *testing.T) {
		repo := NewGormCommodityRepository(newTestDB(t))
		ctx := context.Background()

		require.NoError(t, repo.Save(ctx, newTestCommodity(t, "Shredded Scrap")))
		require.NoError(t, repo.Save(ctx, newTestCommodity(t, "Steel Billets")))

		filter := shared.DefaultFilter()
		filter.Search = "shredded"

		commodities, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		require.Len(t, commodities, 1)
		assert.Equal(t, "Shredded Scrap", commodities[0].Name)
	})
}

func TestGormCommodityRepository_Count(t *testing.T) {
	t.Run("counts active commodities", func(t *testing.T) {
		repo := NewGormCommodityRepository(newTestDB(t))
		ctx := context.Background()

		require.NoError(t, repo.Save(ctx, newTestCommodity(t, "Commodity A")))
		require.NoError(t, repo.Save(ctx, newTestCommodity(t, "Commodity B")))

		count, err := repo.Count(ctx, shared.Filter{})
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}
