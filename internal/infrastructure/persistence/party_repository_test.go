package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradedesk/backend/internal/domain/party"
	"github.com/tradedesk/backend/internal/domain/shared"
)

func newTestParty(t *testing.T, partyType party.Type, companyName string) *party.Party {
	t.Helper()
	p, err := party.NewParty(partyType, companyName, "1 Trade Street, Singapore")
	require.NoError(t, err)
	return p
}

func TestGormPartyRepository_FindByID(t *testing.T) {
	t.Run("finds saved party", func(t *testing.T) {
		repo := NewGormPartyRepository(newTestDB(t))
		ctx := context.Background()

		p := newTestParty(t, party.TypeBuyer, "HOMI METAL CO., LTD")
		require.NoError(t, repo.Save(ctx, p))

		found, err := repo.FindByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, p.ID, found.ID)
		assert.Equal(t, "HOMI METAL CO., LTD", found.CompanyName)
		assert.Equal(t, party.TypeBuyer, found.Type)
		assert.True(t, found.IsActive)
	})

	t.Run("returns not found for unknown ID", func(t *testing.T) {
		repo := NewGormPartyRepository(newTestDB(t))

		found, err := repo.FindByID(context.Background(), uuid.New())
		assert.Nil(t, found)
		assert.Equal(t, shared.ErrNotFound, err)
	})

	t.Run("resolves soft-deleted party", func(t *testing.T) {
		repo := NewGormPartyRepository(newTestDB(t))
		ctx := context.Background()

		p := newTestParty(t, party.TypeSeller, "Retired Seller Ltd")
		p.Deactivate()
		require.NoError(t, repo.Save(ctx, p))

		found, err := repo.FindByID(ctx, p.ID)
		require.NoError(t, err)
		assert.False(t, found.IsActive)
	})
}

func TestGormPartyRepository_FindAll(t *testing.T) {
	t.Run("hides deactivated parties by default", func(t *testing.T) {
		repo := NewGormPartyRepository(newTestDB(t))
		ctx := context.Background()

		active := newTestParty(t, party.TypeBuyer, "Active Buyer")
		inactive := newTestParty(t, party.TypeBuyer, "Inactive Buyer")
		inactive.Deactivate()
		require.NoError(t, repo.Save(ctx, active))
		require.NoError(t, repo.Save(ctx, inactive))

		parties, err := repo.FindAll(ctx, shared.DefaultFilter())
		require.NoError(t, err)
		require.Len(t, parties, 1)
		assert.Equal(t, "Active Buyer", parties[0].CompanyName)
	})

	t.Run("includes deactivated parties when asked", func(t *testing.T) {
		repo := NewGormPartyRepository(newTestDB(t))
		ctx := context.Background()

		inactive := newTestParty(t, party.TypeBuyer, "Inactive Buyer")
		inactive.Deactivate()
		require.NoError(t, repo.Save(ctx, inactive))

		filter := shared.DefaultFilter()
		filter.Filters = map[string]interface{}{"is_active": false}

		parties, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		assert.Len(t, parties, 1)
	})

	t.Run("filters by party type", func(t *testing.T) {
		repo := NewGormPartyRepository(newTestDB(t))
		ctx := context.Background()

		require.NoError(t, repo.Save(ctx, newTestParty(t, party.TypeBuyer, "Some Buyer")))
		require.NoError(t, repo.Save(ctx, newTestParty(t, party.TypeSeller, "Some Seller")))

		filter := shared.DefaultFilter()
		filter.Filters = map[string]interface{}{"type": party.TypeSeller}

		parties, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		require.Len(t, parties, 1)
		assert.Equal(t, party.TypeSeller, parties[0].Type)
	})

	t.Run("searches company name case-insensitively", func(t *testing.T) {
		repo := NewGormPartyRepository(newTestDB(t))
		ctx := context.Background()

		require.NoError(t, repo.Save(ctx, newTestParty(t, party.TypeBuyer, "FORMOSA SHYEN HORNG METAL SDN.BHD")))
		require.NoError(t, repo.Save(ctx, newTestParty(t, party.TypeBuyer, "Unrelated Trading")))

		filter := shared.DefaultFilter()
		filter.Search = "formosa"

		parties, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		require.Len(t, parties, 1)
		assert.Equal(t, "FORMOSA SHYEN HORNG METAL SDN.BHD", parties[0].CompanyName)
	})

	t.Run("paginates results", func(t *testing.T) {
		repo := NewGormPartyRepository(newTestDB(t))
		ctx := context.Background()

		for _, name := range []string{"Alpha", "Bravo", "Charlie"} {
			require.NoError(t, repo.Save(ctx, newTestParty(t, party.TypeBuyer, name)))
		}

		filter := shared.Filter{Page: 2, PageSize: 2, OrderBy: "company_name", OrderDir: "asc"}
		parties, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		require.Len(t, parties, 1)
		assert.Equal(t, "Charlie", parties[0].CompanyName)
	})

	t.Run("falls back to default ordering for unknown order_by", func(t *testing.T) {
		repo := NewGormPartyRepository(newTestDB(t))
		ctx := context.Background()

		require.NoError(t, repo.Save(ctx, newTestParty(t, party.TypeBuyer, "Bravo")))
		require.NoError(t, repo.Save(ctx, newTestParty(t, party.TypeBuyer, "Alpha")))

		filter := shared.Filter{
			Page:     1,
			PageSize: 20,
			OrderBy:  "company_name; DELETE FROM parties",
			OrderDir: "asc",
		}
		parties, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		require.Len(t, parties, 2)
		assert.Equal(t, "Alpha", parties[0].CompanyName)
	})
}

func TestGormPartyRepository_FindByIDs(t *testing.T) {
	t.Run("finds multiple parties", func(t *testing.T) {
		repo := NewGormPartyRepository(newTestDB(t))
		ctx := context.Background()

		p1 := newTestParty(t, party.TypeBuyer, "Buyer One")
		p2 := newTestParty(t, party.TypeSeller, "Seller One")
		require.NoError(t, repo.Save(ctx, p1))
		require.NoError(t, repo.Save(ctx, p2))

		parties, err := repo.FindByIDs(ctx, []uuid.UUID{p1.ID, p2.ID})
		require.NoError(t, err)
		assert.Len(t, parties, 2)
	})

	t.Run("returns empty slice for empty IDs", func(t *testing.T) {
		repo := NewGormPartyRepository(newTestDB(t))

		parties, err := repo.FindByIDs(context.Background(), []uuid.UUID{})
		assert.NoError(t, err)
		assert.Empty(t, parties)
	})
}

func TestGormPartyRepository_Save(t *testing.T) {
	t.Run("updates existing party", func(t *testing.T) {
		repo := NewGormPartyRepository(newTestDB(t))
		ctx := context.Background()

		p := newTestParty(t, party.TypeBuyer, "Original Name")
		require.NoError(t, repo.Save(ctx, p))

		require.NoError(t, p.Update("Updated Name", p.Address))
		require.NoError(t, repo.Save(ctx, p))

		found, err := repo.FindByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "Updated Name", found.CompanyName)

		count, err := repo.Count(ctx, shared.Filter{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestGormPartyRepository_Count(t *testing.T) {
	t.Run("counts active parties", func(t *testing.T) {
		repo := NewGormPartyRepository(newTestDB(t))
		ctx := context.Background()

		require.NoError(t, repo.Save(ctx, newTestParty(t, party.TypeBuyer, "Buyer A")))
		inactive := newTestParty(t, party.TypeBuyer, "Buyer B")
		inactive.Deactivate()
		require.NoError(t, repo.Save(ctx, inactive))

		count, err := repo.Count(ctx, shared.Filter{})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}
