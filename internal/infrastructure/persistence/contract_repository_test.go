package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradedesk/backend/internal/domain/contract"
	"github.com/tradedesk/backend/internal/domain/party"
	"github.com/tradedesk/backend/internal/domain/shared"
)

func newTestContract(t *testing.T, number string, buyerID uuid.UUID) *contract.Contract {
	t.Helper()
	c, err := contract.NewContract(contract.NewContractParams{
		ContractNumber: number,
		Draft: contract.Draft{
			BuyerID:       buyerID,
			SellerID:      uuid.New(),
			CommodityID:   uuid.New(),
			PaymentTermID: uuid.New(),
			BankDetailsID: uuid.New(),
			Quantity:      decimal.NewFromInt(100),
			UnitPrice:     decimal.NewFromInt(10),
			Incoterm:      "CIF",
			PortLocation:  "Port Klang, Malaysia",
		},
		CommodityDescription: "HMS 1&2 (80:20)",
		Packing:              "In bulk",
		PaymentTermText:      "100% T/T against copy of B/L",
	})
	require.NoError(t, err)
	return c
}

func TestGormContractRepository_FindByID(t *testing.T) {
	t.Run("round-trips a full contract", func(t *testing.T) {
		repo := NewGormContractRepository(newTestDB(t))
		ctx := context.Background()

		c := newTestContract(t, "CON-202608-000001", uuid.New())
		require.NoError(t, repo.Save(ctx, c))

		found, err := repo.FindByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, c.ContractNumber, found.ContractNumber)
		assert.True(t, found.TotalAmount.Equal(decimal.NewFromInt(1000)))
		assert.Equal(t, "US Dollars One Thousand only", found.TotalAmountText)
		assert.Equal(t, contract.StatusDraft, found.Status)
		assert.Equal(t, contract.ReleaseTypeNotSpecified, found.ReleaseType)
	})

	t.Run("returns not found for unknown ID", func(t *testing.T) {
		repo := NewGormContractRepository(newTestDB(t))

		found, err := repo.FindByID(context.Background(), uuid.New())
		assert.Nil(t, found)
		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestGormContractRepository_FindByNumber(t *testing.T) {
	t.Run("finds contract by number", func(t *testing.T) {
		repo := NewGormContractRepository(newTestDB(t))
		ctx := context.Background()

		c := newTestContract(t, "CON-202608-000002", uuid.New())
		require.NoError(t, repo.Save(ctx, c))

		found, err := repo.FindByNumber(ctx, "CON-202608-000002")
		require.NoError(t, err)
		assert.Equal(t, c.ID, found.ID)
	})

	t.Run("returns not found for unknown number", func(t *testing.T) {
		repo := NewGormContractRepository(newTestDB(t))

		_, err := repo.FindByNumber(context.Background(), "MISSING")
		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestGormContractRepository_FindAll(t *testing.T) {
	t.Run("filters by status", func(t *testing.T) {
		repo := NewGormContractRepository(newTestDB(t))
		ctx := context.Background()

		draft := newTestContract(t, "CON-202608-000010", uuid.New())
		signed := newTestContract(t, "CON-202608-000011", uuid.New())
		require.NoError(t, signed.SetStatus(contract.StatusSigned))
		require.NoError(t, repo.Save(ctx, draft))
		require.NoError(t, repo.Save(ctx, signed))

		filter := shared.DefaultFilter()
		filter.Filters = map[string]interface{}{"status": contract.StatusSigned}

		contracts, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		require.Len(t, contracts, 1)
		assert.Equal(t, "CON-202608-000011", contracts[0].ContractNumber)
	})

	t.Run("filters by buyer", func(t *testing.T) {
		repo := NewGormContractRepository(newTestDB(t))
		ctx := context.Background()

		buyerID := uuid.New()
		require.NoError(t, repo.Save(ctx, newTestContract(t, "CON-202608-000020", buyerID)))
		require.NoError(t, repo.Save(ctx, newTestContract(t, "CON-202608-000021", uuid.New())))

		filter := shared.DefaultFilter()
		filter.Filters = map[string]interface{}{"buyer_id": buyerID}

		contracts, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		require.Len(t, contracts, 1)
		assert.Equal(t, buyerID, contracts[0].BuyerID)
	})

	t.Run("filters by contract number substring", func(t *testing.T) {
		repo := NewGormContractRepository(newTestDB(t))
		ctx := context.Background()

		require.NoError(t, repo.Save(ctx, newTestContract(t, "HMI-202608-000030", uuid.New())))
		require.NoError(t, repo.Save(ctx, newTestContract(t, "CON-202608-000031", uuid.New())))

		filter := shared.DefaultFilter()
		filter.Filters = map[string]interface{}{"contract_number": "hmi"}

		contracts, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		require.Len(t, contracts, 1)
		assert.Equal(t, "HMI-202608-000030", contracts[0].ContractNumber)
	})
}

func TestGormContractRepository_Search(t *testing.T) {
	t.Run("matches contract number", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewGormContractRepository(db)
		ctx := context.Background()

		require.NoError(t, repo.Save(ctx, newTestContract(t, "CON-202608-000040", uuid.New())))
		require.NoError(t, repo.Save(ctx, newTestContract(t, "CON-202607-000041", uuid.New())))

		contracts, err := repo.Search(ctx, "202608")
		require.NoError(t, err)
		require.Len(t, contracts, 1)
		assert.Equal(t, "CON-202608-000040", contracts[0].ContractNumber)
	})

	t.Run("matches buyer company name", func(t *testing.T) {
		db := newTestDB(t)
		partyRepo := NewGormPartyRepository(db)
		repo := NewGormContractRepository(db)
		ctx := context.Background()

		buyer, err := party.NewParty(party.TypeBuyer, "FORMOSA SHYEN HORNG METAL SDN.BHD", "Klang, Malaysia")
		require.NoError(t, err)
		require.NoError(t, partyRepo.Save(ctx, buyer))

		require.NoError(t, repo.Save(ctx, newTestContract(t, "CON-202608-000050", buyer.ID)))
		require.NoError(t, repo.Save(ctx, newTestContract(t, "CON-202608-000051", uuid.New())))

		contracts, err := repo.Search(ctx, "shyen horng")
		require.NoError(t, err)
		require.Len(t, contracts, 1)
		assert.Equal(t, "CON-202608-000050", contracts[0].ContractNumber)
	})
}

func TestGormContractRepository_FindAll_Ordering(t *testing.T) {
	t.Run("orders by whitelisted field", func(t *testing.T) {
		repo := NewGormContractRepository(newTestDB(t))
		ctx := context.Background()

		require.NoError(t, repo.Save(ctx, newTestContract(t, "CON-202608-000090", uuid.New())))
		require.NoError(t, repo.Save(ctx, newTestContract(t, "CON-202608-000091", uuid.New())))

		filter := shared.DefaultFilter()
		filter.OrderBy = "contract_number"
		filter.OrderDir = "desc"

		contracts, err := repo.FindAll(ctx, filter)
		require.NoError(t, err)
		require.Len(t, contracts, 2)
		assert.Equal(t, "CON-202608-000091", contracts[0].ContractNumber)
	})

	t.Run("rejects order_by outside the whitelist", func(t *testing.T) {
		repo := NewGormContractRepository(newTestDB(t))
		ctx := context.Background()

		require.NoError(t, repo.Save(ctx, newTestContract(t, "CON-202608-000092", uuid.New())))
		require.NoError(t, repo.Save(ctx, newTestContract(t, "CON-202608-000093", uuid.New())))

		payloads := []string{
			"(SELECT contract_number FROM contracts LIMIT 1)",
			"contract_number; DROP TABLE contracts",
			"contract_number--",
		}
		for _, payload := range payloads {
			filter := shared.DefaultFilter()
			filter.OrderBy = payload
			filter.OrderDir = "asc"

			contracts, err := repo.FindAll(ctx, filter)
			require.NoError(t, err, "order_by %q must fall back to the default field", payload)
			assert.Len(t, contracts, 2)
		}

		// Table must survive every payload above
		exists, err := repo.ExistsByNumber(ctx, "CON-202608-000092")
		require.NoError(t, err)
		assert.True(t, exists)
	})
}

func TestGormContractRepository_Save_DuplicateNumber(t *testing.T) {
	t.Run("second contract with same number conflicts", func(t *testing.T) {
		repo := NewGormContractRepository(newTestDB(t))
		ctx := context.Background()

		require.NoError(t, repo.Save(ctx, newTestContract(t, "CON-202608-000080", uuid.New())))

		err := repo.Save(ctx, newTestContract(t, "CON-202608-000080", uuid.New()))
		assert.Equal(t, shared.ErrAlreadyExists, err)
	})
}

func TestGormContractRepository_Delete(t *testing.T) {
	t.Run("deletes existing contract", func(t *testing.T) {
		repo := NewGormContractRepository(newTestDB(t))
		ctx := context.Background()

		c := newTestContract(t, "CON-202608-000060", uuid.New())
		require.NoError(t, repo.Save(ctx, c))

		require.NoError(t, repo.Delete(ctx, c.ID))

		_, err := repo.FindByID(ctx, c.ID)
		assert.Equal(t, shared.ErrNotFound, err)
	})

	t.Run("returns not found for unknown contract", func(t *testing.T) {
		repo := NewGormContractRepository(newTestDB(t))

		err := repo.Delete(context.Background(), uuid.New())
		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestGormContractRepository_ExistsByNumber(t *testing.T) {
	t.Run("reports existence", func(t *testing.T) {
		repo := NewGormContractRepository(newTestDB(t))
		ctx := context.Background()

		require.NoError(t, repo.Save(ctx, newTestContract(t, "CON-202608-000070", uuid.New())))

		exists, err := repo.ExistsByNumber(ctx, "CON-202608-000070")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByNumber(ctx, "CON-202608-999999")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
