package party

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tradedesk/backend/internal/domain/party"
	"github.com/tradedesk/backend/internal/domain/shared"
)

// MockPartyRepository is a mock implementation of party.Repository
type MockPartyRepository struct {
	mock.Mock
}

func (m *MockPartyRepository) FindByID(ctx context.Context, id uuid.UUID) (*party.Party, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Party), args.Error(1)
}

func (m *MockPartyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]party.Party, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]party.Party), args.Error(1)
}

func (m *MockPartyRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]party.Party, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]party.Party), args.Error(1)
}

func (m *MockPartyRepository) Save(ctx context.Context, p *party.Party) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartyRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func newTestService() (*PartyService, *MockPartyRepository) {
	repo := new(MockPartyRepository)
	return NewPartyService(repo, zap.NewNop()), repo
}

func TestPartyService_Create(t *testing.T) {
	t.Run("creates party with full details", func(t *testing.T) {
		svc, repo := newTestService()
		repo.On("Save", mock.Anything, mock.AnythingOfType("*party.Party")).Return(nil)

		resp, err := svc.Create(context.Background(), CreatePartyRequest{
			Type:          "BUYER",
			CompanyName:   "FORMOSA SHYEN HORNG METAL SDN.BHD",
			Address:       "Klang, Malaysia",
			ContactPerson: "Mr. Lim",
			Email:         "LIM@Formosa.example.com",
			Phone:         "+60-3-1234567",
			Country:       "Malaysia",
		})

		require.NoError(t, err)
		assert.Equal(t, "BUYER", resp.Type)
		assert.Equal(t, "FORMOSA SHYEN HORNG METAL SDN.BHD", resp.CompanyName)
		assert.Equal(t, "lim@formosa.example.com", resp.Email)
		assert.True(t, resp.IsActive)
		repo.AssertExpectations(t)
	})

	t.Run("rejects invalid party type", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Create(context.Background(), CreatePartyRequest{
			Type:        "BROKER",
			CompanyName: "Some Co",
			Address:     "Somewhere",
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_TYPE", domainErr.Code)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Create(context.Background(), CreatePartyRequest{
			Type:        "SELLER",
			CompanyName: "Some Co",
			Address:     "Somewhere",
			Email:       "not-an-email",
		})

		require.Error(t, err)
	})
}

func TestPartyService_GetByID(t *testing.T) {
	t.Run("returns party", func(t *testing.T) {
		svc, repo := newTestService()
		p, _ := party.NewParty(party.TypeSeller, "HOMI METAL CO., LTD", "Kaohsiung, Taiwan")
		repo.On("FindByID", mock.Anything, p.ID).Return(p, nil)

		resp, err := svc.GetByID(context.Background(), p.ID)

		require.NoError(t, err)
		assert.Equal(t, p.ID, resp.ID)
		assert.Equal(t, "SELLER", resp.Type)
	})

	t.Run("propagates not found", func(t *testing.T) {
		svc, repo := newTestService()
		id := uuid.New()
		repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		_, err := svc.GetByID(context.Background(), id)

		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestPartyService_List(t *testing.T) {
	t.Run("applies type filter and pagination defaults", func(t *testing.T) {
		svc, repo := newTestService()
		p, _ := party.NewParty(party.TypeBuyer, "Some Buyer", "Somewhere")

		repo.On("FindAll", mock.Anything, mock.MatchedBy(func(f shared.Filter) bool {
			return f.Page == 1 && f.PageSize == 20 && f.Filters["type"] == "BUYER"
		})).Return([]party.Party{*p}, nil)
		repo.On("Count", mock.Anything, mock.Anything).Return(int64(1), nil)

		responses, total, err := svc.List(context.Background(), PartyListFilter{Type: "BUYER"})

		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, responses, 1)
		assert.Equal(t, "Some Buyer", responses[0].CompanyName)
		repo.AssertExpectations(t)
	})
}

func TestPartyService_Update(t *testing.T) {
	t.Run("updates selected fields only", func(t *testing.T) {
		svc, repo := newTestService()
		p, _ := party.NewParty(party.TypeBuyer, "Old Name", "Old Address")
		repo.On("FindByID", mock.Anything, p.ID).Return(p, nil)
		repo.On("Save", mock.Anything, p).Return(nil)

		newName := "New Name"
		resp, err := svc.Update(context.Background(), p.ID, UpdatePartyRequest{CompanyName: &newName})

		require.NoError(t, err)
		assert.Equal(t, "New Name", resp.CompanyName)
		assert.Equal(t, "Old Address", resp.Address)
	})

	t.Run("reactivates via is_active flag", func(t *testing.T) {
		svc, repo := newTestService()
		p, _ := party.NewParty(party.TypeBuyer, "Dormant Co", "Somewhere")
		p.Deactivate()
		repo.On("FindByID", mock.Anything, p.ID).Return(p, nil)
		repo.On("Save", mock.Anything, p).Return(nil)

		active := true
		resp, err := svc.Update(context.Background(), p.ID, UpdatePartyRequest{IsActive: &active})

		require.NoError(t, err)
		assert.True(t, resp.IsActive)
	})
}

func TestPartyService_Delete(t *testing.T) {
	t.Run("soft-deletes the party", func(t *testing.T) {
		svc, repo := newTestService()
		p, _ := party.NewParty(party.TypeBuyer, "Doomed Co", "Somewhere")
		repo.On("FindByID", mock.Anything, p.ID).Return(p, nil)
		repo.On("Save", mock.Anything, mock.MatchedBy(func(saved *party.Party) bool {
			return !saved.IsActive
		})).Return(nil)

		err := svc.Delete(context.Background(), p.ID)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}
