package billing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tradedesk/backend/internal/domain/billing"
	"github.com/tradedesk/backend/internal/domain/shared"
)

// MockPaymentTermRepository is a mock implementation of billing.PaymentTermRepository
type MockPaymentTermRepository struct {
	mock.Mock
}

func (m *MockPaymentTermRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.PaymentTerm, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.PaymentTerm), args.Error(1)
}

func (m *MockPaymentTermRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.PaymentTerm, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]billing.PaymentTerm), args.Error(1)
}

func (m *MockPaymentTermRepository) Save(ctx context.Context, t *billing.PaymentTerm) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockPaymentTermRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentTermRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func newTermService() (*PaymentTermService, *MockPaymentTermRepository) {
	repo := new(MockPaymentTermRepository)
	return NewPaymentTermService(repo, zap.NewNop()), repo
}

func TestPaymentTermService_Create(t *testing.T) {
	t.Run("creates term with schedule", func(t *testing.T) {
		svc, repo := newTermService()
		repo.On("ExistsByName", mock.Anything, "30% deposit, balance against B/L").Return(false, nil)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*billing.PaymentTerm")).Return(nil)

		deposit := decimal.NewFromInt(30)
		days := 14
		resp, err := svc.Create(context.Background(), CreatePaymentTermRequest{
			Name:              "30% deposit, balance against B/L",
			Description:       "Deposit with balance on shipping documents",
			Terms:             "30% T/T deposit, 70% against copy of B/L within 14 days.",
			DepositPercentage: &deposit,
			DaysFromBL:        &days,
		})

		require.NoError(t, err)
		assert.True(t, resp.DepositPercentage.Equal(decimal.NewFromInt(30)))
		assert.Equal(t, 14, resp.DaysFromBL)
		assert.True(t, resp.IsActive)
		repo.AssertExpectations(t)
	})

	t.Run("rejects duplicate name", func(t *testing.T) {
		svc, repo := newTermService()
		repo.On("ExistsByName", mock.Anything, "100% T/T in advance").Return(true, nil)

		_, err := svc.Create(context.Background(), CreatePaymentTermRequest{
			Name:        "100% T/T in advance",
			Description: "Full prepayment",
			Terms:       "100% T/T before shipment.",
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	})

	t.Run("rejects deposit above 100 percent", func(t *testing.T) {
		svc, repo := newTermService()
		repo.On("ExistsByName", mock.Anything, mock.Anything).Return(false, nil)

		deposit := decimal.NewFromInt(120)
		_, err := svc.Create(context.Background(), CreatePaymentTermRequest{
			Name:              "Bad term",
			Description:       "desc",
			Terms:             "terms",
			DepositPercentage: &deposit,
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_DEPOSIT", domainErr.Code)
	})
}

func TestPaymentTermService_Update(t *testing.T) {
	t.Run("renaming to an existing name conflicts", func(t *testing.T) {
		svc, repo := newTermService()
		term, _ := billing.NewPaymentTerm("Old name", "desc", "terms")
		repo.On("FindByID", mock.Anything, term.ID).Return(term, nil)
		repo.On("ExistsByName", mock.Anything, "Taken name").Return(true, nil)

		taken := "Taken name"
		_, err := svc.Update(context.Background(), term.ID, UpdatePaymentTermRequest{Name: &taken})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	})

	t.Run("keeping the same name skips the uniqueness check", func(t *testing.T) {
		svc, repo := newTermService()
		term, _ := billing.NewPaymentTerm("Same name", "desc", "terms")
		repo.On("FindByID", mock.Anything, term.ID).Return(term, nil)
		repo.On("Save", mock.Anything, term).Return(nil)

		same := "Same name"
		newDesc := "updated description"
		resp, err := svc.Update(context.Background(), term.ID, UpdatePaymentTermRequest{Name: &same, Description: &newDesc})

		require.NoError(t, err)
		assert.Equal(t, "updated description", resp.Description)
		repo.AssertNotCalled(t, "ExistsByName", mock.Anything, mock.Anything)
	})
}

func TestPaymentTermService_Delete(t *testing.T) {
	t.Run("soft-deletes the term", func(t *testing.T) {
		svc, repo := newTermService()
		term, _ := billing.NewPaymentTerm("Doomed term", "desc", "terms")
		repo.On("FindByID", mock.Anything, term.ID).Return(term, nil)
		repo.On("Save", mock.Anything, mock.MatchedBy(func(saved *billing.PaymentTerm) bool {
			return !saved.IsActive
		})).Return(nil)

		err := svc.Delete(context.Background(), term.ID)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}
