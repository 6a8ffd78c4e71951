package billing

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tradedesk/backend/internal/domain/billing"
	"github.com/tradedesk/backend/internal/domain/shared"
)

// BankDetailsService handles seller bank-account master-data operations
type BankDetailsService struct {
	bankRepo billing.BankDetailsRepository
	logger   *zap.Logger
}

// NewBankDetailsService creates a new BankDetailsService
func NewBankDetailsService(bankRepo billing.BankDetailsRepository, logger *zap.Logger) *BankDetailsService {
	return &BankDetailsService{
		bankRepo: bankRepo,
		logger:   logger,
	}
}

// Create creates a new bank account
func (s *BankDetailsService) Create(ctx context.Context, req CreateBankDetailsRequest) (*BankDetailsResponse, error) {
	b, err := billing.NewBankDetails(req.BankName, req.AccountName, req.AccountNumber, req.SwiftCode)
	if err != nil {
		return nil, err
	}

	if req.BankAddress != "" || req.IBAN != "" || req.Currency != "" {
		b.SetWireDetails(req.BankAddress, req.IBAN, req.Currency)
	}
	if req.IsDefault {
		b.MarkDefault()
	}

	if err := s.bankRepo.Save(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Info("bank account created",
		zap.String("bank_details_id", b.ID.String()),
		zap.String("bank_name", b.BankName),
		zap.Bool("is_default", b.IsDefault))

	response := ToBankDetailsResponse(b)
	return &response, nil
}

// GetByID retrieves a bank account by ID, including soft-deleted records
func (s *BankDetailsService) GetByID(ctx context.Context, id uuid.UUID) (*BankDetailsResponse, error) {
	b, err := s.bankRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToBankDetailsResponse(b)
	return &response, nil
}

// GetDefault retrieves the current default bank account. Returns
// shared.ErrNotFound when no active default exists.
func (s *BankDetailsService) GetDefault(ctx context.Context) (*BankDetailsResponse, error) {
	b, err := s.bankRepo.FindDefault(ctx)
	if err != nil {
		return nil, err
	}

	response := ToBankDetailsResponse(b)
	return &response, nil
}

// List retrieves bank accounts with filtering and pagination
func (s *BankDetailsService) List(ctx context.Context, filter BankDetailsListFilter) ([]BankDetailsResponse, int64, error) {
	domainFilter := buildBankFilter(filter)

	accounts, err := s.bankRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.bankRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToBankDetailsResponses(accounts), total, nil
}

// Update updates a bank account
func (s *BankDetailsService) Update(ctx context.Context, id uuid.UUID, req UpdateBankDetailsRequest) (*BankDetailsResponse, error) {
	b, err := s.bankRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.BankName != nil || req.AccountName != nil || req.AccountNumber != nil || req.SwiftCode != nil {
		bankName := b.BankName
		accountName := b.AccountName
		accountNumber := b.AccountNumber
		swiftCode := b.SwiftCode
		if req.BankName != nil {
			bankName = *req.BankName
		}
		if req.AccountName != nil {
			accountName = *req.AccountName
		}
		if req.AccountNumber != nil {
			accountNumber = *req.AccountNumber
		}
		if req.SwiftCode != nil {
			swiftCode = *req.SwiftCode
		}
		if err := b.Update(bankName, accountName, accountNumber, swiftCode); err != nil {
			return nil, err
		}
	}

	if req.BankAddress != nil || req.IBAN != nil || req.Currency != nil {
		bankAddress := b.BankAddress
		iban := b.IBAN
		currency := b.Currency
		if req.BankAddress != nil {
			bankAddress = *req.BankAddress
		}
		if req.IBAN != nil {
			iban = *req.IBAN
		}
		if req.Currency != nil {
			currency = *req.Currency
		}
		b.SetWireDetails(bankAddress, iban, currency)
	}

	if req.IsDefault != nil {
		if *req.IsDefault {
			b.MarkDefault()
		} else {
			b.ClearDefault()
		}
	}

	if req.IsActive != nil {
		if *req.IsActive {
			b.Activate()
		} else {
			b.Deactivate()
		}
	}

	if err := s.bankRepo.Save(ctx, b); err != nil {
		return nil, err
	}

	response := ToBankDetailsResponse(b)
	return &response, nil
}

// Delete soft-deletes a bank account. Deactivation also drops the
// default flag, so a deleted default leaves no default configured.
func (s *BankDetailsService) Delete(ctx context.Context, id uuid.UUID) error {
	b, err := s.bankRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	b.Deactivate()
	if err := s.bankRepo.Save(ctx, b); err != nil {
		return err
	}

	s.logger.Info("bank account deactivated", zap.String("bank_details_id", id.String()))
	return nil
}

func buildBankFilter(filter BankDetailsListFilter) shared.Filter {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "asc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]any),
	}
	if filter.IsActive != nil {
		domainFilter.Filters["is_active"] = *filter.IsActive
	}
	return domainFilter
}
