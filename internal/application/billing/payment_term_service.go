package billing

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tradedesk/backend/internal/domain/billing"
	"github.com/tradedesk/backend/internal/domain/shared"
)

// PaymentTermService handles payment-term master-data operations
type PaymentTermService struct {
	termRepo billing.PaymentTermRepository
	logger   *zap.Logger
}

// NewPaymentTermService creates a new PaymentTermService
func NewPaymentTermService(termRepo billing.PaymentTermRepository, logger *zap.Logger) *PaymentTermService {
	return &PaymentTermService{
		termRepo: termRepo,
		logger:   logger,
	}
}

// Create creates a new payment term
func (s *PaymentTermService) Create(ctx context.Context, req CreatePaymentTermRequest) (*PaymentTermResponse, error) {
	exists, err := s.termRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Payment term with this name already exists")
	}

	term, err := billing.NewPaymentTerm(req.Name, req.Description, req.Terms)
	if err != nil {
		return nil, err
	}

	if req.DepositPercentage != nil || req.DaysFromBL != nil {
		deposit := term.DepositPercentage
		days := term.DaysFromBL
		if req.DepositPercentage != nil {
			deposit = *req.DepositPercentage
		}
		if req.DaysFromBL != nil {
			days = *req.DaysFromBL
		}
		if err := term.SetSchedule(deposit, days); err != nil {
			return nil, err
		}
	}

	if err := s.termRepo.Save(ctx, term); err != nil {
		return nil, err
	}

	s.logger.Info("payment term created",
		zap.String("payment_term_id", term.ID.String()),
		zap.String("name", term.Name))

	response := ToPaymentTermResponse(term)
	return &response, nil
}

// GetByID retrieves a payment term by ID, including soft-deleted records
func (s *PaymentTermService) GetByID(ctx context.Context, id uuid.UUID) (*PaymentTermResponse, error) {
	term, err := s.termRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToPaymentTermResponse(term)
	return &response, nil
}

// List retrieves payment terms with filtering and pagination
func (s *PaymentTermService) List(ctx context.Context, filter PaymentTermListFilter) ([]PaymentTermResponse, int64, error) {
	domainFilter := buildTermFilter(filter)

	terms, err := s.termRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.termRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToPaymentTermResponses(terms), total, nil
}

// Update updates a payment term
func (s *PaymentTermService) Update(ctx context.Context, id uuid.UUID, req UpdatePaymentTermRequest) (*PaymentTermResponse, error) {
	term, err := s.termRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != term.Name {
		exists, err := s.termRepo.ExistsByName(ctx, *req.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Payment term with this name already exists")
		}
	}

	if req.Name != nil || req.Description != nil || req.Terms != nil {
		name := term.Name
		description := term.Description
		terms := term.Terms
		if req.Name != nil {
			name = *req.Name
		}
		if req.Description != nil {
			description = *req.Description
		}
		if req.Terms != nil {
			terms = *req.Terms
		}
		if err := term.Update(name, description, terms); err != nil {
			return nil, err
		}
	}

	if req.DepositPercentage != nil || req.DaysFromBL != nil {
		deposit := term.DepositPercentage
		days := term.DaysFromBL
		if req.DepositPercentage != nil {
			deposit = *req.DepositPercentage
		}
		if req.DaysFromBL != nil {
			days = *req.DaysFromBL
		}
		if err := term.SetSchedule(deposit, days); err != nil {
			return nil, err
		}
	}

	if req.IsActive != nil {
		if *req.IsActive {
			term.Activate()
		} else {
			term.Deactivate()
		}
	}

	if err := s.termRepo.Save(ctx, term); err != nil {
		return nil, err
	}

	response := ToPaymentTermResponse(term)
	return &response, nil
}

// Delete soft-deletes a payment term
func (s *PaymentTermService) Delete(ctx context.Context, id uuid.UUID) error {
	term, err := s.termRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	term.Deactivate()
	if err := s.termRepo.Save(ctx, term); err != nil {
		return err
	}

	s.logger.Info("payment term deactivated", zap.String("payment_term_id", id.String()))
	return nil
}

func buildTermFilter(filter PaymentTermListFilter) shared.Filter {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "name"
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
