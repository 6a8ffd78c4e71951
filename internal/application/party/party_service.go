package party

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tradedesk/backend/internal/domain/party"
	"github.com/tradedesk/backend/internal/domain/shared"
)

// PartyService handles buyer and seller master-data operations
type PartyService struct {
	partyRepo party.Repository
	logger    *zap.Logger
}

// NewPartyService creates a new PartyService
func NewPartyService(partyRepo party.Repository, logger *zap.Logger) *PartyService {
	return &PartyService{
		partyRepo: partyRepo,
		logger:    logger,
	}
}

// Create creates a new party
func (s *PartyService) Create(ctx context.Context, req CreatePartyRequest) (*PartyResponse, error) {
	p, err := party.NewParty(party.Type(req.Type), req.CompanyName, req.Address)
	if err != nil {
		return nil, err
	}

	if req.ContactPerson != "" || req.Email != "" || req.Phone != "" {
		if err := p.SetContact(req.ContactPerson, req.Email, req.Phone); err != nil {
			return nil, err
		}
	}
	if req.Country != "" || req.TaxID != "" {
		p.SetLocation(req.Country, req.TaxID)
	}

	if err := s.partyRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("party created",
		zap.String("party_id", p.ID.String()),
		zap.String("type", string(p.Type)),
		zap.String("company_name", p.CompanyName))

	response := ToPartyResponse(p)
	return &response, nil
}

// GetByID retrieves a party by ID, including soft-deleted records
func (s *PartyService) GetByID(ctx context.Context, id uuid.UUID) (*PartyResponse, error) {
	p, err := s.partyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToPartyResponse(p)
	return &response, nil
}

// List retrieves parties with filtering and pagination
func (s *PartyService) List(ctx context.Context, filter PartyListFilter) ([]PartyResponse, int64, error) {
	domainFilter := buildFilter(filter)

	parties, err := s.partyRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.partyRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToPartyResponses(parties), total, nil
}

// Update updates a party
func (s *PartyService) Update(ctx context.Context, id uuid.UUID, req UpdatePartyRequest) (*PartyResponse, error) {
	p, err := s.partyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CompanyName != nil || req.Address != nil {
		companyName := p.CompanyName
		address := p.Address
		if req.CompanyName != nil {
			companyName = *req.CompanyName
		}
		if req.Address != nil {
			address = *req.Address
		}
		if err := p.Update(companyName, address); err != nil {
			return nil, err
		}
	}

	if req.ContactPerson != nil || req.Email != nil || req.Phone != nil {
		contactPerson := p.ContactPerson
		email := p.Email
		phone := p.Phone
		if req.ContactPerson != nil {
			contactPerson = *req.ContactPerson
		}
		if req.Email != nil {
			email = *req.Email
		}
		if req.Phone != nil {
			phone = *req.Phone
		}
		if err := p.SetContact(contactPerson, email, phone); err != nil {
			return nil, err
		}
	}

	if req.Country != nil || req.TaxID != nil {
		country := p.Country
		taxID := p.TaxID
		if req.Country != nil {
			country = *req.Country
		}
		if req.TaxID != nil {
			taxID = *req.TaxID
		}
		p.SetLocation(country, taxID)
	}

	if req.IsActive != nil {
		if *req.IsActive {
			p.Activate()
		} else {
			p.Deactivate()
		}
	}

	if err := s.partyRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	response := ToPartyResponse(p)
	return &response, nil
}

// Delete soft-deletes a party. Contracts that reference it keep
// resolving through FindByID.
func (s *PartyService) Delete(ctx context.Context, id uuid.UUID) error {
	p, err := s.partyRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	p.Deactivate()
	if err := s.partyRepo.Save(ctx, p); err != nil {
		return err
	}

	s.logger.Info("party deactivated", zap.String("party_id", id.String()))
	return nil
}

func buildFilter(filter PartyListFilter) shared.Filter {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "company_name"
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
	if filter.Type != "" {
		domainFilter.Filters["type"] = filter.Type
	}
	if filter.IsActive != nil {
		domainFilter.Filters["is_active"] = *filter.IsActive
	}
	return domainFilter
}
