package catalog

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tradedesk/backend/internal/domain/catalog"
	"github.com/tradedesk/backend/internal/domain/shared"
)

// CommodityService handles commodity master-data operations
type CommodityService struct {
	commodityRepo catalog.Repository
	logger        *zap.Logger
}

// NewCommodityService creates a new CommodityService
func NewCommodityService(commodityRepo catalog.Repository, logger *zap.Logger) *CommodityService {
	return &CommodityService{
		commodityRepo: commodityRepo,
		logger:        logger,
	}
}

// Create creates a new commodity
func (s *CommodityService) Create(ctx context.Context, req CreateCommodityRequest) (*CommodityResponse, error) {
	c, err := catalog.NewCommodity(req.Name, req.Description)
	if err != nil {
		return nil, err
	}

	if req.HSCode != "" || req.DefaultUnit != "" || req.DefaultOrigin != "" || req.DefaultPacking != "" {
		if err := c.SetTradeDefaults(req.HSCode, catalog.Unit(req.DefaultUnit), req.DefaultOrigin, req.DefaultPacking); err != nil {
			return nil, err
		}
	}

	if err := s.commodityRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("commodity created",
		zap.String("commodity_id", c.ID.String()),
		zap.String("name", c.Name))

	response := ToCommodityResponse(c)
	return &response, nil
}

// GetByID retrieves a commodity by ID, including soft-deleted records
func (s *CommodityService) GetByID(ctx context.Context, id uuid.UUID) (*CommodityResponse, error) {
	c, err := s.commodityRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToCommodityResponse(c)
	return &response, nil
}

// List retrieves commodities with filtering and pagination
func (s *CommodityService) List(ctx context.Context, filter CommodityListFilter) ([]CommodityResponse, int64, error) {
	domainFilter := buildFilter(filter)

	commodities, err := s.commodityRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.commodityRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToCommodityResponses(commodities), total, nil
}

// Update updates a commodity
func (s *CommodityService) Update(ctx context.Context, id uuid.UUID, req UpdateCommodityRequest) (*CommodityResponse, error) {
	c, err := s.commodityRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil || req.Description != nil {
		name := c.Name
		description := c.Description
		if req.Name != nil {
			name = *req.Name
		}
		if req.Description != nil {
			description = *req.Description
		}
		if err := c.Update(name, description); err != nil {
			return nil, err
		}
	}

	if req.HSCode != nil || req.DefaultUnit != nil || req.DefaultOrigin != nil || req.DefaultPacking != nil {
		hsCode := c.HSCode
		defaultUnit := c.DefaultUnit
		defaultOrigin := c.DefaultOrigin
		defaultPacking := c.DefaultPacking
		if req.HSCode != nil {
			hsCode = *req.HSCode
		}
		if req.DefaultUnit != nil {
			defaultUnit = catalog.Unit(*req.DefaultUnit)
		}
		if req.DefaultOrigin != nil {
			defaultOrigin = *req.DefaultOrigin
		}
		if req.DefaultPacking != nil {
			defaultPacking = *req.DefaultPacking
		}
		if err := c.SetTradeDefaults(hsCode, defaultUnit, defaultOrigin, defaultPacking); err != nil {
			return nil, err
		}
	}

	if req.IsActive != nil {
		if *req.IsActive {
			c.Activate()
		} else {
			c.Deactivate()
		}
	}

	if err := s.commodityRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	response := ToCommodityResponse(c)
	return &response, nil
}

// Delete soft-deletes a commodity
func (s *CommodityService) Delete(ctx context.Context, id uuid.UUID) error {
	c, err := s.commodityRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	c.Deactivate()
	if err := s.commodityRepo.Save(ctx, c); err != nil {
		return err
	}

	s.logger.Info("commodity deactivated", zap.String("commodity_id", id.String()))
	return nil
}

func buildFilter(filter CommodityListFilter) shared.Filter {
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
