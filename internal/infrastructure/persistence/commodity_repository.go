package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tradedesk/backend/internal/domain/catalog"
	"github.com/tradedesk/backend/internal/domain/shared"
	"github.com/tradedesk/backend/internal/infrastructure/persistence/models"
)

// GormCommodityRepository implements catalog.Repository using GORM
type GormCommodityRepository struct {
	db *gorm.DB
}

// NewGormCommodityRepository creates a new GormCommodityRepository
func NewGormCommodityRepository(db *gorm.DB) *GormCommodityRepository {
	return &GormCommodityRepository{db: db}
}

// FindByID finds a commodity by its ID. Soft-deleted records still resolve
// so historical contracts can be populated.
func (r *GormCommodityRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Commodity, error) {
	var model models.CommodityModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all commodities matching the filter
func (r *GormCommodityRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Commodity, error) {
	var commodityModels []models.CommodityModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.CommodityModel{}), filter)

	if err := query.Find(&commodityModels).Error; err != nil {
		return nil, err
	}

	commodities := make([]catalog.Commodity, len(commodityModels))
	for i, model := range commodityModels {
		commodities[i] = *model.ToDomain()
	}
	return commodities, nil
}

// Save creates or updates a commodity
func (r *GormCommodityRepository) Save(ctx context.Context, c *catalog.Commodity) error {
	model := models.CommodityModelFromDomain(c)
	return r.db.WithContext(ctx).Save(model).Error
}

// Count counts commodities matching the filter
func (r *GormCommodityRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.CommodityModel{})
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormCommodityRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		field := ValidateSortField(filter.OrderBy, CommoditySortFields, "name")
		query = query.Order(field + " " + ValidateSortOrder(filter.OrderDir))
	} else {
		query = query.Order("name ASC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormCommodityRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(hs_code) LIKE ?",
			searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "default_unit":
			query = query.Where("default_unit = ?", value)
		case "is_active":
			query = query.Where("is_active = ?", value)
		}
	}

	if _, ok := filter.Filters["is_active"]; !ok {
		query = query.Where("is_active = ?", true)
	}

	return query
}

// Ensure GormCommodityRepository implements catalog.Repository
var _ catalog.Repository = (*GormCommodityRepository)(nil)
