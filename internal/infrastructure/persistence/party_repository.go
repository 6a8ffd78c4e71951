package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tradedesk/backend/internal/domain/party"
	"github.com/tradedesk/backend/internal/domain/shared"
	"github.com/tradedesk/backend/internal/infrastructure/persistence/models"
)

// GormPartyRepository implements party.Repository using GORM
type GormPartyRepository struct {
	db *gorm.DB
}

// NewGormPartyRepository creates a new GormPartyRepository
func NewGormPartyRepository(db *gorm.DB) *GormPartyRepository {
	return &GormPartyRepository{db: db}
}

// FindByID finds a party by its ID. Soft-deleted records still resolve
// so historical contracts can be populated.
func (r *GormPartyRepository) FindByID(ctx context.Context, id uuid.UUID) (*party.Party, error) {
	var model models.PartyModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all parties matching the filter
func (r *GormPartyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]party.Party, error) {
	var partyModels []models.PartyModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.PartyModel{}), filter)

	if err := query.Find(&partyModels).Error; err != nil {
		return nil, err
	}

	parties := make([]party.Party, len(partyModels))
	for i, model := range partyModels {
		parties[i] = *model.ToDomain()
	}
	return parties, nil
}

// FindByIDs finds multiple parties by their IDs
func (r *GormPartyRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]party.Party, error) {
	if len(ids) == 0 {
		return []party.Party{}, nil
	}

	var partyModels []models.PartyModel
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&partyModels).Error; err != nil {
		return nil, err
	}

	parties := make([]party.Party, len(partyModels))
	for i, model := range partyModels {
		parties[i] = *model.ToDomain()
	}
	return parties, nil
}

// Save creates or updates a party
func (r *GormPartyRepository) Save(ctx context.Context, p *party.Party) error {
	model := models.PartyModelFromDomain(p)
	return r.db.WithContext(ctx).Save(model).Error
}

// Count counts parties matching the filter
func (r *GormPartyRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.PartyModel{})
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormPartyRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		field := ValidateSortField(filter.OrderBy, PartySortFields, "company_name")
		query = query.Order(field + " " + ValidateSortOrder(filter.OrderDir))
	} else {
		query = query.Order("company_name ASC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormPartyRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(company_name) LIKE ? OR LOWER(contact_person) LIKE ?",
			searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "type":
			query = query.Where("type = ?", value)
		case "is_active":
			query = query.Where("is_active = ?", value)
		}
	}

	// Listings hide soft-deleted records unless explicitly asked for
	if _, ok := filter.Filters["is_active"]; !ok {
		query = query.Where("is_active = ?", true)
	}

	return query
}

// Ensure GormPartyRepository implements party.Repository
var _ party.Repository = (*GormPartyRepository)(nil)
