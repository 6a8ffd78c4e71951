package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tradedesk/backend/internal/domain/billing"
	"github.com/tradedesk/backend/internal/domain/shared"
	"github.com/tradedesk/backend/internal/infrastructure/persistence/models"
)

// GormPaymentTermRepository implements billing.PaymentTermRepository using GORM
type GormPaymentTermRepository struct {
	db *gorm.DB
}

// NewGormPaymentTermRepository creates a new GormPaymentTermRepository
func NewGormPaymentTermRepository(db *gorm.DB) *GormPaymentTermRepository {
	return &GormPaymentTermRepository{db: db}
}

// FindByID finds a payment term by its ID. Soft-deleted records still
// resolve so historical contracts can be populated.
func (r *GormPaymentTermRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.PaymentTerm, error) {
	var model models.PaymentTermModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all payment terms matching the filter
func (r *GormPaymentTermRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.PaymentTerm, error) {
	var termModels []models.PaymentTermModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.PaymentTermModel{}), filter)

	if err := query.Find(&termModels).Error; err != nil {
		return nil, err
	}

	terms := make([]billing.PaymentTerm, len(termModels))
	for i, model := range termModels {
		terms[i] = *model.ToDomain()
	}
	return terms, nil
}

// Save creates or updates a payment term. A unique-constraint violation
// on the name maps to shared.ErrAlreadyExists so concurrent creates
// racing past the ExistsByName pre-check still surface as a conflict.
func (r *GormPaymentTermRepository) Save(ctx context.Context, t *billing.PaymentTerm) error {
	model := models.PaymentTermModelFromDomain(t)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Count counts payment terms matching the filter
func (r *GormPaymentTermRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.PaymentTermModel{})
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByName checks whether a payment term with the given name exists
func (r *GormPaymentTermRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.PaymentTermModel{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyFilter applies filter options to the query
func (r *GormPaymentTermRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		field := ValidateSortField(filter.OrderBy, PaymentTermSortFields, "name")
		query = query.Order(field + " " + ValidateSortOrder(filter.OrderDir))
	} else {
		query = query.Order("name ASC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormPaymentTermRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?",
			searchPattern, searchPattern)
	}

	if value, ok := filter.Filters["is_active"]; ok {
		query = query.Where("is_active = ?", value)
	} else {
		query = query.Where("is_active = ?", true)
	}

	return query
}

// Ensure GormPaymentTermRepository implements billing.PaymentTermRepository
var _ billing.PaymentTermRepository = (*GormPaymentTermRepository)(nil)
