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

// GormBankDetailsRepository implements billing.BankDetailsRepository using GORM
type GormBankDetailsRepository struct {
	db *gorm.DB
}

// NewGormBankDetailsRepository creates a new GormBankDetailsRepository
func NewGormBankDetailsRepository(db *gorm.DB) *GormBankDetailsRepository {
	return &GormBankDetailsRepository{db: db}
}

// FindByID finds a bank account by its ID. Soft-deleted records still
// resolve so historical contracts can be populated.
func (r *GormBankDetailsRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.BankDetails, error) {
	var model models.BankDetailsModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindDefault finds the active default bank account
func (r *GormBankDetailsRepository) FindDefault(ctx context.Context) (*billing.BankDetails, error) {
	var model models.BankDetailsModel
	if err := r.db.WithContext(ctx).
		Where("is_default = ? AND is_active = ?", true, true).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all bank accounts matching the filter
func (r *GormBankDetailsRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.BankDetails, error) {
	var accountModels []models.BankDetailsModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.BankDetailsModel{}), filter)

	if err := query.Find(&accountModels).Error; err != nil {
		return nil, err
	}

	accounts := make([]billing.BankDetails, len(accountModels))
	for i, model := range accountModels {
		accounts[i] = *model.ToDomain()
	}
	return accounts, nil
}

// Save creates or updates a bank account. When the account is flagged as
// default, competing default flags are cleared in the same transaction so
// at most one default exists.
func (r *GormBankDetailsRepository) Save(ctx context.Context, b *billing.BankDetails) error {
	model := models.BankDetailsModelFromDomain(b)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if b.IsDefault {
			if err := tx.Model(&models.BankDetailsModel{}).
				Where("id <> ? AND is_default = ?", b.ID, true).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Save(model).Error
	})
}

// Count counts bank accounts matching the filter
func (r *GormBankDetailsRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.BankDetailsModel{})
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormBankDetailsRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		field := ValidateSortField(filter.OrderBy, BankDetailsSortFields, "bank_name")
		query = query.Order(field + " " + ValidateSortOrder(filter.OrderDir))
	} else {
		// Default account first, then by bank name
		query = query.Order("is_default DESC").Order("bank_name ASC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormBankDetailsRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(bank_name) LIKE ? OR LOWER(account_name) LIKE ?",
			searchPattern, searchPattern)
	}

	if value, ok := filter.Filters["is_active"]; ok {
		query = query.Where("is_active = ?", value)
	} else {
		query = query.Where("is_active = ?", true)
	}

	return query
}

// Ensure GormBankDetailsRepository implements billing.BankDetailsRepository
var _ billing.BankDetailsRepository = (*GormBankDetailsRepository)(nil)
