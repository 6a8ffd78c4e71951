package billing

import (
	"context"

	"github.com/google/uuid"

	"github.com/tradedesk/backend/internal/domain/shared"
)

// PaymentTermRepository defines the interface for payment term persistence
type PaymentTermRepository interface {
	// FindByID finds a payment term by its ID, including soft-deleted records
	FindByID(ctx context.Context, id uuid.UUID) (*PaymentTerm, error)

	// FindAll finds all payment terms matching the filter
	// (recognized filter key: is_active; defaults to active only)
	FindAll(ctx context.Context, filter shared.Filter) ([]PaymentTerm, error)

	// Save creates or updates a payment term
	Save(ctx context.Context, t *PaymentTerm) error

	// Count counts payment terms matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsByName checks whether a payment term name is already taken
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// BankDetailsRepository defines the interface for bank account persistence
type BankDetailsRepository interface {
	// FindByID finds a bank account by its ID, including soft-deleted records
	FindByID(ctx context.Context, id uuid.UUID) (*BankDetails, error)

	// FindDefault finds the active default bank account
	FindDefault(ctx context.Context) (*BankDetails, error)

	// FindAll finds all bank accounts matching the filter
	// (recognized filter key: is_active; defaults to active only)
	FindAll(ctx context.Context, filter shared.Filter) ([]BankDetails, error)

	// Save creates or updates a bank account. When the record is flagged
	// as default, every other record's default flag is cleared in the
	// same transaction.
	Save(ctx context.Context, b *BankDetails) error

	// Count counts bank accounts matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
