package contract

import (
	"context"

	"github.com/google/uuid"

	"github.com/tradedesk/backend/internal/domain/shared"
)

// SearchLimit caps the number of rows returned by free-text search.
const SearchLimit = 50

// Repository defines the interface for contract persistence
type Repository interface {
	// FindByID finds a contract by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Contract, error)

	// FindByNumber finds a contract by its contract number
	FindByNumber(ctx context.Context, number string) (*Contract, error)

	// FindAll finds all contracts matching the filter
	// (recognized filter keys: status, buyer_id, contract_number substring)
	FindAll(ctx context.Context, filter shared.Filter) ([]Contract, error)

	// Search matches contracts whose number or buyer company name
	// contains the query, unpaginated, capped at SearchLimit rows
	Search(ctx context.Context, query string) ([]Contract, error)

	// Save creates or updates a contract
	Save(ctx context.Context, contract *Contract) error

	// Delete removes a contract permanently
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts contracts matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsByNumber checks whether a contract number is already taken
	ExistsByNumber(ctx context.Context, number string) (bool, error)
}
