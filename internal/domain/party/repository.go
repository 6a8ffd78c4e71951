package party

import (
	"context"

	"github.com/google/uuid"

	"github.com/tradedesk/backend/internal/domain/shared"
)

// Repository defines the interface for party persistence
type Repository interface {
	// FindByID finds a party by its ID, including soft-deleted records
	FindByID(ctx context.Context, id uuid.UUID) (*Party, error)

	// FindAll finds all parties matching the filter
	// (recognized filter keys: type, is_active; defaults to active only)
	FindAll(ctx context.Context, filter shared.Filter) ([]Party, error)

	// FindByIDs finds multiple parties by their IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Party, error)

	// Save creates or updates a party
	Save(ctx context.Context, p *Party) error

	// Count counts parties matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
