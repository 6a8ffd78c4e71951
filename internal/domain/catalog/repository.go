package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/tradedesk/backend/internal/domain/shared"
)

// Repository defines the interface for commodity persistence
type Repository interface {
	// FindByID finds a commodity by its ID, including soft-deleted records
	FindByID(ctx context.Context, id uuid.UUID) (*Commodity, error)

	// FindAll finds all commodities matching the filter
	// (recognized filter key: is_active; defaults to active only)
	FindAll(ctx context.Context, filter shared.Filter) ([]Commodity, error)

	// Save creates or updates a commodity
	Save(ctx context.Context, c *Commodity) error

	// Count counts commodities matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
