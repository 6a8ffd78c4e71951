package catalog

import (
	"github.com/google/uuid"

	"github.com/tradedesk/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeCommodity = "Commodity"

// Event type constants
const (
	EventTypeCommodityCreated     = "CommodityCreated"
	EventTypeCommodityUpdated     = "CommodityUpdated"
	EventTypeCommodityDeactivated = "CommodityDeactivated"
)

// CommodityCreatedEvent is published when a new commodity is created
type CommodityCreatedEvent struct {
	shared.BaseDomainEvent
	CommodityID uuid.UUID `json:"commodity_id"`
	Name        string    `json:"name"`
}

// NewCommodityCreatedEvent creates a new CommodityCreatedEvent
func NewCommodityCreatedEvent(c *Commodity) *CommodityCreatedEvent {
	return &CommodityCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCommodityCreated, AggregateTypeCommodity, c.ID),
		CommodityID:     c.ID,
		Name:            c.Name,
	}
}

// CommodityUpdatedEvent is published when a commodity is updated
type CommodityUpdatedEvent struct {
	shared.BaseDomainEvent
	CommodityID uuid.UUID `json:"commodity_id"`
	Name        string    `json:"name"`
}

// NewCommodityUpdatedEvent creates a new CommodityUpdatedEvent
func NewCommodityUpdatedEvent(c *Commodity) *CommodityUpdatedEvent {
	return &CommodityUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCommodityUpdated, AggregateTypeCommodity, c.ID),
		CommodityID:     c.ID,
		Name:            c.Name,
	}
}

// CommodityDeactivatedEvent is published when a commodity is soft-deleted
type CommodityDeactivatedEvent struct {
	shared.BaseDomainEvent
	CommodityID uuid.UUID `json:"commodity_id"`
	Name        string    `json:"name"`
}

// NewCommodityDeactivatedEvent creates a new CommodityDeactivatedEvent
func NewCommodityDeactivatedEvent(c *Commodity) *CommodityDeactivatedEvent {
	return &CommodityDeactivatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCommodityDeactivated, AggregateTypeCommodity, c.ID),
		CommodityID:     c.ID,
		Name:            c.Name,
	}
}
