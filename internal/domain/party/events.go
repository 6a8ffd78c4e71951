package party

import (
	"github.com/google/uuid"

	"github.com/tradedesk/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeParty = "Party"

// Event type constants
const (
	EventTypePartyCreated     = "PartyCreated"
	EventTypePartyUpdated     = "PartyUpdated"
	EventTypePartyDeactivated = "PartyDeactivated"
)

// PartyCreatedEvent is published when a new party is created
type PartyCreatedEvent struct {
	shared.BaseDomainEvent
	PartyID     uuid.UUID `json:"party_id"`
	Type        Type      `json:"type"`
	CompanyName string    `json:"company_name"`
}

// NewPartyCreatedEvent creates a new PartyCreatedEvent
func NewPartyCreatedEvent(p *Party) *PartyCreatedEvent {
	return &PartyCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePartyCreated, AggregateTypeParty, p.ID),
		PartyID:         p.ID,
		Type:            p.Type,
		CompanyName:     p.CompanyName,
	}
}

// PartyUpdatedEvent is published when a party is updated
type PartyUpdatedEvent struct {
	shared.BaseDomainEvent
	PartyID     uuid.UUID `json:"party_id"`
	CompanyName string    `json:"company_name"`
}

// NewPartyUpdatedEvent creates a new PartyUpdatedEvent
func NewPartyUpdatedEvent(p *Party) *PartyUpdatedEvent {
	return &PartyUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePartyUpdated, AggregateTypeParty, p.ID),
		PartyID:         p.ID,
		CompanyName:     p.CompanyName,
	}
}

// PartyDeactivatedEvent is published when a party is soft-deleted
type PartyDeactivatedEvent struct {
	shared.BaseDomainEvent
	PartyID     uuid.UUID `json:"party_id"`
	CompanyName string    `json:"company_name"`
}

// NewPartyDeactivatedEvent creates a new PartyDeactivatedEvent
func NewPartyDeactivatedEvent(p *Party) *PartyDeactivatedEvent {
	return &PartyDeactivatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePartyDeactivated, AggregateTypeParty, p.ID),
		PartyID:         p.ID,
		CompanyName:     p.CompanyName,
	}
}
