package contract

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tradedesk/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeContract = "Contract"

// Event type constants
const (
	EventTypeContractCreated = "ContractCreated"
	EventTypeContractUpdated = "ContractUpdated"
	EventTypeContractDeleted = "ContractDeleted"
)

// ContractCreatedEvent is published when a new contract is created
type ContractCreatedEvent struct {
	shared.BaseDomainEvent
	ContractID     uuid.UUID       `json:"contract_id"`
	ContractNumber string          `json:"contract_number"`
	BuyerID        uuid.UUID       `json:"buyer_id"`
	SellerID       uuid.UUID       `json:"seller_id"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	Currency       string          `json:"currency"`
}

// NewContractCreatedEvent creates a new ContractCreatedEvent
func NewContractCreatedEvent(c *Contract) *ContractCreatedEvent {
	return &ContractCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeContractCreated, AggregateTypeContract, c.ID),
		ContractID:      c.ID,
		ContractNumber:  c.ContractNumber,
		BuyerID:         c.BuyerID,
		SellerID:        c.SellerID,
		TotalAmount:     c.TotalAmount,
		Currency:        c.Currency,
	}
}

// ContractUpdatedEvent is published when a contract is updated
type ContractUpdatedEvent struct {
	shared.BaseDomainEvent
	ContractID     uuid.UUID       `json:"contract_id"`
	ContractNumber string          `json:"contract_number"`
	Status         Status          `json:"status"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
}

// NewContractUpdatedEvent creates a new ContractUpdatedEvent
func NewContractUpdatedEvent(c *Contract) *ContractUpdatedEvent {
	return &ContractUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeContractUpdated, AggregateTypeContract, c.ID),
		ContractID:      c.ID,
		ContractNumber:  c.ContractNumber,
		Status:          c.Status,
		TotalAmount:     c.TotalAmount,
	}
}

// ContractDeletedEvent is published when a contract is hard-deleted
type ContractDeletedEvent struct {
	shared.BaseDomainEvent
	ContractID     uuid.UUID `json:"contract_id"`
	ContractNumber string    `json:"contract_number"`
}

// NewContractDeletedEvent creates a new ContractDeletedEvent
func NewContractDeletedEvent(c *Contract) *ContractDeletedEvent {
	return &ContractDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeContractDeleted, AggregateTypeContract, c.ID),
		ContractID:      c.ID,
		ContractNumber:  c.ContractNumber,
	}
}
