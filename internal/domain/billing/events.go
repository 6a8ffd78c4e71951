package billing

import (
	"github.com/google/uuid"

	"github.com/tradedesk/backend/internal/domain/shared"
)

// Aggregate type constants
const (
	AggregateTypePaymentTerm = "PaymentTerm"
	AggregateTypeBankDetails = "BankDetails"
)

// Event type constants
const (
	EventTypePaymentTermCreated       = "PaymentTermCreated"
	EventTypePaymentTermUpdated       = "PaymentTermUpdated"
	EventTypeBankDetailsCreated       = "BankDetailsCreated"
	EventTypeBankDetailsDefaultChange = "BankDetailsDefaultChanged"
)

// PaymentTermCreatedEvent is published when a new payment term is created
type PaymentTermCreatedEvent struct {
	shared.BaseDomainEvent
	PaymentTermID uuid.UUID `json:"payment_term_id"`
	Name          string    `json:"name"`
}

// NewPaymentTermCreatedEvent creates a new PaymentTermCreatedEvent
func NewPaymentTermCreatedEvent(t *PaymentTerm) *PaymentTermCreatedEvent {
	return &PaymentTermCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePaymentTermCreated, AggregateTypePaymentTerm, t.ID),
		PaymentTermID:   t.ID,
		Name:            t.Name,
	}
}

// PaymentTermUpdatedEvent is published when a payment term is updated
type PaymentTermUpdatedEvent struct {
	shared.BaseDomainEvent
	PaymentTermID uuid.UUID `json:"payment_term_id"`
	Name          string    `json:"name"`
}

// NewPaymentTermUpdatedEvent creates a new PaymentTermUpdatedEvent
func NewPaymentTermUpdatedEvent(t *PaymentTerm) *PaymentTermUpdatedEvent {
	return &PaymentTermUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePaymentTermUpdated, AggregateTypePaymentTerm, t.ID),
		PaymentTermID:   t.ID,
		Name:            t.Name,
	}
}

// BankDetailsCreatedEvent is published when a bank account is created
type BankDetailsCreatedEvent struct {
	shared.BaseDomainEvent
	BankDetailsID uuid.UUID `json:"bank_details_id"`
	BankName      string    `json:"bank_name"`
}

// NewBankDetailsCreatedEvent creates a new BankDetailsCreatedEvent
func NewBankDetailsCreatedEvent(b *BankDetails) *BankDetailsCreatedEvent {
	return &BankDetailsCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBankDetailsCreated, AggregateTypeBankDetails, b.ID),
		BankDetailsID:   b.ID,
		BankName:        b.BankName,
	}
}

// BankDetailsDefaultChangedEvent is published when an account becomes the default
type BankDetailsDefaultChangedEvent struct {
	shared.BaseDomainEvent
	BankDetailsID uuid.UUID `json:"bank_details_id"`
	BankName      string    `json:"bank_name"`
}

// NewBankDetailsDefaultChangedEvent creates a new BankDetailsDefaultChangedEvent
func NewBankDetailsDefaultChangedEvent(b *BankDetails) *BankDetailsDefaultChangedEvent {
	return &BankDetailsDefaultChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBankDetailsDefaultChange, AggregateTypeBankDetails, b.ID),
		BankDetailsID:   b.ID,
		BankName:        b.BankName,
	}
}
