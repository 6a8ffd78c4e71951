package billing

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tradedesk/backend/internal/domain/shared"
)

// PaymentTerm is a reusable payment clause template. The Terms text is
// copied verbatim into a contract when the term is selected; the copy is
// editable on the contract afterwards.
type PaymentTerm struct {
	shared.BaseAggregateRoot
	Name              string
	Description       string
	Terms             string
	DepositPercentage decimal.Decimal
	DaysFromBL        int
	IsActive          bool
}

// NewPaymentTerm creates a new payment term with required fields
func NewPaymentTerm(name, description, terms string) (*PaymentTerm, error) {
	if err := validatePaymentTermName(name); err != nil {
		return nil, err
	}
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot be empty")
	}
	if terms == "" {
		return nil, shared.NewDomainError("INVALID_TERMS", "Terms text cannot be empty")
	}

	t := &PaymentTerm{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Description:       description,
		Terms:             terms,
		DepositPercentage: decimal.Zero,
		DaysFromBL:        0,
		IsActive:          true,
	}

	t.AddDomainEvent(NewPaymentTermCreatedEvent(t))

	return t, nil
}

// Update updates the payment term's content
func (t *PaymentTerm) Update(name, description, terms string) error {
	if err := validatePaymentTermName(name); err != nil {
		return err
	}
	if description == "" {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot be empty")
	}
	if terms == "" {
		return shared.NewDomainError("INVALID_TERMS", "Terms text cannot be empty")
	}

	t.Name = strings.TrimSpace(name)
	t.Description = description
	t.Terms = terms
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	t.AddDomainEvent(NewPaymentTermUpdatedEvent(t))

	return nil
}

// SetSchedule sets the deposit percentage and days-from-BL settlement window
func (t *PaymentTerm) SetSchedule(depositPercentage decimal.Decimal, daysFromBL int) error {
	if depositPercentage.IsNegative() || depositPercentage.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewDomainError("INVALID_DEPOSIT", "Deposit percentage must be between 0 and 100")
	}
	if daysFromBL < 0 {
		return shared.NewDomainError("INVALID_DAYS_FROM_BL", "Days from B/L cannot be negative")
	}

	t.DepositPercentage = depositPercentage
	t.DaysFromBL = daysFromBL
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	return nil
}

// Deactivate soft-deletes the payment term
func (t *PaymentTerm) Deactivate() {
	t.IsActive = false
	t.UpdatedAt = time.Now()
	t.IncrementVersion()
}

// Activate restores a soft-deleted payment term
func (t *PaymentTerm) Activate() {
	t.IsActive = true
	t.UpdatedAt = time.Now()
	t.IncrementVersion()
}

func validatePaymentTermName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Payment term name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Payment term name cannot exceed 200 characters")
	}
	return nil
}
