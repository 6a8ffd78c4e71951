package contract

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Draft carries the fields a contract must provide before it can be
// persisted. References are plain IDs; existence is checked separately.
type Draft struct {
	BuyerID       uuid.UUID
	SellerID      uuid.UUID
	CommodityID   uuid.UUID
	PaymentTermID uuid.UUID
	BankDetailsID uuid.UUID
	Quantity      decimal.Decimal
	UnitPrice     decimal.Decimal
	Incoterm      string
	PortLocation  string
}

// ValidationResult aggregates every violation found in a draft.
type ValidationResult struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

// ValidateDraft checks all required contract fields and collects every
// violation instead of stopping at the first one.
func ValidateDraft(d Draft) ValidationResult {
	var errs []string

	if d.BuyerID == uuid.Nil {
		errs = append(errs, "Buyer is required")
	}
	if d.SellerID == uuid.Nil {
		errs = append(errs, "Seller is required")
	}
	if d.CommodityID == uuid.Nil {
		errs = append(errs, "Commodity is required")
	}
	if d.Quantity.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "Valid quantity is required")
	}
	if d.UnitPrice.LessThanOrEqual(decimal.Zero) {
		errs = append(errs, "Valid unit price is required")
	}
	if d.Incoterm == "" {
		errs = append(errs, "Incoterm is required")
	}
	if d.PortLocation == "" {
		errs = append(errs, "Port/Location is required")
	}
	if d.PaymentTermID == uuid.Nil {
		errs = append(errs, "Payment term is required")
	}
	if d.BankDetailsID == uuid.Nil {
		errs = append(errs, "Bank details are required")
	}

	return ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}
