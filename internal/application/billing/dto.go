package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tradedesk/backend/internal/domain/billing"
)

// =============================================================================
// PaymentTerm DTOs
// =============================================================================

// CreatePaymentTermRequest represents a request to create a new payment term
type CreatePaymentTermRequest struct {
	Name              string           `json:"name" binding:"required,min=1,max=200"`
	Description       string           `json:"description" binding:"required"`
	Terms             string           `json:"terms" binding:"required"`
	DepositPercentage *decimal.Decimal `json:"deposit_percentage"`
	DaysFromBL        *int             `json:"days_from_bl"`
}

// UpdatePaymentTermRequest represents a request to update a payment term
type UpdatePaymentTermRequest struct {
	Name              *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Description       *string          `json:"description"`
	Terms             *string          `json:"terms"`
	DepositPercentage *decimal.Decimal `json:"deposit_percentage"`
	DaysFromBL        *int             `json:"days_from_bl"`
	IsActive          *bool            `json:"is_active"`
}

// PaymentTermResponse represents a payment term in API responses
type PaymentTermResponse struct {
	ID                uuid.UUID       `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Terms             string          `json:"terms"`
	DepositPercentage decimal.Decimal `json:"deposit_percentage"`
	DaysFromBL        int             `json:"days_from_bl"`
	IsActive          bool            `json:"is_active"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	Version           int             `json:"version"`
}

// PaymentTermListFilter represents filter options for payment term list
type PaymentTermListFilter struct {
	Search   string `form:"search"`
	IsActive *bool  `form:"is_active"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToPaymentTermResponse converts a domain PaymentTerm to PaymentTermResponse
func ToPaymentTermResponse(t *billing.PaymentTerm) PaymentTermResponse {
	return PaymentTermResponse{
		ID:                t.ID,
		Name:              t.Name,
		Description:       t.Description,
		Terms:             t.Terms,
		DepositPercentage: t.DepositPercentage,
		DaysFromBL:        t.DaysFromBL,
		IsActive:          t.IsActive,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
		Version:           t.Version,
	}
}

// ToPaymentTermResponses converts a slice of domain payment terms
func ToPaymentTermResponses(terms []billing.PaymentTerm) []PaymentTermResponse {
	responses := make([]PaymentTermResponse, len(terms))
	for i := range terms {
		responses[i] = ToPaymentTermResponse(&terms[i])
	}
	return responses
}

// =============================================================================
// BankDetails DTOs
// =============================================================================

// CreateBankDetailsRequest represents a request to create a new bank account
type CreateBankDetailsRequest struct {
	BankName      string `json:"bank_name" binding:"required,min=1,max=200"`
	AccountName   string `json:"account_name" binding:"required,min=1,max=200"`
	AccountNumber string `json:"account_number" binding:"required,min=1,max=100"`
	SwiftCode     string `json:"swift_code" binding:"required"`
	BankAddress   string `json:"bank_address" binding:"max=500"`
	IBAN          string `json:"iban" binding:"max=50"`
	Currency      string `json:"currency" binding:"omitempty,len=3"`
	IsDefault     bool   `json:"is_default"`
}

// UpdateBankDetailsRequest represents a request to update a bank account
type UpdateBankDetailsRequest struct {
	BankName      *string `json:"bank_name" binding:"omitempty,min=1,max=200"`
	AccountName   *string `json:"account_name" binding:"omitempty,min=1,max=200"`
	AccountNumber *string `json:"account_number" binding:"omitempty,min=1,max=100"`
	SwiftCode     *string `json:"swift_code"`
	BankAddress   *string `json:"bank_address" binding:"omitempty,max=500"`
	IBAN          *string `json:"iban" binding:"omitempty,max=50"`
	Currency      *string `json:"currency" binding:"omitempty,len=3"`
	IsDefault     *bool   `json:"is_default"`
	IsActive      *bool   `json:"is_active"`
}

// BankDetailsResponse represents a bank account in API responses
type BankDetailsResponse struct {
	ID            uuid.UUID `json:"id"`
	BankName      string    `json:"bank_name"`
	AccountName   string    `json:"account_name"`
	AccountNumber string    `json:"account_number"`
	SwiftCode     string    `json:"swift_code"`
	BankAddress   string    `json:"bank_address"`
	IBAN          string    `json:"iban"`
	Currency      string    `json:"currency"`
	IsDefault     bool      `json:"is_default"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Version       int       `json:"version"`
}

// BankDetailsListFilter represents filter options for bank account list
type BankDetailsListFilter struct {
	Search   string `form:"search"`
	IsActive *bool  `form:"is_active"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToBankDetailsResponse converts a domain BankDetails to BankDetailsResponse
func ToBankDetailsResponse(b *billing.BankDetails) BankDetailsResponse {
	return BankDetailsResponse{
		ID:            b.ID,
		BankName:      b.BankName,
		AccountName:   b.AccountName,
		AccountNumber: b.AccountNumber,
		SwiftCode:     b.SwiftCode,
		BankAddress:   b.BankAddress,
		IBAN:          b.IBAN,
		Currency:      b.Currency,
		IsDefault:     b.IsDefault,
		IsActive:      b.IsActive,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
		Version:       b.Version,
	}
}

// ToBankDetailsResponses converts a slice of domain bank accounts
func ToBankDetailsResponses(accounts []billing.BankDetails) []BankDetailsResponse {
	responses := make([]BankDetailsResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToBankDetailsResponse(&accounts[i])
	}
	return responses
}
