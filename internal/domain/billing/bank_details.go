package billing

import (
	"regexp"
	"strings"
	"time"

	"github.com/tradedesk/backend/internal/domain/shared"
)

// BankDetails is a seller bank account printed on contracts and debit
// notes. At most one record may be the default at any time; the
// repository clears competing defaults inside the same transaction.
type BankDetails struct {
	shared.BaseAggregateRoot
	BankName      string
	AccountName   string
	AccountNumber string
	SwiftCode     string
	BankAddress   string
	IBAN          string
	Currency      string
	IsDefault     bool
	IsActive      bool
}

// NewBankDetails creates a new bank account record with required fields
func NewBankDetails(bankName, accountName, accountNumber, swiftCode string) (*BankDetails, error) {
	if bankName == "" {
		return nil, shared.NewDomainError("INVALID_BANK_NAME", "Bank name cannot be empty")
	}
	if accountName == "" {
		return nil, shared.NewDomainError("INVALID_ACCOUNT_NAME", "Account name cannot be empty")
	}
	if accountNumber == "" {
		return nil, shared.NewDomainError("INVALID_ACCOUNT_NUMBER", "Account number cannot be empty")
	}
	normalizedSwift, err := normalizeSwiftCode(swiftCode)
	if err != nil {
		return nil, err
	}

	b := &BankDetails{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		BankName:          bankName,
		AccountName:       accountName,
		AccountNumber:     accountNumber,
		SwiftCode:         normalizedSwift,
		Currency:          "USD",
		IsDefault:         false,
		IsActive:          true,
	}

	b.AddDomainEvent(NewBankDetailsCreatedEvent(b))

	return b, nil
}

// Update updates the account's core fields
func (b *BankDetails) Update(bankName, accountName, accountNumber, swiftCode string) error {
	if bankName == "" {
		return shared.NewDomainError("INVALID_BANK_NAME", "Bank name cannot be empty")
	}
	if accountName == "" {
		return shared.NewDomainError("INVALID_ACCOUNT_NAME", "Account name cannot be empty")
	}
	if accountNumber == "" {
		return shared.NewDomainError("INVALID_ACCOUNT_NUMBER", "Account number cannot be empty")
	}
	normalizedSwift, err := normalizeSwiftCode(swiftCode)
	if err != nil {
		return err
	}

	b.BankName = bankName
	b.AccountName = accountName
	b.AccountNumber = accountNumber
	b.SwiftCode = normalizedSwift
	b.UpdatedAt = time.Now()
	b.IncrementVersion()

	return nil
}

// SetWireDetails sets the optional wiring fields
func (b *BankDetails) SetWireDetails(bankAddress, iban, currency string) {
	b.BankAddress = bankAddress
	b.IBAN = strings.ToUpper(strings.TrimSpace(iban))
	if currency != "" {
		b.Currency = currency
	}
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
}

// MarkDefault flags this account as the default. Exclusivity against
// other records is the repository's job.
func (b *BankDetails) MarkDefault() {
	b.IsDefault = true
	b.UpdatedAt = time.Now()
	b.IncrementVersion()

	b.AddDomainEvent(NewBankDetailsDefaultChangedEvent(b))
}

// ClearDefault removes the default flag
func (b *BankDetails) ClearDefault() {
	b.IsDefault = false
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
}

// Deactivate soft-deletes the account and drops its default flag
func (b *BankDetails) Deactivate() {
	b.IsActive = false
	b.IsDefault = false
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
}

// Activate restores a soft-deleted account (not as default)
func (b *BankDetails) Activate() {
	b.IsActive = true
	b.UpdatedAt = time.Now()
	b.IncrementVersion()
}

// 6 letters, 2 alphanumerics, optional 3-character branch suffix.
var swiftRegex = regexp.MustCompile(`^[A-Z]{6}[A-Z0-9]{2}([A-Z0-9]{3})?$`)

func normalizeSwiftCode(code string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if !swiftRegex.MatchString(normalized) {
		return "", shared.NewDomainError("INVALID_SWIFT_CODE", "SWIFT code must be 8 or 11 characters (6 letters + 2 alphanumerics + optional 3 alphanumerics)")
	}
	return normalized, nil
}
