package models

import (
	"github.com/shopspring/decimal"

	"github.com/tradedesk/backend/internal/domain/billing"
)

// PaymentTermModel is the persistence model for the PaymentTerm domain entity.
type PaymentTermModel struct {
	AggregateModel
	Name              string          `gorm:"type:varchar(200);not null;uniqueIndex"`
	Description       string          `gorm:"type:text;not null"`
	Terms             string          `gorm:"type:text;not null"`
	DepositPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	DaysFromBL        int             `gorm:"not null;default:0"`
	IsActive          bool            `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (PaymentTermModel) TableName() string {
	return "payment_terms"
}

// ToDomain converts the persistence model to a domain PaymentTerm entity.
func (m *PaymentTermModel) ToDomain() *billing.PaymentTerm {
	return &billing.PaymentTerm{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Description:       m.Description,
		Terms:             m.Terms,
		DepositPercentage: m.DepositPercentage,
		DaysFromBL:        m.DaysFromBL,
		IsActive:          m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain PaymentTerm entity.
func (m *PaymentTermModel) FromDomain(t *billing.PaymentTerm) {
	m.FromDomainAggregateRoot(t.BaseAggregateRoot)
	m.Name = t.Name
	m.Description = t.Description
	m.Terms = t.Terms
	m.DepositPercentage = t.DepositPercentage
	m.DaysFromBL = t.DaysFromBL
	m.IsActive = t.IsActive
}

// PaymentTermModelFromDomain creates a new persistence model from a domain PaymentTerm entity.
func PaymentTermModelFromDomain(t *billing.PaymentTerm) *PaymentTermModel {
	m := &PaymentTermModel{}
	m.FromDomain(t)
	return m
}

// BankDetailsModel is the persistence model for the BankDetails domain entity.
type BankDetailsModel struct {
	AggregateModel
	BankName      string `gorm:"type:varchar(200);not null"`
	AccountName   string `gorm:"type:varchar(200);not null"`
	AccountNumber string `gorm:"type:varchar(100);not null"`
	SwiftCode     string `gorm:"type:varchar(11);not null"`
	BankAddress   string `gorm:"type:text"`
	IBAN          string `gorm:"type:varchar(50)"`
	Currency      string `gorm:"type:varchar(3);not null;default:'USD'"`
	IsDefault     bool   `gorm:"not null;default:false;index"`
	IsActive      bool   `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (BankDetailsModel) TableName() string {
	return "bank_details"
}

// ToDomain converts the persistence model to a domain BankDetails entity.
func (m *BankDetailsModel) ToDomain() *billing.BankDetails {
	return &billing.BankDetails{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		BankName:          m.BankName,
		AccountName:       m.AccountName,
		AccountNumber:     m.AccountNumber,
		SwiftCode:         m.SwiftCode,
		BankAddress:       m.BankAddress,
		IBAN:              m.IBAN,
		Currency:          m.Currency,
		IsDefault:         m.IsDefault,
		IsActive:          m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain BankDetails entity.
func (m *BankDetailsModel) FromDomain(b *billing.BankDetails) {
	m.FromDomainAggregateRoot(b.BaseAggregateRoot)
	m.BankName = b.BankName
	m.AccountName = b.AccountName
	m.AccountNumber = b.AccountNumber
	m.SwiftCode = b.SwiftCode
	m.BankAddress = b.BankAddress
	m.IBAN = b.IBAN
	m.Currency = b.Currency
	m.IsDefault = b.IsDefault
	m.IsActive = b.IsActive
}

// BankDetailsModelFromDomain creates a new persistence model from a domain BankDetails entity.
func BankDetailsModelFromDomain(b *billing.BankDetails) *BankDetailsModel {
	m := &BankDetailsModel{}
	m.FromDomain(b)
	return m
}
