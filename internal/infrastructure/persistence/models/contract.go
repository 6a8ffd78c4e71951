package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tradedesk/backend/internal/domain/contract"
)

// ContractModel is the persistence model for the Contract aggregate root.
type ContractModel struct {
	AggregateModel
	ContractNumber string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	ContractDate   time.Time `gorm:"not null;index"`

	BuyerID       uuid.UUID `gorm:"type:uuid;not null;index"`
	SellerID      uuid.UUID `gorm:"type:uuid;not null"`
	CommodityID   uuid.UUID `gorm:"type:uuid;not null"`
	PaymentTermID uuid.UUID `gorm:"type:uuid;not null"`
	BankDetailsID uuid.UUID `gorm:"type:uuid;not null"`

	CommodityDescription string          `gorm:"type:text;not null"`
	Quantity             decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Unit                 string          `gorm:"type:varchar(20);not null;default:'MT'"`
	Tolerance            decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	Origin               string          `gorm:"type:varchar(200)"`
	Packing              string          `gorm:"type:varchar(500);not null"`
	QualitySpec          string          `gorm:"type:text"`

	UnitPrice    decimal.Decimal   `gorm:"type:decimal(18,4);not null"`
	Currency     string            `gorm:"type:varchar(3);not null;default:'USD'"`
	Incoterm     contract.Incoterm `gorm:"type:varchar(3);not null"`
	PortLocation string            `gorm:"type:varchar(200);not null"`

	TotalAmount     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	TotalAmountText string          `gorm:"type:text"`
	MinQuantity     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	MaxQuantity     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	MinTotalAmount  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	MaxTotalAmount  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`

	PaymentTermText string `gorm:"type:text;not null"`

	ShipmentPeriod  string `gorm:"type:text"`
	AdditionalTerms string `gorm:"type:text"`
	BuyerTerms      string `gorm:"type:text"`
	SellerTerms     string `gorm:"type:text"`

	ReleaseType    contract.ReleaseType   `gorm:"type:varchar(20);not null;default:'NOT_SPECIFIED'"`
	ReleaseStatus  contract.ReleaseStatus `gorm:"type:varchar(20);not null;default:'PENDING'"`
	ReleaseDate    *time.Time
	ReleaseRemarks string `gorm:"type:text"`

	DebitNoteNumber string `gorm:"type:varchar(50)"`
	InvoiceDate     *time.Time
	DueDate         *time.Time

	Status         contract.Status `gorm:"type:varchar(20);not null;default:'DRAFT';index"`
	CreatedBy      string          `gorm:"type:varchar(100)"`
	LastModifiedBy string          `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (ContractModel) TableName() string {
	return "contracts"
}

// ToDomain converts the persistence model to a domain Contract entity.
func (m *ContractModel) ToDomain() *contract.Contract {
	return &contract.Contract{
		BaseAggregateRoot:    m.ToDomainAggregateRoot(),
		ContractNumber:       m.ContractNumber,
		ContractDate:         m.ContractDate,
		BuyerID:              m.BuyerID,
		SellerID:             m.SellerID,
		CommodityID:          m.CommodityID,
		PaymentTermID:        m.PaymentTermID,
		BankDetailsID:        m.BankDetailsID,
		CommodityDescription: m.CommodityDescription,
		Quantity:             m.Quantity,
		Unit:                 m.Unit,
		Tolerance:            m.Tolerance,
		Origin:               m.Origin,
		Packing:              m.Packing,
		QualitySpec:          m.QualitySpec,
		UnitPrice:            m.UnitPrice,
		Currency:             m.Currency,
		Incoterm:             m.Incoterm,
		PortLocation:         m.PortLocation,
		TotalAmount:          m.TotalAmount,
		TotalAmountText:      m.TotalAmountText,
		MinQuantity:          m.MinQuantity,
		MaxQuantity:          m.MaxQuantity,
		MinTotalAmount:       m.MinTotalAmount,
		MaxTotalAmount:       m.MaxTotalAmount,
		PaymentTermText:      m.PaymentTermText,
		ShipmentPeriod:       m.ShipmentPeriod,
		AdditionalTerms:      m.AdditionalTerms,
		BuyerTerms:           m.BuyerTerms,
		SellerTerms:          m.SellerTerms,
		ReleaseType:          m.ReleaseType,
		ReleaseStatus:        m.ReleaseStatus,
		ReleaseDate:          m.ReleaseDate,
		ReleaseRemarks:       m.ReleaseRemarks,
		DebitNoteNumber:      m.DebitNoteNumber,
		InvoiceDate:          m.InvoiceDate,
		DueDate:              m.DueDate,
		Status:               m.Status,
		CreatedBy:            m.CreatedBy,
		LastModifiedBy:       m.LastModifiedBy,
	}
}

// FromDomain populates the persistence model from a domain Contract entity.
func (m *ContractModel) FromDomain(c *contract.Contract) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.ContractNumber = c.ContractNumber
	m.ContractDate = c.ContractDate
	m.BuyerID = c.BuyerID
	m.SellerID = c.SellerID
	m.CommodityID = c.CommodityID
	m.PaymentTermID = c.PaymentTermID
	m.BankDetailsID = c.BankDetailsID
	m.CommodityDescription = c.CommodityDescription
	m.Quantity = c.Quantity
	m.Unit = c.Unit
	m.Tolerance = c.Tolerance
	m.Origin = c.Origin
	m.Packing = c.Packing
	m.QualitySpec = c.QualitySpec
	m.UnitPrice = c.UnitPrice
	m.Currency = c.Currency
	m.Incoterm = c.Incoterm
	m.PortLocation = c.PortLocation
	m.TotalAmount = c.TotalAmount
	m.TotalAmountText = c.TotalAmountText
	m.MinQuantity = c.MinQuantity
	m.MaxQuantity = c.MaxQuantity
	m.MinTotalAmount = c.MinTotalAmount
	m.MaxTotalAmount = c.MaxTotalAmount
	m.PaymentTermText = c.PaymentTermText
	m.ShipmentPeriod = c.ShipmentPeriod
	m.AdditionalTerms = c.AdditionalTerms
	m.BuyerTerms = c.BuyerTerms
	m.SellerTerms = c.SellerTerms
	m.ReleaseType = c.ReleaseType
	m.ReleaseStatus = c.ReleaseStatus
	m.ReleaseDate = c.ReleaseDate
	m.ReleaseRemarks = c.ReleaseRemarks
	m.DebitNoteNumber = c.DebitNoteNumber
	m.InvoiceDate = c.InvoiceDate
	m.DueDate = c.DueDate
	m.Status = c.Status
	m.CreatedBy = c.CreatedBy
	m.LastModifiedBy = c.LastModifiedBy
}

// ContractModelFromDomain creates a new persistence model from a domain Contract entity.
func ContractModelFromDomain(c *contract.Contract) *ContractModel {
	m := &ContractModel{}
	m.FromDomain(c)
	return m
}
