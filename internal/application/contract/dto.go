package contract

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	appbilling "github.com/tradedesk/backend/internal/application/billing"
	appcatalog "github.com/tradedesk/backend/internal/application/catalog"
	appparty "github.com/tradedesk/backend/internal/application/party"
	"github.com/tradedesk/backend/internal/domain/contract"
)

// CreateContractRequest represents a request to create a new contract.
// Required-field checks run through the domain draft validator so a
// single response carries every violation, not just the first.
type CreateContractRequest struct {
	ContractNumber string     `json:"contract_number" binding:"max=50"`
	ContractDate   *time.Time `json:"contract_date"`

	BuyerID       uuid.UUID `json:"buyer_id"`
	SellerID      uuid.UUID `json:"seller_id"`
	CommodityID   uuid.UUID `json:"commodity_id"`
	PaymentTermID uuid.UUID `json:"payment_term_id"`
	BankDetailsID uuid.UUID `json:"bank_details_id"`

	CommodityDescription string          `json:"commodity_description"`
	Quantity             decimal.Decimal `json:"quantity"`
	Unit                 string          `json:"unit"`
	Tolerance            decimal.Decimal `json:"tolerance"`
	Origin               string          `json:"origin"`
	Packing              string          `json:"packing"`
	QualitySpec          string          `json:"quality_spec"`

	UnitPrice    decimal.Decimal `json:"unit_price"`
	Currency     string          `json:"currency" binding:"omitempty,len=3"`
	Incoterm     string          `json:"incoterm"`
	PortLocation string          `json:"port_location"`

	PaymentTermText string `json:"payment_term_text"`

	ShipmentPeriod  string `json:"shipment_period"`
	AdditionalTerms string `json:"additional_terms"`
	BuyerTerms      string `json:"buyer_terms"`
	SellerTerms     string `json:"seller_terms"`

	Status    string `json:"status" binding:"omitempty,oneof=DRAFT FINALIZED SENT SIGNED CANCELLED"`
	CreatedBy string `json:"created_by" binding:"max=100"`
}

// UpdateContractRequest represents a partial contract update. Derived
// financial fields are recomputed server-side and never accepted here.
type UpdateContractRequest struct {
	ContractDate *time.Time `json:"contract_date"`

	BuyerID       *uuid.UUID `json:"buyer_id"`
	SellerID      *uuid.UUID `json:"seller_id"`
	CommodityID   *uuid.UUID `json:"commodity_id"`
	PaymentTermID *uuid.UUID `json:"payment_term_id"`
	BankDetailsID *uuid.UUID `json:"bank_details_id"`

	CommodityDescription *string          `json:"commodity_description"`
	Quantity             *decimal.Decimal `json:"quantity"`
	Unit                 *string          `json:"unit"`
	Tolerance            *decimal.Decimal `json:"tolerance"`
	Origin               *string          `json:"origin"`
	Packing              *string          `json:"packing"`
	QualitySpec          *string          `json:"quality_spec"`

	UnitPrice    *decimal.Decimal `json:"unit_price"`
	Currency     *string          `json:"currency" binding:"omitempty,len=3"`
	Incoterm     *string          `json:"incoterm"`
	PortLocation *string          `json:"port_location"`

	PaymentTermText *string `json:"payment_term_text"`

	ShipmentPeriod  *string `json:"shipment_period"`
	AdditionalTerms *string `json:"additional_terms"`
	BuyerTerms      *string `json:"buyer_terms"`
	SellerTerms     *string `json:"seller_terms"`

	ReleaseType    *string    `json:"release_type" binding:"omitempty,oneof=SWB TELEX_RELEASE ORIGINAL_BL NOT_SPECIFIED"`
	ReleaseStatus  *string    `json:"release_status" binding:"omitempty,oneof=PENDING RELEASED NOT_APPLICABLE"`
	ReleaseDate    *time.Time `json:"release_date"`
	ReleaseRemarks *string    `json:"release_remarks"`

	DebitNoteNumber *string    `json:"debit_note_number"`
	InvoiceDate     *time.Time `json:"invoice_date"`
	DueDate         *time.Time `json:"due_date"`

	Status         *string `json:"status" binding:"omitempty,oneof=DRAFT FINALIZED SENT SIGNED CANCELLED"`
	LastModifiedBy string  `json:"last_modified_by" binding:"max=100"`
}

// ContractResponse represents a contract in API responses. The nested
// reference objects are populated on single-record reads only.
type ContractResponse struct {
	ID             uuid.UUID `json:"id"`
	ContractNumber string    `json:"contract_number"`
	ContractDate   time.Time `json:"contract_date"`

	BuyerID       uuid.UUID `json:"buyer_id"`
	SellerID      uuid.UUID `json:"seller_id"`
	CommodityID   uuid.UUID `json:"commodity_id"`
	PaymentTermID uuid.UUID `json:"payment_term_id"`
	BankDetailsID uuid.UUID `json:"bank_details_id"`

	Buyer       *appparty.PartyResponse         `json:"buyer,omitempty"`
	Seller      *appparty.PartyResponse         `json:"seller,omitempty"`
	Commodity   *appcatalog.CommodityResponse   `json:"commodity,omitempty"`
	PaymentTerm *appbilling.PaymentTermResponse `json:"payment_term,omitempty"`
	BankDetails *appbilling.BankDetailsResponse `json:"bank_details,omitempty"`

	CommodityDescription string          `json:"commodity_description"`
	Quantity             decimal.Decimal `json:"quantity"`
	Unit                 string          `json:"unit"`
	Tolerance            decimal.Decimal `json:"tolerance"`
	Origin               string          `json:"origin"`
	Packing              string          `json:"packing"`
	QualitySpec          string          `json:"quality_spec"`

	UnitPrice    decimal.Decimal `json:"unit_price"`
	Currency     string          `json:"currency"`
	Incoterm     string          `json:"incoterm"`
	PortLocation string          `json:"port_location"`

	TotalAmount     decimal.Decimal `json:"total_amount"`
	TotalAmountText string          `json:"total_amount_text"`
	MinQuantity     decimal.Decimal `json:"min_quantity"`
	MaxQuantity     decimal.Decimal `json:"max_quantity"`
	MinTotalAmount  decimal.Decimal `json:"min_total_amount"`
	MaxTotalAmount  decimal.Decimal `json:"max_total_amount"`

	PaymentTermText string `json:"payment_term_text"`

	ShipmentPeriod  string `json:"shipment_period"`
	AdditionalTerms string `json:"additional_terms"`
	BuyerTerms      string `json:"buyer_terms"`
	SellerTerms     string `json:"seller_terms"`

	ReleaseType    string     `json:"release_type"`
	ReleaseStatus  string     `json:"release_status"`
	ReleaseDate    *time.Time `json:"release_date,omitempty"`
	ReleaseRemarks string     `json:"release_remarks"`

	DebitNoteNumber string     `json:"debit_note_number"`
	InvoiceDate     *time.Time `json:"invoice_date,omitempty"`
	DueDate         *time.Time `json:"due_date,omitempty"`

	Status         string    `json:"status"`
	CreatedBy      string    `json:"created_by"`
	LastModifiedBy string    `json:"last_modified_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	Version        int       `json:"version"`
}

// ContractListFilter represents filter options for contract list
type ContractListFilter struct {
	Status         string     `form:"status" binding:"omitempty,oneof=DRAFT FINALIZED SENT SIGNED CANCELLED"`
	BuyerID        *uuid.UUID `form:"buyer_id"`
	ContractNumber string     `form:"contract_number"`
	Search         string     `form:"search"`
	Page           int        `form:"page" binding:"omitempty,min=1"`
	PageSize       int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy        string     `form:"order_by"`
	OrderDir       string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// CalculateRequest represents a financial preview request
type CalculateRequest struct {
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Tolerance decimal.Decimal `json:"tolerance"`
	Currency  string          `json:"currency" binding:"omitempty,len=3"`
}

// CalculateResponse represents the computed financial preview
type CalculateResponse struct {
	TotalAmount     decimal.Decimal `json:"total_amount"`
	TotalAmountText string          `json:"total_amount_text"`
	QuantityRange   contract.Range  `json:"quantity_range"`
	AmountRange     contract.Range  `json:"amount_range"`
}

// ToContractResponse converts a domain Contract to ContractResponse
func ToContractResponse(c *contract.Contract) ContractResponse {
	return ContractResponse{
		ID:                   c.ID,
		ContractNumber:       c.ContractNumber,
		ContractDate:         c.ContractDate,
		BuyerID:              c.BuyerID,
		SellerID:             c.SellerID,
		CommodityID:          c.CommodityID,
		PaymentTermID:        c.PaymentTermID,
		BankDetailsID:        c.BankDetailsID,
		CommodityDescription: c.CommodityDescription,
		Quantity:             c.Quantity,
		Unit:                 c.Unit,
		Tolerance:            c.Tolerance,
		Origin:               c.Origin,
		Packing:              c.Packing,
		QualitySpec:          c.QualitySpec,
		UnitPrice:            c.UnitPrice,
		Currency:             c.Currency,
		Incoterm:             string(c.Incoterm),
		PortLocation:         c.PortLocation,
		TotalAmount:          c.TotalAmount,
		TotalAmountText:      c.TotalAmountText,
		MinQuantity:          c.MinQuantity,
		MaxQuantity:          c.MaxQuantity,
		MinTotalAmount:       c.MinTotalAmount,
		MaxTotalAmount:       c.MaxTotalAmount,
		PaymentTermText:      c.PaymentTermText,
		ShipmentPeriod:       c.ShipmentPeriod,
		AdditionalTerms:      c.AdditionalTerms,
		BuyerTerms:           c.BuyerTerms,
		SellerTerms:          c.SellerTerms,
		ReleaseType:          string(c.ReleaseType),
		ReleaseStatus:        string(c.ReleaseStatus),
		ReleaseDate:          c.ReleaseDate,
		ReleaseRemarks:       c.ReleaseRemarks,
		DebitNoteNumber:      c.DebitNoteNumber,
		InvoiceDate:          c.InvoiceDate,
		DueDate:              c.DueDate,
		Status:               string(c.Status),
		CreatedBy:            c.CreatedBy,
		LastModifiedBy:       c.LastModifiedBy,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
		Version:              c.Version,
	}
}

// ToContractResponses converts a slice of domain contracts
func ToContractResponses(contracts []contract.Contract) []ContractResponse {
	responses := make([]ContractResponse, len(contracts))
	for i := range contracts {
		responses[i] = ToContractResponse(&contracts[i])
	}
	return responses
}
