package contract

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tradedesk/backend/internal/domain/shared"
)

// Status represents the display status of a contract. No transition
// rules are enforced; any status may replace any other.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusFinalized Status = "FINALIZED"
	StatusSent      Status = "SENT"
	StatusSigned    Status = "SIGNED"
	StatusCancelled Status = "CANCELLED"
)

// Incoterm is one of the eleven Incoterms 2020 delivery-term codes.
type Incoterm string

const (
	IncotermEXW Incoterm = "EXW"
	IncotermFCA Incoterm = "FCA"
	IncotermFAS Incoterm = "FAS"
	IncotermFOB Incoterm = "FOB"
	IncotermCFR Incoterm = "CFR"
	IncotermCIF Incoterm = "CIF"
	IncotermCPT Incoterm = "CPT"
	IncotermCIP Incoterm = "CIP"
	IncotermDAP Incoterm = "DAP"
	IncotermDPU Incoterm = "DPU"
	IncotermDDP Incoterm = "DDP"
)

// ReleaseType identifies the shipping-document release mechanism.
type ReleaseType string

const (
	ReleaseTypeSWB          ReleaseType = "SWB"
	ReleaseTypeTelexRelease ReleaseType = "TELEX_RELEASE"
	ReleaseTypeOriginalBL   ReleaseType = "ORIGINAL_BL"
	ReleaseTypeNotSpecified ReleaseType = "NOT_SPECIFIED"
)

// Label returns the human-readable name printed on release notes.
func (t ReleaseType) Label() string {
	switch t {
	case ReleaseTypeSWB:
		return "Sea Waybill (SWB)"
	case ReleaseTypeTelexRelease:
		return "Telex Release"
	case ReleaseTypeOriginalBL:
		return "Original Bill of Lading (B/L)"
	default:
		return string(t)
	}
}

// ReleaseStatus tracks progress of the document release.
type ReleaseStatus string

const (
	ReleaseStatusPending       ReleaseStatus = "PENDING"
	ReleaseStatusReleased      ReleaseStatus = "RELEASED"
	ReleaseStatusNotApplicable ReleaseStatus = "NOT_APPLICABLE"
)

// Contract is the aggregate root for a trade sales contract. It owns
// its scalar and derived fields and holds non-owning references to the
// master-data entities; referenced records are soft-deleted, never
// removed, so historical contracts stay resolvable.
type Contract struct {
	shared.BaseAggregateRoot

	ContractNumber string
	ContractDate   time.Time

	BuyerID       uuid.UUID
	SellerID      uuid.UUID
	CommodityID   uuid.UUID
	PaymentTermID uuid.UUID
	BankDetailsID uuid.UUID

	CommodityDescription string
	Quantity             decimal.Decimal
	Unit                 string
	Tolerance            decimal.Decimal
	Origin               string
	Packing              string
	QualitySpec          string

	UnitPrice    decimal.Decimal
	Currency     string
	Incoterm     Incoterm
	PortLocation string

	TotalAmount     decimal.Decimal
	TotalAmountText string
	MinQuantity     decimal.Decimal
	MaxQuantity     decimal.Decimal
	MinTotalAmount  decimal.Decimal
	MaxTotalAmount  decimal.Decimal

	PaymentTermText string

	ShipmentPeriod  string
	AdditionalTerms string
	BuyerTerms      string
	SellerTerms     string

	ReleaseType    ReleaseType
	ReleaseStatus  ReleaseStatus
	ReleaseDate    *time.Time
	ReleaseRemarks string

	DebitNoteNumber string
	InvoiceDate     *time.Time
	DueDate         *time.Time

	Status         Status
	CreatedBy      string
	LastModifiedBy string
}

// NewContractParams carries everything needed to construct a contract.
type NewContractParams struct {
	ContractNumber       string
	ContractDate         *time.Time
	Draft                Draft
	CommodityDescription string
	Unit                 string
	Tolerance            decimal.Decimal
	Origin               string
	Packing              string
	QualitySpec          string
	Currency             string
	PaymentTermText      string
	ShipmentPeriod       string
	AdditionalTerms      string
	BuyerTerms           string
	SellerTerms          string
	Status               Status
	CreatedBy            string
}

// NewContract creates a contract from validated draft data, applying
// field defaults and computing the derived financial fields.
func NewContract(p NewContractParams) (*Contract, error) {
	if result := ValidateDraft(p.Draft); !result.IsValid {
		return nil, shared.NewDomainError("VALIDATION_ERROR", strings.Join(result.Errors, "; "))
	}
	if p.CommodityDescription == "" {
		return nil, shared.NewDomainError("INVALID_COMMODITY_DESCRIPTION", "Commodity description cannot be empty")
	}
	if p.Packing == "" {
		return nil, shared.NewDomainError("INVALID_PACKING", "Packing cannot be empty")
	}
	if err := validateIncoterm(Incoterm(p.Draft.Incoterm)); err != nil {
		return nil, err
	}
	if err := validateTolerance(p.Tolerance); err != nil {
		return nil, err
	}

	contractDate := time.Now()
	if p.ContractDate != nil {
		contractDate = *p.ContractDate
	}

	c := &Contract{
		BaseAggregateRoot:    shared.NewBaseAggregateRoot(),
		ContractNumber:       strings.TrimSpace(p.ContractNumber),
		ContractDate:         contractDate,
		BuyerID:              p.Draft.BuyerID,
		SellerID:             p.Draft.SellerID,
		CommodityID:          p.Draft.CommodityID,
		PaymentTermID:        p.Draft.PaymentTermID,
		BankDetailsID:        p.Draft.BankDetailsID,
		CommodityDescription: p.CommodityDescription,
		Quantity:             p.Draft.Quantity,
		Unit:                 p.Unit,
		Tolerance:            p.Tolerance,
		Origin:               p.Origin,
		Packing:              p.Packing,
		QualitySpec:          p.QualitySpec,
		UnitPrice:            p.Draft.UnitPrice,
		Currency:             p.Currency,
		Incoterm:             Incoterm(p.Draft.Incoterm),
		PortLocation:         p.Draft.PortLocation,
		PaymentTermText:      p.PaymentTermText,
		ShipmentPeriod:       p.ShipmentPeriod,
		AdditionalTerms:      p.AdditionalTerms,
		BuyerTerms:           p.BuyerTerms,
		SellerTerms:          p.SellerTerms,
		ReleaseType:          ReleaseTypeNotSpecified,
		ReleaseStatus:        ReleaseStatusPending,
		Status:               StatusDraft,
		CreatedBy:            p.CreatedBy,
		LastModifiedBy:       p.CreatedBy,
	}

	if c.Unit == "" {
		c.Unit = "MT"
	}
	if c.Currency == "" {
		c.Currency = "USD"
	}
	if c.BuyerTerms == "" {
		c.BuyerTerms = DefaultBuyerTerms()
	}
	if c.SellerTerms == "" {
		c.SellerTerms = DefaultSellerTerms()
	}
	if c.CreatedBy == "" {
		c.CreatedBy = "system"
		c.LastModifiedBy = "system"
	}
	if p.Status != "" {
		if err := validateStatus(p.Status); err != nil {
			return nil, err
		}
		c.Status = p.Status
	}

	c.Recalculate()
	c.AddDomainEvent(NewContractCreatedEvent(c))

	return c, nil
}

// Recalculate recomputes every derived financial field from the current
// quantity, unit price, tolerance and currency.
func (c *Contract) Recalculate() {
	c.TotalAmount = TotalAmount(c.Quantity, c.UnitPrice)
	c.TotalAmountText = AmountInWords(c.TotalAmount, c.Currency)

	quantityRange := ToleranceRange(c.Quantity, c.Tolerance)
	c.MinQuantity = quantityRange.Min
	c.MaxQuantity = quantityRange.Max

	amountRange := ToleranceRange(c.TotalAmount, c.Tolerance)
	c.MinTotalAmount = amountRange.Min
	c.MaxTotalAmount = amountRange.Max
}

// SetCommodityTerms updates the commodity section and recalculates.
func (c *Contract) SetCommodityTerms(description string, quantity decimal.Decimal, unit string, tolerance decimal.Decimal, origin, packing, qualitySpec string) error {
	if description == "" {
		return shared.NewDomainError("INVALID_COMMODITY_DESCRIPTION", "Commodity description cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be greater than zero")
	}
	if packing == "" {
		return shared.NewDomainError("INVALID_PACKING", "Packing cannot be empty")
	}
	if err := validateTolerance(tolerance); err != nil {
		return err
	}

	c.CommodityDescription = description
	c.Quantity = quantity
	if unit != "" {
		c.Unit = unit
	}
	c.Tolerance = tolerance
	c.Origin = origin
	c.Packing = packing
	c.QualitySpec = qualitySpec
	c.Recalculate()
	c.touch()

	return nil
}

// SetPricing updates the pricing section and recalculates.
func (c *Contract) SetPricing(unitPrice decimal.Decimal, currency string, incoterm Incoterm, portLocation string) error {
	if unitPrice.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_UNIT_PRICE", "Unit price must be greater than zero")
	}
	if err := validateIncoterm(incoterm); err != nil {
		return err
	}
	if portLocation == "" {
		return shared.NewDomainError("INVALID_PORT_LOCATION", "Port/Location cannot be empty")
	}

	c.UnitPrice = unitPrice
	if currency != "" {
		c.Currency = currency
	}
	c.Incoterm = incoterm
	c.PortLocation = portLocation
	c.Recalculate()
	c.touch()

	return nil
}

// SetReferences replaces the master-data references.
func (c *Contract) SetReferences(buyerID, sellerID, commodityID, paymentTermID, bankDetailsID uuid.UUID) error {
	if buyerID == uuid.Nil || sellerID == uuid.Nil || commodityID == uuid.Nil ||
		paymentTermID == uuid.Nil || bankDetailsID == uuid.Nil {
		return shared.NewDomainError("INVALID_REFERENCE", "All contract references are required")
	}

	c.BuyerID = buyerID
	c.SellerID = sellerID
	c.CommodityID = commodityID
	c.PaymentTermID = paymentTermID
	c.BankDetailsID = bankDetailsID
	c.touch()

	return nil
}

// SetPaymentTermText sets the free-text payment clause.
func (c *Contract) SetPaymentTermText(text string) error {
	if text == "" {
		return shared.NewDomainError("INVALID_PAYMENT_TERM_TEXT", "Payment term text cannot be empty")
	}
	c.PaymentTermText = text
	c.touch()
	return nil
}

// SetNarrative sets the optional narrative sections.
func (c *Contract) SetNarrative(shipmentPeriod, additionalTerms, buyerTerms, sellerTerms string) {
	c.ShipmentPeriod = shipmentPeriod
	c.AdditionalTerms = additionalTerms
	if buyerTerms != "" {
		c.BuyerTerms = buyerTerms
	}
	if sellerTerms != "" {
		c.SellerTerms = sellerTerms
	}
	c.touch()
}

// SetReleaseInfo updates shipping-document release tracking.
func (c *Contract) SetReleaseInfo(releaseType ReleaseType, status ReleaseStatus, releaseDate *time.Time, remarks string) error {
	if err := validateReleaseType(releaseType); err != nil {
		return err
	}
	if err := validateReleaseStatus(status); err != nil {
		return err
	}

	c.ReleaseType = releaseType
	c.ReleaseStatus = status
	c.ReleaseDate = releaseDate
	c.ReleaseRemarks = remarks
	c.touch()

	return nil
}

// SetInvoicing records debit-note metadata. No relationship to the
// contract totals is enforced.
func (c *Contract) SetInvoicing(debitNoteNumber string, invoiceDate, dueDate *time.Time) {
	c.DebitNoteNumber = debitNoteNumber
	c.InvoiceDate = invoiceDate
	c.DueDate = dueDate
	c.touch()
}

// SetStatus replaces the display status.
func (c *Contract) SetStatus(status Status) error {
	if err := validateStatus(status); err != nil {
		return err
	}
	c.Status = status
	c.touch()
	return nil
}

// SetContractDate replaces the contract date.
func (c *Contract) SetContractDate(date time.Time) {
	c.ContractDate = date
	c.touch()
}

// MarkModifiedBy records who performed the latest change.
func (c *Contract) MarkModifiedBy(who string) {
	if who == "" {
		who = "system"
	}
	c.LastModifiedBy = who
}

func (c *Contract) touch() {
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// HasRelease reports whether a release mechanism has been chosen.
func (c *Contract) HasRelease() bool {
	return c.ReleaseType != ReleaseTypeNotSpecified && c.ReleaseType != ""
}

// Validation functions

func validateIncoterm(i Incoterm) error {
	switch i {
	case IncotermEXW, IncotermFCA, IncotermFAS, IncotermFOB, IncotermCFR,
		IncotermCIF, IncotermCPT, IncotermCIP, IncotermDAP, IncotermDPU, IncotermDDP:
		return nil
	default:
		return shared.NewDomainError("INVALID_INCOTERM", "Incoterm must be one of the eleven Incoterms 2020 codes")
	}
}

func validateTolerance(t decimal.Decimal) error {
	if t.IsNegative() || t.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewDomainError("INVALID_TOLERANCE", "Tolerance must be between 0 and 100")
	}
	return nil
}

func validateReleaseType(t ReleaseType) error {
	switch t {
	case ReleaseTypeSWB, ReleaseTypeTelexRelease, ReleaseTypeOriginalBL, ReleaseTypeNotSpecified:
		return nil
	default:
		return shared.NewDomainError("INVALID_RELEASE_TYPE", "Invalid release type")
	}
}

func validateReleaseStatus(s ReleaseStatus) error {
	switch s {
	case ReleaseStatusPending, ReleaseStatusReleased, ReleaseStatusNotApplicable:
		return nil
	default:
		return shared.NewDomainError("INVALID_RELEASE_STATUS", "Invalid release status")
	}
}

func validateStatus(s Status) error {
	switch s {
	case StatusDraft, StatusFinalized, StatusSent, StatusSigned, StatusCancelled:
		return nil
	default:
		return shared.NewDomainError("INVALID_STATUS", "Invalid contract status")
	}
}
