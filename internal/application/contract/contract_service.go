package contract

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appbilling "github.com/tradedesk/backend/internal/application/billing"
	appcatalog "github.com/tradedesk/backend/internal/application/catalog"
	appparty "github.com/tradedesk/backend/internal/application/party"
	"github.com/tradedesk/backend/internal/domain/billing"
	"github.com/tradedesk/backend/internal/domain/catalog"
	"github.com/tradedesk/backend/internal/domain/contract"
	"github.com/tradedesk/backend/internal/domain/party"
	"github.com/tradedesk/backend/internal/domain/shared"
)

// numberGenerationAttempts bounds retries when a generated contract
// number collides inside the same suffix window.
const numberGenerationAttempts = 3

// PopulatedContract is a contract with every master-data reference
// resolved to its full entity, as the document renderers consume it.
type PopulatedContract struct {
	Contract    *contract.Contract
	Buyer       *party.Party
	Seller      *party.Party
	Commodity   *catalog.Commodity
	PaymentTerm *billing.PaymentTerm
	BankDetails *billing.BankDetails
}

// ContractService orchestrates contract creation, updates and the
// financial preview across the master-data repositories.
type ContractService struct {
	contractRepo  contract.Repository
	partyRepo     party.Repository
	commodityRepo catalog.Repository
	termRepo      billing.PaymentTermRepository
	bankRepo      billing.BankDetailsRepository
	numberPrefix  string
	logger        *zap.Logger
}

// NewContractService creates a new ContractService
func NewContractService(
	contractRepo contract.Repository,
	partyRepo party.Repository,
	commodityRepo catalog.Repository,
	termRepo billing.PaymentTermRepository,
	bankRepo billing.BankDetailsRepository,
	numberPrefix string,
	logger *zap.Logger,
) *ContractService {
	return &ContractService{
		contractRepo:  contractRepo,
		partyRepo:     partyRepo,
		commodityRepo: commodityRepo,
		termRepo:      termRepo,
		bankRepo:      bankRepo,
		numberPrefix:  numberPrefix,
		logger:        logger,
	}
}

// Create validates the draft, resolves every reference, fills defaults
// from the referenced master data and persists the new contract.
// Nothing is persisted when validation fails.
func (s *ContractService) Create(ctx context.Context, req CreateContractRequest) (*ContractResponse, error) {
	draft := contract.Draft{
		BuyerID:       req.BuyerID,
		SellerID:      req.SellerID,
		CommodityID:   req.CommodityID,
		PaymentTermID: req.PaymentTermID,
		BankDetailsID: req.BankDetailsID,
		Quantity:      req.Quantity,
		UnitPrice:     req.UnitPrice,
		Incoterm:      req.Incoterm,
		PortLocation:  req.PortLocation,
	}
	if result := contract.ValidateDraft(draft); !result.IsValid {
		return nil, shared.NewDomainError("VALIDATION_ERROR", strings.Join(result.Errors, "; "))
	}

	refs, err := s.resolveReferences(ctx, req.BuyerID, req.SellerID, req.CommodityID, req.PaymentTermID, req.BankDetailsID)
	if err != nil {
		return nil, err
	}

	number, err := s.resolveNumber(ctx, req.ContractNumber)
	if err != nil {
		return nil, err
	}

	description := req.CommodityDescription
	if description == "" {
		description = refs.Commodity.Name
	}
	unit := req.Unit
	if unit == "" {
		unit = string(refs.Commodity.DefaultUnit)
	}
	origin := req.Origin
	if origin == "" {
		origin = refs.Commodity.DefaultOrigin
	}
	packing := req.Packing
	if packing == "" {
		packing = refs.Commodity.DefaultPacking
	}
	paymentTermText := req.PaymentTermText
	if paymentTermText == "" {
		paymentTermText = refs.PaymentTerm.Terms
	}

	c, err := contract.NewContract(contract.NewContractParams{
		ContractNumber:       number,
		ContractDate:         req.ContractDate,
		Draft:                draft,
		CommodityDescription: description,
		Unit:                 unit,
		Tolerance:            req.Tolerance,
		Origin:               origin,
		Packing:              packing,
		QualitySpec:          req.QualitySpec,
		Currency:             req.Currency,
		PaymentTermText:      paymentTermText,
		ShipmentPeriod:       req.ShipmentPeriod,
		AdditionalTerms:      req.AdditionalTerms,
		BuyerTerms:           req.BuyerTerms,
		SellerTerms:          req.SellerTerms,
		Status:               contract.Status(req.Status),
		CreatedBy:            req.CreatedBy,
	})
	if err != nil {
		return nil, err
	}

	if err := s.contractRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("contract created",
		zap.String("contract_id", c.ID.String()),
		zap.String("contract_number", c.ContractNumber),
		zap.String("total_amount", c.TotalAmount.String()))

	response := s.toPopulatedResponse(c, refs)
	return &response, nil
}

// GetByID retrieves a contract with its references expanded
func (s *ContractService) GetByID(ctx context.Context, id uuid.UUID) (*ContractResponse, error) {
	populated, err := s.GetPopulated(ctx, id)
	if err != nil {
		return nil, err
	}

	response := s.toPopulatedResponse(populated.Contract, populated)
	return &response, nil
}

// GetPopulated retrieves a contract with every reference resolved to
// its full entity. The document renderers and export handlers consume
// this; referenced master data is soft-deleted only, so records stay
// resolvable for old contracts.
func (s *ContractService) GetPopulated(ctx context.Context, id uuid.UUID) (*PopulatedContract, error) {
	c, err := s.contractRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	buyer, err := s.partyRepo.FindByID(ctx, c.BuyerID)
	if err != nil {
		return nil, err
	}
	seller, err := s.partyRepo.FindByID(ctx, c.SellerID)
	if err != nil {
		return nil, err
	}
	commodity, err := s.commodityRepo.FindByID(ctx, c.CommodityID)
	if err != nil {
		return nil, err
	}
	term, err := s.termRepo.FindByID(ctx, c.PaymentTermID)
	if err != nil {
		return nil, err
	}
	bank, err := s.bankRepo.FindByID(ctx, c.BankDetailsID)
	if err != nil {
		return nil, err
	}

	return &PopulatedContract{
		Contract:    c,
		Buyer:       buyer,
		Seller:      seller,
		Commodity:   commodity,
		PaymentTerm: term,
		BankDetails: bank,
	}, nil
}

// List retrieves contracts with filtering and pagination
func (s *ContractService) List(ctx context.Context, filter ContractListFilter) ([]ContractResponse, int64, error) {
	domainFilter := buildContractFilter(filter)

	contracts, err := s.contractRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.contractRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToContractResponses(contracts), total, nil
}

// Search matches contracts by number or buyer company name, capped at
// contract.SearchLimit rows, unpaginated.
func (s *ContractService) Search(ctx context.Context, query string) ([]ContractResponse, error) {
	contracts, err := s.contractRepo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return ToContractResponses(contracts), nil
}

// Update applies a partial update and recomputes the derived financial
// fields from the effective values.
func (s *ContractService) Update(ctx context.Context, id uuid.UUID, req UpdateContractRequest) (*ContractResponse, error) {
	c, err := s.contractRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.BuyerID != nil || req.SellerID != nil || req.CommodityID != nil ||
		req.PaymentTermID != nil || req.BankDetailsID != nil {
		buyerID := c.BuyerID
		sellerID := c.SellerID
		commodityID := c.CommodityID
		paymentTermID := c.PaymentTermID
		bankDetailsID := c.BankDetailsID
		if req.BuyerID != nil {
			buyerID = *req.BuyerID
		}
		if req.SellerID != nil {
			sellerID = *req.SellerID
		}
		if req.CommodityID != nil {
			commodityID = *req.CommodityID
		}
		if req.PaymentTermID != nil {
			paymentTermID = *req.PaymentTermID
		}
		if req.BankDetailsID != nil {
			bankDetailsID = *req.BankDetailsID
		}
		if _, err := s.resolveReferences(ctx, buyerID, sellerID, commodityID, paymentTermID, bankDetailsID); err != nil {
			return nil, err
		}
		if err := c.SetReferences(buyerID, sellerID, commodityID, paymentTermID, bankDetailsID); err != nil {
			return nil, err
		}
	}

	if req.CommodityDescription != nil || req.Quantity != nil || req.Unit != nil ||
		req.Tolerance != nil || req.Origin != nil || req.Packing != nil || req.QualitySpec != nil {
		description := c.CommodityDescription
		quantity := c.Quantity
		unit := c.Unit
		tolerance := c.Tolerance
		origin := c.Origin
		packing := c.Packing
		qualitySpec := c.QualitySpec
		if req.CommodityDescription != nil {
			description = *req.CommodityDescription
		}
		if req.Quantity != nil {
			quantity = *req.Quantity
		}
		if req.Unit != nil {
			unit = *req.Unit
		}
		if req.Tolerance != nil {
			tolerance = *req.Tolerance
		}
		if req.Origin != nil {
			origin = *req.Origin
		}
		if req.Packing != nil {
			packing = *req.Packing
		}
		if req.QualitySpec != nil {
			qualitySpec = *req.QualitySpec
		}
		if err := c.SetCommodityTerms(description, quantity, unit, tolerance, origin, packing, qualitySpec); err != nil {
			return nil, err
		}
	}

	if req.UnitPrice != nil || req.Currency != nil || req.Incoterm != nil || req.PortLocation != nil {
		unitPrice := c.UnitPrice
		currency := c.Currency
		incoterm := c.Incoterm
		portLocation := c.PortLocation
		if req.UnitPrice != nil {
			unitPrice = *req.UnitPrice
		}
		if req.Currency != nil {
			currency = *req.Currency
		}
		if req.Incoterm != nil {
			incoterm = contract.Incoterm(*req.Incoterm)
		}
		if req.PortLocation != nil {
			portLocation = *req.PortLocation
		}
		if err := c.SetPricing(unitPrice, currency, incoterm, portLocation); err != nil {
			return nil, err
		}
	}

	if req.PaymentTermText != nil {
		if err := c.SetPaymentTermText(*req.PaymentTermText); err != nil {
			return nil, err
		}
	}

	if req.ShipmentPeriod != nil || req.AdditionalTerms != nil || req.BuyerTerms != nil || req.SellerTerms != nil {
		shipmentPeriod := c.ShipmentPeriod
		additionalTerms := c.AdditionalTerms
		buyerTerms := c.BuyerTerms
		sellerTerms := c.SellerTerms
		if req.ShipmentPeriod != nil {
			shipmentPeriod = *req.ShipmentPeriod
		}
		if req.AdditionalTerms != nil {
			additionalTerms = *req.AdditionalTerms
		}
		if req.BuyerTerms != nil {
			buyerTerms = *req.BuyerTerms
		}
		if req.SellerTerms != nil {
			sellerTerms = *req.SellerTerms
		}
		c.SetNarrative(shipmentPeriod, additionalTerms, buyerTerms, sellerTerms)
	}

	if req.ReleaseType != nil || req.ReleaseStatus != nil || req.ReleaseDate != nil || req.ReleaseRemarks != nil {
		releaseType := c.ReleaseType
		releaseStatus := c.ReleaseStatus
		releaseDate := c.ReleaseDate
		remarks := c.ReleaseRemarks
		if req.ReleaseType != nil {
			releaseType = contract.ReleaseType(*req.ReleaseType)
		}
		if req.ReleaseStatus != nil {
			releaseStatus = contract.ReleaseStatus(*req.ReleaseStatus)
		}
		if req.ReleaseDate != nil {
			releaseDate = req.ReleaseDate
		}
		if req.ReleaseRemarks != nil {
			remarks = *req.ReleaseRemarks
		}
		if err := c.SetReleaseInfo(releaseType, releaseStatus, releaseDate, remarks); err != nil {
			return nil, err
		}
	}

	if req.DebitNoteNumber != nil || req.InvoiceDate != nil || req.DueDate != nil {
		debitNoteNumber := c.DebitNoteNumber
		invoiceDate := c.InvoiceDate
		dueDate := c.DueDate
		if req.DebitNoteNumber != nil {
			debitNoteNumber = *req.DebitNoteNumber
		}
		if req.InvoiceDate != nil {
			invoiceDate = req.InvoiceDate
		}
		if req.DueDate != nil {
			dueDate = req.DueDate
		}
		c.SetInvoicing(debitNoteNumber, invoiceDate, dueDate)
	}

	if req.Status != nil {
		if err := c.SetStatus(contract.Status(*req.Status)); err != nil {
			return nil, err
		}
	}
	if req.ContractDate != nil {
		c.SetContractDate(*req.ContractDate)
	}
	if req.LastModifiedBy != "" {
		c.MarkModifiedBy(req.LastModifiedBy)
	}

	if err := s.contractRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	response := ToContractResponse(c)
	return &response, nil
}

// Delete permanently removes a contract
func (s *ContractService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.contractRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("contract deleted", zap.String("contract_id", id.String()))
	return nil
}

// Calculate computes the financial preview without touching storage.
// Identical input yields identical output.
func (s *ContractService) Calculate(_ context.Context, req CalculateRequest) CalculateResponse {
	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	total := contract.TotalAmount(req.Quantity, req.UnitPrice)

	return CalculateResponse{
		TotalAmount:     total,
		TotalAmountText: contract.AmountInWords(total, currency),
		QuantityRange:   contract.ToleranceRange(req.Quantity, req.Tolerance),
		AmountRange:     contract.ToleranceRange(total, req.Tolerance),
	}
}

// resolveReferences loads every referenced entity and checks party
// roles. Failures surface as domain errors so the handler answers 400,
// not 404: the contract itself is not the missing resource.
func (s *ContractService) resolveReferences(ctx context.Context, buyerID, sellerID, commodityID, paymentTermID, bankDetailsID uuid.UUID) (*PopulatedContract, error) {
	buyer, err := s.partyRepo.FindByID(ctx, buyerID)
	if err != nil {
		return nil, referenceError(err, "Buyer not found")
	}
	if buyer.Type != party.TypeBuyer {
		return nil, shared.NewDomainError("INVALID_REFERENCE", "Referenced buyer is not a BUYER party")
	}

	seller, err := s.partyRepo.FindByID(ctx, sellerID)
	if err != nil {
		return nil, referenceError(err, "Seller not found")
	}
	if seller.Type != party.TypeSeller {
		return nil, shared.NewDomainError("INVALID_REFERENCE", "Referenced seller is not a SELLER party")
	}

	commodity, err := s.commodityRepo.FindByID(ctx, commodityID)
	if err != nil {
		return nil, referenceError(err, "Commodity not found")
	}
	term, err := s.termRepo.FindByID(ctx, paymentTermID)
	if err != nil {
		return nil, referenceError(err, "Payment term not found")
	}
	bank, err := s.bankRepo.FindByID(ctx, bankDetailsID)
	if err != nil {
		return nil, referenceError(err, "Bank details not found")
	}

	return &PopulatedContract{
		Buyer:       buyer,
		Seller:      seller,
		Commodity:   commodity,
		PaymentTerm: term,
		BankDetails: bank,
	}, nil
}

// resolveNumber returns the explicit number after a uniqueness check,
// or generates one, retrying on suffix-window collisions.
func (s *ContractService) resolveNumber(ctx context.Context, explicit string) (string, error) {
	number := strings.TrimSpace(explicit)
	if number != "" {
		exists, err := s.contractRepo.ExistsByNumber(ctx, number)
		if err != nil {
			return "", err
		}
		if exists {
			return "", shared.NewDomainError("ALREADY_EXISTS", "Contract number already in use")
		}
		return number, nil
	}

	for attempt := 0; attempt < numberGenerationAttempts; attempt++ {
		candidate := contract.GenerateContractNumber(s.numberPrefix)
		exists, err := s.contractRepo.ExistsByNumber(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", shared.NewDomainError("NUMBER_GENERATION_FAILED", "Could not generate a unique contract number")
}

func (s *ContractService) toPopulatedResponse(c *contract.Contract, refs *PopulatedContract) ContractResponse {
	response := ToContractResponse(c)

	buyer := appparty.ToPartyResponse(refs.Buyer)
	seller := appparty.ToPartyResponse(refs.Seller)
	commodity := appcatalog.ToCommodityResponse(refs.Commodity)
	term := appbilling.ToPaymentTermResponse(refs.PaymentTerm)
	bank := appbilling.ToBankDetailsResponse(refs.BankDetails)

	response.Buyer = &buyer
	response.Seller = &seller
	response.Commodity = &commodity
	response.PaymentTerm = &term
	response.BankDetails = &bank

	return response
}

func referenceError(err error, message string) error {
	if err == shared.ErrNotFound {
		return shared.NewDomainError("INVALID_REFERENCE", message)
	}
	return err
}

func buildContractFilter(filter ContractListFilter) shared.Filter {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "contract_date"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]any),
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.BuyerID != nil {
		domainFilter.Filters["buyer_id"] = filter.BuyerID.String()
	}
	if filter.ContractNumber != "" {
		domainFilter.Filters["contract_number"] = filter.ContractNumber
	}
	return domainFilter
}
