package catalog

import (
	"strings"
	"time"

	"github.com/tradedesk/backend/internal/domain/shared"
)

// Unit is a trade unit of measure for commodity quantities.
type Unit string

const (
	UnitMT      Unit = "MT"
	UnitKG      Unit = "KG"
	UnitTons    Unit = "TONS"
	UnitBags    Unit = "BAGS"
	UnitPieces  Unit = "PIECES"
	UnitCartons Unit = "CARTONS"
	UnitCBM     Unit = "CBM"
)

// Units lists every valid unit code, shared by validation and the API.
var Units = []Unit{UnitMT, UnitKG, UnitTons, UnitBags, UnitPieces, UnitCartons, UnitCBM}

// Commodity represents a tradeable good with its default trade terms.
// Master data: deletes only clear IsActive.
type Commodity struct {
	shared.BaseAggregateRoot
	Name           string
	Description    string
	HSCode         string
	DefaultUnit    Unit
	DefaultOrigin  string
	DefaultPacking string
	IsActive       bool
}

// NewCommodity creates a new commodity with required fields
func NewCommodity(name, description string) (*Commodity, error) {
	if err := validateCommodityName(name); err != nil {
		return nil, err
	}
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot be empty")
	}

	c := &Commodity{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Description:       description,
		DefaultUnit:       UnitMT,
		IsActive:          true,
	}

	c.AddDomainEvent(NewCommodityCreatedEvent(c))

	return c, nil
}

// Update updates the commodity's basic information
func (c *Commodity) Update(name, description string) error {
	if err := validateCommodityName(name); err != nil {
		return err
	}
	if description == "" {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot be empty")
	}

	c.Name = strings.TrimSpace(name)
	c.Description = description
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCommodityUpdatedEvent(c))

	return nil
}

// SetTradeDefaults sets the default trade terms used to prefill contracts
func (c *Commodity) SetTradeDefaults(hsCode string, defaultUnit Unit, defaultOrigin, defaultPacking string) error {
	if defaultUnit != "" {
		if err := validateUnit(defaultUnit); err != nil {
			return err
		}
		c.DefaultUnit = defaultUnit
	}

	c.HSCode = hsCode
	c.DefaultOrigin = defaultOrigin
	c.DefaultPacking = defaultPacking
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// Deactivate soft-deletes the commodity
func (c *Commodity) Deactivate() {
	c.IsActive = false
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCommodityDeactivatedEvent(c))
}

// Activate restores a soft-deleted commodity
func (c *Commodity) Activate() {
	c.IsActive = true
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// Validation functions

func validateCommodityName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Commodity name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Commodity name cannot exceed 200 characters")
	}
	return nil
}

func validateUnit(u Unit) error {
	for _, valid := range Units {
		if u == valid {
			return nil
		}
	}
	return shared.NewDomainError("INVALID_UNIT", "Invalid unit of measure")
}
