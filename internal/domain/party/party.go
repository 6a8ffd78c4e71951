package party

import (
	"regexp"
	"strings"
	"time"

	"github.com/tradedesk/backend/internal/domain/shared"
)

// Type distinguishes the two sides of a trade contract.
type Type string

const (
	TypeBuyer  Type = "BUYER"
	TypeSeller Type = "SELLER"
)

// Party represents a buyer or seller company. It is master data: a
// delete only clears IsActive so historical contracts keep resolving.
type Party struct {
	shared.BaseAggregateRoot
	Type          Type
	CompanyName   string
	Address       string
	ContactPerson string
	Email         string
	Phone         string
	Country       string
	TaxID         string
	IsActive      bool
}

// NewParty creates a new party with required fields
func NewParty(partyType Type, companyName, address string) (*Party, error) {
	if err := validatePartyType(partyType); err != nil {
		return nil, err
	}
	if err := validateCompanyName(companyName); err != nil {
		return nil, err
	}
	if address == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Address cannot be empty")
	}

	p := &Party{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Type:              partyType,
		CompanyName:       strings.TrimSpace(companyName),
		Address:           address,
		IsActive:          true,
	}

	p.AddDomainEvent(NewPartyCreatedEvent(p))

	return p, nil
}

// Update updates the party's company information
func (p *Party) Update(companyName, address string) error {
	if err := validateCompanyName(companyName); err != nil {
		return err
	}
	if address == "" {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot be empty")
	}

	p.CompanyName = strings.TrimSpace(companyName)
	p.Address = address
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewPartyUpdatedEvent(p))

	return nil
}

// SetContact sets the party's contact information
func (p *Party) SetContact(contactPerson, email, phone string) error {
	if email != "" {
		if err := validateEmail(email); err != nil {
			return err
		}
	}

	p.ContactPerson = contactPerson
	p.Email = strings.ToLower(strings.TrimSpace(email))
	p.Phone = phone
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetLocation sets the party's country and tax identifier
func (p *Party) SetLocation(country, taxID string) {
	p.Country = country
	p.TaxID = taxID
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// Deactivate soft-deletes the party
func (p *Party) Deactivate() {
	p.IsActive = false
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewPartyDeactivatedEvent(p))
}

// Activate restores a soft-deleted party
func (p *Party) Activate() {
	p.IsActive = true
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// IsBuyer returns true if the party is a buyer
func (p *Party) IsBuyer() bool {
	return p.Type == TypeBuyer
}

// IsSeller returns true if the party is a seller
func (p *Party) IsSeller() bool {
	return p.Type == TypeSeller
}

// Validation functions

func validatePartyType(t Type) error {
	switch t {
	case TypeBuyer, TypeSeller:
		return nil
	default:
		return shared.NewDomainError("INVALID_TYPE", "Party type must be 'BUYER' or 'SELLER'")
	}
}

func validateCompanyName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_COMPANY_NAME", "Company name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_COMPANY_NAME", "Company name cannot exceed 200 characters")
	}
	return nil
}

// Matches the loose pattern used on the wire: non-space local part,
// an @, and a dotted domain.
var emailRegex = regexp.MustCompile(`^\S+@\S+\.\S+$`)

func validateEmail(email string) error {
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}
