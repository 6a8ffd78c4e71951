package party

import (
	"time"

	"github.com/google/uuid"

	"github.com/tradedesk/backend/internal/domain/party"
)

// CreatePartyRequest represents a request to create a new party
type CreatePartyRequest struct {
	Type          string `json:"type" binding:"required,oneof=BUYER SELLER"`
	CompanyName   string `json:"company_name" binding:"required,min=1,max=200"`
	Address       string `json:"address" binding:"required,max=500"`
	ContactPerson string `json:"contact_person" binding:"max=100"`
	Email         string `json:"email" binding:"omitempty,email,max=200"`
	Phone         string `json:"phone" binding:"max=50"`
	Country       string `json:"country" binding:"max=100"`
	TaxID         string `json:"tax_id" binding:"max=50"`
}

// UpdatePartyRequest represents a request to update a party
type UpdatePartyRequest struct {
	CompanyName   *string `json:"company_name" binding:"omitempty,min=1,max=200"`
	Address       *string `json:"address" binding:"omitempty,max=500"`
	ContactPerson *string `json:"contact_person" binding:"omitempty,max=100"`
	Email         *string `json:"email" binding:"omitempty,email,max=200"`
	Phone         *string `json:"phone" binding:"omitempty,max=50"`
	Country       *string `json:"country" binding:"omitempty,max=100"`
	TaxID         *string `json:"tax_id" binding:"omitempty,max=50"`
	IsActive      *bool   `json:"is_active"`
}

// PartyResponse represents a party in API responses
type PartyResponse struct {
	ID            uuid.UUID `json:"id"`
	Type          string    `json:"type"`
	CompanyName   string    `json:"company_name"`
	Address       string    `json:"address"`
	ContactPerson string    `json:"contact_person"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Country       string    `json:"country"`
	TaxID         string    `json:"tax_id"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Version       int       `json:"version"`
}

// PartyListFilter represents filter options for party list
type PartyListFilter struct {
	Search   string `form:"search"`
	Type     string `form:"type" binding:"omitempty,oneof=BUYER SELLER"`
	IsActive *bool  `form:"is_active"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToPartyResponse converts a domain Party to PartyResponse
func ToPartyResponse(p *party.Party) PartyResponse {
	return PartyResponse{
		ID:            p.ID,
		Type:          string(p.Type),
		CompanyName:   p.CompanyName,
		Address:       p.Address,
		ContactPerson: p.ContactPerson,
		Email:         p.Email,
		Phone:         p.Phone,
		Country:       p.Country,
		TaxID:         p.TaxID,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		Version:       p.Version,
	}
}

// ToPartyResponses converts a slice of domain parties
func ToPartyResponses(parties []party.Party) []PartyResponse {
	responses := make([]PartyResponse, len(parties))
	for i := range parties {
		responses[i] = ToPartyResponse(&parties[i])
	}
	return responses
}
