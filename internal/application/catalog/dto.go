package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/tradedesk/backend/internal/domain/catalog"
)

// CreateCommodityRequest represents a request to create a new commodity
type CreateCommodityRequest struct {
	Name           string `json:"name" binding:"required,min=1,max=200"`
	Description    string `json:"description" binding:"required"`
	HSCode         string `json:"hs_code" binding:"max=20"`
	DefaultUnit    string `json:"default_unit" binding:"omitempty,oneof=MT KG TONS BAGS PIECES CARTONS CBM"`
	DefaultOrigin  string `json:"default_origin" binding:"max=100"`
	DefaultPacking string `json:"default_packing" binding:"max=200"`
}

// UpdateCommodityRequest represents a request to update a commodity
type UpdateCommodityRequest struct {
	Name           *string `json:"name" binding:"omitempty,min=1,max=200"`
	Description    *string `json:"description"`
	HSCode         *string `json:"hs_code" binding:"omitempty,max=20"`
	DefaultUnit    *string `json:"default_unit" binding:"omitempty,oneof=MT KG TONS BAGS PIECES CARTONS CBM"`
	DefaultOrigin  *string `json:"default_origin" binding:"omitempty,max=100"`
	DefaultPacking *string `json:"default_packing" binding:"omitempty,max=200"`
	IsActive       *bool   `json:"is_active"`
}

// CommodityResponse represents a commodity in API responses
type CommodityResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	HSCode         string    `json:"hs_code"`
	DefaultUnit    string    `json:"default_unit"`
	DefaultOrigin  string    `json:"default_origin"`
	DefaultPacking string    `json:"default_packing"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	Version        int       `json:"version"`
}

// CommodityListFilter represents filter options for commodity list
type CommodityListFilter struct {
	Search   string `form:"search"`
	IsActive *bool  `form:"is_active"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToCommodityResponse converts a domain Commodity to CommodityResponse
func ToCommodityResponse(c *catalog.Commodity) CommodityResponse {
	return CommodityResponse{
		ID:             c.ID,
		Name:           c.Name,
		Description:    c.Description,
		HSCode:         c.HSCode,
		DefaultUnit:    string(c.DefaultUnit),
		DefaultOrigin:  c.DefaultOrigin,
		DefaultPacking: c.DefaultPacking,
		IsActive:       c.IsActive,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
		Version:        c.Version,
	}
}

// ToCommodityResponses converts a slice of domain commodities
func ToCommodityResponses(commodities []catalog.Commodity) []CommodityResponse {
	responses := make([]CommodityResponse, len(commodities))
	for i := range commodities {
		responses[i] = ToCommodityResponse(&commodities[i])
	}
	return responses
}
