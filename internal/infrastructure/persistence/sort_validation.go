package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
// Caller-supplied order_by values must pass through here before reaching an
// ORDER BY clause; they cannot be bound as placeholders.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// CommonSortFields contains fields common to all entities
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// ContractSortFields contains allowed sort fields for contracts
var ContractSortFields = map[string]bool{
	"id":              true,
	"created_at":      true,
	"updated_at":      true,
	"contract_number": true,
	"contract_date":   true,
	"status":          true,
	"buyer_id":        true,
	"total_amount":    true,
	"currency":        true,
	"incoterm":        true,
	"release_status":  true,
	"invoice_date":    true,
	"due_date":        true,
}

// PartySortFields contains allowed sort fields for parties
var PartySortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"type":           true,
	"company_name":   true,
	"contact_person": true,
	"email":          true,
	"country":        true,
	"is_active":      true,
}

// CommoditySortFields contains allowed sort fields for commodities
var CommoditySortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"name":           true,
	"hs_code":        true,
	"default_unit":   true,
	"default_origin": true,
	"is_active":      true,
}

// PaymentTermSortFields contains allowed sort fields for payment terms
var PaymentTermSortFields = map[string]bool{
	"id":                 true,
	"created_at":         true,
	"updated_at":         true,
	"name":               true,
	"deposit_percentage": true,
	"days_from_bl":       true,
	"is_active":          true,
}

// BankDetailsSortFields contains allowed sort fields for bank details
var BankDetailsSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"bank_name":    true,
	"account_name": true,
	"currency":     true,
	"is_default":   true,
	"is_active":    true,
}
