// Package pdf renders contract documents with gofpdf. Renderers are
// pure: they read a populated snapshot and write to the supplied
// writer, nothing else.
package pdf

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tradedesk/backend/internal/domain/billing"
	"github.com/tradedesk/backend/internal/domain/contract"
	"github.com/tradedesk/backend/internal/domain/party"
)

// ContractDocument is the fully-populated snapshot both renderers
// consume. The contract carries the denormalized commodity and payment
// text; buyer, seller and bank are resolved by the caller.
type ContractDocument struct {
	Contract *contract.Contract
	Buyer    *party.Party
	Seller   *party.Party
	Bank     *billing.BankDetails
}

var enPrinter = message.NewPrinter(language.English)

// formatAmount renders a monetary amount with thousands separators and
// two decimals, e.g. "12,345.67".
func formatAmount(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return enPrinter.Sprintf("%.2f", f)
}

// formatQuantity renders a quantity without trailing zeros.
func formatQuantity(d decimal.Decimal) string {
	return d.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
