package contract

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Range represents a symmetric tolerance band around a base value.
type Range struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// TotalAmount computes quantity x unit price rounded to 2 decimal places.
// Returns zero when either operand is zero or negative-absent.
func TotalAmount(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	if quantity.IsZero() || unitPrice.IsZero() {
		return decimal.Zero
	}
	return quantity.Mul(unitPrice).Round(2)
}

// ToleranceRange computes the min/max band for a base value given a
// tolerance percentage. Zero tolerance yields {base, base}.
func ToleranceRange(base, tolerancePercent decimal.Decimal) Range {
	if base.IsZero() || tolerancePercent.IsZero() {
		return Range{Min: base, Max: base}
	}
	delta := base.Mul(tolerancePercent).Div(decimal.NewFromInt(100))
	return Range{
		Min: base.Sub(delta).Round(2),
		Max: base.Add(delta).Round(2),
	}
}

// GenerateContractNumber builds a contract number of the form
// PREFIX-YYYYMM-NNNNNN where the suffix is the last 6 digits of the
// current epoch milliseconds. Collisions inside the same suffix window
// are possible; the unique index on contract_number surfaces them.
func GenerateContractNumber(prefix string) string {
	if prefix == "" {
		prefix = "CON"
	}
	now := time.Now()
	suffix := now.UnixMilli() % 1000000
	return fmt.Sprintf("%s-%s-%06d", prefix, now.Format("200601"), suffix)
}
