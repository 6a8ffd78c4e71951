package contract

import (
	"strings"

	"github.com/shopspring/decimal"
)

// currencyNames maps ISO currency codes to the display names used in
// amount-in-words strings. Unknown codes pass through verbatim.
var currencyNames = map[string]string{
	"USD": "US Dollars",
	"EUR": "Euros",
	"GBP": "British Pounds",
	"JPY": "Japanese Yen",
	"CNY": "Chinese Yuan",
	"INR": "Indian Rupees",
	"AED": "UAE Dirhams",
	"SGD": "Singapore Dollars",
	"AUD": "Australian Dollars",
	"CAD": "Canadian Dollars",
}

// CurrencyName returns the display name for a currency code.
func CurrencyName(code string) string {
	if name, ok := currencyNames[code]; ok {
		return name
	}
	return code
}

// AmountInWords spells an amount in words with its currency name, e.g.
// "US Dollars One Thousand One Hundred Sixty One only". Cents are
// appended as "and <words> Cents" when the fractional part is non-zero.
// A zero amount yields "<CurrencyName> Zero only".
func AmountInWords(amount decimal.Decimal, currency string) string {
	name := CurrencyName(currency)
	if amount.IsZero() {
		return name + " Zero only"
	}

	whole := amount.IntPart()
	cents := amount.Sub(decimal.NewFromInt(whole)).Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	var b strings.Builder
	b.WriteString(name)
	b.WriteString(" ")
	if whole > 0 {
		b.WriteString(spellCardinal(whole))
	}
	if cents > 0 {
		if whole > 0 {
			b.WriteString(" and ")
		}
		b.WriteString(spellCardinal(cents))
		b.WriteString(" Cents")
	}
	b.WriteString(" only")
	return b.String()
}

var wordsOnes = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var wordsTens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

var wordsScales = []string{"", "Thousand", "Million", "Billion", "Trillion", "Quadrillion"}

// spellCardinal converts a positive integer to capitalized English words
// separated by single spaces, e.g. 1161 -> "One Thousand One Hundred Sixty One".
func spellCardinal(n int64) string {
	if n == 0 {
		return "Zero"
	}

	var groups []int64
	for n > 0 {
		groups = append(groups, n%1000)
		n /= 1000
	}

	var parts []string
	for i := len(groups) - 1; i >= 0; i-- {
		if groups[i] == 0 {
			continue
		}
		segment := spellBelowThousand(groups[i])
		if wordsScales[i] != "" {
			segment += " " + wordsScales[i]
		}
		parts = append(parts, segment)
	}
	return strings.Join(parts, " ")
}

func spellBelowThousand(n int64) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, wordsOnes[n/100]+" Hundred")
		n %= 100
	}
	if n >= 20 {
		parts = append(parts, wordsTens[n/10])
		n %= 10
	}
	if n > 0 {
		parts = append(parts, wordsOnes[n])
	}
	return strings.Join(parts, " ")
}
