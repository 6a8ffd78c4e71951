package contract

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAmountInWords(t *testing.T) {
	t.Run("zero amount", func(t *testing.T) {
		assert.Equal(t, "US Dollars Zero only", AmountInWords(decimal.Zero, "USD"))
	})

	t.Run("whole amount without cents clause", func(t *testing.T) {
		got := AmountInWords(dec("1161"), "USD")
		assert.Equal(t, "US Dollars One Thousand One Hundred Sixty One only", got)
	})

	t.Run("amount with cents", func(t *testing.T) {
		got := AmountInWords(dec("1000.50"), "USD")
		assert.Equal(t, "US Dollars One Thousand and Fifty Cents only", got)
	})

	t.Run("cents only", func(t *testing.T) {
		got := AmountInWords(dec("0.25"), "USD")
		assert.Equal(t, "US Dollars Twenty Five Cents only", got)
	})

	t.Run("known currency names", func(t *testing.T) {
		assert.Equal(t, "Euros One only", AmountInWords(dec("1"), "EUR"))
		assert.Equal(t, "Chinese Yuan Ten only", AmountInWords(dec("10"), "CNY"))
		assert.Equal(t, "UAE Dirhams One Hundred only", AmountInWords(dec("100"), "AED"))
	})

	t.Run("unknown currency code passes through", func(t *testing.T) {
		assert.Equal(t, "XYZ Five only", AmountInWords(dec("5"), "XYZ"))
	})

	t.Run("large amount", func(t *testing.T) {
		got := AmountInWords(dec("1234567"), "USD")
		assert.Equal(t, "US Dollars One Million Two Hundred Thirty Four Thousand Five Hundred Sixty Seven only", got)
	})
}

func TestSpellCardinal(t *testing.T) {
	cases := map[int64]string{
		0:       "Zero",
		7:       "Seven",
		13:      "Thirteen",
		20:      "Twenty",
		21:      "Twenty One",
		100:     "One Hundred",
		115:     "One Hundred Fifteen",
		1000:    "One Thousand",
		1161:    "One Thousand One Hundred Sixty One",
		1000000: "One Million",
	}

	for n, want := range cases {
		assert.Equal(t, want, spellCardinal(n), "n=%d", n)
	}
}
