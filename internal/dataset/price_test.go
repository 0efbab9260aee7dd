package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPriceCurrency_WellFormed(t *testing.T) {
	price, known, currency := ExtractPriceCurrency(`{"final": 1999, "currency": "USD"}`)
	assert.Equal(t, 19.99, price)
	assert.True(t, known)
	assert.Equal(t, "USD", currency)
}

func TestExtractPriceCurrency_MangledBlob(t *testing.T) {
	// Upstream exports drop the quoting around keys and switch quote styles.
	price, known, currency := ExtractPriceCurrency(`{final: 2499, currency: 'EUR', discount_percent: 0}`)
	assert.Equal(t, 24.99, price)
	assert.True(t, known)
	assert.Equal(t, "EUR", currency)
}

func TestExtractPriceCurrency_NullSentinels(t *testing.T) {
	for _, raw := range []string{"", "N", `\N`} {
		price, known, currency := ExtractPriceCurrency(raw)
		assert.Equal(t, 0.0, price, "raw=%q", raw)
		assert.False(t, known, "raw=%q", raw)
		assert.Empty(t, currency, "raw=%q", raw)
	}
}

func TestExtractPriceCurrency_Garbage(t *testing.T) {
	price, known, currency := ExtractPriceCurrency("not a price blob at all")
	assert.Equal(t, 0.0, price)
	assert.False(t, known)
	assert.Empty(t, currency)
}

func TestExtractPriceCurrency_CurrencyOnly(t *testing.T) {
	price, known, currency := ExtractPriceCurrency(`{"currency": "GBP"}`)
	assert.Equal(t, 0.0, price)
	assert.False(t, known)
	assert.Equal(t, "GBP", currency)
}

func TestExtractPriceCurrency_LowercaseCurrencyIgnored(t *testing.T) {
	_, _, currency := ExtractPriceCurrency(`{"final": 500, "currency": "usd"}`)
	assert.Empty(t, currency)
}
