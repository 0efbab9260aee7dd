package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertToEUR_KnownCurrencies(t *testing.T) {
	tests := []struct {
		amount   float64
		currency string
		want     float64
	}{
		{19.99, "EUR", 19.99},
		{19.99, "USD", 19.24},
		{10.00, "GBP", 12.06},
		{1000, "JPY", 6.13},
	}
	for _, tt := range tests {
		got := ConvertToEUR(tt.amount, true, tt.currency)
		assert.Equal(t, tt.want, got, "%v %s", tt.amount, tt.currency)
	}
}

func TestConvertToEUR_ZeroFallbacks(t *testing.T) {
	assert.Equal(t, 0.0, ConvertToEUR(0, true, "USD"), "zero amount")
	assert.Equal(t, 0.0, ConvertToEUR(9.99, false, "USD"), "unknown amount")
	assert.Equal(t, 0.0, ConvertToEUR(9.99, true, ""), "missing currency")
	assert.Equal(t, 0.0, ConvertToEUR(9.99, true, "XTS"), "unlisted currency")
}

func TestConvertToEURStrict_UnknownCurrency(t *testing.T) {
	_, err := ConvertToEURStrict(9.99, true, "XTS")
	require.Error(t, err)
	var ucErr *UnknownCurrencyError
	require.ErrorAs(t, err, &ucErr)
	assert.Equal(t, "XTS", ucErr.Currency)
}

func TestConvertToEURStrict_ZeroAmountNeverErrors(t *testing.T) {
	// A zero or missing amount short-circuits before the currency lookup.
	got, err := ConvertToEURStrict(0, true, "XTS")
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	got, err = ConvertToEURStrict(9.99, false, "XTS")
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestRound2_HalfAwayFromZero(t *testing.T) {
	// 0.125 is exact in binary, so the .5 case is genuinely exercised.
	assert.Equal(t, 0.13, round2(0.125))
	assert.Equal(t, -0.13, round2(-0.125))
	assert.Equal(t, 12.06, round2(12.0601))
}
