package dataset

import (
	"fmt"
	"math"
)

// Exchange rates to EUR as of Dec 31, 2024.
var exchangeRatesToEUR = map[string]float64{
	"EUR": 1.0, "USD": 1 / 1.0389, "GBP": 1 / 0.82918,
	"JPY": 1 / 163.06, "CAD": 1 / 1.4785, "AUD": 1 / 1.6631,
	"CHF": 1 / 0.9367, "CNY": 1 / 7.5496, "SEK": 1 / 11.4840,
	"NZD": 1 / 1.8417, "MXN": 1 / 21.2110, "SGD": 1 / 1.4159,
	"HKD": 1 / 8.0726, "NOK": 1 / 11.8500, "KRW": 1 / 1518.82,
	"TRY": 1 / 36.7285, "RUB": 1 / 103.50, "INR": 1 / 89.05,
	"BRL": 1 / 6.32, "ZAR": 1 / 19.2520, "DKK": 1 / 7.4578,
	"PLN": 1 / 4.2625, "THB": 1 / 35.54, "MYR": 1 / 4.67,
	"HUF": 1 / 410.25, "CZK": 1 / 25.185, "ILS": 1 / 3.82,
	"CLP": 1 / 1023.50, "PHP": 1 / 60.85, "AED": 1 / 3.814,
	"COP": 1 / 4562.00, "SAR": 1 / 3.896, "VND": 1 / 26380,
}

// UnknownCurrencyError reports a priced row whose currency code is not in the
// rate table. Only surfaced in strict mode; the lenient converter folds these
// rows to zero instead.
type UnknownCurrencyError struct {
	Currency string
}

func (e *UnknownCurrencyError) Error() string {
	return fmt.Sprintf("no EUR exchange rate for currency %q", e.Currency)
}

// round2 rounds half away from zero to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ConvertToEUR converts a major-unit amount to EUR. The zero fallback is
// deliberate: a zero amount, an unknown amount or currency, and a currency
// missing from the rate table all convert to 0 rather than failing, so a bad
// price never aborts a load.
func ConvertToEUR(amount float64, amountKnown bool, currency string) float64 {
	if !amountKnown || amount == 0 || currency == "" {
		return 0
	}
	rate, ok := exchangeRatesToEUR[currency]
	if !ok {
		return 0
	}
	return round2(amount * rate)
}

// ConvertToEURStrict behaves like ConvertToEUR but reports an unrecognized
// currency on a priced row instead of silently zeroing it, for auditing.
// Missing amounts and zero amounts still convert to 0.
func ConvertToEURStrict(amount float64, amountKnown bool, currency string) (float64, error) {
	if !amountKnown || amount == 0 {
		return 0, nil
	}
	rate, ok := exchangeRatesToEUR[currency]
	if !ok {
		return 0, &UnknownCurrencyError{Currency: currency}
	}
	return round2(amount * rate), nil
}
