package dataset

import "regexp"

// The price_overview column embeds a JSON-ish blob. Only two fields matter:
// "final" (an integer amount in minor units) and "currency" (a 3-letter code).
// The blob is frequently mangled by the upstream export, so both are pulled
// out with regular expressions instead of a JSON decoder.
var (
	priceFinalRe = regexp.MustCompile(`["']?final["']?\s*:\s*(\d+)`)
	currencyRe   = regexp.MustCompile(`["']?currency["']?\s*:\s*["']([A-Z]{3})["']`)
)

func isNullSentinel(s string) bool {
	return s == "" || s == "N" || s == `\N`
}

// ExtractPriceCurrency pulls the final price (converted from minor to major
// units) and the currency code out of a raw price_overview value. A value
// that yields neither is a recoverable data-quality condition, not an error:
// the caller gets priceKnown=false and an empty currency.
func ExtractPriceCurrency(raw string) (price float64, priceKnown bool, currency string) {
	if isNullSentinel(raw) {
		return 0, false, ""
	}

	if m := priceFinalRe.FindStringSubmatch(raw); m != nil {
		cents := 0
		for _, d := range m[1] {
			cents = cents*10 + int(d-'0')
		}
		price = float64(cents) / 100
		priceKnown = true
	}

	if m := currencyRe.FindStringSubmatch(raw); m != nil {
		currency = m[1]
	}

	return price, priceKnown, currency
}
