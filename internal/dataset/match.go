package dataset

import "strings"

// CanonicalEntry pairs one canonical category with the lexical variants that
// identify it in raw data.
type CanonicalEntry struct {
	Canonical string
	Variants  []string
}

// Matcher is an ordered canonicalization table. Entry order is significant:
// when a raw value contains variants of more than one canonical category, the
// first-declared entry wins.
type Matcher []CanonicalEntry

// Match returns the canonical category for raw, using case-sensitive
// substring containment against each variant in declaration order.
func (m Matcher) Match(raw string) (string, bool) {
	for _, entry := range m {
		for _, v := range entry.Variants {
			if strings.Contains(raw, v) {
				return entry.Canonical, true
			}
		}
	}
	return "", false
}
