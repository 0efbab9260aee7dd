// Package analysis computes the chart-ready aggregates behind the three
// dashboard questions: genre popularity, price distribution and language
// engagement. Every function here is a pure computation over the derived
// tables produced by the dataset package; sorts always define a total order
// (primary key plus lexical label tie-break) so repeated runs over the same
// input produce identical output.
package analysis

// Dashboard palette, shared across every chart.
const (
	ColorBgDark      = "#0a0e1a"
	ColorDarkBlue    = "#0a2540"
	ColorPrimaryBlue = "#1e90ff"
	ColorAccentBlue  = "#00d4ff"
	ColorLightBlue   = "#4dabf7"
	ColorTextLight   = "#e0e0e0"
	ColorTextWhite   = "#ffffff"
)

// Point is one (label, value) pair of an ordered series.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Series is a named ordered series plus the per-point colors the client uses
// to render it.
type Series struct {
	Name   string   `json:"name"`
	Points []Point  `json:"points"`
	Colors []string `json:"colors"`
}

// alternatingColors fills light/primary alternately and highlights the last
// (top) entry with the accent color.
func alternatingColors(n int) []string {
	colors := make([]string, n)
	for i := range colors {
		if i%2 == 0 {
			colors[i] = ColorLightBlue
		} else {
			colors[i] = ColorPrimaryBlue
		}
	}
	if n > 0 {
		colors[n-1] = ColorAccentBlue
	}
	return colors
}

// topHighlightColors paints everything primary and the last `highlight`
// entries accent.
func topHighlightColors(n, highlight int) []string {
	colors := make([]string, n)
	for i := range colors {
		colors[i] = ColorPrimaryBlue
	}
	for i := n - highlight; i < n; i++ {
		if i >= 0 {
			colors[i] = ColorAccentBlue
		}
	}
	return colors
}

// gradientColors maps each value to a shade by its fraction of the maximum:
// above 85% accent, above 60% primary, else light.
func gradientColors(values []float64) []string {
	var max float64
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	colors := make([]string, len(values))
	for i, v := range values {
		switch {
		case v > max*0.85:
			colors[i] = ColorAccentBlue
		case v > max*0.60:
			colors[i] = ColorPrimaryBlue
		default:
			colors[i] = ColorLightBlue
		}
	}
	return colors
}
