package analysis

import (
	"sort"

	"indiepulse/backend/internal/dataset"
)

// bucketEdges are the left-closed lower bounds of the paid price ranges, in
// EUR. The last bucket is unbounded above.
var bucketEdges = []float64{0, 5, 10, 15, 20, 30}

// BucketLabels is the fixed presentation order of the price buckets: Free
// first, then the six half-open paid ranges.
var BucketLabels = []string{"Free", "€0–4.99", "€5–9.99", "€10–14.99", "€15–19.99", "€20–29.99", "€30+"}

// PriceStats is the flat statistics record for the price question. When
// there are no paid games, every price figure is 0 rather than undefined.
type PriceStats struct {
	TotalGames     int     `json:"total_games"`
	FreeGames      int     `json:"free_games"`
	PaidGames      int     `json:"paid_games"`
	MedianPrice    float64 `json:"median_price"`
	AveragePrice   float64 `json:"average_price"`
	Under10        int     `json:"under_10"`
	PercentUnder10 float64 `json:"percent_under_10"`
}

// isPaid reports whether a game counts toward the paid population: not
// free-flagged and carrying a positive converted price. A paid game whose
// EUR price is zero or undefined falls into no bucket at all.
func isPaid(g dataset.GameRow) bool {
	return !g.IsFree && g.PriceEUR > 0
}

// paidBucket returns the bucket index for a positive EUR price. Buckets are
// half-open, left-inclusive: exactly 5.00 falls into €5–9.99.
func paidBucket(eur float64) int {
	idx := 0
	for i, edge := range bucketEdges {
		if eur >= edge {
			idx = i
		}
	}
	return idx
}

// PriceBuckets partitions games into the fixed ordered bucket set. All seven
// labels are always present, zero-filled when empty.
func PriceBuckets(games []dataset.GameRow) []Point {
	counts := make([]int, len(BucketLabels))
	for _, g := range games {
		if g.IsFree {
			counts[0]++
			continue
		}
		if isPaid(g) {
			counts[1+paidBucket(g.PriceEUR)]++
		}
	}

	points := make([]Point, len(BucketLabels))
	for i, label := range BucketLabels {
		points[i] = Point{Label: label, Value: float64(counts[i])}
	}
	return points
}

// PriceStatistics computes the price summary over retained games. Median of
// an even-sized paid population is the mean of the two middle prices.
func PriceStatistics(games []dataset.GameRow) PriceStats {
	stats := PriceStats{TotalGames: len(games)}

	var paid []float64
	for _, g := range games {
		if g.IsFree {
			stats.FreeGames++
		}
		if isPaid(g) {
			paid = append(paid, g.PriceEUR)
		}
	}
	stats.PaidGames = len(paid)
	if len(paid) == 0 {
		return stats
	}

	sort.Float64s(paid)
	var sum float64
	for _, p := range paid {
		sum += p
		if p < 10 {
			stats.Under10++
		}
	}
	n := len(paid)
	if n%2 == 1 {
		stats.MedianPrice = paid[n/2]
	} else {
		stats.MedianPrice = (paid[n/2-1] + paid[n/2]) / 2
	}
	stats.AveragePrice = sum / float64(n)
	stats.PercentUnder10 = float64(stats.Under10) / float64(n) * 100
	return stats
}

// PriceOverview is the full price-question payload.
type PriceOverview struct {
	BucketSeries Series     `json:"bucket_series"`
	Stats        PriceStats `json:"stats"`
}

// BuildPriceOverview computes the price-question outputs from the games
// table.
func BuildPriceOverview(t *dataset.GamesTable) PriceOverview {
	points := PriceBuckets(t.Games)
	colors := make([]string, len(points))
	for i := range colors {
		switch i % 2 {
		case 0:
			colors[i] = ColorPrimaryBlue
		default:
			colors[i] = ColorLightBlue
		}
	}
	if len(colors) > 0 {
		colors[0] = ColorAccentBlue
	}
	return PriceOverview{
		BucketSeries: Series{Name: "price_buckets", Points: points, Colors: colors},
		Stats:        PriceStatistics(t.Games),
	}
}
