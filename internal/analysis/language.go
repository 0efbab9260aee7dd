package analysis

import (
	"sort"

	"indiepulse/backend/internal/dataset"
)

// LanguageShare is one canonical language's slice of total engagement.
// Share and CumulativeShare are percentages of the non-Other total.
type LanguageShare struct {
	Language        string  `json:"language"`
	TotalReviews    float64 `json:"total_reviews"`
	Share           float64 `json:"share"`
	CumulativeShare float64 `json:"cumulative_share"`
}

// LanguageCount is one canonical language with its distinct-game count.
type LanguageCount struct {
	Language string `json:"language"`
	Games    int    `json:"games"`
}

// LanguageStats is the flat statistics record for the language question.
// The Other bucket is excluded from every share computation and from the
// language count, but not from the raw game totals.
type LanguageStats struct {
	TotalLanguages     int     `json:"total_languages"`
	TotalGames         int     `json:"total_games"`
	TopLanguage        string  `json:"top_language"`
	TopLanguageShare   float64 `json:"top_language_share"`
	MostCommonLanguage string  `json:"most_common_language"`
	MostCommonCount    int     `json:"most_common_count"`
	Top3Cumulative     float64 `json:"top_3_cumulative"`
	Top5Cumulative     float64 `json:"top_5_cumulative"`
}

// LanguageEngagement left-joins exploded language rows to review totals
// (missing totals join as zero), sums engagement per canonical language,
// drops the Other bucket, and ranks descending by engagement with lexical
// tie-break. Shares are percentages of the non-Other engagement total, with
// cumulative shares in rank order.
func LanguageEngagement(langs []dataset.LanguageRow, reviewTotals map[int]float64) []LanguageShare {
	sums := map[string]float64{}
	for _, l := range langs {
		sums[l.Language] += reviewTotals[l.AppID]
	}
	delete(sums, dataset.LanguageOther)

	var total float64
	shares := make([]LanguageShare, 0, len(sums))
	for lang, sum := range sums {
		total += sum
		shares = append(shares, LanguageShare{Language: lang, TotalReviews: sum})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].TotalReviews != shares[j].TotalReviews {
			return shares[i].TotalReviews > shares[j].TotalReviews
		}
		return shares[i].Language < shares[j].Language
	})

	var cumulative float64
	for i := range shares {
		if total > 0 {
			shares[i].Share = shares[i].TotalReviews / total * 100
		}
		cumulative += shares[i].Share
		shares[i].CumulativeShare = cumulative
	}
	return shares
}

// LanguageGameCounts counts distinct games per canonical language,
// descending with lexical tie-break. The Other bucket is included here;
// callers that present top-N lists drop it themselves.
func LanguageGameCounts(langs []dataset.LanguageRow) []LanguageCount {
	games := map[string]map[int]struct{}{}
	for _, l := range langs {
		if games[l.Language] == nil {
			games[l.Language] = map[int]struct{}{}
		}
		games[l.Language][l.AppID] = struct{}{}
	}

	counts := make([]LanguageCount, 0, len(games))
	for lang, ids := range games {
		counts = append(counts, LanguageCount{Language: lang, Games: len(ids)})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Games != counts[j].Games {
			return counts[i].Games > counts[j].Games
		}
		return counts[i].Language < counts[j].Language
	})
	return counts
}

// LanguageOverview is the full language-question payload.
type LanguageOverview struct {
	ShareSeries      Series        `json:"share_series"`
	CumulativeSeries Series        `json:"cumulative_series"`
	GameCountSeries  Series        `json:"game_count_series"`
	Stats            LanguageStats `json:"stats"`
}

// BuildLanguageOverview computes every language-question output from the
// joined derived table.
func BuildLanguageOverview(d *dataset.Q3Data) LanguageOverview {
	shares := LanguageEngagement(d.Languages, d.ReviewTotals)
	counts := LanguageGameCounts(d.Languages)

	sharePoints := make([]Point, len(shares))
	shareValues := make([]float64, len(shares))
	cumulativePoints := make([]Point, len(shares))
	for i, s := range shares {
		sharePoints[i] = Point{Label: s.Language, Value: s.Share}
		shareValues[i] = s.Share
		cumulativePoints[i] = Point{Label: s.Language, Value: s.CumulativeShare}
	}

	// Top 10 languages by game count, Other excluded from the presentation.
	var countPoints []Point
	for _, c := range counts {
		if c.Language == dataset.LanguageOther {
			continue
		}
		countPoints = append(countPoints, Point{Label: c.Language, Value: float64(c.Games)})
		if len(countPoints) == 10 {
			break
		}
	}

	stats := LanguageStats{
		TotalLanguages: len(shares),
		TotalGames:     countDistinctGames(d.Languages),
	}
	if len(shares) > 0 {
		stats.TopLanguage = shares[0].Language
		stats.TopLanguageShare = shares[0].Share
	}
	for _, c := range counts {
		if c.Language == dataset.LanguageOther {
			continue
		}
		stats.MostCommonLanguage = c.Language
		stats.MostCommonCount = c.Games
		break
	}
	for i, s := range shares {
		if i < 3 {
			stats.Top3Cumulative += s.Share
		}
		if i < 5 {
			stats.Top5Cumulative += s.Share
		}
	}

	return LanguageOverview{
		ShareSeries: Series{
			Name:   "language_engagement_share",
			Points: sharePoints,
			Colors: gradientColors(shareValues),
		},
		CumulativeSeries: Series{
			Name:   "language_cumulative_share",
			Points: cumulativePoints,
			Colors: topHighlightColors(len(cumulativePoints), 0),
		},
		GameCountSeries: Series{
			Name:   "language_game_counts",
			Points: countPoints,
			Colors: alternatingColors(len(countPoints)),
		},
		Stats: stats,
	}
}

func countDistinctGames(langs []dataset.LanguageRow) int {
	seen := map[int]struct{}{}
	for _, l := range langs {
		seen[l.AppID] = struct{}{}
	}
	return len(seen)
}
