package analysis

import (
	"sort"

	"indiepulse/backend/internal/dataset"
)

// GenreCount is one canonical genre with its distinct-game count.
type GenreCount struct {
	Genre string `json:"genre"`
	Games int    `json:"games"`
}

// GenreEngagement is one canonical genre weighted by review engagement.
type GenreEngagement struct {
	Genre        string  `json:"genre"`
	Games        int     `json:"games"`
	TotalReviews float64 `json:"total_reviews"`
	AvgReviews   float64 `json:"avg_reviews_per_game"`
}

// TagCount is one raw tag with its game count.
type TagCount struct {
	Tag   string `json:"tag"`
	Games int    `json:"games"`
}

// GenreStats is the flat statistics record for the genre question.
type GenreStats struct {
	TotalGenres      int    `json:"total_genres"`
	TotalTags        int    `json:"total_tags"`
	MostPopularGenre string `json:"most_popular_genre"`
	MostPopularTag   string `json:"most_popular_tag"`
	MostEngagedGenre string `json:"most_engaged_genre"`
	TopGenreCount    int    `json:"top_genre_count"`
	TopTagCount      int    `json:"top_tag_count"`
}

// GenrePopularityByCount groups genre associations by canonical genre and
// counts distinct games, sorted ascending by count with lexical tie-break.
func GenrePopularityByCount(genres []dataset.GenreAssoc) []GenreCount {
	games := map[string]map[int]struct{}{}
	for _, a := range genres {
		if games[a.Genre] == nil {
			games[a.Genre] = map[int]struct{}{}
		}
		games[a.Genre][a.AppID] = struct{}{}
	}

	counts := make([]GenreCount, 0, len(games))
	for genre, ids := range games {
		counts = append(counts, GenreCount{Genre: genre, Games: len(ids)})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Games != counts[j].Games {
			return counts[i].Games < counts[j].Games
		}
		return counts[i].Genre < counts[j].Genre
	})
	return counts
}

// GenrePopularityByEngagement left-joins genre associations to review totals
// (missing totals join as zero) and groups by canonical genre, sorted
// ascending by summed engagement with lexical tie-break. AvgReviews is the
// mean total over association rows, matching the count the sum runs over.
func GenrePopularityByEngagement(genres []dataset.GenreAssoc, reviewTotals map[int]float64) []GenreEngagement {
	type acc struct {
		games map[int]struct{}
		sum   float64
		rows  int
	}
	byGenre := map[string]*acc{}
	for _, a := range genres {
		g := byGenre[a.Genre]
		if g == nil {
			g = &acc{games: map[int]struct{}{}}
			byGenre[a.Genre] = g
		}
		g.games[a.AppID] = struct{}{}
		g.sum += reviewTotals[a.AppID]
		g.rows++
	}

	out := make([]GenreEngagement, 0, len(byGenre))
	for genre, g := range byGenre {
		e := GenreEngagement{Genre: genre, Games: len(g.games), TotalReviews: g.sum}
		if g.rows > 0 {
			e.AvgReviews = g.sum / float64(g.rows)
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalReviews != out[j].TotalReviews {
			return out[i].TotalReviews < out[j].TotalReviews
		}
		return out[i].Genre < out[j].Genre
	})
	return out
}

// TopTags groups tag associations by raw tag and returns the top n by
// distinct-game count, descending, with lexical tie-break.
func TopTags(tags []dataset.TagAssoc, n int) []TagCount {
	games := map[string]map[int]struct{}{}
	for _, a := range tags {
		if games[a.Tag] == nil {
			games[a.Tag] = map[int]struct{}{}
		}
		games[a.Tag][a.AppID] = struct{}{}
	}

	counts := make([]TagCount, 0, len(games))
	for tag, ids := range games {
		counts = append(counts, TagCount{Tag: tag, Games: len(ids)})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Games != counts[j].Games {
			return counts[i].Games > counts[j].Games
		}
		return counts[i].Tag < counts[j].Tag
	})
	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

// GenreOverview is the full genre-question payload: chart series plus the
// statistics record.
type GenreOverview struct {
	CountSeries    Series     `json:"count_series"`
	WeightedSeries Series     `json:"weighted_series"`
	TagSeries      Series     `json:"tag_series"`
	Stats          GenreStats `json:"stats"`
}

// BuildGenreOverview computes every genre-question output from the joined
// derived table.
func BuildGenreOverview(d *dataset.Q1Data) GenreOverview {
	counts := GenrePopularityByCount(d.Genres)
	weighted := GenrePopularityByEngagement(d.Genres, d.ReviewTotals)
	tags := TopTags(d.Tags, 20)

	countPoints := make([]Point, len(counts))
	for i, c := range counts {
		countPoints[i] = Point{Label: c.Genre, Value: float64(c.Games)}
	}
	weightedPoints := make([]Point, len(weighted))
	for i, w := range weighted {
		weightedPoints[i] = Point{Label: w.Genre, Value: w.TotalReviews}
	}
	tagPoints := make([]Point, len(tags))
	tagValues := make([]float64, len(tags))
	for i, t := range tags {
		tagPoints[i] = Point{Label: t.Tag, Value: float64(t.Games)}
		tagValues[i] = float64(t.Games)
	}

	stats := GenreStats{TotalGenres: len(counts), TotalTags: countDistinctTags(d.Tags)}
	if n := len(counts); n > 0 {
		stats.MostPopularGenre = counts[n-1].Genre
		stats.TopGenreCount = counts[n-1].Games
	}
	if n := len(weighted); n > 0 {
		stats.MostEngagedGenre = weighted[n-1].Genre
	}
	if len(tags) > 0 {
		stats.MostPopularTag = tags[0].Tag
		stats.TopTagCount = tags[0].Games
	}

	return GenreOverview{
		CountSeries: Series{
			Name:   "genre_game_counts",
			Points: countPoints,
			Colors: alternatingColors(len(countPoints)),
		},
		WeightedSeries: Series{
			Name:   "genre_total_reviews",
			Points: weightedPoints,
			Colors: topHighlightColors(len(weightedPoints), 3),
		},
		TagSeries: Series{
			Name:   "top_tags",
			Points: tagPoints,
			Colors: gradientColors(tagValues),
		},
		Stats: stats,
	}
}

func countDistinctTags(tags []dataset.TagAssoc) int {
	seen := map[string]struct{}{}
	for _, a := range tags {
		seen[a.Tag] = struct{}{}
	}
	return len(seen)
}
