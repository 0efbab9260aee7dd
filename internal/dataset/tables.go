package dataset

import "database/sql"

// GameRow is one retained row of the games table after normalization.
// Price is the extracted amount in major currency units; PriceKnown reports
// whether the raw descriptor contained one. Currency is empty when the
// descriptor carried no recognizable 3-letter code.
type GameRow struct {
	AppID      int
	Name       string
	IsFree     bool
	Price      float64
	PriceKnown bool
	Currency   string
	PriceEUR   float64
	Languages  string // raw comma-delimited list, markup intact
}

// GenreAssoc links a game to one canonical genre.
type GenreAssoc struct {
	AppID int
	Genre string
}

// TagAssoc links a game to one raw tag. Tags are deliberately not
// canonicalized.
type TagAssoc struct {
	AppID int
	Tag   string
}

// ReviewRow carries the per-game review counters. Fields arrive as "N" or
// other non-numeric placeholders in the source data, so each is nullable
// rather than defaulting to zero.
type ReviewRow struct {
	AppID           int
	Positive        sql.NullFloat64
	Negative        sql.NullFloat64
	Total           sql.NullFloat64
	Recommendations sql.NullFloat64
	MetacriticScore sql.NullFloat64
}

// LanguageRow is one exploded (game, canonical language) pair. Language is
// never empty: tokens that match no canonical language are bucketed as
// "Other".
type LanguageRow struct {
	AppID    int
	Language string
}

// GamesTable is the games derived table plus the rows the loader had to
// discard, so data-quality regressions stay observable.
type GamesTable struct {
	Games   []GameRow
	Skipped []SkipReason
}

// Q1Data holds the genre/tag associations joined to retained games, plus
// review totals keyed by app ID. A missing key means the game has no usable
// review total and joins as zero engagement.
type Q1Data struct {
	Genres       []GenreAssoc
	Tags         []TagAssoc
	ReviewTotals map[int]float64
	Skipped      []SkipReason
}

// Q3Data holds the exploded language rows and the same review-total lookup.
type Q3Data struct {
	Languages    []LanguageRow
	ReviewTotals map[int]float64
	Skipped      []SkipReason
}
