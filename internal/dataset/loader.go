package dataset

import (
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SkipReason records one row the loader discarded instead of aborting the
// load. The pipeline never fails on a bad row; it fails only when an input
// source is missing or unreadable outright.
type SkipReason struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// Loader parses the four tabular inputs into row sets. StrictCurrency makes
// unrecognized currencies on priced rows observable as skip reasons; the rows
// themselves are kept either way, with a zero EUR price.
type Loader struct {
	StrictCurrency bool
}

// cleanHeader trims surrounding whitespace and stray quote characters from
// column names before use.
func cleanHeader(cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = strings.ReplaceAll(strings.TrimSpace(c), `"`, "")
	}
	return out
}

// readTable reads delimited text into field maps keyed by cleaned column
// name. Rows that cannot be parsed under the declared quoting rules, or that
// carry the wrong field count, are skipped with a reason.
func readTable(r io.Reader, file string, lazyQuotes bool) ([]map[string]string, []SkipReason, error) {
	cr := csv.NewReader(r)
	cr.LazyQuotes = lazyQuotes
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: reading header: %w", file, err)
	}
	header = cleanHeader(header)

	var rows []map[string]string
	var skipped []SkipReason
	for line := 2; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			skipped = append(skipped, SkipReason{File: file, Line: line, Reason: err.Error()})
			continue
		}
		if len(record) != len(header) {
			skipped = append(skipped, SkipReason{
				File: file, Line: line,
				Reason: fmt.Sprintf("expected %d fields, got %d", len(header), len(record)),
			})
			continue
		}
		row := make(map[string]string, len(header))
		for i, col := range header {
			row[col] = record[i]
		}
		rows = append(rows, row)
	}
	return rows, skipped, nil
}

func parseBool(s string) bool {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "1", "true", "t", "yes":
		return true
	}
	return false
}

// stripQuotes removes embedded quote characters the way the review export
// leaves them behind under disabled quoting.
func stripQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, "")
}

func parseNullFloat(s string) sql.NullFloat64 {
	s = strings.TrimSpace(stripQuotes(s))
	if isNullSentinel(s) {
		return sql.NullFloat64{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: v, Valid: true}
}

// LoadGames parses the games table. Only rows typed "game" are retained.
// Price extraction, the free-flag override and EUR conversion all happen
// here so every consumer sees the same priced rows.
func (l Loader) LoadGames(r io.Reader) ([]GameRow, []SkipReason, error) {
	rows, skipped, err := readTable(r, "games.csv", true)
	if err != nil {
		return nil, nil, err
	}

	var games []GameRow
	for _, row := range rows {
		if row["type"] != "game" {
			continue
		}
		appID, err := strconv.Atoi(strings.TrimSpace(row["app_id"]))
		if err != nil {
			skipped = append(skipped, SkipReason{
				File: "games.csv", Reason: fmt.Sprintf("non-numeric app_id %q", row["app_id"]),
			})
			continue
		}

		g := GameRow{
			AppID:     appID,
			Name:      row["name"],
			IsFree:    parseBool(row["is_free"]),
			Languages: row["languages"],
		}
		g.Price, g.PriceKnown, g.Currency = ExtractPriceCurrency(row["price_overview"])
		if g.IsFree {
			g.Price = 0
			g.PriceKnown = true
		}
		if l.StrictCurrency {
			eur, err := ConvertToEURStrict(g.Price, g.PriceKnown, g.Currency)
			if err != nil {
				skipped = append(skipped, SkipReason{
					File: "games.csv", Reason: fmt.Sprintf("app_id %d: %v", appID, err),
				})
			}
			g.PriceEUR = eur
		} else {
			g.PriceEUR = ConvertToEUR(g.Price, g.PriceKnown, g.Currency)
		}
		games = append(games, g)
	}
	return games, skipped, nil
}

// LoadGenres parses the genre association table. Values are trimmed but not
// normalized here; exclusion and canonicalization happen at join time.
func (l Loader) LoadGenres(r io.Reader) ([]GenreAssoc, []SkipReason, error) {
	rows, skipped, err := readTable(r, "genres.csv", false)
	if err != nil {
		return nil, nil, err
	}

	var assocs []GenreAssoc
	for _, row := range rows {
		appID, err := strconv.Atoi(strings.TrimSpace(row["app_id"]))
		if err != nil {
			skipped = append(skipped, SkipReason{
				File: "genres.csv", Reason: fmt.Sprintf("non-numeric app_id %q", row["app_id"]),
			})
			continue
		}
		assocs = append(assocs, GenreAssoc{AppID: appID, Genre: strings.TrimSpace(row["genre"])})
	}
	return assocs, skipped, nil
}

// LoadTags parses the tag association table.
func (l Loader) LoadTags(r io.Reader) ([]TagAssoc, []SkipReason, error) {
	rows, skipped, err := readTable(r, "tags.csv", false)
	if err != nil {
		return nil, nil, err
	}

	var assocs []TagAssoc
	for _, row := range rows {
		appID, err := strconv.Atoi(strings.TrimSpace(row["app_id"]))
		if err != nil {
			skipped = append(skipped, SkipReason{
				File: "tags.csv", Reason: fmt.Sprintf("non-numeric app_id %q", row["app_id"]),
			})
			continue
		}
		assocs = append(assocs, TagAssoc{AppID: appID, Tag: strings.TrimSpace(row["tag"])})
	}
	return assocs, skipped, nil
}

// LoadReviews parses the review table. The export writes it without quoting,
// so values keep stray quote characters that must be stripped before numeric
// coercion. Non-numeric counters ("N" and friends) coerce to a missing value,
// never to zero; rows without a usable app_id are skipped.
func (l Loader) LoadReviews(r io.Reader) ([]ReviewRow, []SkipReason, error) {
	rows, skipped, err := readTable(r, "reviews.csv", true)
	if err != nil {
		return nil, nil, err
	}

	var reviews []ReviewRow
	for _, row := range rows {
		appID, err := strconv.Atoi(strings.TrimSpace(stripQuotes(row["app_id"])))
		if err != nil {
			skipped = append(skipped, SkipReason{
				File: "reviews.csv", Reason: fmt.Sprintf("non-numeric app_id %q", row["app_id"]),
			})
			continue
		}
		reviews = append(reviews, ReviewRow{
			AppID:           appID,
			Positive:        parseNullFloat(row["positive"]),
			Negative:        parseNullFloat(row["negative"]),
			Total:           parseNullFloat(row["total"]),
			Recommendations: parseNullFloat(row["recommendations"]),
			MetacriticScore: parseNullFloat(row["metacritic_score"]),
		})
	}
	return reviews, skipped, nil
}
