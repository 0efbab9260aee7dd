package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// Derived-table cache keys. Each derived table has its own fixed expiry.
const (
	cacheKeyGames = "games"
	cacheKeyQ1    = "q1-joined"
	cacheKeyQ3    = "q3-joined"
)

// DefaultTTL is how long a derived table stays cached before the next access
// rebuilds it from the input files.
const DefaultTTL = time.Hour

// Store is the pipeline entry point. It owns the loader, the derived-table
// cache and the clock, and hands out the three derived tables the analysis
// layer consumes. Input files (games.csv, genres.csv, tags.csv, reviews.csv)
// live under a single directory; only a missing or unreadable file is a load
// failure.
type Store struct {
	dir    string
	loader Loader
	cache  *Cache
}

// StoreOption configures a Store.
type StoreOption func(*storeOptions)

type storeOptions struct {
	ttl            time.Duration
	now            func() time.Time
	strictCurrency bool
}

// WithTTL overrides the derived-table time-to-live.
func WithTTL(ttl time.Duration) StoreOption {
	return func(o *storeOptions) { o.ttl = ttl }
}

// WithClock injects the cache clock, for deterministic expiry in tests.
func WithClock(now func() time.Time) StoreOption {
	return func(o *storeOptions) { o.now = now }
}

// WithStrictCurrency makes unrecognized currencies observable as skip
// reasons instead of silently pricing rows at zero.
func WithStrictCurrency(strict bool) StoreOption {
	return func(o *storeOptions) { o.strictCurrency = strict }
}

// NewStore returns a Store reading its inputs from dir.
func NewStore(dir string, opts ...StoreOption) *Store {
	o := storeOptions{ttl: DefaultTTL}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store{
		dir:    dir,
		loader: Loader{StrictCurrency: o.strictCurrency},
		cache:  NewCache(o.ttl, o.now),
	}
}

func (s *Store) open(name string) (*os.File, error) {
	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("opening input %s: %w", name, err)
	}
	return f, nil
}

// Games returns the priced games table, loading it on a cache miss.
func (s *Store) Games() (*GamesTable, error) {
	v, err := s.cache.GetOrLoad(cacheKeyGames, func() (any, error) {
		return s.loadGames()
	})
	if err != nil {
		return nil, err
	}
	return v.(*GamesTable), nil
}

// Q1 returns the genre/tag associations joined against retained games and
// review totals.
func (s *Store) Q1() (*Q1Data, error) {
	v, err := s.cache.GetOrLoad(cacheKeyQ1, func() (any, error) {
		return s.loadQ1()
	})
	if err != nil {
		return nil, err
	}
	return v.(*Q1Data), nil
}

// Q3 returns the exploded per-language rows joined against review totals.
func (s *Store) Q3() (*Q3Data, error) {
	v, err := s.cache.GetOrLoad(cacheKeyQ3, func() (any, error) {
		return s.loadQ3()
	})
	if err != nil {
		return nil, err
	}
	return v.(*Q3Data), nil
}

// Warm builds all three derived tables, typically at boot or from the
// background refresh job, so interactive requests rarely pay a cold load.
func (s *Store) Warm() error {
	if _, err := s.Games(); err != nil {
		return err
	}
	if _, err := s.Q1(); err != nil {
		return err
	}
	if _, err := s.Q3(); err != nil {
		return err
	}
	return nil
}

// Invalidate drops every cached derived table. The next access rebuilds from
// the input files.
func (s *Store) Invalidate() {
	s.cache.Invalidate()
}

func (s *Store) loadGames() (*GamesTable, error) {
	f, err := s.open("games.csv")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	games, skipped, err := s.loader.LoadGames(f)
	if err != nil {
		return nil, err
	}
	return &GamesTable{Games: games, Skipped: skipped}, nil
}

func (s *Store) loadQ1() (*Q1Data, error) {
	games, err := s.Games()
	if err != nil {
		return nil, err
	}
	retained := make(map[int]struct{}, len(games.Games))
	for _, g := range games.Games {
		retained[g.AppID] = struct{}{}
	}

	gf, err := s.open("genres.csv")
	if err != nil {
		return nil, err
	}
	defer gf.Close()
	rawGenres, skipped, err := s.loader.LoadGenres(gf)
	if err != nil {
		return nil, err
	}

	tf, err := s.open("tags.csv")
	if err != nil {
		return nil, err
	}
	defer tf.Close()
	rawTags, tagSkipped, err := s.loader.LoadTags(tf)
	if err != nil {
		return nil, err
	}
	skipped = append(skipped, tagSkipped...)

	totals, reviewSkipped, err := s.reviewTotals()
	if err != nil {
		return nil, err
	}
	skipped = append(skipped, reviewSkipped...)

	// Inner join to retained games; exclusion runs before normalization and
	// unmatched genres are dropped, not bucketed.
	var genres []GenreAssoc
	for _, a := range rawGenres {
		if _, ok := retained[a.AppID]; !ok {
			continue
		}
		canonical, ok := NormalizeGenre(a.Genre)
		if !ok {
			continue
		}
		genres = append(genres, GenreAssoc{AppID: a.AppID, Genre: canonical})
	}

	var tags []TagAssoc
	for _, a := range rawTags {
		if _, ok := retained[a.AppID]; !ok {
			continue
		}
		tags = append(tags, a)
	}

	return &Q1Data{Genres: genres, Tags: tags, ReviewTotals: totals, Skipped: skipped}, nil
}

var languageMarkupRe = regexp.MustCompile(`<.*?>`)

func (s *Store) loadQ3() (*Q3Data, error) {
	games, err := s.Games()
	if err != nil {
		return nil, err
	}

	totals, skipped, err := s.reviewTotals()
	if err != nil {
		return nil, err
	}

	// Explode each game's comma-delimited language list into one row per
	// canonical language.
	var langs []LanguageRow
	for _, g := range games.Games {
		if isNullSentinel(g.Languages) {
			continue
		}
		raw := languageMarkupRe.ReplaceAllString(g.Languages, "")
		raw = strings.ReplaceAll(raw, "*", "")
		for _, token := range strings.Split(raw, ",") {
			cleaned := CleanLanguage(strings.TrimSpace(token))
			langs = append(langs, LanguageRow{
				AppID:    g.AppID,
				Language: NormalizeLanguage(cleaned),
			})
		}
	}

	return &Q3Data{Languages: langs, ReviewTotals: totals, Skipped: skipped}, nil
}

// reviewTotals loads reviews.csv down to a total-engagement lookup. Games
// whose total is missing are absent from the map and join as zero.
func (s *Store) reviewTotals() (map[int]float64, []SkipReason, error) {
	f, err := s.open("reviews.csv")
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	reviews, skipped, err := s.loader.LoadReviews(f)
	if err != nil {
		return nil, nil, err
	}
	totals := make(map[int]float64, len(reviews))
	for _, r := range reviews {
		if r.Total.Valid {
			totals[r.AppID] = r.Total.Float64
		}
	}
	return totals, skipped, nil
}
