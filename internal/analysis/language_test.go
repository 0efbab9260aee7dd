package analysis

import (
	"testing"

	"indiepulse/backend/internal/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func q3Fixture() *dataset.Q3Data {
	return &dataset.Q3Data{
		Languages: []dataset.LanguageRow{
			{AppID: 100, Language: "English"},
			{AppID: 100, Language: "German"},
			{AppID: 200, Language: "English"},
			{AppID: 200, Language: "Chinese"},
			{AppID: 300, Language: "English"},
			{AppID: 300, Language: "Russian"},
			{AppID: 400, Language: "English"},
			{AppID: 400, Language: "Other"},
		},
		// 300 joins as zero engagement.
		ReviewTotals: map[int]float64{100: 1000, 200: 500, 400: 200},
	}
}

func TestLanguageEngagement(t *testing.T) {
	d := q3Fixture()
	shares := LanguageEngagement(d.Languages, d.ReviewTotals)
	require.Len(t, shares, 4)

	// Other is dropped before shares are computed; English 1700, German
	// 1000, Chinese 500, Russian 0 over a non-Other total of 3200.
	assert.Equal(t, "English", shares[0].Language)
	assert.Equal(t, 1700.0, shares[0].TotalReviews)
	assert.InDelta(t, 53.125, shares[0].Share, 0.0001)

	assert.Equal(t, "German", shares[1].Language)
	assert.Equal(t, "Chinese", shares[2].Language)
	assert.Equal(t, "Russian", shares[3].Language)
	assert.Zero(t, shares[3].Share)

	// Shares over the non-Other population accumulate to 100.
	assert.InDelta(t, 100.0, shares[3].CumulativeShare, 0.0001)

	var sum float64
	for _, s := range shares {
		sum += s.Share
	}
	assert.InDelta(t, 100.0, sum, 0.0001)
}

func TestLanguageEngagement_ZeroTotalGuard(t *testing.T) {
	shares := LanguageEngagement([]dataset.LanguageRow{
		{AppID: 1, Language: "English"},
		{AppID: 2, Language: "German"},
	}, map[int]float64{})
	require.Len(t, shares, 2)
	for _, s := range shares {
		assert.Zero(t, s.Share, s.Language)
	}
}

func TestLanguageGameCounts(t *testing.T) {
	counts := LanguageGameCounts(q3Fixture().Languages)
	// Descending by distinct games, lexical tie-break; Other stays in.
	assert.Equal(t, []LanguageCount{
		{Language: "English", Games: 4},
		{Language: "Chinese", Games: 1},
		{Language: "German", Games: 1},
		{Language: "Other", Games: 1},
		{Language: "Russian", Games: 1},
	}, counts)
}

func TestBuildLanguageOverview(t *testing.T) {
	o := BuildLanguageOverview(q3Fixture())

	assert.Equal(t, 4, o.Stats.TotalLanguages)
	assert.Equal(t, 4, o.Stats.TotalGames)
	assert.Equal(t, "English", o.Stats.TopLanguage)
	assert.InDelta(t, 53.125, o.Stats.TopLanguageShare, 0.0001)
	assert.Equal(t, "English", o.Stats.MostCommonLanguage)
	assert.Equal(t, 4, o.Stats.MostCommonCount)
	assert.InDelta(t, 100.0, o.Stats.Top3Cumulative, 0.0001)
	assert.InDelta(t, 100.0, o.Stats.Top5Cumulative, 0.0001)

	// Other is excluded from the game-count presentation.
	for _, p := range o.GameCountSeries.Points {
		assert.NotEqual(t, dataset.LanguageOther, p.Label)
	}
	require.Len(t, o.ShareSeries.Points, 4)
	require.Len(t, o.CumulativeSeries.Points, 4)
	assert.Equal(t, "language_engagement_share", o.ShareSeries.Name)
}

func TestBuildLanguageOverview_Empty(t *testing.T) {
	o := BuildLanguageOverview(&dataset.Q3Data{})
	assert.Zero(t, o.Stats.TotalLanguages)
	assert.Empty(t, o.Stats.TopLanguage)
	assert.Empty(t, o.ShareSeries.Points)
}
