package analysis

import (
	"testing"

	"indiepulse/backend/internal/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func q1Fixture() *dataset.Q1Data {
	return &dataset.Q1Data{
		Genres: []dataset.GenreAssoc{
			{AppID: 100, Genre: "Action"},
			{AppID: 300, Genre: "Action"},
			{AppID: 300, Genre: "Adventure"},
			{AppID: 400, Genre: "Adventure"},
			{AppID: 200, Genre: "Casual"},
			{AppID: 200, Genre: "Simulation"},
		},
		Tags: []dataset.TagAssoc{
			{AppID: 100, Tag: "Roguelike"},
			{AppID: 300, Tag: "Roguelike"},
			{AppID: 100, Tag: "Pixel Graphics"},
			{AppID: 200, Tag: "Pixel Graphics"},
			{AppID: 200, Tag: "Farming"},
			{AppID: 400, Tag: "Atmospheric"},
		},
		// 300 has no usable review total and joins as zero.
		ReviewTotals: map[int]float64{100: 1000, 200: 500, 400: 200},
	}
}

func TestGenrePopularityByCount(t *testing.T) {
	counts := GenrePopularityByCount(q1Fixture().Genres)
	// Ascending by count, lexical tie-break within equal counts.
	assert.Equal(t, []GenreCount{
		{Genre: "Casual", Games: 1},
		{Genre: "Simulation", Games: 1},
		{Genre: "Action", Games: 2},
		{Genre: "Adventure", Games: 2},
	}, counts)
}

func TestGenrePopularityByCount_CountsDistinctGames(t *testing.T) {
	counts := GenrePopularityByCount([]dataset.GenreAssoc{
		{AppID: 1, Genre: "Action"},
		{AppID: 1, Genre: "Action"},
		{AppID: 2, Genre: "Action"},
	})
	require.Len(t, counts, 1)
	assert.Equal(t, 2, counts[0].Games)
}

func TestGenrePopularityByEngagement(t *testing.T) {
	d := q1Fixture()
	weighted := GenrePopularityByEngagement(d.Genres, d.ReviewTotals)
	require.Len(t, weighted, 4)

	// Ascending by summed engagement: Adventure 200, Casual 500,
	// Simulation 500, Action 1000.
	assert.Equal(t, "Adventure", weighted[0].Genre)
	assert.Equal(t, 200.0, weighted[0].TotalReviews)
	assert.Equal(t, "Casual", weighted[1].Genre)
	assert.Equal(t, "Simulation", weighted[2].Genre)
	assert.Equal(t, "Action", weighted[3].Genre)
	assert.Equal(t, 1000.0, weighted[3].TotalReviews)

	// Mean runs over association rows, so app 300's zero drags it down.
	assert.Equal(t, 500.0, weighted[3].AvgReviews)
	assert.Equal(t, 2, weighted[3].Games)
}

func TestTopTags(t *testing.T) {
	tags := TopTags(q1Fixture().Tags, 3)
	assert.Equal(t, []TagCount{
		{Tag: "Pixel Graphics", Games: 2},
		{Tag: "Roguelike", Games: 2},
		{Tag: "Atmospheric", Games: 1},
	}, tags)
}

func TestTopTags_ShorterThanLimit(t *testing.T) {
	tags := TopTags([]dataset.TagAssoc{{AppID: 1, Tag: "Solo"}}, 20)
	require.Len(t, tags, 1)
}

func TestBuildGenreOverview(t *testing.T) {
	o := BuildGenreOverview(q1Fixture())

	assert.Equal(t, 4, o.Stats.TotalGenres)
	assert.Equal(t, 4, o.Stats.TotalTags)
	assert.Equal(t, "Adventure", o.Stats.MostPopularGenre)
	assert.Equal(t, 2, o.Stats.TopGenreCount)
	assert.Equal(t, "Action", o.Stats.MostEngagedGenre)
	assert.Equal(t, "Pixel Graphics", o.Stats.MostPopularTag)
	assert.Equal(t, 2, o.Stats.TopTagCount)

	require.Len(t, o.CountSeries.Points, 4)
	assert.Equal(t, "genre_game_counts", o.CountSeries.Name)
	assert.Len(t, o.CountSeries.Colors, 4)
	// Top entry sits last and carries the accent highlight.
	assert.Equal(t, ColorAccentBlue, o.CountSeries.Colors[3])

	require.Len(t, o.WeightedSeries.Points, 4)
	assert.Equal(t, Point{Label: "Action", Value: 1000}, o.WeightedSeries.Points[3])
}

func TestBuildGenreOverview_Empty(t *testing.T) {
	o := BuildGenreOverview(&dataset.Q1Data{})
	assert.Zero(t, o.Stats.TotalGenres)
	assert.Empty(t, o.Stats.MostPopularGenre)
	assert.Empty(t, o.Stats.MostPopularTag)
	assert.Empty(t, o.CountSeries.Points)
}
