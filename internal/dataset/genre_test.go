package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeGenre_LocalizedVariants(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Action", "Action"},
		{"Actie", "Action"},
		{"Simulationen", "Simulation"},
		{"Simuladores", "Simulation"},
		{"Rollenspiel", "RPG"},
		{"Estrategia", "Strategy"},
		{"Gelegenheitsspiele", "Casual"},
		{"Course automobile", "Racing"},
		{"Deportes", "Sports"},
		{"Massivement multijoueur", "Massively Multiplayer"},
	}
	for _, tt := range tests {
		got, ok := NormalizeGenre(tt.raw)
		assert.True(t, ok, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}

func TestNormalizeGenre_ExcludedCategories(t *testing.T) {
	for _, raw := range []string{"Indie", "Early Access", "Free To Play", "Free to Play", "Utilities"} {
		_, ok := NormalizeGenre(raw)
		assert.False(t, ok, raw)
	}
}

func TestNormalizeGenre_UnmatchedDropped(t *testing.T) {
	_, ok := NormalizeGenre("Violent")
	assert.False(t, ok)
}

func TestMatcher_FirstDeclaredWins(t *testing.T) {
	// "Action-Adventure" contains variants of both Action and Adventure;
	// Action is declared first and takes it.
	got, ok := genreTable.Match("Action-Adventure")
	assert.True(t, ok)
	assert.Equal(t, "Action", got)
}

func TestMatcher_CaseSensitive(t *testing.T) {
	_, ok := genreTable.Match("action")
	assert.False(t, ok)
}
