package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanLanguage(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"English", "english"},
		{"Simplified  Chinese", "simplified chinese"},
		{"English<br><strong>", "english"},
		{"english[b]", "english"},
		{"english!!!", "english"},
		{"languages with full audio support", ""},
		{"русский", "русский"},
		{"日本語", "日本語"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanLanguage(tt.raw), tt.raw)
	}
}

func TestCleanLanguage_Idempotent(t *testing.T) {
	for _, raw := range []string{"English", "Simplified Chinese<br>", "русский язык", "full audio support"} {
		once := CleanLanguage(raw)
		assert.Equal(t, once, CleanLanguage(once), raw)
	}
}

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		cleaned string
		want    string
	}{
		{"english", "English"},
		{"simplified chinese", "Chinese"},
		{"简体中文", "Chinese"},
		{"русский", "Russian"},
		{"日本語", "Japanese"},
		{"deutsch", "German"},
		{"italiano", "Italian"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeLanguage(tt.cleaned), tt.cleaned)
	}
}

func TestNormalizeLanguage_FallsBackToOther(t *testing.T) {
	assert.Equal(t, LanguageOther, NormalizeLanguage(""))
	assert.Equal(t, LanguageOther, NormalizeLanguage("klingon"))
}
