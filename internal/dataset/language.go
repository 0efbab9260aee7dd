package dataset

import (
	"regexp"
	"strings"
)

// LanguageOther is the catch-all bucket for tokens that match no canonical
// language. Language normalization always produces a value; it never drops a
// row the way genre normalization does.
const LanguageOther = "Other"

// Variants are matched against cleaned (lowercased) tokens, so they are all
// lowercase themselves.
var languageTable = Matcher{
	{"English", []string{"english", "anglais", "englisch", "англий", "英"}},
	{"Chinese", []string{"chinese", "中文", "简体", "繁体", "chine"}},
	{"Russian", []string{"russian", "рус", "rosyj", "russe"}},
	{"Japanese", []string{"japanese", "日本", "japon", "giappon"}},
	{"Korean", []string{"korean", "한국", "coré"}},
	{"Spanish", []string{"spanish", "españ", "espagn", "hiszp"}},
	{"French", []string{"french", "français", "francus", "franz"}},
	{"German", []string{"german", "deutsch", "allemand", "niemie"}},
	{"Portuguese", []string{"portuguese", "português", "portug"}},
	{"Italian", []string{"italian", "italiano", "italien"}},
}

var (
	audioSupportRes = []*regexp.Regexp{
		regexp.MustCompile(`languages with full audio support`),
		regexp.MustCompile(`full audio support`),
		regexp.MustCompile(`idiomas con.*`),
		regexp.MustCompile(`langues avec.*`),
		regexp.MustCompile(`sprachen mit.*`),
	}
	htmlTagRe = regexp.MustCompile(`<.*?>`)
	bracketRe = regexp.MustCompile(`\[.*?\]`)
	charsetRe = regexp.MustCompile(`[^a-zA-Z\x{4e00}-\x{9fff}\x{0400}-\x{04ff}\s]`)
	multiWsRe = regexp.MustCompile(`\s+`)
)

// CleanLanguage strips a single language token down to letters. The steps run
// in a fixed order: lowercase, drop audio-support boilerplate, drop markup and
// bracketed annotations, drop every rune outside {ASCII letters, CJK,
// Cyrillic, whitespace}, collapse whitespace, trim. Cleaning an already-clean
// token returns it unchanged.
func CleanLanguage(lang string) string {
	lang = strings.ToLower(lang)
	for _, re := range audioSupportRes {
		lang = re.ReplaceAllString(lang, "")
	}
	lang = htmlTagRe.ReplaceAllString(lang, "")
	lang = bracketRe.ReplaceAllString(lang, "")
	lang = charsetRe.ReplaceAllString(lang, "")
	lang = multiWsRe.ReplaceAllString(lang, " ")
	return strings.TrimSpace(lang)
}

// NormalizeLanguage maps a cleaned token to its canonical language, or to
// LanguageOther when the token is empty or matches nothing.
func NormalizeLanguage(cleaned string) string {
	if cleaned == "" {
		return LanguageOther
	}
	if canonical, ok := languageTable.Match(cleaned); ok {
		return canonical
	}
	return LanguageOther
}
