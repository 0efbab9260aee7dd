package dataset

// Genres that identify store-front categories rather than game genres.
// A raw value exactly matching this set is dropped before normalization is
// even attempted.
var excludedGenres = map[string]struct{}{
	"Indie": {}, "Early Access": {}, "Free To Play": {}, "Free to Play": {},
	"Utilities": {}, "Software": {}, "Animation & Modeling": {},
	"Design & Illustration": {}, "Education": {}, "Audio Production": {},
	"Video Production": {}, "Web Publishing": {}, "Accounting": {},
	"Photo Editing": {}, "Game Development": {}, "Tutorial": {},
}

// The store front localizes genre names per region, so each canonical genre
// carries its known localized spellings.
var genreTable = Matcher{
	{"Action", []string{"Actie", "Ackja", "Azione", "Action"}},
	{"Adventure", []string{"Aventura", "Abenteuer", "Aventure", "Avontuur",
		"Eventyr", "Avventura", "Seikkailu", "Adventure"}},
	{"RPG", []string{"Rollenspiel", "Rol", "GDR", "Roolipelit", "RPG"}},
	{"Strategy", []string{"Strategie", "Estrategia", "Strategia", "Strategi", "Strategy"}},
	{"Simulation", []string{"Simuladores", "Simulationen", "Simulatie",
		"Simulaatio", "Simulering", "Simulation"}},
	{"Casual", []string{"Gelegenheitsspiele", "Occasionnel", "Passatempo", "Casual"}},
	{"Racing", []string{"Carreras", "Course automobile", "Race", "Racing"}},
	{"Sports", []string{"Deportes", "Sport"}},
	{"Massively Multiplayer", []string{"Multijugador masivo", "Massivement multijoueur",
		"MMO", "Massively Multiplayer"}},
}

// NormalizeGenre maps a trimmed raw genre string to its canonical form.
// Excluded genres and genres matching no canonical entry report ok=false and
// are dropped by callers; unlike languages, there is no catch-all bucket.
func NormalizeGenre(raw string) (string, bool) {
	if _, excluded := excludedGenres[raw]; excluded {
		return "", false
	}
	return genreTable.Match(raw)
}
