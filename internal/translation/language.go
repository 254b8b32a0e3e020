package translation

import "strings"

var languageAliases = map[string]string{
	"english": "en",
	"en-us":   "en",
	"en-gb":   "en",
	"spanish": "es",
	"es-es":   "es",
	"es-mx":   "es",
}

// NormalizeLanguage maps common labels to short codes. Unknown values are
// lower-cased and trimmed.
func NormalizeLanguage(lang string) string {
	cleaned := strings.ToLower(strings.TrimSpace(lang))
	if alias, ok := languageAliases[cleaned]; ok {
		return alias
	}
	return cleaned
}

// Backend names one of the configured translation providers.
type Backend string

const (
	BackendInternal Backend = "internal"
	BackendExternal Backend = "external"
)

type direction struct {
	source, target string
}

var routes = map[direction]Backend{
	{"en", "es"}: BackendInternal,
	{"es", "en"}: BackendExternal,
}

// Route returns the backend serving source -> target. Both codes must already be normalized.
func Route(source, target string) (Backend, bool) {
	b, ok := routes[direction{source, target}]
	return b, ok
}
