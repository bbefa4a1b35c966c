package locale

import "strings"

// Locale identifies a supported site language.
type Locale string

const (
	English Locale = "en"
	French  Locale = "fr"
)

// Default is the locale used when neither the request nor the stored
// preference carries a valid one.
const Default = English

// Parse returns the locale for a raw value and whether it was valid.
func Parse(raw string) (Locale, bool) {
	switch Locale(strings.ToLower(strings.TrimSpace(raw))) {
	case English:
		return English, true
	case French:
		return French, true
	}
	return "", false
}

// PreferenceStore persists an explicit locale choice across sessions.
// The HTTP layer backs it with a cookie; tests use a map.
type PreferenceStore interface {
	Get() (string, bool)
	Set(value string)
}

// Resolve determines the active locale. An explicit request wins and is
// persisted; otherwise the stored preference applies; otherwise fallback.
// Invalid values never fail, they degrade to the next source.
func Resolve(requested string, store PreferenceStore, fallback Locale) Locale {
	if loc, ok := Parse(requested); ok {
		if store != nil {
			store.Set(string(loc))
		}
		return loc
	}
	if store != nil {
		if saved, ok := store.Get(); ok {
			if loc, ok := Parse(saved); ok {
				return loc
			}
		}
	}
	if fallback == "" {
		return Default
	}
	return fallback
}

// Field resolves a bilingual record field for display. Records carry their
// default-locale text in the primary column and an optional English override.
// Absence of a translation is not a failure; it degrades to the primary text.
func Field(loc Locale, primary string, override *string) string {
	if loc == English && override != nil && strings.TrimSpace(*override) != "" {
		return *override
	}
	return primary
}
