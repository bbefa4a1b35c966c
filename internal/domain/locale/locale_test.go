package locale_test

import (
	"testing"

	"github.com/Tomyshh/frank-melloul-website/internal/domain/locale"
)

type mapStore struct {
	value string
	set   bool
}

func (s *mapStore) Get() (string, bool) {
	return s.value, s.set
}

func (s *mapStore) Set(value string) {
	s.value = value
	s.set = true
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  locale.Locale
		valid bool
	}{
		{"english", "en", locale.English, true},
		{"french", "fr", locale.French, true},
		{"uppercase", "EN", locale.English, true},
		{"padded", " fr ", locale.French, true},
		{"unsupported", "de", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := locale.Parse(tt.raw)
			if ok != tt.valid || got != tt.want {
				t.Errorf("Parse(%q) = (%q, %v), want (%q, %v)", tt.raw, got, ok, tt.want, tt.valid)
			}
		})
	}
}

func TestResolve_ExplicitChoiceWinsAndPersists(t *testing.T) {
	store := &mapStore{value: "en", set: true}
	got := locale.Resolve("fr", store, locale.English)
	if got != locale.French {
		t.Fatalf("Resolve() = %q, want %q", got, locale.French)
	}
	if store.value != "fr" {
		t.Errorf("stored preference = %q, want %q", store.value, "fr")
	}
}

func TestResolve_StoredPreferenceApplies(t *testing.T) {
	store := &mapStore{value: "fr", set: true}
	if got := locale.Resolve("", store, locale.English); got != locale.French {
		t.Fatalf("Resolve() = %q, want %q", got, locale.French)
	}
}

func TestResolve_InvalidValuesDegradeToFallback(t *testing.T) {
	store := &mapStore{value: "klingon", set: true}
	if got := locale.Resolve("martian", store, locale.French); got != locale.French {
		t.Fatalf("Resolve() = %q, want fallback %q", got, locale.French)
	}
	if store.value != "klingon" {
		t.Errorf("invalid request must not overwrite the stored value, got %q", store.value)
	}
}

func TestResolve_NoSourcesUsesDefault(t *testing.T) {
	if got := locale.Resolve("", &mapStore{}, ""); got != locale.Default {
		t.Fatalf("Resolve() = %q, want %q", got, locale.Default)
	}
}

func TestField(t *testing.T) {
	override := "English title"
	blank := "   "

	tests := []struct {
		name     string
		loc      locale.Locale
		primary  string
		override *string
		want     string
	}{
		{"english with override", locale.English, "Titre", &override, "English title"},
		{"english without override", locale.English, "Titre", nil, "Titre"},
		{"english with blank override", locale.English, "Titre", &blank, "Titre"},
		{"french ignores override", locale.French, "Titre", &override, "Titre"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := locale.Field(tt.loc, tt.primary, tt.override); got != tt.want {
				t.Errorf("Field() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCatalog_FrenchFallsBackToEnglish(t *testing.T) {
	en := locale.Catalog(locale.English)
	fr := locale.Catalog(locale.French)

	if len(fr) < len(en) {
		t.Fatalf("french catalog has %d keys, english has %d; fallback merge missing", len(fr), len(en))
	}
	for key := range en {
		if _, ok := fr[key]; !ok {
			t.Errorf("french catalog missing key %q", key)
		}
	}
	if fr["nav.about"] == en["nav.about"] {
		t.Errorf("expected nav.about to be translated, got %q", fr["nav.about"])
	}
}
