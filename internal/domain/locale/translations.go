package locale

// Translations holds the site strings for one language.
type Translations map[string]string

// Catalog returns the translation catalog for the given locale. Keys missing
// from the French catalog fall back to English.
func Catalog(loc Locale) Translations {
	if loc == French {
		merged := make(Translations, len(translationsEN))
		for k, v := range translationsEN {
			merged[k] = v
		}
		for k, v := range translationsFR {
			merged[k] = v
		}
		return merged
	}
	return translationsEN
}

var translationsEN = Translations{
	// Navigation
	"nav.services":      "Services",
	"nav.about":         "About",
	"nav.biography":     "Biography",
	"nav.communication": "Communication",
	"nav.contact":       "Contact",

	// Hero
	"hero.companyName": "MELLOUL & PARTNERS",
	"hero.title":       "Empowers leaders to shape agendas, unlock opportunities, and create lasting impact.",
	"hero.discover":    "Discover",

	// Communication page
	"communication.title":      "Communication",
	"communication.subtitle":   "Media appearances, interviews, and insights from Melloul & Partners",
	"communication.backToHome": "Back to Home",
	"communication.watchVideo": "Watch Video",
	"communication.readMore":   "Read More",
	"communication.empty":      "No publications yet.",

	// About
	"about.title": "About",
	"about.mainText": "Melloul & Partners is a global strategic advisory and market entry facilitation firm based between Paris and Dubai.",

	// Contact
	"contact.title": "Contact",
}

var translationsFR = Translations{
	// Navigation
	"nav.services":      "Services",
	"nav.about":         "À propos",
	"nav.biography":     "Biographie",
	"nav.communication": "Communication",
	"nav.contact":       "Contact",

	// Hero
	"hero.companyName": "MELLOUL & PARTNERS",
	"hero.title":       "Donne aux dirigeants les moyens de façonner les agendas, de créer des opportunités et un impact durable.",
	"hero.discover":    "Découvrir",

	// Communication page
	"communication.title":      "Communication",
	"communication.subtitle":   "Apparitions médiatiques, interviews et perspectives de Melloul & Partners",
	"communication.backToHome": "Retour à l'accueil",
	"communication.watchVideo": "Regarder la vidéo",
	"communication.readMore":   "Lire la suite",
	"communication.empty":      "Aucune publication pour le moment.",

	// About
	"about.title": "À propos",
	"about.mainText": "Melloul & Partners est un cabinet mondial de conseil stratégique et de facilitation d'accès aux marchés, basé entre Paris et Dubaï.",

	// Contact
	"contact.title": "Contact",
}
