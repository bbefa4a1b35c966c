package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Tomyshh/frank-melloul-website/internal/domain/locale"
)

const (
	localeCookie = "language"
	localeKey    = "locale"

	cookieMaxAge = 365 * 24 * 60 * 60
)

// cookieStore adapts the browser cookie to the locale preference store, so
// an explicit choice survives across visits.
type cookieStore struct {
	c *gin.Context
}

func (s cookieStore) Get() (string, bool) {
	value, err := s.c.Cookie(localeCookie)
	if err != nil {
		return "", false
	}
	return value, true
}

func (s cookieStore) Set(value string) {
	s.c.SetCookie(localeCookie, value, cookieMaxAge, "/", "", false, false)
}

// Locale resolves the request locale from the lang/locale query
// parameters, the X-Locale header, or the persisted cookie, in that order.
func Locale(fallback locale.Locale) gin.HandlerFunc {
	return func(c *gin.Context) {
		requested := c.Query("lang")
		if requested == "" {
			requested = c.Query("locale")
		}
		if requested == "" {
			requested = c.GetHeader("X-Locale")
		}
		loc := locale.Resolve(requested, cookieStore{c}, fallback)
		c.Set(localeKey, loc)
		c.Next()
	}
}

// LocaleFromContext returns the locale resolved by the Locale middleware.
func LocaleFromContext(c *gin.Context) locale.Locale {
	if val, ok := c.Get(localeKey); ok {
		if loc, ok := val.(locale.Locale); ok {
			return loc
		}
	}
	return locale.Default
}

// abortUnauthorized is shared by the session middleware responses.
func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
}
