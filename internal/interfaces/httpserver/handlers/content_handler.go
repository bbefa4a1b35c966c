package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Tomyshh/frank-melloul-website/internal/config"
	"github.com/Tomyshh/frank-melloul-website/internal/domain/content"
	"github.com/Tomyshh/frank-melloul-website/internal/domain/locale"
	"github.com/Tomyshh/frank-melloul-website/internal/interfaces/httpserver/middlewares"
	"github.com/Tomyshh/frank-melloul-website/internal/interfaces/httpserver/responses"
)

// ContentHandler exposes the public, read-only content endpoints.
type ContentHandler struct {
	cfg     *config.Config
	service *content.Service
	log     zerolog.Logger
}

func NewContentHandler(cfg *config.Config, service *content.Service, log zerolog.Logger) *ContentHandler {
	return &ContentHandler{
		cfg:     cfg,
		service: service,
		log:     log.With().Str("component", "content-handler").Logger(),
	}
}

// List returns both published collections for the communication page. A
// failed collection degrades to an empty list with a note instead of
// failing the whole page.
func (h *ContentHandler) List(c *gin.Context) {
	loc := middlewares.LocaleFromContext(c)
	listing := h.service.ListPublished(c.Request.Context(), loc)
	c.JSON(http.StatusOK, responses.NewPublicContentResponse(loc, listing))
}

// Videos returns the published video collection.
func (h *ContentHandler) Videos(c *gin.Context) {
	loc := middlewares.LocaleFromContext(c)
	views, err := h.service.PublishedVideos(c.Request.Context(), loc)
	if err != nil {
		responses.HandleError(c, err, "failed to load videos")
		return
	}
	c.JSON(http.StatusOK, gin.H{"locale": string(loc), "videos": views})
}

// Articles returns the published article collection.
func (h *ContentHandler) Articles(c *gin.Context) {
	loc := middlewares.LocaleFromContext(c)
	views, err := h.service.PublishedArticles(c.Request.Context(), loc)
	if err != nil {
		responses.HandleError(c, err, "failed to load articles")
		return
	}
	c.JSON(http.StatusOK, gin.H{"locale": string(loc), "articles": views})
}

// Translations returns the interface catalog for the active locale.
func (h *ContentHandler) Translations(c *gin.Context) {
	loc := middlewares.LocaleFromContext(c)
	c.JSON(http.StatusOK, responses.TranslationsResponse{
		Locale:       string(loc),
		Translations: locale.Catalog(loc),
	})
}
