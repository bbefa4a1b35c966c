package handlers

import (
	"github.com/rs/zerolog"

	"github.com/Tomyshh/frank-melloul-website/internal/config"
	admindomain "github.com/Tomyshh/frank-melloul-website/internal/domain/admin"
	authdomain "github.com/Tomyshh/frank-melloul-website/internal/domain/auth"
	contentdomain "github.com/Tomyshh/frank-melloul-website/internal/domain/content"
	"github.com/Tomyshh/frank-melloul-website/internal/interfaces/httpserver/responses"
)

// Provider wires HTTP handlers.
type Provider struct {
	Content       *ContentHandler
	AdminVideos   *AdminVideoHandler
	AdminArticles *AdminArticleHandler
	Auth          *AuthHandler
}

func NewProvider(
	cfg *config.Config,
	contentService *contentdomain.Service,
	adminService *admindomain.Service,
	authService *authdomain.Service,
	urls responses.PublicURLResolver,
	log zerolog.Logger,
) *Provider {
	return &Provider{
		Content:       NewContentHandler(cfg, contentService, log),
		AdminVideos:   NewAdminVideoHandler(cfg, adminService, urls, log),
		AdminArticles: NewAdminArticleHandler(cfg, adminService, urls, log),
		Auth:          NewAuthHandler(authService, log),
	}
}
