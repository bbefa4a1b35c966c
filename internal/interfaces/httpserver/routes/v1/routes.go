package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/Tomyshh/frank-melloul-website/internal/domain/auth"
	"github.com/Tomyshh/frank-melloul-website/internal/interfaces/httpserver/handlers"
	"github.com/Tomyshh/frank-melloul-website/internal/interfaces/httpserver/middlewares"
)

// Routes encapsulates versioned route registration.
type Routes struct {
	handlers *handlers.Provider
	sessions *auth.Service
}

func NewRoutes(provider *handlers.Provider, sessions *auth.Service) *Routes {
	return &Routes{handlers: provider, sessions: sessions}
}

// Register attaches all v1 routes under /v1 prefix.
func (r *Routes) Register(router gin.IRouter) {
	group := router.Group("/v1")

	group.GET("/content", r.handlers.Content.List)
	group.GET("/videos", r.handlers.Content.Videos)
	group.GET("/articles", r.handlers.Content.Articles)
	group.GET("/translations", r.handlers.Content.Translations)

	group.POST("/admin/auth/login", r.handlers.Auth.Login)
	group.POST("/admin/auth/logout", r.handlers.Auth.Logout)

	gated := group.Group("/admin", middlewares.RequireSession(r.sessions))
	gated.GET("/auth/session", r.handlers.Auth.Session)
	gated.GET("/auth/events", r.handlers.Auth.Events)

	gated.GET("/videos", r.handlers.AdminVideos.List)
	gated.POST("/videos", r.handlers.AdminVideos.Create)
	gated.PUT("/videos/:id", r.handlers.AdminVideos.Update)
	gated.DELETE("/videos/:id", r.handlers.AdminVideos.Delete)
	gated.POST("/videos/:id/publish", r.handlers.AdminVideos.TogglePublish)

	gated.GET("/articles", r.handlers.AdminArticles.List)
	gated.POST("/articles", r.handlers.AdminArticles.Create)
	gated.PUT("/articles/:id", r.handlers.AdminArticles.Update)
	gated.DELETE("/articles/:id", r.handlers.AdminArticles.Delete)
	gated.POST("/articles/:id/publish", r.handlers.AdminArticles.TogglePublish)
}
