package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Tomyshh/frank-melloul-website/internal/config"
	admindomain "github.com/Tomyshh/frank-melloul-website/internal/domain/admin"
	authdomain "github.com/Tomyshh/frank-melloul-website/internal/domain/auth"
	contentdomain "github.com/Tomyshh/frank-melloul-website/internal/domain/content"
	"github.com/Tomyshh/frank-melloul-website/internal/infrastructure/database"
	"github.com/Tomyshh/frank-melloul-website/internal/infrastructure/logger"
	"github.com/Tomyshh/frank-melloul-website/internal/infrastructure/observability"
	authrepo "github.com/Tomyshh/frank-melloul-website/internal/infrastructure/repository/auth"
	contentrepo "github.com/Tomyshh/frank-melloul-website/internal/infrastructure/repository/content"
	"github.com/Tomyshh/frank-melloul-website/internal/infrastructure/storage"
	"github.com/Tomyshh/frank-melloul-website/internal/interfaces/httpserver"
	"github.com/Tomyshh/frank-melloul-website/internal/interfaces/httpserver/handlers"
)

type Application struct {
	httpServer *httpserver.HttpServer
	log        zerolog.Logger
}

func NewApplication(httpServer *httpserver.HttpServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

// repositories groups the persistence ports behind one construction site,
// so the database-or-memory decision happens in a single place.
type repositories struct {
	videos   contentdomain.VideoRepository
	articles contentdomain.ArticleRepository
	users    authdomain.UserRepository
	sessions authdomain.SessionRepository
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	repos, db, err := buildRepositories(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize persistence")
	}

	store, err := buildStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize storage")
	}

	contentService := contentdomain.NewService(repos.videos, repos.articles, store, log)
	adminService := admindomain.NewService(repos.videos, repos.articles, store, log)
	authService := authdomain.NewService(repos.users, repos.sessions, cfg.AuthSecret, cfg.SessionTTL, log)
	if !cfg.HasAuth() {
		log.Warn().Msg("AUTH_SECRET is not set; the admin surface is disabled until configured")
	}

	provider := handlers.NewProvider(cfg, contentService, adminService, authService, store, log)

	checkers := []httpserver.HealthChecker{store}
	if db != nil {
		checkers = append(checkers, dbChecker{db})
	}

	httpServer := httpserver.New(cfg, log, provider, authService, checkers...)
	app := NewApplication(httpServer, log)

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

// buildRepositories connects PostgreSQL when DATABASE_URL is set and falls
// back to process-local repositories otherwise, so the public pages still
// answer on a bare environment.
func buildRepositories(ctx context.Context, cfg *config.Config, log zerolog.Logger) (repositories, *gorm.DB, error) {
	if !cfg.HasDatabase() {
		log.Warn().Msg("DATABASE_URL is not set; using in-memory repositories")
		users := authrepo.NewInMemoryUserRepository()
		if err := users.Seed(cfg.AdminEmail, cfg.AdminPassword); err != nil {
			return repositories{}, nil, fmt.Errorf("seed admin user: %w", err)
		}
		return repositories{
			videos:   contentrepo.NewInMemoryVideoRepository(),
			articles: contentrepo.NewInMemoryArticleRepository(),
			users:    users,
			sessions: authrepo.NewInMemorySessionRepository(),
		}, nil, nil
	}

	db, err := database.Connect(database.Config{
		DSN:             cfg.DatabaseDSN,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	})
	if err != nil {
		return repositories{}, nil, err
	}
	if err := database.AutoMigrate(ctx, db, cfg, log); err != nil {
		return repositories{}, nil, err
	}

	return repositories{
		videos:   contentrepo.NewVideoRepository(db),
		articles: contentrepo.NewArticleRepository(db),
		users:    authrepo.NewUserRepository(db),
		sessions: authrepo.NewSessionRepository(db),
	}, db, nil
}

// buildStorage picks the object storage backend. Both backends come up in
// a disabled state when unconfigured instead of failing startup.
func buildStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (objectStore, error) {
	if cfg.IsLocalStorage() {
		return storage.NewLocalStorage(cfg, log)
	}
	return storage.NewS3Storage(ctx, cfg, log)
}

// objectStore is what main needs from a storage backend: the domain port
// plus a readiness probe.
type objectStore interface {
	contentdomain.ObjectStore
	Health(ctx context.Context) error
}

type dbChecker struct {
	db *gorm.DB
}

func (c dbChecker) Health(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
