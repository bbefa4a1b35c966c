package database

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Tomyshh/frank-melloul-website/internal/config"
	"github.com/Tomyshh/frank-melloul-website/internal/infrastructure/database/entities"
	"github.com/Tomyshh/frank-melloul-website/utils/recordid"
)

// AutoMigrate applies database schema changes and seeds the first admin user.
func AutoMigrate(ctx context.Context, db *gorm.DB, cfg *config.Config, log zerolog.Logger) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&entities.Video{},
		&entities.Article{},
		&entities.AdminUser{},
		&entities.AdminSession{},
	); err != nil {
		return err
	}
	log.Info().Msg("applied content schema migrations")

	return seedAdminUser(ctx, db, cfg, log)
}

func seedAdminUser(ctx context.Context, db *gorm.DB, cfg *config.Config, log zerolog.Logger) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Debug().Msg("ADMIN_EMAIL/ADMIN_PASSWORD not set; skipping admin seed")
		return nil
	}

	var count int64
	if err := db.WithContext(ctx).Model(&entities.AdminUser{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Debug().Int64("rows", count).Msg("admin users already present")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := entities.AdminUser{
		ID:           recordid.New(),
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
	}
	if err := db.WithContext(ctx).Create(&user).Error; err != nil {
		return err
	}
	log.Info().Str("email", user.Email).Msg("seeded admin user")
	return nil
}
