// Package db opens the gorm database connection used by the application.
package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"blog_backend/internal/app/config"
	postentity "blog_backend/internal/feature/posts/domain/entity"
	userentity "blog_backend/internal/feature/users/domain/entity"
)

// Open connects to Postgres with the configured DSN, retrying for up to
// 60 seconds so the server can come up alongside the database, and runs
// the schema migration when the config asks for it.
func Open(cfg *config.DatabaseConfig) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.AutoMigrate {
		if err := db.AutoMigrate(
			&userentity.User{},
			&postentity.Post{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
