package main

import (
	"log"
	"time"

	"blog_backend/internal/app/config"
	"blog_backend/internal/app/router"
	postadapters "blog_backend/internal/feature/posts/adapters"
	posthandler "blog_backend/internal/feature/posts/transport/handler"
	postusecase "blog_backend/internal/feature/posts/usecase"
	useradapters "blog_backend/internal/feature/users/adapters"
	userhandler "blog_backend/internal/feature/users/transport/handler"
	userusecase "blog_backend/internal/feature/users/usecase"
	"blog_backend/internal/platform/db"
	"blog_backend/internal/platform/hash"
	jwtauth "blog_backend/internal/platform/jwt"
)

func main() {
	// Config (file + BLOG_* env overrides), built once and injected
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.JWT.Secret == "" {
		log.Println("[WARN] BLOG_JWT_SECRET is not set. Set a strong secret in production.")
	}

	// db
	conn := db.Open(&cfg.Database)

	// Platform services
	hasher := hash.NewArgon2Hasher(hash.Params{
		Time:       cfg.Hash.Time,
		MemoryKiB:  cfg.Hash.MemoryKiB,
		Threads:    cfg.Hash.Threads,
		SaltLength: cfg.Hash.SaltLength,
		KeyLength:  cfg.Hash.KeyLength,
	})
	tokens := jwtauth.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLMinutes)*time.Minute)

	// Repository
	userRepo := useradapters.NewUserGorm(conn)
	postRepo := postadapters.NewPostGorm(conn)

	// Usecase
	userUC := userusecase.NewUserUsecase(userRepo, hasher, tokens)
	postUC := postusecase.NewPostUsecase(postRepo)

	// Handler
	userH := userhandler.NewUserHandler(userUC)
	postH := posthandler.NewPostHandler(postUC)

	// Router
	r := router.NewRouter(userH, postH, jwtauth.AuthRequired(tokens, userRepo))

	if err := r.Run(cfg.Server.Address); err != nil {
		log.Fatal(err)
	}
}
