package app

import (
	"context"
	"log"

	"github.com/hibiken/asynq"

	"github.com/FedeLo13/ceramic-affair-web/internal/config"
	"github.com/FedeLo13/ceramic-affair-web/internal/database"
	"github.com/FedeLo13/ceramic-affair-web/internal/mailer"
	"github.com/FedeLo13/ceramic-affair-web/internal/repository"
	"github.com/FedeLo13/ceramic-affair-web/internal/service"
	"github.com/FedeLo13/ceramic-affair-web/internal/storage"
)

// App wires the shared dependency graph used by both the API server and
// the worker.
func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}

	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize MinIO: %v", err)
	}

	sender := mailer.NewSMTPSender(cfg.SMTP)

	tasks := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	repo := repository.NewRepository(db.DB)
	services := service.NewService(repo, cfg, minioClient, sender, tasks)

	if err := services.Auth.EnsureAdmin(context.Background()); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	return db, repo, services
}
