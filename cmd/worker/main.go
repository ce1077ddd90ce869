package main

import (
	"context"
	"log"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/FedeLo13/ceramic-affair-web/internal/config"
	"github.com/FedeLo13/ceramic-affair-web/internal/database"
	"github.com/FedeLo13/ceramic-affair-web/internal/jobs"
	"github.com/FedeLo13/ceramic-affair-web/internal/mailer"
	"github.com/FedeLo13/ceramic-affair-web/internal/repository"
)

func main() {
	cfg := config.LoadConfig()

	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}
	defer db.CloseDB()

	repo := repository.NewRepository(db.DB)
	sender := mailer.NewSMTPSender(cfg.SMTP)

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	// fail fast when the queue backend is unreachable
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		cancel()
		log.Fatalf("Failed to reach redis at %s: %v", cfg.Redis.Addr, err)
	}
	cancel()
	rdb.Close()

	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			jobs.QueueMail:    6,
			jobs.QueueDefault: 4,
		},
	})

	mux := asynq.NewServeMux()
	jobs.NewHandlers(sender, repo.Subscriber).Register(mux)

	// daily purge of unverified subscribers with expired tokens
	scheduler := asynq.NewScheduler(redisOpt, nil)
	if _, err := scheduler.Register("0 4 * * *", jobs.NewSubscriberCleanupTask()); err != nil {
		log.Fatalf("Failed to register cleanup schedule: %v", err)
	}
	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer scheduler.Shutdown()

	log.Println("Worker started")
	if err := srv.Run(mux); err != nil {
		log.Fatalf("Worker error: %v", err)
	}
}
