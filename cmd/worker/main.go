package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hamyaran/admin-api/config"
	"github.com/hamyaran/admin-api/internal/repository/postgres"
	"github.com/hamyaran/admin-api/pkg/logger"
	redisbroker "github.com/hamyaran/admin-api/pkg/messaging/redis"
	"github.com/hamyaran/admin-api/pkg/metrics"
	"github.com/hamyaran/admin-api/pkg/worker"
)

func main() {
	log := logger.New(nil)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err, "failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal(err, "failed to connect to database")
	}
	defer db.Close()

	broker, err := redisbroker.NewBroker(redisbroker.Config{
		URL:          cfg.Redis.URL,
		MaxRetries:   cfg.Redis.MaxRetries,
		RetryBackoff: cfg.Redis.RetryBackoff,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})
	if err != nil {
		log.Fatal(err, "failed to connect to redis")
	}
	defer broker.Close()

	m := metrics.New("admin_worker")
	processor := worker.NewOutboxProcessor(postgres.NewOutboxRepository(db), broker,
		cfg.Outbox, log, m)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info("shutdown signal received")
		cancel()
	}()

	processor.Start(ctx)
}
