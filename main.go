package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/streadway/amqp"

	"github.com/muhammadolammi/hirematch/internal/config"
	"github.com/muhammadolammi/hirematch/internal/database"
	"github.com/muhammadolammi/hirematch/internal/jobspec"
	"github.com/muhammadolammi/hirematch/internal/objectstore"
	"github.com/muhammadolammi/hirematch/internal/providers"
	"github.com/muhammadolammi/hirematch/internal/resume"
	"github.com/muhammadolammi/hirematch/internal/store"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger); err != nil {
		logger.Error("worker exited", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(config.ModeWorker); err != nil {
		return err
	}

	db, err := store.OpenPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()
	queries := database.New(db)

	bucket, err := objectstore.NewR2(ctx, cfg.R2)
	if err != nil {
		return err
	}

	provider, err := newLLMProvider(ctx, cfg)
	if err != nil {
		return err
	}
	engine, err := providers.Engine(ctx, cfg)
	if err != nil {
		return err
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		return err
	}
	defer conn.Close()
	publisher, err := newAMQPPublisher(conn)
	if err != nil {
		return err
	}

	workerConfig := &WorkerConfig{
		DB:          queries,
		Candidates:  store.NewPostgres(queries),
		Objects:     bucket,
		Updates:     publisher,
		RabbitMQURL: cfg.RabbitMQURL,
		Resumes:     &resume.Parser{},
		Jobs:        jobspec.NewParser(provider, logger),
		Engine:      engine,
		Logger:      logger,
		RetryWait:   500 * time.Millisecond,
	}

	logger.Info("starting consumer pool", "workers", cfg.Workers, "similarity", cfg.SimilarityMethod)
	workerConfig.StartConsumerWorkerPool(ctx, cfg.Workers)
	return nil
}
