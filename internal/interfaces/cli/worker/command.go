// Package worker implements the background worker subcommand. It drains the
// Redis task queue: image conversions and notification deliveries.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	articleUC "github.com/gazette-press/gazette/internal/application/article/usecases"
	"github.com/gazette-press/gazette/internal/application/notification"
	"github.com/gazette-press/gazette/internal/infrastructure/config"
	"github.com/gazette-press/gazette/internal/infrastructure/database"
	"github.com/gazette-press/gazette/internal/infrastructure/email"
	"github.com/gazette-press/gazette/internal/infrastructure/imaging"
	"github.com/gazette-press/gazette/internal/infrastructure/queue"
	"github.com/gazette-press/gazette/internal/infrastructure/repository"
	"github.com/gazette-press/gazette/internal/infrastructure/storage"
	"github.com/gazette-press/gazette/internal/shared/biztime"
	"github.com/gazette-press/gazette/internal/shared/goroutine"
	"github.com/gazette-press/gazette/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Start the background worker",
		Long:  `Start the Gazette worker that converts article images and sends notification emails.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	log := logger.NewLogger()
	log.Infow("starting worker", "environment", env)

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(cmd.Context()).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	log.Infow("redis connection established", "address", cfg.Redis.GetAddr())

	verticalRepo := repository.NewVerticalRepository(database.Get(), log)
	accountRepo := repository.NewAccountRepository(database.Get(), log)
	articleRepo := repository.NewArticleRepository(database.Get(), verticalRepo, log)

	taskQueue := queue.NewRedisTaskQueue(redisClient, log)
	store := storage.NewLocalDiskStore(cfg.Storage.BasePath, cfg.Storage.BaseURL, log)
	converter := imaging.NewWebPConverter()

	mailer := email.NewSMTPMailer(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
	})

	convertUC := articleUC.NewConvertArticleImageUseCase(articleRepo, store, converter, taskQueue, log)
	dispatcher := notification.NewDispatcher(accountRepo, articleRepo, mailer, log)

	worker := queue.NewWorker(taskQueue, log)
	worker.Register(queue.TaskConvertImage, func(ctx context.Context, task *queue.Task) error {
		var payload queue.ConvertImagePayload
		if err := json.Unmarshal(task.Payload, &payload); err != nil {
			return fmt.Errorf("failed to decode convert payload: %w", err)
		}
		return convertUC.Execute(ctx, payload.ArticleID)
	})
	worker.Register(queue.TaskSendNotification, func(ctx context.Context, task *queue.Task) error {
		var notice notification.Notice
		if err := json.Unmarshal(task.Payload, &notice); err != nil {
			return fmt.Errorf("failed to decode notification payload: %w", err)
		}
		return dispatcher.Dispatch(ctx, notice)
	})

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	goroutine.SafeGo(log, "signal-watcher", func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		log.Infow("shutdown signal received")
		cancel()
	})

	worker.Run(ctx)

	log.Infow("worker exited gracefully")
	return nil
}
