// Package scheduler implements the promotion scheduler subcommand.
package scheduler

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	articleUC "github.com/gazette-press/gazette/internal/application/article/usecases"
	"github.com/gazette-press/gazette/internal/infrastructure/config"
	"github.com/gazette-press/gazette/internal/infrastructure/database"
	"github.com/gazette-press/gazette/internal/infrastructure/queue"
	"github.com/gazette-press/gazette/internal/infrastructure/repository"
	schedulerInfra "github.com/gazette-press/gazette/internal/infrastructure/scheduler"
	"github.com/gazette-press/gazette/internal/shared/biztime"
	"github.com/gazette-press/gazette/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scheduler",
		Short: "Start the article promotion scheduler",
		Long: `Start the scheduler that promotes due drafts to published.
In development it polls every few seconds; in production it runs once a day.`,
		RunE: run,
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
	log.Infow("starting scheduler", "environment", env)

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

	verticalRepo := repository.NewVerticalRepository(database.Get(), log)
	articleRepo := repository.NewArticleRepository(database.Get(), verticalRepo, log)
	taskQueue := queue.NewRedisTaskQueue(redisClient, log)

	publishUC := articleUC.NewPublishDueArticlesUseCase(articleRepo, taskQueue, log)

	manager, err := schedulerInfra.NewSchedulerManager(log)
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	debug := env != "production"
	if err := manager.RegisterPromotionJob(publishUC, debug, cfg.Scheduler.PromoteInterval, cfg.Scheduler.PromoteDailyHour); err != nil {
		return fmt.Errorf("failed to register promotion job: %w", err)
	}

	manager.Start()
	log.Infow("scheduler started", "debug", debug)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down scheduler")
	if err := manager.Stop(); err != nil {
		return fmt.Errorf("failed to stop scheduler: %w", err)
	}

	log.Infow("scheduler exited gracefully")
	return nil
}
