// Package scheduler provides scheduled job management using gocron v2.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/gazette-press/gazette/internal/shared/biztime"
	"github.com/gazette-press/gazette/internal/shared/logger"
)

// BatchJob defines the interface for a scheduled batch processing job.
// Each Execute call processes a batch and returns the number of items processed.
type BatchJob interface {
	Execute(ctx context.Context) (int, error)
}

// SchedulerManager manages all scheduled jobs using gocron v2.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

// NewSchedulerManager creates a new SchedulerManager instance.
// It initializes gocron with the business timezone for cron expressions.
func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterPromotionJob registers the article promotion job. In debug mode it
// runs on a short fixed interval so scheduled articles go live almost
// immediately; in release mode it runs once a day at the configured hour.
func (m *SchedulerManager) RegisterPromotionJob(job BatchJob, debug bool, intervalSeconds, dailyHour int) error {
	var definition gocron.JobDefinition
	if debug {
		if intervalSeconds <= 0 {
			intervalSeconds = 5
		}
		definition = gocron.DurationJob(time.Duration(intervalSeconds) * time.Second)
	} else {
		if dailyHour < 0 || dailyHour > 23 {
			return fmt.Errorf("invalid daily hour %d", dailyHour)
		}
		definition = gocron.CronJob(fmt.Sprintf("0 %d * * *", dailyHour), false)
	}

	_, err := m.scheduler.NewJob(
		definition,
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()
			m.promoteDue(ctx, job)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("article", "promotion"),
		gocron.WithName("article-promotion"),
	)
	if err != nil {
		return err
	}

	if debug {
		m.logger.Infow("registered article promotion job", "interval", fmt.Sprintf("%ds", intervalSeconds))
	} else {
		m.logger.Infow("registered article promotion job", "daily_hour", dailyHour)
	}
	return nil
}

func (m *SchedulerManager) promoteDue(ctx context.Context, job BatchJob) {
	m.logger.Debugw("article promotion pass started")

	startTime := biztime.NowUTC()

	count, err := job.Execute(ctx)
	if err != nil {
		m.logger.Errorw("article promotion pass failed",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if count > 0 {
		m.logger.Infow("articles promoted",
			"count", count,
			"duration", time.Since(startTime),
		)
	} else {
		m.logger.Debugw("no due articles to promote",
			"duration", time.Since(startTime),
		)
	}
}

// Start starts the scheduler and all registered jobs.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler manager started", "job_count", len(m.scheduler.Jobs()))
}

// Stop gracefully stops the scheduler.
// It waits for all running jobs to complete before returning.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	m.logger.Infow("stopping scheduler manager")

	err := m.scheduler.Shutdown()
	m.started = false

	if err != nil {
		m.logger.Errorw("scheduler manager shutdown with error", "error", err)
		return err
	}

	m.logger.Infow("scheduler manager stopped")
	return nil
}

// IsStarted returns whether the scheduler is running.
func (m *SchedulerManager) IsStarted() bool {
	m.startedMu.RLock()
	defer m.startedMu.RUnlock()
	return m.started
}
