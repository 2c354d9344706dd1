package queue

import (
	"context"
	"errors"
	"time"

	"github.com/gazette-press/gazette/internal/shared/logger"
)

const popTimeout = 5 * time.Second

// Handler processes one dequeued task.
type Handler func(ctx context.Context, task *Task) error

// Worker consumes the task queue and routes tasks to registered handlers.
type Worker struct {
	queue    *RedisTaskQueue
	handlers map[string]Handler
	logger   logger.Interface
}

func NewWorker(queue *RedisTaskQueue, logger logger.Interface) *Worker {
	return &Worker{
		queue:    queue,
		handlers: make(map[string]Handler),
		logger:   logger,
	}
}

// Register binds a handler to a task type.
func (w *Worker) Register(taskType string, h Handler) {
	w.handlers[taskType] = h
}

// Run consumes tasks until the context is canceled. A failed task is logged
// and dropped; the queue holds no delivery guarantee beyond at-most-once.
func (w *Worker) Run(ctx context.Context) {
	w.logger.Infow("task worker started")

	for {
		select {
		case <-ctx.Done():
			w.logger.Infow("task worker stopped")
			return
		default:
		}

		task, err := w.queue.Dequeue(ctx, popTimeout)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				w.logger.Infow("task worker stopped")
				return
			}
			w.logger.Errorw("failed to dequeue task", "error", err)
			time.Sleep(time.Second)
			continue
		}
		if task == nil {
			continue
		}

		w.handle(ctx, task)
	}
}

func (w *Worker) handle(ctx context.Context, task *Task) {
	h, ok := w.handlers[task.Type]
	if !ok {
		w.logger.Warnw("no handler for task type, dropping", "type", task.Type)
		return
	}

	start := time.Now()
	if err := h(ctx, task); err != nil {
		w.logger.Errorw("task failed", "type", task.Type, "error", err,
			"elapsed", time.Since(start))
		return
	}

	w.logger.Debugw("task processed", "type", task.Type, "elapsed", time.Since(start))
}
