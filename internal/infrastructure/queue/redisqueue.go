// Package queue implements the asynchronous task queue on a Redis list.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gazette-press/gazette/internal/application/notification"
	"github.com/gazette-press/gazette/internal/shared/logger"
)

const defaultQueueKey = "gazette:tasks"

// Task types carried on the queue.
const (
	TaskConvertImage     = "convert_image"
	TaskSendNotification = "send_notification"
)

// Task is the JSON envelope pushed onto the Redis list.
type Task struct {
	Type       string          `json:"type"`
	Payload    json.RawMessage `json:"payload"`
	EnqueuedAt time.Time       `json:"enqueued_at"`
}

// ConvertImagePayload asks the worker to normalize an article's image.
type ConvertImagePayload struct {
	ArticleID uint `json:"article_id"`
}

// RedisTaskQueue produces and consumes tasks over a single Redis list.
// LPUSH on the producer side, BRPOP on the consumer side.
type RedisTaskQueue struct {
	client *redis.Client
	key    string
	logger logger.Interface
}

func NewRedisTaskQueue(client *redis.Client, logger logger.Interface) *RedisTaskQueue {
	return &RedisTaskQueue{
		client: client,
		key:    defaultQueueKey,
		logger: logger,
	}
}

// EnqueueConvertImage queues an image normalization task.
func (q *RedisTaskQueue) EnqueueConvertImage(ctx context.Context, articleID uint) error {
	return q.enqueue(ctx, TaskConvertImage, ConvertImagePayload{ArticleID: articleID})
}

// EnqueueNotification queues a notification dispatch task.
func (q *RedisTaskQueue) EnqueueNotification(ctx context.Context, n notification.Notice) error {
	return q.enqueue(ctx, TaskSendNotification, n)
}

func (q *RedisTaskQueue) enqueue(ctx context.Context, taskType string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", taskType, err)
	}

	task := Task{
		Type:       taskType,
		Payload:    raw,
		EnqueuedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to marshal task: %w", err)
	}

	if err := q.client.LPush(ctx, q.key, data).Err(); err != nil {
		q.logger.Errorw("failed to enqueue task", "type", taskType, "error", err)
		return fmt.Errorf("failed to enqueue %s task: %w", taskType, err)
	}

	q.logger.Debugw("task enqueued", "type", taskType)
	return nil
}

// Dequeue blocks until a task is available or the timeout elapses.
// It returns nil without error when the timeout elapses.
func (q *RedisTaskQueue) Dequeue(ctx context.Context, timeout time.Duration) (*Task, error) {
	result, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to pop task: %w", err)
	}

	// BRPop returns [key, value].
	if len(result) != 2 {
		return nil, fmt.Errorf("unexpected BRPOP reply length %d", len(result))
	}

	var task Task
	if err := json.Unmarshal([]byte(result[1]), &task); err != nil {
		return nil, fmt.Errorf("failed to unmarshal task: %w", err)
	}

	return &task, nil
}
