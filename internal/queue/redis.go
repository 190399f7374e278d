package queue

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"recap/internal/logging"
)

const (
	defaultRecapQueueKey = "recap_jobs"
	retrySuffix          = ":retry"
	dlqSuffix            = ":dlq"
	retryCounterSuffix   = ":retry-count:"
	maxRetryAttempts     = 3
	brPopBlock           = 5 * time.Second
)

// RedisQueue carries recap precompute jobs on Redis lists: a main list, a
// retry list that is drained first, and a dead-letter list for jobs that
// exhaust their attempts.
type RedisQueue struct {
	client *redis.Client
	key    string
}

// NewRedisQueue builds a Redis-backed job queue.
func NewRedisQueue(client *redis.Client) *RedisQueue {
	return &RedisQueue{client: client, key: defaultRecapQueueKey}
}

// Enqueue pushes a job payload onto the queue.
func (q *RedisQueue) Enqueue(ctx context.Context, queueName string, payload []byte) error {
	if queueName == "" {
		queueName = q.key
	}
	if err := q.client.LPush(ctx, queueName, payload).Err(); err != nil {
		return fmt.Errorf("enqueue job: %w", err)
	}
	return nil
}

// Consume feeds jobs to a pool of workerCount handlers until the context is
// canceled. A failing handler sends the job to the retry list; after
// maxRetryAttempts it lands in the DLQ.
func (q *RedisQueue) Consume(ctx context.Context, queueName string, workerCount, bufferSize int, handler func([]byte) error) error {
	logger := logging.Logger()
	if queueName == "" {
		queueName = q.key
	}
	if workerCount < 1 {
		workerCount = 1
	}
	retryKey := queueName + retrySuffix
	dlqKey := queueName + dlqSuffix

	jobChan := make(chan []byte, bufferSize)
	var wg sync.WaitGroup

	// Retry and DLQ pushes use a detached context: jobs already handed to a
	// worker when the consumer shuts down must still land back on a list
	// instead of vanishing with the canceled context.
	pushCtx := context.WithoutCancel(ctx)

	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for payload := range jobChan {
				if err := handler(payload); err != nil {
					logger.Warnf("worker %d: handler error, scheduling retry: %v", workerID, err)
					if err := q.handleRetry(pushCtx, queueName, retryKey, dlqKey, payload); err != nil {
						logger.Errorf("worker %d: retry handling failed: %v", workerID, err)
					}
					continue
				}
				_ = q.clearRetryCounter(pushCtx, queueName, payload)
			}
			logger.Infof("worker %d: exiting", workerID)
		}(i)
	}

	logger.Infof("consuming queue %s with %d workers", queueName, workerCount)

	for {
		if ctx.Err() != nil {
			logger.Warnf("redis consumer exiting: %v", ctx.Err())
			close(jobChan)
			wg.Wait()
			return ctx.Err()
		}

		// Retry list first so failed jobs are not starved by fresh ones.
		result, err := q.client.BRPop(ctx, brPopBlock, retryKey, queueName).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			if ctx.Err() != nil {
				logger.Warnf("redis BRPOP canceled: %v", ctx.Err())
				close(jobChan)
				wg.Wait()
				return ctx.Err()
			}
			logger.Warnf("redis BRPOP error: %v", err)
			continue
		}
		if len(result) < 2 {
			continue
		}

		select {
		case jobChan <- []byte(result[1]):
		case <-ctx.Done():
			close(jobChan)
			wg.Wait()
			return ctx.Err()
		}
	}
}

func (q *RedisQueue) handleRetry(ctx context.Context, baseQueue, retryKey, dlqKey string, payload []byte) error {
	logger := logging.Logger()
	attempt, err := q.incrementRetryCounter(ctx, baseQueue, payload)
	if err != nil {
		return err
	}
	if attempt > maxRetryAttempts {
		logger.Warnf("moving job to DLQ after %d attempts", attempt-1)
		_ = q.client.LPush(ctx, dlqKey, payload).Err()
		_ = q.clearRetryCounter(ctx, baseQueue, payload)
		return nil
	}
	return q.client.LPush(ctx, retryKey, payload).Err()
}

func (q *RedisQueue) incrementRetryCounter(ctx context.Context, queueName string, payload []byte) (int64, error) {
	key := retryCounterKey(queueName, payload)
	count, err := q.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	_ = q.client.Expire(ctx, key, 24*time.Hour).Err()
	return count, nil
}

func (q *RedisQueue) clearRetryCounter(ctx context.Context, queueName string, payload []byte) error {
	return q.client.Del(ctx, retryCounterKey(queueName, payload)).Err()
}

func retryCounterKey(queue string, payload []byte) string {
	sum := sha256.Sum256(payload)
	return fmt.Sprintf("%s%s%s", queue, retryCounterSuffix, hex.EncodeToString(sum[:]))
}
