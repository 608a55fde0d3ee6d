package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	QueueNotificaciones = "jobs:notificaciones"
	QueueComprobantes   = "jobs:comprobantes"

	maxJobAttempts = 3
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
	Attempts int             `json:"attempts"`
}

// Handler processes a job payload. A returned error re-enqueues the job
// until maxJobAttempts, then it lands in the DLQ.
type Handler func(ctx context.Context, payload json.RawMessage) error

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueNotificacion pushes a new-lead notification job.
func (d *Dispatcher) EnqueueNotificacion(ctx context.Context, payload interface{}) error {
	return d.enqueue(ctx, QueueNotificaciones, "notificacion", payload)
}

// EnqueueComprobante pushes a receipt generation job.
func (d *Dispatcher) EnqueueComprobante(ctx context.Context, payload interface{}) error {
	return d.enqueue(ctx, QueueComprobantes, "comprobante", payload)
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

// StartWorkerPool launches numWorkers goroutines consuming both queues.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, numWorkers int, handlers map[string]Handler) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, i, handlers)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, id int, handlers map[string]Handler) {
	queues := []string{QueueNotificaciones, QueueComprobantes}
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, queues...).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			processJob(ctx, rdb, handlers, result[0], result[1])
		}
	}
}

func processJob(ctx context.Context, rdb *redis.Client, handlers map[string]Handler, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		return
	}

	handler, ok := handlers[queue]
	if !ok {
		log.Error().Str("queue", queue).Str("type", job.Type).Msg("no handler for queue")
		return
	}

	if err := handler(ctx, job.Payload); err != nil {
		job.Attempts++
		if job.Attempts >= maxJobAttempts {
			parkJob(ctx, rdb, queue, job, err.Error())
			return
		}
		encoded, mErr := json.Marshal(job)
		if mErr != nil {
			log.Error().Err(mErr).Msg("failed to re-enqueue job")
			return
		}
		if pushErr := rdb.LPush(ctx, queue, encoded).Err(); pushErr != nil {
			log.Error().Err(pushErr).Str("queue", queue).Msg("failed to re-enqueue job")
		}
		return
	}
	log.Debug().Str("type", job.Type).Str("queue", queue).Msg("job processed")
}
