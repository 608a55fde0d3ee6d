package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Jobs that burn through maxJobAttempts land in a per-queue dead letter list
// (dlq:jobs:notificaciones, dlq:jobs:comprobantes) instead of being dropped,
// so a failed comprobante or lead notification can be replayed by hand.
const dlqPrefix = "dlq:"

// DeadLetter is the stored shape of an exhausted job: the original envelope
// plus where it came from, why it failed and when.
type DeadLetter struct {
	Cola     string          `json:"cola"`
	Tipo     string          `json:"tipo"`
	Payload  json.RawMessage `json:"payload"`
	Motivo   string          `json:"motivo"`
	FallidoA string          `json:"fallido_a"` // RFC 3339
	Intentos int             `json:"intentos"`
}

// parkJob moves an exhausted job to the dead letter list for its queue.
// Best effort: a DLQ write failure is logged, never propagated, because the
// job already failed and there is nowhere left to send it.
func parkJob(ctx context.Context, rdb *redis.Client, queue string, job Job, motivo string) {
	entry := DeadLetter{
		Cola:     queue,
		Tipo:     job.Type,
		Payload:  job.Payload,
		Motivo:   motivo,
		FallidoA: time.Now().UTC().Format(time.RFC3339),
		Intentos: job.Attempts,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("dlq: marshal failed")
		return
	}
	if err := rdb.LPush(ctx, dlqPrefix+queue, data).Err(); err != nil {
		log.Error().Err(err).Str("queue", queue).Msg("dlq: push failed")
		return
	}

	log.Warn().
		Str("queue", queue).
		Str("tipo", job.Type).
		Str("motivo", motivo).
		Int("intentos", job.Attempts).
		Msg("dlq: job parked after exhausting retries")
}

// DLQLength reports how many jobs sit parked for a queue; the health
// tooling polls it.
func DLQLength(ctx context.Context, rdb *redis.Client, queue string) (int64, error) {
	return rdb.LLen(ctx, dlqPrefix+queue).Result()
}
