package service

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// ErrNotFound signals that no row matched the requested id.
var ErrNotFound = errors.New("record not found")

// publishEvent emits an entity event to Kafka. Publishing is best-effort:
// a broker failure is logged and never fails the request that triggered it.
func publishEvent(ctx context.Context, w *kafka.Writer, key string, payload interface{}) {
	if w == nil {
		return
	}

	value, err := json.Marshal(payload)
	if err != nil {
		logger.Warn().Err(err).Msgf("Error encoding event %s", key)
		return
	}

	// user-created-1, post-deleted-3, ...
	msg := kafka.Message{
		Key:   []byte(key),
		Value: value,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Warn().Err(err).Msgf("Error publishing event %s", key)
	}
}
