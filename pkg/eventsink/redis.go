package eventsink

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/chainsafe/claim-registry/pkg/claim"
)

// DefaultStream is the Redis stream events are appended to when none is configured.
const DefaultStream = "claim-registry:events"

// redisEvent is the wire shape of an event in the Redis stream.
type redisEvent struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Who         string `json:"who"`
	Fingerprint string `json:"fingerprint"`
	Target      string `json:"target,omitempty"`
	Height      uint64 `json:"height"`
	EmittedAt   string `json:"emitted_at"`
}

// Redis appends events to a Redis stream so other processes can follow claim changes.
type Redis struct {
	client *redis.Client
	stream string
	maxLen int64
}

// NewRedis creates a stream sink. maxLen > 0 caps the stream approximately at that many entries.
func NewRedis(client *redis.Client, stream string, maxLen int64) *Redis {
	if stream == "" {
		stream = DefaultStream
	}
	return &Redis{client: client, stream: stream, maxLen: maxLen}
}

// DialRedis parses url, connects and pings.
func DialRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

func (r *Redis) Emit(ctx context.Context, event claim.Event) error {
	payload, err := json.Marshal(redisEvent{
		ID:          event.ID,
		Kind:        string(event.Kind),
		Who:         event.Who.String(),
		Fingerprint: event.Fingerprint.String(),
		Target:      event.Target.String(),
		Height:      uint64(event.Height),
		EmittedAt:   event.EmittedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", event.Kind, err)
	}

	args := &redis.XAddArgs{
		Stream: r.stream,
		Values: map[string]any{
			"kind":  string(event.Kind),
			"event": payload,
		},
	}
	if r.maxLen > 0 {
		args.MaxLen = r.maxLen
		args.Approx = true
	}

	if err := r.client.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.Kind, err)
	}
	return nil
}
