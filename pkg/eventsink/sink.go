// Package eventsink contains the destinations committed claim notifications are delivered to.
package eventsink

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/chainsafe/claim-registry/internal/metrics"
	"github.com/chainsafe/claim-registry/pkg/claim"
)

// Sink receives claim notifications.
type Sink interface {
	Emit(ctx context.Context, event claim.Event) error
}

// Multi delivers every event to each sink in order. All sinks are attempted
// even when an earlier one fails; the failures are joined.
type Multi []Sink

// Emit fans the event out.
func (m Multi) Emit(ctx context.Context, event claim.Event) error {
	var errs []error
	for _, s := range m {
		if err := s.Emit(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Log writes each event as a structured log line.
type Log struct {
	logger *zap.Logger
}

// NewLog creates a sink writing to logger.
func NewLog(logger *zap.Logger) *Log {
	return &Log{logger: logger}
}

func (l *Log) Emit(_ context.Context, event claim.Event) error {
	fields := []zap.Field{
		zap.String("event_id", event.ID),
		zap.String("who", event.Who.String()),
		zap.String("fingerprint", event.Fingerprint.String()),
		zap.Uint64("height", uint64(event.Height)),
		zap.Time("emitted_at", event.EmittedAt),
	}
	if event.Kind == claim.EventClaimTransferred {
		fields = append(fields, zap.String("target", event.Target.String()))
	}
	l.logger.Info(string(event.Kind), fields...)
	return nil
}

// Metrics counts events and keeps the active claims gauge in step with them.
type Metrics struct{}

func (Metrics) Emit(_ context.Context, event claim.Event) error {
	switch event.Kind {
	case claim.EventClaimCreated:
		metrics.ActiveClaims.Inc()
	case claim.EventClaimRevoked:
		metrics.ActiveClaims.Dec()
	case claim.EventClaimTransferred:
	default:
		return fmt.Errorf("unknown event kind %q", event.Kind)
	}
	metrics.EventsEmitted.WithLabelValues(string(event.Kind)).Inc()
	return nil
}
