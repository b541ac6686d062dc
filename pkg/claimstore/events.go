package claimstore

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/chainsafe/claim-registry/pkg/claim"
)

// EventLog appends claim notifications to the 'claim_events' table.
type EventLog struct {
	db *bun.DB
}

// NewEventLog creates a postgres-backed event sink.
func NewEventLog(db *bun.DB) *EventLog {
	return &EventLog{db: db}
}

// Emit stores the event. Replays of an already stored event id are ignored.
func (l *EventLog) Emit(ctx context.Context, event claim.Event) error {
	_, err := l.db.NewInsert().
		Model(toClaimEventDao(event)).
		On("CONFLICT (id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to store %s event: %w", event.Kind, err)
	}
	return nil
}

// listByFingerprint returns the events recorded for fp in emission order.
func (l *EventLog) listByFingerprint(ctx context.Context, fp claim.Fingerprint) ([]claim.Event, error) {
	var daos []ClaimEventDao
	err := l.db.NewSelect().
		Model(&daos).
		Where("fingerprint = ?", []byte(fp)).
		Order("seq ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	events := make([]claim.Event, len(daos))
	for i := range daos {
		events[i] = toClaimEvent(&daos[i])
	}
	return events, nil
}
