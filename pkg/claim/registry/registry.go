// Package registry implements the claim registry state machine.
//
// Every operation authenticates the caller, validates against current state,
// writes through the Store and then emits a single notification. Operations
// are serialized: one read-check-write sequence is in flight at a time.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chainsafe/claim-registry/internal/metrics"
	"github.com/chainsafe/claim-registry/pkg/claim"
)

const (
	opCreate   = "create"
	opRevoke   = "revoke"
	opTransfer = "transfer"
)

// Store is the logical persistence boundary for claims.
// GetClaim returns claim.ErrNotFound when the fingerprint has no entry.
type Store interface {
	GetClaim(ctx context.Context, fp claim.Fingerprint) (*claim.Claim, error)
	InsertClaim(ctx context.Context, fp claim.Fingerprint, c claim.Claim) error
	UpdateClaim(ctx context.Context, fp claim.Fingerprint, c claim.Claim) error
	DeleteClaim(ctx context.Context, fp claim.Fingerprint) error
}

// Authenticator resolves a request origin into an identity.
type Authenticator interface {
	Authenticate(ctx context.Context, origin claim.Origin) (claim.Identity, error)
}

// HeightSource reports the current ledger height.
type HeightSource interface {
	CurrentHeight(ctx context.Context) (claim.Height, error)
}

// EventSink receives notifications of committed mutations.
type EventSink interface {
	Emit(ctx context.Context, event claim.Event) error
}

// Registry owns the fingerprint to claim mapping.
type Registry struct {
	mu sync.Mutex

	store  Store
	auth   Authenticator
	height HeightSource
	sink   EventSink
	logger *zap.Logger
	now    func() time.Time
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for committed mutations and sink failures.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithClock overrides the wall clock stamped on emitted events.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// New creates a registry over the given collaborators.
func New(store Store, auth Authenticator, height HeightSource, sink EventSink, opts ...Option) *Registry {
	r := &Registry{
		store:  store,
		auth:   auth,
		height: height,
		sink:   sink,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// CreateClaim registers fingerprint for the authenticated caller and returns the stored claim.
func (r *Registry) CreateClaim(ctx context.Context, origin claim.Origin, fp claim.Fingerprint) (_ *claim.Claim, err error) {
	defer observe(opCreate, time.Now(), &err)

	caller, err := r.authenticate(ctx, origin)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, err = r.store.GetClaim(ctx, fp)
	switch {
	case err == nil:
		return nil, claim.ErrAlreadyClaimed
	case !errors.Is(err, claim.ErrNotFound):
		return nil, fmt.Errorf("failed to read claim: %w", err)
	}

	h, err := r.currentHeight(ctx)
	if err != nil {
		return nil, err
	}

	c := claim.Claim{Owner: caller, RegisteredAt: h}
	if err = r.store.InsertClaim(ctx, fp, c); err != nil {
		return nil, fmt.Errorf("failed to insert claim: %w", err)
	}

	r.emit(ctx, claim.Event{
		Kind:        claim.EventClaimCreated,
		Who:         caller,
		Fingerprint: fp,
		Height:      h,
	})
	return &c, nil
}

// RevokeClaim removes the caller's claim on fingerprint.
func (r *Registry) RevokeClaim(ctx context.Context, origin claim.Origin, fp claim.Fingerprint) (err error) {
	defer observe(opRevoke, time.Now(), &err)

	caller, err := r.authenticate(ctx, origin)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err = r.ownedBy(ctx, fp, caller); err != nil {
		return err
	}

	if err = r.store.DeleteClaim(ctx, fp); err != nil {
		return fmt.Errorf("failed to delete claim: %w", err)
	}

	r.emit(ctx, claim.Event{
		Kind:        claim.EventClaimRevoked,
		Who:         caller,
		Fingerprint: fp,
	})
	return nil
}

// TransferClaim hands the caller's claim on fingerprint to target and refreshes its height.
// Transferring to oneself is allowed. The returned claim is the one written.
func (r *Registry) TransferClaim(
	ctx context.Context,
	origin claim.Origin,
	fp claim.Fingerprint,
	target claim.Identity,
) (_ *claim.Claim, err error) {
	defer observe(opTransfer, time.Now(), &err)

	caller, err := r.authenticate(ctx, origin)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err = r.ownedBy(ctx, fp, caller); err != nil {
		return nil, err
	}

	h, err := r.currentHeight(ctx)
	if err != nil {
		return nil, err
	}

	c := claim.Claim{Owner: target, RegisteredAt: h}
	if err = r.store.UpdateClaim(ctx, fp, c); err != nil {
		return nil, fmt.Errorf("failed to update claim: %w", err)
	}

	r.emit(ctx, claim.Event{
		Kind:        claim.EventClaimTransferred,
		Who:         caller,
		Fingerprint: fp,
		Target:      target,
		Height:      h,
	})
	return &c, nil
}

// Lookup returns the claim stored for fingerprint, or claim.ErrNotFound.
func (r *Registry) Lookup(ctx context.Context, fp claim.Fingerprint) (*claim.Claim, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, err := r.store.GetClaim(ctx, fp)
	if err != nil {
		if errors.Is(err, claim.ErrNotFound) {
			return nil, claim.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read claim: %w", err)
	}
	return c, nil
}

func (r *Registry) authenticate(ctx context.Context, origin claim.Origin) (claim.Identity, error) {
	id, err := r.auth.Authenticate(ctx, origin)
	if err != nil {
		if errors.Is(err, claim.ErrUnauthenticated) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", claim.ErrUnauthenticated, err)
	}
	if id.IsAnonymous() {
		return "", claim.ErrUnauthenticated
	}
	return id, nil
}

// ownedBy checks existence before ownership so an absent claim is always ErrNotFound.
func (r *Registry) ownedBy(ctx context.Context, fp claim.Fingerprint, caller claim.Identity) error {
	c, err := r.store.GetClaim(ctx, fp)
	if err != nil {
		if errors.Is(err, claim.ErrNotFound) {
			return claim.ErrNotFound
		}
		return fmt.Errorf("failed to read claim: %w", err)
	}
	if c.Owner != caller {
		return claim.ErrNotOwner
	}
	return nil
}

func (r *Registry) currentHeight(ctx context.Context) (claim.Height, error) {
	h, err := r.height.CurrentHeight(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read current height: %w", err)
	}
	return h, nil
}

// emit runs after the write committed; a sink failure cannot roll it back.
func (r *Registry) emit(ctx context.Context, event claim.Event) {
	event.ID = uuid.NewString()
	event.EmittedAt = r.now().UTC()

	r.logger.Debug("Claim state changed",
		zap.String("event_id", event.ID),
		zap.String("kind", string(event.Kind)),
		zap.String("who", event.Who.String()),
		zap.String("fingerprint", event.Fingerprint.String()),
		zap.String("target", event.Target.String()),
		zap.Uint64("height", uint64(event.Height)),
	)

	if r.sink == nil {
		return
	}
	if err := r.sink.Emit(ctx, event); err != nil {
		metrics.ErrorsTotal.WithLabelValues("registry", "event_sink").Inc()
		r.logger.Warn("Failed to deliver claim event",
			zap.String("event_id", event.ID),
			zap.String("kind", string(event.Kind)),
			zap.Error(err),
		)
	}
}

func observe(op string, start time.Time, errp *error) {
	metrics.OperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	metrics.OperationsTotal.WithLabelValues(op, resultLabel(*errp)).Inc()
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, claim.ErrUnauthenticated):
		return "unauthenticated"
	case errors.Is(err, claim.ErrAlreadyClaimed):
		return "already_claimed"
	case errors.Is(err, claim.ErrNotFound):
		return "not_found"
	case errors.Is(err, claim.ErrNotOwner):
		return "not_owner"
	default:
		return "error"
	}
}
