// Package reconciler keeps derived claim gauges in step with the store.
package reconciler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/claim-registry/internal/metrics"
)

const reconcileTimeout = 30 * time.Second

// ClaimCounter reports how many fingerprints are currently claimed.
type ClaimCounter interface {
	CountClaims(ctx context.Context) (int, error)
}

// Reconciler resets the active claims gauge from the store. The metrics sink
// moves the gauge per event, so writes from other instances or a failed
// sink delivery would otherwise leave it drifting.
type Reconciler struct {
	store  ClaimCounter
	logger *zap.Logger

	stopOnce sync.Once
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// New creates a new Reconciler
func New(store ClaimCounter, logger *zap.Logger) *Reconciler {
	return &Reconciler{
		store:  store,
		logger: logger,
		stopCh: make(chan struct{}),
	}
}

// Reconcile sets the gauge to the stored claim count.
func (r *Reconciler) Reconcile(ctx context.Context) error {
	n, err := r.store.CountClaims(ctx)
	if err != nil {
		metrics.ErrorsTotal.WithLabelValues("reconciler", "count_claims").Inc()
		return fmt.Errorf("failed to count claims: %w", err)
	}
	metrics.ActiveClaims.Set(float64(n))
	r.logger.Debug("Reconciled active claims", zap.Int("active_claims", n))
	return nil
}

// StartPeriodicReconciliation starts a background goroutine that reconciles periodically
func (r *Reconciler) StartPeriodicReconciliation(interval time.Duration) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		r.logger.Info("Started periodic reconciliation", zap.Duration("interval", interval))

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), reconcileTimeout)
				if err := r.Reconcile(ctx); err != nil {
					r.logger.Error("Periodic reconciliation failed", zap.Error(err))
				}
				cancel()
			case <-r.stopCh:
				r.logger.Info("Stopping periodic reconciliation")
				return
			}
		}
	}()
}

// Stop stops the periodic reconciliation and waits for it to exit. Safe to call more than once.
func (r *Reconciler) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
	r.wg.Wait()
}
