// Package height provides the sources the registry stamps claims with.
package height

import (
	"context"
	"sync/atomic"

	"github.com/chainsafe/claim-registry/internal/metrics"
	"github.com/chainsafe/claim-registry/pkg/claim"
)

// Sequence is a ledger-position counter: every read hands out the next position.
type Sequence struct {
	last atomic.Uint64
}

// NewSequence creates a counter whose first reading is start+1.
// Seed start with the highest persisted height so positions keep increasing across restarts.
func NewSequence(start claim.Height) *Sequence {
	s := &Sequence{}
	s.last.Store(uint64(start))
	return s
}

// CurrentHeight advances the counter and returns the new position.
func (s *Sequence) CurrentHeight(_ context.Context) (claim.Height, error) {
	h := s.last.Add(1)
	metrics.LastHeight.WithLabelValues("sequence").Set(float64(h))
	return claim.Height(h), nil
}

// Last returns the most recently handed out position without advancing.
func (s *Sequence) Last() claim.Height {
	return claim.Height(s.last.Load())
}
