package height

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/chainsafe/claim-registry/internal/metrics"
	"github.com/chainsafe/claim-registry/pkg/claim"
)

// BlockNumberReader is the subset of ethclient.Client the chain source needs.
type BlockNumberReader interface {
	BlockNumber(ctx context.Context) (uint64, error)
}

// EthereumSource reports the latest block number of an Ethereum chain.
// Readings never go backwards: after a reorg the previous maximum is returned
// until the chain catches up again.
type EthereumSource struct {
	client  BlockNumberReader
	timeout time.Duration
	logger  *zap.Logger

	mu   sync.Mutex
	last uint64
}

// NewEthereumSource wraps a block number reader.
func NewEthereumSource(client BlockNumberReader, timeout time.Duration, logger *zap.Logger) *EthereumSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EthereumSource{
		client:  client,
		timeout: timeout,
		logger:  logger,
	}
}

// DialEthereum connects to rpcURL and returns a source backed by it, plus the client to close.
func DialEthereum(ctx context.Context, rpcURL string, timeout time.Duration, logger *zap.Logger) (*EthereumSource, *ethclient.Client, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to Ethereum RPC: %w", err)
	}
	return NewEthereumSource(client, timeout, logger), client, nil
}

// CurrentHeight returns max(latest block, previous reading).
func (s *EthereumSource) CurrentHeight(ctx context.Context) (claim.Height, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	n, err := s.client.BlockNumber(ctx)
	if err != nil {
		metrics.ErrorsTotal.WithLabelValues("height", "ethereum_rpc").Inc()
		return 0, fmt.Errorf("failed to get latest block number: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if n < s.last {
		s.logger.Warn("Chain head moved backwards, keeping previous height",
			zap.Uint64("block", n),
			zap.Uint64("last", s.last),
		)
		n = s.last
	}
	s.last = n
	metrics.LastHeight.WithLabelValues("ethereum").Set(float64(n))

	return claim.Height(n), nil
}
