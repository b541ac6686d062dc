// Package api implements app.Runner for the claim registry server process.
package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apphttp "github.com/chainsafe/claim-registry/pkg/app/http"
	"github.com/chainsafe/claim-registry/pkg/auth"
	"github.com/chainsafe/claim-registry/pkg/claim"
	"github.com/chainsafe/claim-registry/pkg/claim/registry"
	claimservice "github.com/chainsafe/claim-registry/pkg/claim/service"
	"github.com/chainsafe/claim-registry/pkg/claimstore"
	"github.com/chainsafe/claim-registry/pkg/config"
	"github.com/chainsafe/claim-registry/pkg/eventsink"
	"github.com/chainsafe/claim-registry/pkg/height"
	"github.com/chainsafe/claim-registry/pkg/pgutil"
	"github.com/chainsafe/claim-registry/pkg/reconciler"
)

// Server holds cfg to init the claim registry server.
type Server struct {
	cfg *config.Config
}

// storage is what the server needs from a claim store beyond registry.Store.
type storage interface {
	registry.Store
	CountClaims(ctx context.Context) (int, error)
	MaxHeight(ctx context.Context) (claim.Height, error)
}

// NewServer initializes a new claim registry server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting claim registry",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.String("storage", cfg.Storage.Driver),
		zap.String("auth", cfg.Auth.Mode),
		zap.String("height", cfg.Height.Source),
	)

	store, sinks, closeStore, err := s.openStorage(ctx, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	rec := reconciler.New(store, logger.Named("reconciler"))
	if err := rec.Reconcile(ctx); err != nil {
		return err
	}
	if interval := cfg.Reconciliation.Interval; interval > 0 {
		rec.StartPeriodicReconciliation(interval)
		defer rec.Stop()
	}

	heightSource, closeHeight, err := s.openHeightSource(ctx, store, logger)
	if err != nil {
		return err
	}
	defer closeHeight()

	authenticator, err := s.newAuthenticator()
	if err != nil {
		return err
	}

	if url := cfg.Events.Redis.URL; url != "" {
		client, err := eventsink.DialRedis(ctx, url)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer func() { _ = client.Close() }()

		logger.Info("Publishing claim events to Redis", zap.String("stream", cfg.Events.Redis.Stream))
		sinks = append(sinks, eventsink.NewRedis(client, cfg.Events.Redis.Stream, cfg.Events.Redis.MaxLen))
	}
	sinks = append(sinks, eventsink.NewLog(logger.Named("events")), eventsink.Metrics{})
	reg := registry.New(store, authenticator, heightSource, sinks, registry.WithLogger(logger))

	svc := claimservice.NewLog(
		claimservice.NewService(reg, cfg.Registry.MaxFingerprintBytes, logger),
		logger,
	)

	router := NewRouter(svc, cfg, logger)
	return apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)
}

func (s *Server) openStorage(ctx context.Context, logger *zap.Logger) (storage, eventsink.Multi, func(), error) {
	switch s.cfg.Storage.Driver {
	case config.StorageMemory:
		logger.Warn("Using in-memory storage; claims are lost on restart")
		return claimstore.NewMemoryStore(), eventsink.Multi{}, func() {}, nil
	case config.StoragePostgres:
		db, err := pgutil.ConnectDB(ctx, &s.cfg.Database, logger)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("connect db: %w", err)
		}
		closeDB := func() { _ = db.Close() }
		return claimstore.NewStore(db), eventsink.Multi{claimstore.NewEventLog(db)}, closeDB, nil
	default:
		return nil, nil, nil, fmt.Errorf("unsupported storage driver %q", s.cfg.Storage.Driver)
	}
}

func (s *Server) openHeightSource(
	ctx context.Context,
	store storage,
	logger *zap.Logger,
) (registry.HeightSource, func(), error) {
	switch s.cfg.Height.Source {
	case config.HeightSequence:
		start, err := store.MaxHeight(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("read max height: %w", err)
		}
		logger.Info("Using sequence height source", zap.Uint64("start", uint64(start)))
		seq := height.NewSequence(start)
		return seq, func() {
			logger.Info("Sequence height source stopped", zap.Uint64("last", uint64(seq.Last())))
		}, nil
	case config.HeightEthereum:
		src, client, err := height.DialEthereum(ctx, s.cfg.Ethereum.RPCURL, s.cfg.Ethereum.CallTimeout, logger)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Using Ethereum height source", zap.String("rpc_url", s.cfg.Ethereum.RPCURL))
		return src, client.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported height source %q", s.cfg.Height.Source)
	}
}

func (s *Server) newAuthenticator() (registry.Authenticator, error) {
	switch s.cfg.Auth.Mode {
	case config.AuthEIP191:
		return auth.NewEIP191Authenticator(), nil
	case config.AuthJWKS:
		return auth.NewJWKSAuthenticator(s.cfg.Auth.JWKSURL, s.cfg.Auth.Issuer), nil
	default:
		return nil, fmt.Errorf("unsupported auth mode %q", s.cfg.Auth.Mode)
	}
}

// NewRouter mounts health, metrics and claim endpoints.
func NewRouter(svc claimservice.Service, cfg *config.Config, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if cfg.Server.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.Server.RequestTimeout))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "OK")
	})

	if cfg.Monitoring.Enabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	claimservice.RegisterRoutes(r, svc, logger)
	return r
}
