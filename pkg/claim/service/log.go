package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/claim-registry/pkg/claim"
)

const serviceName = "ClaimService"

const signatureDisplaySize = 16

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the claim Service.
// It logs method entry/exit, duration, errors, and redacted credentials.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) CreateClaim(ctx context.Context, req *claim.CreateRequest) (resp *claim.ClaimResponse, err error) {
	start := time.Now()
	ls.logger.Info("CreateClaim started",
		zap.String("service", serviceName),
		zap.String("method", "CreateClaim"),
		zap.String("fingerprint", req.Fingerprint),
		zap.String("credentials", redactCredentials(req.Credentials)),
	)

	defer func() {
		ls.finish("CreateClaim", req.Fingerprint, start, resp, err)
	}()

	return ls.svc.CreateClaim(ctx, req)
}

func (ls *logService) RevokeClaim(ctx context.Context, req *claim.RevokeRequest) (err error) {
	start := time.Now()
	ls.logger.Info("RevokeClaim started",
		zap.String("service", serviceName),
		zap.String("method", "RevokeClaim"),
		zap.String("fingerprint", req.Fingerprint),
		zap.String("credentials", redactCredentials(req.Credentials)),
	)

	defer func() {
		ls.finish("RevokeClaim", req.Fingerprint, start, nil, err)
	}()

	return ls.svc.RevokeClaim(ctx, req)
}

func (ls *logService) TransferClaim(
	ctx context.Context,
	req *claim.TransferRequest,
) (resp *claim.ClaimResponse, err error) {
	start := time.Now()
	ls.logger.Info("TransferClaim started",
		zap.String("service", serviceName),
		zap.String("method", "TransferClaim"),
		zap.String("fingerprint", req.Fingerprint),
		zap.String("target", req.Target),
		zap.String("credentials", redactCredentials(req.Credentials)),
	)

	defer func() {
		ls.finish("TransferClaim", req.Fingerprint, start, resp, err)
	}()

	return ls.svc.TransferClaim(ctx, req)
}

// GetClaim is a read; only failures are logged.
func (ls *logService) GetClaim(ctx context.Context, fingerprint string) (*claim.ClaimResponse, error) {
	resp, err := ls.svc.GetClaim(ctx, fingerprint)
	if err != nil {
		ls.logger.Debug("GetClaim failed",
			zap.String("service", serviceName),
			zap.String("method", "GetClaim"),
			zap.String("fingerprint", fingerprint),
			zap.Error(err),
		)
	}
	return resp, err
}

func (ls *logService) finish(method, fingerprint string, start time.Time, resp *claim.ClaimResponse, err error) {
	duration := time.Since(start)

	if err != nil {
		ls.logger.Error(method+" failed",
			zap.String("service", serviceName),
			zap.String("method", method),
			zap.String("fingerprint", fingerprint),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return
	}

	fields := []zap.Field{
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.String("fingerprint", fingerprint),
		zap.Duration("duration", duration),
	}
	if resp != nil {
		fields = append(fields,
			zap.String("owner", resp.Owner),
			zap.Uint64("registered_at", resp.RegisteredAt),
		)
	}
	ls.logger.Info(method+" completed", fields...)
}

// redactCredentials shows which credential was presented without logging it in full
func redactCredentials(c claim.Credentials) string {
	switch {
	case c.BearerToken != "":
		return fmt.Sprintf("bearer <%d bytes>", len(c.BearerToken))
	case c.Signature == "":
		return "<empty>"
	case len(c.Signature) > signatureDisplaySize:
		sigLen := len(c.Signature)
		return fmt.Sprintf("%s...%s (%d bytes)", c.Signature[:8], c.Signature[sigLen-4:], sigLen)
	default:
		return fmt.Sprintf("<%d bytes>", len(c.Signature))
	}
}
