package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/claim-registry/pkg/app/errors"
	"github.com/chainsafe/claim-registry/pkg/auth"
	"github.com/chainsafe/claim-registry/pkg/claim"
)

// ErrFingerprintTooLong is returned when a decoded fingerprint exceeds the configured byte limit.
var ErrFingerprintTooLong = errors.New("fingerprint exceeds maximum length")

// Registry is the narrow view of the claim registry the service drives.
//
//go:generate mockery --name Registry --output mocks --outpkg mocks --filename mock_registry.go --with-expecter
type Registry interface {
	CreateClaim(ctx context.Context, origin claim.Origin, fp claim.Fingerprint) (*claim.Claim, error)
	RevokeClaim(ctx context.Context, origin claim.Origin, fp claim.Fingerprint) error
	TransferClaim(ctx context.Context, origin claim.Origin, fp claim.Fingerprint, target claim.Identity) (*claim.Claim, error)
	Lookup(ctx context.Context, fp claim.Fingerprint) (*claim.Claim, error)
}

// Service defines the interface for the claim business logic
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	CreateClaim(ctx context.Context, req *claim.CreateRequest) (*claim.ClaimResponse, error)
	RevokeClaim(ctx context.Context, req *claim.RevokeRequest) error
	TransferClaim(ctx context.Context, req *claim.TransferRequest) (*claim.ClaimResponse, error)
	GetClaim(ctx context.Context, fingerprint string) (*claim.ClaimResponse, error)
}

type claimService struct {
	registry            Registry
	validate            *validator.Validate
	maxFingerprintBytes int
	logger              *zap.Logger
}

// NewService creates a new claim service. maxFingerprintBytes of 0 leaves fingerprints unbounded.
func NewService(registry Registry, maxFingerprintBytes int, logger *zap.Logger) Service {
	return &claimService{
		registry:            registry,
		validate:            validator.New(),
		maxFingerprintBytes: maxFingerprintBytes,
		logger:              logger,
	}
}

func (s *claimService) CreateClaim(ctx context.Context, req *claim.CreateRequest) (*claim.ClaimResponse, error) {
	fp, err := s.checkRequest(req, req.Fingerprint)
	if err != nil {
		return nil, err
	}

	origin := originFor(auth.OpCreate, fp, "", req.Credentials)
	c, err := s.registry.CreateClaim(ctx, origin, fp)
	if err != nil {
		return nil, toServiceError(err)
	}
	return claim.NewClaimResponse(fp, c), nil
}

func (s *claimService) RevokeClaim(ctx context.Context, req *claim.RevokeRequest) error {
	fp, err := s.checkRequest(req, req.Fingerprint)
	if err != nil {
		return err
	}

	origin := originFor(auth.OpRevoke, fp, "", req.Credentials)
	if err := s.registry.RevokeClaim(ctx, origin, fp); err != nil {
		return toServiceError(err)
	}
	return nil
}

func (s *claimService) TransferClaim(ctx context.Context, req *claim.TransferRequest) (*claim.ClaimResponse, error) {
	fp, err := s.checkRequest(req, req.Fingerprint)
	if err != nil {
		return nil, err
	}

	target := claim.Identity(req.Target)
	if auth.ValidateEVMAddress(req.Target) {
		target = claim.Identity(auth.NormalizeAddress(req.Target))
		if target.String() != req.Target {
			s.logger.Debug("Normalized transfer target",
				zap.String("target", req.Target),
				zap.String("normalized", target.String()))
		}
	}

	origin := originFor(auth.OpTransfer, fp, target, req.Credentials)
	c, err := s.registry.TransferClaim(ctx, origin, fp, target)
	if err != nil {
		return nil, toServiceError(err)
	}
	return claim.NewClaimResponse(fp, c), nil
}

func (s *claimService) GetClaim(ctx context.Context, fingerprint string) (*claim.ClaimResponse, error) {
	fp, err := s.parseFingerprint(fingerprint)
	if err != nil {
		return nil, err
	}
	return s.lookup(ctx, fp)
}

func (s *claimService) lookup(ctx context.Context, fp claim.Fingerprint) (*claim.ClaimResponse, error) {
	c, err := s.registry.Lookup(ctx, fp)
	if err != nil {
		return nil, toServiceError(err)
	}
	return claim.NewClaimResponse(fp, c), nil
}

func (s *claimService) checkRequest(req any, fingerprint string) (claim.Fingerprint, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.BadRequestError(err, "invalid request")
	}
	return s.parseFingerprint(fingerprint)
}

func (s *claimService) parseFingerprint(fingerprint string) (claim.Fingerprint, error) {
	fp, err := claim.ParseFingerprint(fingerprint)
	if err != nil {
		return nil, apperrors.BadRequestError(err, "fingerprint must be 0x-prefixed hex")
	}
	if s.maxFingerprintBytes > 0 && len(fp) > s.maxFingerprintBytes {
		return nil, apperrors.BadRequestError(
			fmt.Errorf("%w: %d > %d bytes", ErrFingerprintTooLong, len(fp), s.maxFingerprintBytes),
			fmt.Sprintf("fingerprint exceeds %d bytes", s.maxFingerprintBytes),
		)
	}
	return fp, nil
}

// originFor builds the origin the authenticator will resolve. Signatures are
// checked against the canonical message for this exact operation.
func originFor(op auth.Operation, fp claim.Fingerprint, target claim.Identity, creds claim.Credentials) claim.Origin {
	if creds.BearerToken != "" {
		return auth.BearerOrigin{Token: creds.BearerToken}
	}
	return auth.SignedOrigin{
		Message:   auth.ClaimMessage(op, fp, target),
		Signature: creds.Signature,
	}
}

func toServiceError(err error) error {
	switch {
	case errors.Is(err, claim.ErrUnauthenticated):
		return apperrors.UnAuthorizedError(err, "unauthenticated")
	case errors.Is(err, claim.ErrAlreadyClaimed):
		return apperrors.ConflictError(err, "fingerprint already claimed")
	case errors.Is(err, claim.ErrNotFound):
		return apperrors.ResourceNotFoundError(err, "claim not found")
	case errors.Is(err, claim.ErrNotOwner):
		return apperrors.ForbiddenError(err, "caller is not the claim owner")
	default:
		return apperrors.GeneralError(err)
	}
}
