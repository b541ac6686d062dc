package auth

import (
	"context"
	"fmt"

	"github.com/chainsafe/claim-registry/pkg/claim"
)

// EIP191Authenticator resolves SignedOrigins to the checksummed address that signed them.
type EIP191Authenticator struct{}

// NewEIP191Authenticator creates an EIP-191 authenticator.
func NewEIP191Authenticator() *EIP191Authenticator {
	return &EIP191Authenticator{}
}

// Authenticate recovers the signer of origin.
func (EIP191Authenticator) Authenticate(_ context.Context, origin claim.Origin) (claim.Identity, error) {
	signed, ok := origin.(SignedOrigin)
	if !ok {
		return "", fmt.Errorf("%w: expected signed origin, got %T", claim.ErrUnauthenticated, origin)
	}
	if signed.Message == "" || signed.Signature == "" {
		return "", fmt.Errorf("%w: signature and message required", claim.ErrUnauthenticated)
	}

	addr, err := VerifyEIP191Signature(signed.Message, signed.Signature)
	if err != nil {
		return "", fmt.Errorf("%w: %w", claim.ErrUnauthenticated, err)
	}
	return claim.Identity(addr.Hex()), nil
}
