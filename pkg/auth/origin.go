package auth

import (
	"fmt"

	"github.com/chainsafe/claim-registry/pkg/claim"
)

const messageDomain = "claim-registry"

// Operation names the registry call a signature authorizes.
type Operation string

const (
	OpCreate   Operation = "create"
	OpRevoke   Operation = "revoke"
	OpTransfer Operation = "transfer"
)

// SignedOrigin is a request origin proven by an EIP-191 signature over Message.
type SignedOrigin struct {
	Message   string
	Signature string
}

// BearerOrigin is a request origin proven by a bearer token.
type BearerOrigin struct {
	Token string
}

// ClaimMessage builds the canonical message a caller signs to authorize one operation
// on one fingerprint. target is only part of the message for transfers.
func ClaimMessage(op Operation, fp claim.Fingerprint, target claim.Identity) string {
	if op == OpTransfer {
		return fmt.Sprintf("%s:%s:%s:%s", messageDomain, op, fp, target)
	}
	return fmt.Sprintf("%s:%s:%s", messageDomain, op, fp)
}
