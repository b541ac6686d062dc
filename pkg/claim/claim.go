// Package claim holds the domain model of the proof-of-existence registry.
package claim

import (
	"bytes"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Fingerprint is an opaque, caller-supplied byte sequence identifying a claimed artifact.
// Equality is exact byte comparison; no hash algorithm is assumed.
type Fingerprint []byte

// ParseFingerprint decodes a 0x-prefixed hex string.
func ParseFingerprint(s string) (Fingerprint, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("invalid fingerprint %q: %w", s, err)
	}
	return Fingerprint(b), nil
}

// Key returns a value usable as a map key.
func (f Fingerprint) Key() string {
	return string(f)
}

// Equal reports whether both fingerprints hold the same bytes.
func (f Fingerprint) Equal(other Fingerprint) bool {
	return bytes.Equal(f, other)
}

// String returns the 0x-prefixed hex encoding.
func (f Fingerprint) String() string {
	return hexutil.Encode(f)
}

// Identity is an authenticated actor reference supplied by the host.
type Identity string

// IsAnonymous reports whether the identity is empty.
func (i Identity) IsAnonymous() bool {
	return i == ""
}

func (i Identity) String() string {
	return string(i)
}

// Height is the host-supplied monotonic counter marking when a state change occurred.
type Height uint64

// Claim is the record stored for a claimed fingerprint.
type Claim struct {
	Owner        Identity
	RegisteredAt Height
}

// Origin is the opaque request origin handed to the authenticator.
type Origin any

// EventKind names the state change a notification describes.
type EventKind string

const (
	EventClaimCreated     EventKind = "ClaimCreated"
	EventClaimRevoked     EventKind = "ClaimRevoked"
	EventClaimTransferred EventKind = "ClaimTransferred"
)

// Event is the notification emitted after a successful mutation.
// Target is only set for ClaimTransferred.
type Event struct {
	ID          string
	Kind        EventKind
	Who         Identity
	Fingerprint Fingerprint
	Target      Identity
	Height      Height
	EmittedAt   time.Time
}
