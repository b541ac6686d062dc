package claim

// Credentials carry the proof of identity a request presented.
// A bearer token takes precedence over a signature.
type Credentials struct {
	Signature   string `json:"signature,omitempty"`
	BearerToken string `json:"-"`
}

// CreateRequest asks to claim a fingerprint for the caller.
type CreateRequest struct {
	Fingerprint string `json:"fingerprint" validate:"required"`
	Credentials
}

// RevokeRequest asks to drop the caller's claim on a fingerprint.
type RevokeRequest struct {
	Fingerprint string `json:"-" validate:"required"`
	Credentials
}

// TransferRequest asks to hand the caller's claim on a fingerprint to Target.
type TransferRequest struct {
	Fingerprint string `json:"-" validate:"required"`
	Target      string `json:"target" validate:"required"`
	Credentials
}

// ClaimResponse describes the claim currently held for a fingerprint.
type ClaimResponse struct {
	Fingerprint  string `json:"fingerprint"`
	Owner        string `json:"owner"`
	RegisteredAt uint64 `json:"registered_at"`
}

// NewClaimResponse renders c for the API.
func NewClaimResponse(fp Fingerprint, c *Claim) *ClaimResponse {
	return &ClaimResponse{
		Fingerprint:  fp.String(),
		Owner:        c.Owner.String(),
		RegisteredAt: uint64(c.RegisteredAt),
	}
}
