package auth

import (
	"context"
	"crypto/ecdsa"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/chainsafe/claim-registry/pkg/claim"
)

func signMessage(t *testing.T, key *ecdsa.PrivateKey, message string) string {
	t.Helper()

	signature, err := crypto.Sign(EIP191Hash(message), key)
	if err != nil {
		t.Fatalf("Sign() failed: %v", err)
	}
	// wallets emit v as 27/28
	signature[64] += 27
	return "0x" + hex.EncodeToString(signature)
}

func TestEIP191Authenticator_RecoversSigner(t *testing.T) {
	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey() failed: %v", err)
	}
	want := crypto.PubkeyToAddress(key.PublicKey).Hex()

	fp := claim.Fingerprint{0xab, 0xcd}
	message := ClaimMessage(OpCreate, fp, "")

	got, err := NewEIP191Authenticator().Authenticate(context.Background(), SignedOrigin{
		Message:   message,
		Signature: signMessage(t, key, message),
	})
	if err != nil {
		t.Fatalf("Authenticate() failed: %v", err)
	}
	if got.String() != want {
		t.Fatalf("expected identity %q, got %q", want, got)
	}
}

func TestEIP191Authenticator_DifferentMessageRecoversDifferentSigner(t *testing.T) {
	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey() failed: %v", err)
	}
	signer := crypto.PubkeyToAddress(key.PublicKey).Hex()

	got, err := NewEIP191Authenticator().Authenticate(context.Background(), SignedOrigin{
		Message:   "claim-registry:revoke:0x01",
		Signature: signMessage(t, key, "claim-registry:create:0x01"),
	})
	if err == nil && got.String() == signer {
		t.Fatal("signature over another message must not authenticate the signer")
	}
}

func TestEIP191Authenticator_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		origin claim.Origin
	}{
		{name: "nil origin", origin: nil},
		{name: "bearer origin", origin: BearerOrigin{Token: "tok"}},
		{name: "missing signature", origin: SignedOrigin{Message: "m"}},
		{name: "bad hex", origin: SignedOrigin{Message: "m", Signature: "0xzz"}},
		{name: "short signature", origin: SignedOrigin{Message: "m", Signature: "0x0102"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEIP191Authenticator().Authenticate(context.Background(), tt.origin)
			if !errors.Is(err, claim.ErrUnauthenticated) {
				t.Fatalf("expected ErrUnauthenticated, got %v", err)
			}
		})
	}
}

func TestClaimMessage(t *testing.T) {
	fp := claim.Fingerprint{0x01, 0x02}

	if got := ClaimMessage(OpCreate, fp, "0xBob"); got != "claim-registry:create:0x0102" {
		t.Fatalf("unexpected create message %q", got)
	}
	if got := ClaimMessage(OpRevoke, fp, ""); got != "claim-registry:revoke:0x0102" {
		t.Fatalf("unexpected revoke message %q", got)
	}
	if got := ClaimMessage(OpTransfer, fp, "0xBob"); got != "claim-registry:transfer:0x0102:0xBob" {
		t.Fatalf("unexpected transfer message %q", got)
	}
}

func TestValidateEVMAddress(t *testing.T) {
	if !ValidateEVMAddress("0x52908400098527886E0F7030069857D2E4169EE7") {
		t.Fatal("expected valid address")
	}
	if ValidateEVMAddress("52908400098527886E0F7030069857D2E4169EE7") {
		t.Fatal("expected missing prefix to be invalid")
	}
	if ValidateEVMAddress("0x1234") {
		t.Fatal("expected short address to be invalid")
	}
}

func TestNormalizeAddress(t *testing.T) {
	got := NormalizeAddress("0x52908400098527886e0f7030069857d2e4169ee7")
	if got != "0x52908400098527886E0F7030069857D2E4169EE7" {
		t.Fatalf("unexpected checksum address %q", got)
	}
}
