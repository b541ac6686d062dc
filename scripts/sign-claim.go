//go:build ignore

// sign-claim.go - Sign a claim registry operation with an Ethereum private key
//
// Usage:
//   go run scripts/sign-claim.go -key <hex private key> -op create -fingerprint 0xabcd
//   go run scripts/sign-claim.go -key <hex private key> -op transfer -fingerprint 0xabcd -target 0x...
//
// Prints the signer address, the signed message and a curl command for the local server.

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/chainsafe/claim-registry/pkg/auth"
	"github.com/chainsafe/claim-registry/pkg/claim"
)

var (
	keyHex      = flag.String("key", "", "Hex-encoded secp256k1 private key")
	op          = flag.String("op", "create", "Operation: create, revoke or transfer")
	fingerprint = flag.String("fingerprint", "", "0x-prefixed hex fingerprint")
	target      = flag.String("target", "", "Transfer target (checksummed address)")
	serverURL   = flag.String("server", "http://localhost:8080", "Claim registry base URL")
)

func main() {
	flag.Parse()

	if *keyHex == "" || *fingerprint == "" {
		fmt.Println("Error: -key and -fingerprint are required")
		os.Exit(1)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(*keyHex, "0x"))
	if err != nil {
		fmt.Printf("Error: invalid private key: %v\n", err)
		os.Exit(1)
	}

	fp, err := claim.ParseFingerprint(*fingerprint)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	tgt := claim.Identity(*target)
	if auth.ValidateEVMAddress(*target) {
		tgt = claim.Identity(auth.NormalizeAddress(*target))
	}

	message := auth.ClaimMessage(auth.Operation(*op), fp, tgt)
	sig, err := crypto.Sign(auth.EIP191Hash(message), key)
	if err != nil {
		fmt.Printf("Error: signing failed: %v\n", err)
		os.Exit(1)
	}
	signature := "0x" + hex.EncodeToString(sig)

	fmt.Printf("Signer:    %s\n", crypto.PubkeyToAddress(key.PublicKey).Hex())
	fmt.Printf("Message:   %s\n", message)
	fmt.Printf("Signature: %s\n\n", signature)

	switch auth.Operation(*op) {
	case auth.OpCreate:
		fmt.Printf("curl -X POST %s/claims -d '{\"fingerprint\":\"%s\",\"signature\":\"%s\"}'\n", *serverURL, fp, signature)
	case auth.OpRevoke:
		fmt.Printf("curl -X DELETE %s/claims/%s -H 'X-Signature: %s'\n", *serverURL, fp, signature)
	case auth.OpTransfer:
		fmt.Printf("curl -X POST %s/claims/%s/transfer -d '{\"target\":\"%s\",\"signature\":\"%s\"}'\n",
			*serverURL, fp, tgt, signature)
	default:
		fmt.Printf("Error: unknown operation %q\n", *op)
		os.Exit(1)
	}
}
