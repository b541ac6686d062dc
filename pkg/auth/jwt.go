package auth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/chainsafe/claim-registry/pkg/claim"
)

const jwksFetchTimeout = 10 * time.Second

// JWKSAuthenticator resolves BearerOrigins to the token subject, verifying
// RS256-family signatures against keys published at a JWKS endpoint.
type JWKSAuthenticator struct {
	jwksURL string
	issuer  string
	keys    map[string]*rsa.PublicKey
	keysMu  sync.RWMutex
	client  *http.Client
}

// JWKS represents a JSON Web Key Set
type JWKS struct {
	Keys []JWK `json:"keys"`
}

// JWK represents a JSON Web Key
type JWK struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	Alg string `json:"alg"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// NewJWKSAuthenticator creates a bearer token authenticator. An empty issuer skips the iss check.
func NewJWKSAuthenticator(jwksURL, issuer string) *JWKSAuthenticator {
	return &JWKSAuthenticator{
		jwksURL: jwksURL,
		issuer:  issuer,
		keys:    make(map[string]*rsa.PublicKey),
		client: &http.Client{
			Timeout: jwksFetchTimeout,
		},
	}
}

// Authenticate validates the bearer token and returns its sub claim.
func (a *JWKSAuthenticator) Authenticate(ctx context.Context, origin claim.Origin) (claim.Identity, error) {
	bearer, ok := origin.(BearerOrigin)
	if !ok {
		return "", fmt.Errorf("%w: expected bearer origin, got %T", claim.ErrUnauthenticated, origin)
	}
	if bearer.Token == "" {
		return "", fmt.Errorf("%w: bearer token required", claim.ErrUnauthenticated)
	}

	claims, err := a.validateToken(ctx, bearer.Token)
	if err != nil {
		return "", fmt.Errorf("%w: %w", claim.ErrUnauthenticated, err)
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", fmt.Errorf("%w: token has no subject", claim.ErrUnauthenticated)
	}
	return claim.Identity(sub), nil
}

func (a *JWKSAuthenticator) validateToken(ctx context.Context, tokenString string) (jwt.MapClaims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"RS256", "RS384", "RS512"})}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		kid, ok := token.Header["kid"].(string)
		if !ok {
			return nil, fmt.Errorf("missing kid in token header")
		}
		return a.getKey(ctx, kid)
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid claims type")
	}
	return claims, nil
}

// getKey retrieves a key by ID, refreshing from JWKS if it is unknown
func (a *JWKSAuthenticator) getKey(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	a.keysMu.RLock()
	key, exists := a.keys[kid]
	a.keysMu.RUnlock()
	if exists {
		return key, nil
	}

	if err := a.refreshKeys(ctx); err != nil {
		return nil, err
	}

	a.keysMu.RLock()
	key, exists = a.keys[kid]
	a.keysMu.RUnlock()
	if !exists {
		return nil, fmt.Errorf("key not found: %s", kid)
	}
	return key, nil
}

func (a *JWKSAuthenticator) refreshKeys(ctx context.Context) error {
	if a.jwksURL == "" {
		return fmt.Errorf("JWKS URL not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, jwksFetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.jwksURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch JWKS: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("JWKS endpoint returned status %d", resp.StatusCode)
	}

	var jwks JWKS
	if err := json.NewDecoder(resp.Body).Decode(&jwks); err != nil {
		return fmt.Errorf("failed to decode JWKS: %w", err)
	}

	a.keysMu.Lock()
	defer a.keysMu.Unlock()

	for _, key := range jwks.Keys {
		if key.Kty != "RSA" {
			continue
		}
		pubKey, err := parseRSAPublicKey(key.N, key.E)
		if err != nil {
			continue // Skip invalid keys
		}
		a.keys[key.Kid] = pubKey
	}
	return nil
}

// parseRSAPublicKey parses RSA public key components from base64url-encoded strings
func parseRSAPublicKey(nStr, eStr string) (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(nStr)
	if err != nil {
		return nil, fmt.Errorf("failed to decode modulus: %w", err)
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(eStr)
	if err != nil {
		return nil, fmt.Errorf("failed to decode exponent: %w", err)
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nBytes),
		E: int(new(big.Int).SetBytes(eBytes).Int64()),
	}, nil
}
