// Package auth0 verifies identity-provider access tokens and talks to the
// Auth0 Management API. The rest of the app never sees raw token claims;
// the authentication boundary produces an Identity value.
package auth0

import (
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/billboard-app/core/internal/config"
	jwtlib "github.com/golang-jwt/jwt/v5"
)

// Identity is the verified caller identity handed to request handlers.
type Identity struct {
	Subject string
	Name    string
	Email   string
}

type tokenClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwtlib.RegisteredClaims
}

// KeySet fetches and caches the tenant's RSA signing keys.
type KeySet struct {
	url  string
	http *http.Client

	mu        sync.RWMutex
	keys      map[string]*rsa.PublicKey
	fetchedAt time.Time
}

const keySetTTL = time.Hour

func NewKeySet(jwksURL string) *KeySet {
	return &KeySet{
		url:  jwksURL,
		http: &http.Client{Timeout: 10 * time.Second},
		keys: map[string]*rsa.PublicKey{},
	}
}

// Key returns the public key for kid, refreshing the cached set when the
// kid is unknown or the cache is stale.
func (ks *KeySet) Key(kid string) (*rsa.PublicKey, error) {
	ks.mu.RLock()
	key, ok := ks.keys[kid]
	fresh := time.Since(ks.fetchedAt) < keySetTTL
	ks.mu.RUnlock()
	if ok && fresh {
		return key, nil
	}

	if err := ks.refresh(); err != nil {
		// A stale cached key beats failing the request outright.
		if ok {
			return key, nil
		}
		return nil, err
	}

	ks.mu.RLock()
	defer ks.mu.RUnlock()
	key, ok = ks.keys[kid]
	if !ok {
		return nil, fmt.Errorf("signing key %q not found in key set", kid)
	}
	return key, nil
}

func (ks *KeySet) refresh() error {
	resp, err := ks.http.Get(ks.url)
	if err != nil {
		return fmt.Errorf("fetch jwks: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("fetch jwks: HTTP %d", resp.StatusCode)
	}

	var payload struct {
		Keys []jwkKey `json:"keys"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("decode jwks: %w", err)
	}

	keys, err := ParseKeys(payload.Keys)
	if err != nil {
		return err
	}

	ks.mu.Lock()
	ks.keys = keys
	ks.fetchedAt = time.Now()
	ks.mu.Unlock()
	return nil
}

type jwkKey struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// ParseKeys converts RSA JWK entries into public keys keyed by kid.
// Non-RSA entries are skipped.
func ParseKeys(entries []jwkKey) (map[string]*rsa.PublicKey, error) {
	keys := make(map[string]*rsa.PublicKey, len(entries))
	for _, k := range entries {
		if k.Kty != "RSA" || k.Kid == "" {
			continue
		}
		nBytes, err := base64.RawURLEncoding.DecodeString(k.N)
		if err != nil {
			return nil, fmt.Errorf("jwk %s: decode modulus: %w", k.Kid, err)
		}
		eBytes, err := base64.RawURLEncoding.DecodeString(k.E)
		if err != nil {
			return nil, fmt.Errorf("jwk %s: decode exponent: %w", k.Kid, err)
		}
		keys[k.Kid] = &rsa.PublicKey{
			N: new(big.Int).SetBytes(nBytes),
			E: int(new(big.Int).SetBytes(eBytes).Int64()),
		}
	}
	if len(keys) == 0 {
		return nil, errors.New("jwks contains no usable RSA keys")
	}
	return keys, nil
}

// Verifier validates RS256 access tokens against the tenant key set.
type Verifier struct {
	keys     *KeySet
	issuer   string
	audience string
}

func NewVerifier(cfg config.Auth0Config) *Verifier {
	return &Verifier{
		keys:     NewKeySet(cfg.JWKSURL()),
		issuer:   cfg.IssuerURL(),
		audience: cfg.Audience,
	}
}

// Verify checks signature, issuer and audience and returns the caller
// identity embedded in the token.
func (v *Verifier) Verify(rawToken string) (*Identity, error) {
	claims := &tokenClaims{}
	token, err := jwtlib.ParseWithClaims(rawToken, claims, func(t *jwtlib.Token) (interface{}, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, errors.New("token has no kid header")
		}
		return v.keys.Key(kid)
	},
		jwtlib.WithValidMethods([]string{"RS256"}),
		jwtlib.WithIssuer(v.issuer),
		jwtlib.WithAudience(v.audience),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Subject == "" {
		return nil, errors.New("invalid token")
	}
	return &Identity{Subject: claims.Subject, Name: claims.Name, Email: claims.Email}, nil
}
