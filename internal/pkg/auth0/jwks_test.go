package auth0

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWK(t *testing.T, kid string, pub *rsa.PublicKey) jwkKey {
	t.Helper()
	return jwkKey{
		Kty: "RSA",
		Kid: kid,
		Use: "sig",
		N:   base64.RawURLEncoding.EncodeToString(pub.N.Bytes()),
		E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(pub.E)).Bytes()),
	}
}

func TestParseKeys(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	t.Run("parses RSA entries keyed by kid", func(t *testing.T) {
		keys, err := ParseKeys([]jwkKey{testJWK(t, "kid-1", &key.PublicKey)})
		require.NoError(t, err)
		require.Contains(t, keys, "kid-1")
		assert.Equal(t, 0, keys["kid-1"].N.Cmp(key.PublicKey.N))
		assert.Equal(t, key.PublicKey.E, keys["kid-1"].E)
	})

	t.Run("skips non-RSA entries", func(t *testing.T) {
		keys, err := ParseKeys([]jwkKey{
			{Kty: "EC", Kid: "ec-1"},
			testJWK(t, "kid-1", &key.PublicKey),
		})
		require.NoError(t, err)
		assert.Len(t, keys, 1)
	})

	t.Run("no usable keys is an error", func(t *testing.T) {
		_, err := ParseKeys([]jwkKey{{Kty: "EC", Kid: "ec-1"}})
		assert.Error(t, err)
	})

	t.Run("bad modulus encoding is an error", func(t *testing.T) {
		_, err := ParseKeys([]jwkKey{{Kty: "RSA", Kid: "bad", N: "!!!", E: "AQAB"}})
		assert.Error(t, err)
	})
}

func TestVerifier(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"keys": []jwkKey{testJWK(t, "kid-1", &key.PublicKey)},
		})
	}))
	defer server.Close()

	const (
		issuer   = "https://tenant.example.com/"
		audience = "https://api.example.com"
	)
	verifier := &Verifier{
		keys:     NewKeySet(server.URL),
		issuer:   issuer,
		audience: audience,
	}

	sign := func(claims jwtlib.MapClaims, kid string) string {
		token := jwtlib.NewWithClaims(jwtlib.SigningMethodRS256, claims)
		token.Header["kid"] = kid
		raw, err := token.SignedString(key)
		require.NoError(t, err)
		return raw
	}

	baseClaims := func() jwtlib.MapClaims {
		return jwtlib.MapClaims{
			"iss":   issuer,
			"aud":   audience,
			"sub":   "auth0|user-1",
			"name":  "Jordan",
			"email": "jordan@example.com",
			"exp":   time.Now().Add(time.Hour).Unix(),
		}
	}

	t.Run("valid token yields identity", func(t *testing.T) {
		identity, err := verifier.Verify(sign(baseClaims(), "kid-1"))
		require.NoError(t, err)
		assert.Equal(t, "auth0|user-1", identity.Subject)
		assert.Equal(t, "Jordan", identity.Name)
		assert.Equal(t, "jordan@example.com", identity.Email)
	})

	t.Run("unknown kid is rejected", func(t *testing.T) {
		_, err := verifier.Verify(sign(baseClaims(), "kid-unknown"))
		assert.Error(t, err)
	})

	t.Run("wrong issuer is rejected", func(t *testing.T) {
		claims := baseClaims()
		claims["iss"] = "https://evil.example.com/"
		_, err := verifier.Verify(sign(claims, "kid-1"))
		assert.Error(t, err)
	})

	t.Run("wrong audience is rejected", func(t *testing.T) {
		claims := baseClaims()
		claims["aud"] = "https://other.example.com"
		_, err := verifier.Verify(sign(claims, "kid-1"))
		assert.Error(t, err)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		claims := baseClaims()
		claims["exp"] = time.Now().Add(-time.Hour).Unix()
		_, err := verifier.Verify(sign(claims, "kid-1"))
		assert.Error(t, err)
	})

	t.Run("missing subject is rejected", func(t *testing.T) {
		claims := baseClaims()
		delete(claims, "sub")
		_, err := verifier.Verify(sign(claims, "kid-1"))
		assert.Error(t, err)
	})
}
