package token_test

import (
	"testing"
	"time"

	"github.com/Agnidipto/gke-hackathon-multi-agent/internal/tools/token"
	"github.com/Agnidipto/gke-hackathon-multi-agent/internal/tools/token/tokentest"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	keys := tokentest.NewKeyPair(t)
	issued := time.Unix(1700000000, 0)

	t.Run("should decode claims without verifying", func(t *testing.T) {
		other := tokentest.NewKeyPair(t)
		raw := other.Sign(t, tokentest.Claims("Alice", "123", "alice", issued, time.Hour))

		claims, err := token.Decode(raw)

		require.NoError(t, err)
		assert.Equal(t, "Alice", claims.Name)
		assert.Equal(t, "123", claims.Account)
		assert.Equal(t, "alice", claims.User)
		assert.Equal(t, int64(1700000000), claims.Issued())
		assert.Equal(t, int64(1700003600), claims.Expires())
	})

	t.Run("should decode expired tokens", func(t *testing.T) {
		raw := keys.Sign(t, tokentest.Claims("Alice", "123", "alice", issued.Add(-48*time.Hour), time.Hour))

		_, err := token.Decode(raw)
		assert.NoError(t, err)
	})

	t.Run("should reject malformed tokens", func(t *testing.T) {
		tests := []string{"", "not-a-token", "a.b.c", "eyJhbGciOiJSUzI1NiJ9.###.sig"}

		for _, raw := range tests {
			_, err := token.Decode(raw)
			assert.ErrorIs(t, err, token.ErrMalformedToken, raw)
		}
	})

	t.Run("should leave missing time claims at zero", func(t *testing.T) {
		raw := keys.Sign(t, jwt.MapClaims{"name": "Bob", "acct": "1", "user": "bob"})

		claims, err := token.Decode(raw)

		require.NoError(t, err)
		assert.Equal(t, int64(0), claims.Issued())
		assert.Equal(t, int64(0), claims.Expires())
	})
}

func TestVerifier(t *testing.T) {
	keys := tokentest.NewKeyPair(t)
	verifier, err := token.NewVerifier(keys.PublicPEM)
	require.NoError(t, err)

	valid := keys.Sign(t, tokentest.Claims("Alice", "123", "alice", time.Now(), time.Hour))

	tests := []struct {
		name     string
		token    func() string
		expected bool
	}{
		{
			"matching signature",
			func() string { return valid },
			true,
		},
		{
			"empty token",
			func() string { return "" },
			false,
		},
		{
			"garbage",
			func() string { return "definitely.not.jwt" },
			false,
		},
		{
			"signed by another key",
			func() string {
				other := tokentest.NewKeyPair(t)
				return other.Sign(t, tokentest.Claims("Alice", "123", "alice", time.Now(), time.Hour))
			},
			false,
		},
		{
			"expired",
			func() string {
				return keys.Sign(t, tokentest.Claims("Alice", "123", "alice", time.Now().Add(-2*time.Hour), time.Hour))
			},
			false,
		},
		{
			"hmac signed",
			func() string {
				raw, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user": "alice"}).SignedString([]byte(keys.PublicPEM))
				return raw
			},
			false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, verifier.Verify(test.token()))
		})
	}

	t.Run("should accept escaped newlines in the key", func(t *testing.T) {
		escaped := ""
		for _, r := range keys.PublicPEM {
			if r == '\n' {
				escaped += `\n`
				continue
			}
			escaped += string(r)
		}

		v, err := token.NewVerifier(escaped)
		require.NoError(t, err)
		assert.True(t, v.Verify(valid))
	})

	t.Run("should reject invalid keys", func(t *testing.T) {
		_, err := token.NewVerifier("not a key")
		assert.ErrorIs(t, err, token.ErrInvalidPublicKey)
	})
}
