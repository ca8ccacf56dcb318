// Package tokentest signs user service style tokens for tests.
package tokentest

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type KeyPair struct {
	Private   *rsa.PrivateKey
	PublicPEM string
}

func NewKeyPair(t testing.TB) KeyPair {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generating rsa key: %v", err)
	}

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		t.Fatalf("marshalling public key: %v", err)
	}

	publicPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

	return KeyPair{
		Private:   key,
		PublicPEM: string(publicPEM),
	}
}

type UserClaims struct {
	Name    string `json:"name"`
	Account string `json:"acct"`
	User    string `json:"user"`
	jwt.RegisteredClaims
}

// Claims builds claims for a session issued at issued and valid for ttl.
func Claims(name, account, user string, issued time.Time, ttl time.Duration) UserClaims {
	return UserClaims{
		Name:    name,
		Account: account,
		User:    user,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(ttl)),
		},
	}
}

func (k KeyPair) Sign(t testing.TB, claims jwt.Claims) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(k.Private)
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	return signed
}
