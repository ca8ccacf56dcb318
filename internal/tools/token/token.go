package token

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v4"
)

var (
	ErrMalformedToken   = errors.New("malformed token")
	ErrInvalidPublicKey = errors.New("invalid public key")
)

// Claims issued by the user service on login.
type Claims struct {
	Name    string `json:"name"`
	Account string `json:"acct"`
	User    string `json:"user"`
	jwt.RegisteredClaims
}

func (c *Claims) Issued() int64 {
	if c.IssuedAt == nil {
		return 0
	}
	return c.IssuedAt.Unix()
}

func (c *Claims) Expires() int64 {
	if c.ExpiresAt == nil {
		return 0
	}
	return c.ExpiresAt.Unix()
}

// Decode extracts the claims without checking the signature. Only use it to
// surface claims of a token that was just handed out by the user service.
func Decode(raw string) (*Claims, error) {
	claims := &Claims{}

	_, _, err := jwt.NewParser().ParseUnverified(raw, claims)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedToken, err.Error())
	}

	return claims, nil
}

type Verifier struct {
	parser *jwt.Parser
	keyFn  jwt.Keyfunc
}

// NewVerifier accepts the cluster public key in PEM form. Escaped newlines, as
// they usually arrive through env files, are accepted too.
func NewVerifier(publicKeyPEM string) (*Verifier, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(publicKeyPEM), `\n`, "\n")

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(normalized))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPublicKey, err.Error())
	}

	return &Verifier{
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()})),
		keyFn: func(t *jwt.Token) (interface{}, error) {
			return key, nil
		},
	}, nil
}

// Verify reports whether raw is an RS256 token signed by the cluster key and
// not expired. An empty token is never valid.
func (v *Verifier) Verify(raw string) bool {
	if raw == "" {
		return false
	}

	parsed, err := v.parser.ParseWithClaims(raw, &Claims{}, v.keyFn)
	if err != nil {
		return false
	}

	return parsed.Valid
}
