package auth

import (
	"crypto/rsa"
	"fmt"
	"time"

	"bloodlink/pkg/domain"
	"bloodlink/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the JWT payload issued to authenticated principals. The subject
// holds the principal id and Role identifies which surface the token grants
// access to.
type Claims struct {
	jwt.RegisteredClaims

	Role string `json:"role"`
}

// Tokens signs and verifies RS256 bearer tokens. A verify-only instance can
// be constructed with just the public key.
type Tokens struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	ttl        time.Duration
}

// TokenOptions configure key material and token lifetime. Keys are
// PEM-encoded.
type TokenOptions struct {
	PrivateKey string
	PublicKey  string
	TTL        time.Duration
}

// NewTokens parses the configured PEM keys. PrivateKey may be empty, in which
// case Issue fails but Verify works.
func NewTokens(options TokenOptions) (*Tokens, error) {
	t := &Tokens{ttl: options.TTL}

	if options.PrivateKey != "" {
		key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(options.PrivateKey))
		if err != nil {
			return nil, fmt.Errorf("could not parse RSA private key: %w", err)
		}
		t.privateKey = key
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(options.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}
	t.publicKey = key

	return t, nil
}

// Issue signs a token for the given identity.
func (t *Tokens) Issue(identity domain.Identity) (string, error) {
	if t.privateKey == nil {
		return "", fmt.Errorf("no private key configured")
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.Subject.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
		Role: string(identity.Role),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(t.privateKey)
	if err != nil {
		return "", fmt.Errorf("could not sign token: %w", err)
	}

	return signed, nil
}

// Verify parses and validates a bearer token, returning the identity it
// carries. All failures (bad signature, expiry, wrong algorithm, malformed
// subject or role) surface as an unauthorized error.
func (t *Tokens) Verify(raw string) (*domain.Identity, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (any, error) {
		return t.publicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	role, ok := domain.ParseRole(claims.Role)
	if !ok {
		return nil, serrors.With(serrors.ErrUnauthorized, "invalid token role")
	}

	return &domain.Identity{
		Subject: subject,
		Role:    role,
	}, nil
}
