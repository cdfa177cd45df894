// Package identity issues and reads the signed tokens carrying a user identity,
// and keeps the identity the client is currently signed in with.
package identity

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/blizbi/blizbi/pkg/domain"
)

// ErrInvalidToken is returned for tokens failing signature, expiry or claims checks
var ErrInvalidToken = errors.New("invalid token")

// Claims are the token claims, the subject is the user id
type Claims struct {
	jwt.RegisteredClaims
	Name  string `json:"name,omitempty"`
	Admin bool   `json:"admin,omitempty"`
}

// Tokens issues and verifies HS256 identity tokens
type Tokens struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewTokens makes a token service. Empty secret is rejected.
func NewTokens(secret, issuer string, ttl time.Duration) (*Tokens, error) {
	if secret == "" {
		return nil, errors.New("empty token secret")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Tokens{secret: []byte(secret), issuer: issuer, ttl: ttl, now: time.Now}, nil
}

// Issue makes a signed token for the user
func (t *Tokens) Issue(user domain.User) (string, error) {
	if user.ID == "" {
		return "", errors.New("empty user id")
	}
	now := t.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    t.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
		Name:  user.Name,
		Admin: user.Admin,
	})
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the token and returns the user it was issued for.
// Accepts both "Bearer <token>" and bare token.
func (t *Tokens) Verify(token string) (domain.User, error) {
	token = stripBearer(token)
	if token == "" {
		return domain.User{}, fmt.Errorf("missing token: %w", ErrInvalidToken)
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(t.now)}
	if t.issuer != "" {
		opts = append(opts, jwt.WithIssuer(t.issuer))
	}
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) { return t.secret, nil }, opts...)
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return domain.User{}, ErrInvalidToken
	}
	return claims.user(), nil
}

// ReadUnverified extracts the user from a token without checking the signature.
// The client uses it to learn who it is signed in as, the server still verifies every request.
func ReadUnverified(token string) (domain.User, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(stripBearer(token), claims); err != nil {
		return domain.User{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return domain.User{}, fmt.Errorf("%w: no subject", ErrInvalidToken)
	}
	return claims.user(), nil
}

func (c *Claims) user() domain.User {
	return domain.User{ID: c.Subject, Name: c.Name, Admin: c.Admin}
}

func stripBearer(token string) string {
	token = strings.TrimSpace(token)
	if len(token) > 7 && strings.EqualFold(token[:7], "bearer ") {
		token = strings.TrimSpace(token[7:])
	}
	return token
}
