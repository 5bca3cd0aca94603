// Package token issues and verifies the HS256 bearer tokens the
// service hands out on registration and login.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/userhub/account-service/internal/core/domain"
)

// DefaultTTL is the token lifetime applied when none is configured.
const DefaultTTL = 2 * time.Hour

// ErrInvalidToken covers every verification failure: bad signature,
// unexpected algorithm, malformed token, or expiry. Callers must not
// learn which.
var ErrInvalidToken = errors.New("invalid or expired token")

// Issuer signs tokens with a process-wide secret fixed at construction.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed token embedding the account identity, expiring
// ttl from now.
func (i *Issuer) Issue(accountID, email, username string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  accountID,
		"email":    email,
		"username": username,
		"exp":      time.Now().Add(i.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// Verify parses and validates a token and returns the embedded claims.
func (i *Issuer) Verify(tokenString string) (*domain.Claims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	out := &domain.Claims{}
	out.AccountID, _ = claims["user_id"].(string)
	out.Email, _ = claims["email"].(string)
	out.Username, _ = claims["username"].(string)
	return out, nil
}
