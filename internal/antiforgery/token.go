// Package antiforgery issues and checks per-session request verification
// tokens for state-changing requests.
package antiforgery

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid anti-forgery token")

// Protector signs tokens bound to a session id.
type Protector struct {
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

func NewProtector(secret []byte, ttl time.Duration, secureCookies bool) *Protector {
	return &Protector{
		secret: secret,
		ttl:    ttl,
		secure: secureCookies,
		now:    time.Now,
	}
}

func (p *Protector) GenerateToken(sessionID string) (string, error) {
	now := p.now()
	claims := jwt.RegisteredClaims{
		Subject:   sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

// ValidateToken accepts tokenStr only if it is an unexpired HS256 token signed
// with our secret for sessionID.
func (p *Protector) ValidateToken(tokenStr, sessionID string) error {
	if tokenStr == "" || sessionID == "" {
		return ErrInvalidToken
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		return p.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.Subject != sessionID {
		return fmt.Errorf("%w: session mismatch", ErrInvalidToken)
	}
	return nil
}
