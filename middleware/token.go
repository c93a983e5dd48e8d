package middleware

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenLifetime is how long an issued token stays valid. Tokens are
// stateless: there is no revocation list, so a token outlives any later
// credential change for its full lifetime.
const TokenLifetime = 30 * 24 * time.Hour

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// TokenService issues and verifies HS256-signed identity tokens. The
// signing secret is fixed at construction; its compromise invalidates all
// outstanding tokens.
type TokenService struct {
	secret   []byte
	lifetime time.Duration
}

func NewTokenService(secret string, lifetime time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), lifetime: lifetime}
}

// Issue creates a signed token carrying the user id as its subject and an
// absolute expiry.
func (s *TokenService) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify returns the subject user id, ErrTokenExpired when the token is
// past its expiry, or ErrTokenInvalid for any signature or structural
// problem. The two failures stay distinguishable so callers can report
// precise 401s.
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	if !token.Valid || claims.Subject == "" {
		return "", ErrTokenInvalid
	}
	return claims.Subject, nil
}
