package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/osse101/StarSailors_Go/internal/domain"
)

// Claims are the session token claims. The user id travels in the standard subject claim.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// GenerateToken signs an HS256 session token for userID
func GenerateToken(userID string, secret []byte, validity time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validity)),
		},
		Role: DefaultRole,
	})
	return token.SignedString(secret)
}

// ParseToken verifies tokenString and returns the session it identifies
func ParseToken(tokenString string, secret []byte) (domain.Session, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return domain.Session{}, fmt.Errorf("%w: %w", domain.ErrInvalidToken, err)
	}
	if !token.Valid {
		return domain.Session{}, domain.ErrInvalidToken
	}
	if claims.Subject == "" {
		return domain.Session{}, fmt.Errorf("%w: %w", domain.ErrInvalidToken, errors.New(ErrMsgMissingSubject))
	}
	return domain.Session{UserID: claims.Subject}, nil
}
