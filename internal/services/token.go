package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Hari20032005/assignment-nudge/internal/common"
)

// sessionClaims carries the logged-in user's id alongside the standard
// registered claims.
type sessionClaims struct {
	jwt.RegisteredClaims
	UserID string
}

// generateSessionToken signs a session token for userID, valid for ttl.
func generateSessionToken(userID string, secret []byte, ttl time.Duration, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
	})
	return token.SignedString(secret)
}

// userIDFromToken validates a session token and extracts the user id.
// Expired tokens map to common.ErrSessionExpired, everything else to
// common.ErrInvalidToken.
func userIDFromToken(tokenString string, secret []byte) (string, error) {
	claims := &sessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrSessionExpired
		}
		return "", common.ErrInvalidToken
	}
	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.UserID, nil
}
