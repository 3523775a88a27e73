package studio

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func (s service) generateJWT(sessionId string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"session_id": sessionId,
		"exp":        expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secret)
}

func (s service) parseJWT(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}

	sessionId, ok := claims["session_id"].(string)
	if !ok || sessionId == "" {
		return "", ErrInvalidToken
	}

	return sessionId, nil
}
