package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTTL is the validity window of issued tokens.
const TokenTTL = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

// Claims carried by every issued token.
type Claims struct {
	jwt.RegisteredClaims
	DentistID string `json:"dentista_id"`
	Email     string `json:"email"`
	Name      string `json:"nome"`
}

// TokenManager issues and verifies HS256 tokens signed with a shared secret.
type TokenManager struct {
	secret []byte
}

func NewTokenManager(secret string) (*TokenManager, error) {
	if secret == "" {
		return nil, errors.New("token secret must not be empty")
	}
	return &TokenManager{secret: []byte(secret)}, nil
}

// Issue signs a token for the given dentist, valid for TokenTTL.
func (tm *TokenManager) Issue(dentistID uuid.UUID, email, name string) (string, error) {
	now := time.Now()
	claims := &Claims{
		DentistID: dentistID.String(),
		Email:     email,
		Name:      name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string, returning its claims.
func (tm *TokenManager) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return tm.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if _, err := uuid.Parse(claims.DentistID); err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
