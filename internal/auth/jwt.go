package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MZidanFI/Bioskop-Project/internal/identity"
)

// TokenManager issues and parses the HS256 tokens that carry the caller
// identity between requests.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

type claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Issue signs a token for the given identity. The role travels as a
// claim so the admin gate needs no extra lookup.
func (m *TokenManager) Issue(id identity.Identity) (string, error) {
	now := time.Now().UTC()
	c := claims{
		Username: id.Username,
		Role:     id.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", id.UserID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(m.secret)
}

// Parse validates a token string and rebuilds the identity from its claims.
func (m *TokenManager) Parse(tokenString string) (identity.Identity, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return identity.Identity{}, err
	}
	if !token.Valid {
		return identity.Identity{}, errors.New("invalid token")
	}

	var userID int64
	if _, err := fmt.Sscanf(c.Subject, "%d", &userID); err != nil {
		return identity.Identity{}, fmt.Errorf("invalid subject claim: %w", err)
	}

	return identity.Identity{
		UserID:   userID,
		Username: c.Username,
		Role:     c.Role,
	}, nil
}
