package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/quickway/travels_backoffice/internal/core/domain"
)

// SessionClaims is the payload of a session token.
type SessionClaims struct {
	Email    string `json:"email"`
	Role     string `json:"role"`
	Status   string `json:"status"`
	OfficeID string `json:"officeId,omitempty"`
	jwt.RegisteredClaims
}

// Principal returns the caller described by the claims.
func (c *SessionClaims) Principal() domain.Principal {
	return domain.Principal{
		Email:    c.Email,
		Role:     domain.Role(c.Role),
		Status:   domain.Status(c.Status),
		OfficeID: c.OfficeID,
	}
}

// GenerateJWT signs a session token for the principal. It returns the token and its expiry.
func GenerateJWT(p domain.Principal, secret string, expiryDuration time.Duration, issuer string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(expiryDuration)
	claims := SessionClaims{
		Email:    p.Email,
		Role:     string(p.Role),
		Status:   string(p.Status),
		OfficeID: p.OfficeID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   p.Email,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseAndValidateJWT parses a session token string, validates its signature and standard claims.
func ParseAndValidateJWT(tokenString string, secretKey string) (*SessionClaims, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	if claims.Email == "" {
		return nil, errors.New("token has no email claim")
	}

	return claims, nil
}
