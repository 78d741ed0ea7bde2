// Package auth holds the authenticated principal attached to each request
// and the JWT signing/verification it is derived from.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"centsible/internal/config"
	"centsible/internal/models"
)

// Principal is the authenticated identity making a request, built once per
// request from a verified token payload. It is immutable for the request's
// lifetime.
type Principal struct {
	ID    string
	Email string
	Role  models.UserRole
}

// IsAdmin reports whether the principal has the ADMIN role.
func (p Principal) IsAdmin() bool {
	return p.Role == models.RoleAdmin
}

// IsSelf reports whether the principal is the user with the given ID.
func (p Principal) IsSelf(userID string) bool {
	return p.ID == userID
}

// Claims represents the claims in the JWT
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// getJWTKey returns the JWT key from configuration
func getJWTKey() []byte {
	return []byte(config.Get().JWTSecret)
}

// GenerateToken signs a JWT for the given user. It returns the token and
// its validity duration.
func GenerateToken(user *models.User) (string, time.Duration, error) {
	expiresIn := config.Get().JWTExpirationDur
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "centsible-api",
			Subject:   user.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(getJWTKey())
	if err != nil {
		return "", 0, err
	}
	return signed, expiresIn, nil
}

// VerifyToken parses and validates an access token and returns the
// principal it carries. An invalid, expired, or tampered token is an error.
func VerifyToken(tokenString string) (Principal, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return getJWTKey(), nil
	})

	if err != nil || !token.Valid {
		return Principal{}, fmt.Errorf("invalid token")
	}

	return Principal{
		ID:    claims.UserID,
		Email: claims.Email,
		Role:  models.UserRole(claims.Role),
	}, nil
}
