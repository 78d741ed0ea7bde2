package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"centsible/internal/auth"
	apperrors "centsible/internal/errors"
)

const principalKey = "principal"

// Authenticate verifies the bearer token and attaches the resulting
// principal to the context. Requests without a valid token are rejected
// with 401 before any handler runs.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithAppError(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Authorization header is required"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortWithAppError(c, apperrors.WithMessage(apperrors.ErrUnauthorized, "Invalid authorization header format"))
			return
		}

		principal, err := auth.VerifyToken(parts[1])
		if err != nil {
			abortWithAppError(c, apperrors.ErrInvalidToken)
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// RequireAdmin rejects requests whose principal does not carry the ADMIN
// role. Must run after Authenticate.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			abortWithAppError(c, apperrors.ErrUnauthorized)
			return
		}
		if !principal.IsAdmin() {
			abortWithAppError(c, apperrors.ErrAdminOnly)
			return
		}
		c.Next()
	}
}

// GetPrincipal returns the principal set by Authenticate.
func GetPrincipal(c *gin.Context) (auth.Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return auth.Principal{}, false
	}
	principal, ok := v.(auth.Principal)
	return principal, ok
}

// SetPrincipal attaches a principal to the context. Exposed for tests that
// exercise handlers without the full middleware chain.
func SetPrincipal(c *gin.Context, p auth.Principal) {
	c.Set(principalKey, p)
}

func abortWithAppError(c *gin.Context, appErr *apperrors.AppError) {
	c.AbortWithStatusJSON(appErr.StatusCode, gin.H{
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}
