package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"centsible/internal/auth"
	apperrors "centsible/internal/errors"
	"centsible/internal/logger"
	"centsible/internal/middleware"
	"centsible/internal/query"
	"centsible/internal/uuid"
)

// ErrorBody is the inner object of every error response.
type ErrorBody struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Fields  []apperrors.FieldError `json:"fields,omitempty"`
}

// ErrorResponse is the envelope every error response uses.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// DeleteResponse reports the outcome of a delete operation.
type DeleteResponse struct {
	Message  string `json:"message"`
	Affected int64  `json:"affected"`
}

// getPrincipal extracts the authenticated principal from the Gin context.
// Returns ErrUnauthorized if not present.
func getPrincipal(c *gin.Context) (auth.Principal, error) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return auth.Principal{}, apperrors.ErrUnauthorized
	}
	return principal, nil
}

// pathUUID reads a UUID path parameter. A malformed value is rejected
// here so services only ever see well-formed IDs.
func pathUUID(c *gin.Context, param string) (string, error) {
	id := c.Param(param)
	if !uuid.IsValid(id) {
		return "", apperrors.WithMessage(apperrors.ErrInvalidParameter, "Invalid "+param)
	}
	return id, nil
}

// queryOptions parses the range/sort/search query parameters against the
// resource's allowed-field map.
func queryOptions(c *gin.Context, allowed map[string]string) (*query.Options, error) {
	return query.Parse(query.Raw{
		Range:  c.Query("range"),
		Sort:   c.Query("sort"),
		Search: c.Query("search"),
	}, allowed)
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, ErrorResponse{Error: ErrorBody{
			Code:    appErr.Code,
			Message: appErr.Message,
			Fields:  appErr.Fields,
		}})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, ErrorResponse{Error: ErrorBody{
		Code:    apperrors.ErrInternalServer.Code,
		Message: apperrors.ErrInternalServer.Message,
	}})
}
