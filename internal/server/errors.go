package server

import (
	"errors"
	"net/http"

	attributedomain "github.com/metalprom/catalog/internal/attribute/domain"
	categorydomain "github.com/metalprom/catalog/internal/category/domain"
	orderdomain "github.com/metalprom/catalog/internal/order/domain"
	productdomain "github.com/metalprom/catalog/internal/product/domain"
	promodomain "github.com/metalprom/catalog/internal/promoslide/domain"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type errorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrInvalidRequest = errors.New("invalid_request")
	ErrNotFound       = errors.New("not_found")
	ErrConflict       = errors.New("conflict")
	ErrInternal       = errors.New("internal_error")
)

// ErrorHandlingMiddleware converts the last error recorded on the context
// into a JSON error response, unless a handler already wrote one.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorPayload) {
	switch {
	case isValidationError(err):
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: err.Error(),
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	case isConflictError(err):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: err.Error(),
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, productdomain.ErrInvalidName),
		errors.Is(err, productdomain.ErrInvalidID),
		errors.Is(err, productdomain.ErrInvalidStatus),
		errors.Is(err, productdomain.ErrInvalidStock),
		errors.Is(err, categorydomain.ErrInvalidName),
		errors.Is(err, categorydomain.ErrInvalidID),
		errors.Is(err, attributedomain.ErrInvalidName),
		errors.Is(err, attributedomain.ErrInvalidID),
		errors.Is(err, attributedomain.ErrInvalidType),
		errors.Is(err, attributedomain.ErrMissingOptions),
		errors.Is(err, promodomain.ErrInvalidTitle),
		errors.Is(err, promodomain.ErrInvalidID),
		errors.Is(err, orderdomain.ErrInvalidStatus):
		return true
	}
	return false
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, productdomain.ErrNotFound),
		errors.Is(err, categorydomain.ErrNotFound),
		errors.Is(err, attributedomain.ErrNotFound),
		errors.Is(err, promodomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	}
	return false
}

func isConflictError(err error) bool {
	switch {
	case errors.Is(err, ErrConflict),
		errors.Is(err, productdomain.ErrSlugTaken),
		errors.Is(err, categorydomain.ErrSlugTaken),
		errors.Is(err, attributedomain.ErrSlugTaken):
		return true
	}
	return false
}
