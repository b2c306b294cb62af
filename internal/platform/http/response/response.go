// Package response binds request bodies and writes error responses
// according to the apperr taxonomy.
package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"bookmark_backend/internal/api"
	"bookmark_backend/internal/shared/apperr"
)

// ContextRequestID is the gin context key holding the request id.
const ContextRequestID = "requestID"

var registerOnce sync.Once

// RegisterJSONFieldNames makes validator report JSON field names
// ("categoryId") instead of Go field names ("CategoryID").
func RegisterJSONFieldNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
	})
}

// BindJSON decodes and validates the request body into dst. On failure it
// writes a 400 response and returns false.
func BindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		writeError(c, http.StatusBadRequest, bindingError(err))
		return false
	}
	return true
}

// bindingError converts binding failures into a field-level ValidationError.
func bindingError(err error) *apperr.ValidationError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fieldMessage(fe)
		}
		return &apperr.ValidationError{Fields: fields}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apperr.Invalid(typeErr.Field, "has an invalid type")
	}
	if errors.Is(err, io.EOF) {
		return apperr.Invalid("body", "is required")
	}
	return apperr.Invalid("body", "must be valid JSON")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "url":
		return "must be a valid URL"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}

// Error writes err as a JSON response. Expected taxonomy errors map to their
// status code with their message; anything else is logged and returned as
// an opaque 500.
func Error(c *gin.Context, log *zap.Logger, err error) {
	var ve *apperr.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(c, http.StatusBadRequest, ve)
	case errors.Is(err, apperr.ErrUnauthenticated):
		c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperr.ErrForbidden):
		c.AbortWithStatusJSON(http.StatusForbidden, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperr.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperr.ErrConflict),
		errors.Is(err, apperr.ErrValidation),
		errors.Is(err, apperr.ErrInvalidOperation):
		c.AbortWithStatusJSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	default:
		log.Error("unhandled error",
			zap.Error(err),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString(ContextRequestID)),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
	}
}

func writeError(c *gin.Context, status int, ve *apperr.ValidationError) {
	c.AbortWithStatusJSON(status, api.ErrorResponse{Error: apperr.ErrValidation.Error(), Fields: ve.Fields})
}
