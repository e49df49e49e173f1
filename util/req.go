package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/classboard/classboard-be/model"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HTTPError struct {
	Status  int
	Message string
	Fields  []model.FieldError
}

func (he *HTTPError) Error() string {
	return fmt.Sprintf("%v (statusCode=%v)", he.Message, he.Status)
}

var DbHTTPErr = HTTPError{
	Message: "database error",
	Status:  http.StatusInternalServerError,
}

func BuildDbHTTPErr(err error) *HTTPError {
	return &DbHTTPErr
}

func BuildJSONBindHTTPErr(err error) *HTTPError {
	return &HTTPError{
		Status:  http.StatusBadRequest,
		Message: err.Error(),
	}
}

// BuildDomainHTTPErr maps the engine's error taxonomy onto HTTP statuses.
// Anything outside the taxonomy is treated as a gateway failure.
func BuildDomainHTTPErr(err error) *HTTPError {
	var validationErr *model.ValidationError
	switch {
	case errors.Is(err, model.ErrNotFound):
		return &HTTPError{Status: http.StatusNotFound, Message: "not found"}
	case errors.Is(err, model.ErrPermissionDenied):
		return &HTTPError{Status: http.StatusForbidden, Message: "permission denied"}
	case errors.Is(err, model.ErrAuthenticationRequired):
		return &HTTPError{Status: http.StatusUnauthorized, Message: "authentication required"}
	case errors.As(err, &validationErr):
		return &HTTPError{
			Status:  http.StatusBadRequest,
			Message: validationErr.Error(),
			Fields:  validationErr.Fields,
		}
	}
	return BuildDbHTTPErr(err)
}

type HandlerOpts struct{}

// HandlerWrapper adapts a (data, *HTTPError) handler into a gin handler
// emitting the {success, data/message} envelope.
func HandlerWrapper(logger *zap.Logger, handler func(c *gin.Context) (interface{}, *HTTPError), opts *HandlerOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, httpErr := handler(c)
		if httpErr != nil {
			if httpErr.Status >= http.StatusInternalServerError {
				logger.Error("request failed",
					zap.String("path", c.FullPath()),
					zap.Int("status", httpErr.Status),
					zap.String("message", httpErr.Message))
			}
			HandleHTTPErrorRes(c, httpErr)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    data,
		})
	}
}

// HandleHTTPErrorRes handles creating the appropriate response for the HTTP
// error. Break the route after calling this function.
func HandleHTTPErrorRes(c *gin.Context, err *HTTPError) {
	body := gin.H{
		"success": false,
		"message": err.Message,
	}
	if len(err.Fields) > 0 {
		body["fields"] = err.Fields
	}
	c.JSON(err.Status, body)
}
