package response

import (
	stderrors "errors"
	"net/http"

	"auth-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 envelope with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: ErrorCodeSuccess,
		Message:   MessageSuccess,
		Data:      data,
	})
}

// Created writes a 201 envelope with data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Resp{
		ErrorCode: ErrorCodeSuccess,
		Message:   MessageCreated,
		Data:      data,
	})
}

// Unauthorized writes a 401 envelope.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   MessageUnauthorized,
	})
}

// Error writes err as an envelope. HTTPError values keep their status and message,
// validation failures become 400 with per-field details, anything else is a 500.
func Error(c *gin.Context, err error) {
	var httpErr *errors.HTTPError
	if stderrors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.StatusCode,
			Message:   httpErr.Message,
		})
		return
	}

	if fields := errors.NewValidationErrors(err); fields != nil {
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: http.StatusBadRequest,
			Message:   MessageBadRequest,
			Errors:    fields,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: ErrorCodeInternalError,
		Message:   MessageInternalError,
	})
}

// PanicError writes the generic 500 envelope for a recovered panic.
func PanicError(c *gin.Context, _ any) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: ErrorCodeInternalError,
		Message:   MessageInternalError,
	})
}
