package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorCode string

const (
	ErrorCodeValidation      ErrorCode = "VALIDATION_ERROR"
	ErrorCodeNotFound        ErrorCode = "NOT_FOUND"
	ErrorCodeRemoteFetch     ErrorCode = "REMOTE_FETCH_FAILED"
	ErrorCodeSuggestionFetch ErrorCode = "SUGGESTION_FETCH_FAILED"
	ErrorCodeInternalFailure ErrorCode = "INTERNAL_FAILURE"
)

// AppError is an error that knows how it should be rendered over HTTP.
type AppError struct {
	Status    int
	Code      ErrorCode
	Message   string
	Retryable bool
	Err       error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func Validation(msg string, err error) *AppError {
	return &AppError{Status: http.StatusBadRequest, Code: ErrorCodeValidation, Message: msg, Err: err}
}

func NotFound(msg string) *AppError {
	return &AppError{Status: http.StatusNotFound, Code: ErrorCodeNotFound, Message: msg}
}

// Send renders err as JSON. Unknown errors become a 500.
func Send(c *gin.Context, err error) {
	var appErr *AppError

	if errors.As(err, &appErr) {
		body := gin.H{
			"error": appErr.Message,
			"code":  appErr.Code,
		}
		if appErr.Retryable {
			body["retryable"] = true
		}
		c.JSON(appErr.Status, body)
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal Server Error",
		"code":    ErrorCodeInternalFailure,
		"details": err.Error(),
	})
}
