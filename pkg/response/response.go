package response

import (
	"errors"
	"net/http"
	"time"

	"wallet-engine/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestIDKey is where the request-id middleware leaves the id on the gin context.
const requestIDKey = "request_id"

// SuccessResponse wraps every wallet payload (balances, transactions,
// escrows, quotes) returned by the API.
type SuccessResponse struct {
	Data      interface{} `json:"data"`
	RequestID string      `json:"request_id"`
	Timestamp string      `json:"timestamp"`
}

// ErrorResponse carries an apperror code such as PAY_001 or ESC_001 and the
// message the client may show as-is.
type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, success(c, data))
}

// Created sends a 201 response for a newly appended transaction or escrow.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, success(c, data))
}

// Error maps err onto its status and code. Errors that are not an
// *apperror.AppError become SYS_001 so internals never reach the client.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		appErr = apperror.InternalError(err)
	}
	c.JSON(appErr.HTTPStatus, ErrorResponse{
		ErrorCode: appErr.Code,
		Message:   appErr.Message,
		RequestID: requestID(c),
		Timestamp: timestamp(),
	})
}

func success(c *gin.Context, data interface{}) SuccessResponse {
	return SuccessResponse{Data: data, RequestID: requestID(c), Timestamp: timestamp()}
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// requestID returns the middleware-assigned id, or a fresh one outside the stack.
func requestID(c *gin.Context) string {
	if s := c.GetString(requestIDKey); s != "" {
		return s
	}
	return uuid.New().String()
}
