package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses and user notifications.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Error codes.
const (
	CodeInsufficientFunds        = "PAY_001"
	CodeInvalidAmount            = "PAY_002"
	CodeDuplicateTransaction     = "PAY_003"
	CodeNotFound                 = "PAY_004"
	CodeUnresolvedRecipient      = "XFR_001"
	CodeInvalidTransition        = "ESC_001"
	CodeExternalSettlementFailed = "SET_001"
	CodeExportFailed             = "EXP_001"
	CodeValidation               = "VAL_001"
	CodeInvalidToken             = "AUTH_003"
	CodeRateLimitExceeded        = "RATE_001"
	CodeInternal                 = "SYS_001"
)

// ---- Ledger & Swap (PAY) ----

func ErrInsufficientFunds() *AppError {
	return New(CodeInsufficientFunds, "Insufficient balance in wallet", http.StatusPaymentRequired)
}

func ErrInvalidAmount() *AppError {
	return New(CodeInvalidAmount, "Invalid amount", http.StatusBadRequest)
}

func ErrDuplicateTransaction() *AppError {
	return New(CodeDuplicateTransaction, "Duplicate transaction", http.StatusConflict)
}

func ErrNotFound(entity string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Cross-border (XFR) ----

func ErrUnresolvedRecipient(query string) *AppError {
	return New(CodeUnresolvedRecipient, fmt.Sprintf("No recipient found for %q", query), http.StatusUnprocessableEntity)
}

// ---- Escrow (ESC) ----

func ErrInvalidTransition(from, to string) *AppError {
	return New(CodeInvalidTransition, fmt.Sprintf("Escrow cannot move from %s to %s", from, to), http.StatusConflict)
}

// ---- Settlement & Export ----

// ErrExternalSettlementFailed is reported for observability only; local state stands.
func ErrExternalSettlementFailed(err error) *AppError {
	return Wrap(CodeExternalSettlementFailed, "External settlement failed", http.StatusBadGateway, err)
}

func ErrExportFailed(err error) *AppError {
	return Wrap(CodeExportFailed, "Export failed", http.StatusInternalServerError, err)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimitExceeded, "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a VAL_001 validation error.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

// Is reports whether err is an AppError carrying code.
func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// Message returns the human-readable message for err, suitable for a notification.
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Internal server error"
}

// CodeOf returns the code carried by err, or SYS_001 for unclassified errors.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}
