package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
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

// ---- Wallet Business Logic (WAL) ----

func ErrInvalidAmount() *AppError {
	return New("WAL_001", "Amount must be greater than 0", http.StatusBadRequest)
}

func ErrInvalidAddress() *AppError {
	return New("WAL_002", "Destination address is invalid", http.StatusBadRequest)
}

func ErrAssetNotFound(id string) *AppError {
	return New("WAL_003", fmt.Sprintf("Asset %q not found", id), http.StatusNotFound)
}

func ErrInsufficientBalance(symbol string) *AppError {
	return New("WAL_004", fmt.Sprintf("Insufficient %s balance", symbol), http.StatusPaymentRequired)
}

func ErrInvalidConversion() *AppError {
	return New("WAL_005", "Source and destination assets must differ", http.StatusBadRequest)
}

// ---- Storage (STORE) ----

// ErrPersistenceUnavailable reports a failed write-through save. The
// in-memory ledger state has already been committed and remains usable.
func ErrPersistenceUnavailable(err error) *AppError {
	return Wrap("STORE_001", "Wallet storage unavailable", http.StatusServiceUnavailable, err)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a WAL_001-style validation error with a custom message.
func Validation(message string) *AppError {
	return New("WAL_001", message, http.StatusBadRequest)
}
