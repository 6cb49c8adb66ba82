package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error with a stable code. Ledger and wager
// conditions that are normal control flow (insufficient funds, already
// terminal, ambiguous match) carry their own codes so callers branch on
// Code rather than on message text.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // wrapped internal error, not exposed to clients
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

// HasCode reports whether err is an AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// ---- Ledger (LED) ----

const (
	CodeInsufficientFunds = "LED_001"
	CodeInvalidAmount     = "LED_002"
	CodeUserNotFound      = "LED_003"
	CodeInvalidRate       = "LED_004"
)

func ErrInsufficientFunds(handle string) *AppError {
	return New(CodeInsufficientFunds, fmt.Sprintf("Insufficient balance for %s", handle), http.StatusPaymentRequired)
}

func ErrInvalidAmount() *AppError {
	return New(CodeInvalidAmount, "Invalid amount", http.StatusBadRequest)
}

func ErrUserNotFound(handle string) *AppError {
	return New(CodeUserNotFound, fmt.Sprintf("No account for %s", handle), http.StatusNotFound)
}

func ErrInvalidRate() *AppError {
	return New(CodeInvalidRate, "Commission rate out of range", http.StatusBadRequest)
}

// ---- Wager lifecycle (WGR) ----

const (
	CodeDuplicateSource = "WGR_001"
	CodeWagerNotFound   = "WGR_002"
	CodeAmbiguousMatch  = "WGR_003"
	CodeAlreadyTerminal = "WGR_004"
	CodeStakeLockFailed = "WGR_005"
)

func ErrDuplicateSource() *AppError {
	return New(CodeDuplicateSource, "A wager already references this message", http.StatusConflict)
}

func ErrWagerNotFound() *AppError {
	return New(CodeWagerNotFound, "Wager not found", http.StatusNotFound)
}

func ErrAmbiguousMatch() *AppError {
	return New(CodeAmbiguousMatch, "Marked handles match more than one active wager", http.StatusConflict)
}

func ErrAlreadyTerminal() *AppError {
	return New(CodeAlreadyTerminal, "Wager has already settled", http.StatusConflict)
}

func ErrStakeLockFailed(err error) *AppError {
	return Wrap(CodeStakeLockFailed, "Could not lock all participant stakes", http.StatusUnprocessableEntity, err)
}

// ---- Authentication (AUTH) ----

const (
	CodeInvalidCredentials = "AUTH_001"
	CodeInvalidToken       = "AUTH_002"
)

func ErrInvalidCredentials() *AppError {
	return New(CodeInvalidCredentials, "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
}

// ---- System & Infrastructure (SYS) ----

const (
	CodeInternal         = "SYS_001"
	CodeLedgerCorruption = "SYS_002"
)

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}

// ErrLedgerCorruption signals a detected balance-invariant violation.
// Processing for the affected entity must halt; this is never retried.
func ErrLedgerCorruption(err error) *AppError {
	return Wrap(CodeLedgerCorruption, "Ledger state corruption detected", http.StatusInternalServerError, err)
}

// Validation returns a LED_002-style validation error with a custom message.
func Validation(message string) *AppError {
	return New(CodeInvalidAmount, message, http.StatusBadRequest)
}
