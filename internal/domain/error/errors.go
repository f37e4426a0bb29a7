package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidCredentials  = 4010
	CodeInvalidToken        = 4011
	CodeDuplicateUser       = 4090
	CodeInsufficientBalance = 4001
	CodeInvalidAmount       = 4002
	CodeInvalidRequest      = 4003
	CodeUserNotFound        = 4040
	CodeModelNotFound       = 4041

	// 5xxx - Server errors
	CodeInferenceFailure = 5001
	CodeInternalServer   = 5000
)

// Base error types
var (
	// ErrInvalidCredentials is returned when username/password verification fails
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// ErrInvalidToken is returned when a bearer token is missing, malformed or expired
	ErrInvalidToken = errors.New("could not validate credentials")

	// ErrDuplicateUser is returned when the username or email is already registered
	ErrDuplicateUser = errors.New("user already exists")

	// ErrDuplicateModel is returned when a catalog entry with the same name exists
	ErrDuplicateModel = errors.New("model already exists")

	// ErrInsufficientBalance is returned when a user cannot afford a debit
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidAmount is returned when a monetary amount has an invalid format
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when a monetary amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrModelNotFound is returned when the requested prediction model doesn't exist
	ErrModelNotFound = errors.New("model not found")

	// ErrInferenceFailure is returned when a classifier call fails or times out
	ErrInferenceFailure = errors.New("inference failed")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrInvalidToken):
		return CodeInvalidToken
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrInvalidUserID):
		return CodeInvalidRequest
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrModelNotFound):
		return CodeModelNotFound
	case errors.Is(err, ErrInferenceFailure):
		return CodeInferenceFailure
	default:
		return CodeInternalServer
	}
}

// InsufficientBalanceError provides detailed error information for insufficient balance
type InsufficientBalanceError struct {
	UserID      uint64
	Required    string
	CurrBalance string
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient funds: you need at least %s, available %s", e.Required, e.CurrBalance)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_balance",
		"user_id":         e.UserID,
		"required":        e.Required,
		"current_balance": e.CurrBalance,
		"error_code":      CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(userID uint64, required, currentBalance string) error {
	return &InsufficientBalanceError{
		UserID:      userID,
		Required:    required,
		CurrBalance: currentBalance,
	}
}

// InferenceError carries the failing model alongside the underlying cause.
// The cause is for logs only; clients get a sanitized message.
type InferenceError struct {
	ModelName string
	Err       error
}

// Error implements the error interface
func (e *InferenceError) Error() string {
	return fmt.Sprintf("inference failed for model %s: %v", e.ModelName, e.Err)
}

// Is checks if the target error is an ErrInferenceFailure
func (e *InferenceError) Is(target error) bool {
	return target == ErrInferenceFailure
}

// Unwrap returns the underlying error
func (e *InferenceError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *InferenceError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "inference_failure",
		"model_name": e.ModelName,
		"error":      e.Err.Error(),
		"error_code": CodeInferenceFailure,
	}
}

// NewInferenceError creates a detailed inference error
func NewInferenceError(modelName string, err error) error {
	return &InferenceError{ModelName: modelName, Err: err}
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsUnauthorizedError checks if the error should surface as HTTP 401
func IsUnauthorizedError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrInvalidToken)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrModelNotFound)
}
