package errors

import (
	"fmt"
	"net/http"

	"licensing/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	retryable bool
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches any BaseError carrying the same error code, so errors built with
// WithDetails still compare equal to their predefined sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Retryable reports whether the caller may repeat the request unchanged
func (e *BaseError) Retryable() bool {
	return e.retryable
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
		retryable: e.retryable,
	}
}

// WithField names the offending input field.
func (e *BaseError) WithField(field string) *BaseError {
	return e.WithDetails(fmt.Sprintf("field=%s", field))
}

// WithPeriod names the fee period (contract, or YYYY-MM for rent).
func (e *BaseError) WithPeriod(period string) *BaseError {
	return e.WithDetails(fmt.Sprintf("period=%s", period))
}

func newRetryableError(httpCode int, errorCode, message string) *BaseError {
	e := NewBaseError(httpCode, errorCode, message, "")
	e.retryable = true

	return e
}

// IsRetryable reports whether err is an AppError flagged as retryable
func IsRetryable(err error) bool {
	var be *BaseError
	if errors.As(err, &be) {
		return be.retryable
	}

	return false
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"user not found",
		"",
	)

	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"email is already registered",
		"",
	)

	ErrUsernameTaken = NewBaseError(
		http.StatusConflict,
		"USERNAME_TAKEN",
		"username is already taken",
		"",
	)

	ErrUserInactive = NewBaseError(
		http.StatusForbidden,
		"USER_INACTIVE",
		"account is deactivated",
		"",
	)

	// Authentication-related errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"authentication required",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid email or password",
		"",
	)

	ErrCurrentPasswordMismatch = NewBaseError(
		http.StatusBadRequest,
		"CURRENT_PASSWORD_MISMATCH",
		"current password is incorrect",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"refresh token is invalid or expired",
		"",
	)

	ErrResetTokenInvalid = NewBaseError(
		http.StatusBadRequest,
		"RESET_TOKEN_INVALID",
		"password reset token is invalid or expired",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"password processing failed",
		"",
	)

	ErrSessionLimitExceeded = NewBaseError(
		http.StatusTooManyRequests,
		"SESSION_LIMIT_EXCEEDED",
		"maximum number of active sessions reached",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrInvalidPhoneFormat = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PHONE_FORMAT",
		"phone number must start with 0, 265 or +265",
		"field=phoneNumber",
	)

	ErrInvalidPaymentMethod = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PAYMENT_METHOD",
		"payment method must be card or mobile",
		"field=paymentMethod",
	)

	ErrRentFeeRequired = NewBaseError(
		http.StatusBadRequest,
		"RENT_FEE_REQUIRED",
		"approval requires a rent fee greater than zero",
		"field=rentFee",
	)

	ErrAttachmentRejected = NewBaseError(
		http.StatusBadRequest,
		"ATTACHMENT_REJECTED",
		"attachment rejected",
		"",
	)

	ErrInvalidStatusTransition = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STATUS_TRANSITION",
		"status cannot move backwards",
		"field=status",
	)

	// Business application errors
	ErrBusinessNotFound = NewBaseError(
		http.StatusNotFound,
		"BUSINESS_NOT_FOUND",
		"business not found",
		"",
	)

	ErrBusinessNotApproved = NewBaseError(
		http.StatusNotFound,
		"BUSINESS_NOT_APPROVED",
		"business not found or not approved",
		"",
	)

	ErrApplicationExists = NewBaseError(
		http.StatusConflict,
		"APPLICATION_EXISTS",
		"you already have a business application",
		"",
	)

	ErrApplicationLocked = NewBaseError(
		http.StatusConflict,
		"APPLICATION_LOCKED",
		"approved applications can no longer be edited",
		"",
	)

	// Location errors
	ErrLocationNotFound = NewBaseError(
		http.StatusNotFound,
		"LOCATION_NOT_FOUND",
		"location not found",
		"",
	)

	ErrLocationNameTaken = NewBaseError(
		http.StatusConflict,
		"LOCATION_NAME_TAKEN",
		"a location with this name already exists",
		"field=name",
	)

	ErrLocationInUse = NewBaseError(
		http.StatusConflict,
		"LOCATION_IN_USE",
		"cannot delete a location that is assigned",
		"",
	)

	ErrLocationUnavailable = NewBaseError(
		http.StatusConflict,
		"LOCATION_UNAVAILABLE",
		"location is not available",
		"",
	)

	ErrLocationAlreadyAssigned = NewBaseError(
		http.StatusConflict,
		"LOCATION_ALREADY_ASSIGNED",
		"business already has a location",
		"",
	)

	// Billing errors
	ErrAlreadyPaid = NewBaseError(
		http.StatusConflict,
		"ALREADY_PAID",
		"this fee period is already paid",
		"",
	)

	ErrContractRequired = NewBaseError(
		http.StatusConflict,
		"CONTRACT_REQUIRED",
		"contract must be paid before rent",
		"period=contract",
	)

	ErrPaymentRecordNotFound = NewBaseError(
		http.StatusNotFound,
		"PAYMENT_RECORD_NOT_FOUND",
		"payment record not found",
		"",
	)

	ErrContractNotFound = NewBaseError(
		http.StatusNotFound,
		"CONTRACT_NOT_FOUND",
		"no paid contract for this business",
		"",
	)

	ErrPaymentGateway = newRetryableError(
		http.StatusBadGateway,
		"PAYMENT_GATEWAY_ERROR",
		"payment provider request failed, try again",
	)

	ErrPaymentTimeout = newRetryableError(
		http.StatusGatewayTimeout,
		"PAYMENT_STATUS_UNKNOWN",
		"payment not confirmed yet, check the status again later",
	)

	// Support errors
	ErrTicketNotFound = NewBaseError(
		http.StatusNotFound,
		"TICKET_NOT_FOUND",
		"ticket not found",
		"",
	)

	ErrReportNotFound = NewBaseError(
		http.StatusNotFound,
		"REPORT_NOT_FOUND",
		"report not found",
		"",
	)

	ErrNotificationNotFound = NewBaseError(
		http.StatusNotFound,
		"NOTIFICATION_NOT_FOUND",
		"notification not found",
		"",
	)

	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"device not found",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"resource conflict",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
