package apperrors

// Error codes, grouped by concern. The code is the machine-checkable part of
// every error response.
const (
	// Authentication and authorization
	CodeUnauthenticated ErrorCode = "UNAUTHENTICATED"
	CodeForbidden       ErrorCode = "FORBIDDEN"
	CodeInvalidToken    ErrorCode = "INVALID_TOKEN"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"

	// Resources
	CodeNotFound ErrorCode = "NOT_FOUND"

	// Business rules
	CodeConflict           ErrorCode = "CONFLICT"
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)
