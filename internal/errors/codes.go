package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
	ValidationInvalidAmount ErrorCode = "VALIDATION_006"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound              ErrorCode = "ACCOUNT_001"
	AccountInvalidID             ErrorCode = "ACCOUNT_002"
	AccountOperationNotPermitted ErrorCode = "ACCOUNT_003"
	AccountPaymentExceedsBalance ErrorCode = "ACCOUNT_004"
	AccountPositionConflict      ErrorCode = "ACCOUNT_005"
)

// Bank-link error codes (BANKLINK_*)
const (
	BankLinkNotLinked      ErrorCode = "BANKLINK_001"
	BankLinkNoMatch        ErrorCode = "BANKLINK_002"
	BankLinkUpstreamError  ErrorCode = "BANKLINK_003"
	BankLinkTokenExchange  ErrorCode = "BANKLINK_004"
	BankLinkRemoteNotFound ErrorCode = "BANKLINK_005"
)

// User error codes (USER_*)
const (
	UserMissingIdentity ErrorCode = "USER_001"
	UserInvalidIdentity ErrorCode = "USER_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",
	ValidationInvalidAmount: "Invalid monetary amount",

	// Account errors
	AccountNotFound:              "Account not found",
	AccountInvalidID:             "Invalid account ID format",
	AccountOperationNotPermitted: "Account operation not permitted",
	AccountPaymentExceedsBalance: "Payment exceeds the amount owed",
	AccountPositionConflict:      "Account position list does not match stored accounts",

	// Bank-link errors
	BankLinkNotLinked:       "Account is not linked to a bank feed",
	BankLinkNoMatch:         "No matching credit account found at the institution",
	BankLinkUpstreamError:   "Bank feed provider returned an error",
	BankLinkTokenExchange:   "Failed to exchange the public token",
	BankLinkRemoteNotFound:  "Linked account no longer exists at the institution",

	// User errors
	UserMissingIdentity: "User identity header is required",
	UserInvalidIdentity: "User identity must be a valid UUID",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemUnexpectedError:    "An unexpected error occurred",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
