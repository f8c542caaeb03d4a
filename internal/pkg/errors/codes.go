package errors

import "net/http"

// Error code constants. Errors carry code + params only, no hardcoded
// user-facing copy; the dashboard and mobile app handle translation.
// Backend logs always in English.

// Notification error codes.
const (
	CodeNotificationNotFound = "NOTIFICATION_NOT_FOUND"
	CodeNotificationCreate   = "NOTIFICATION_CREATE_FAILED"
	CodeQueueEntryNotFound   = "QUEUE_ENTRY_NOT_FOUND"
)

// Delivery error codes.
const (
	CodePushFailed       = "PUSH_FAILED"
	CodePushTimeout      = "PUSH_TIMEOUT"
	CodeRecipientOffline = "RECIPIENT_OFFLINE"
)

// User error codes.
const (
	CodeUserNotFound = "USER_NOT_FOUND"
	CodeUserInactive = "USER_INACTIVE"
)

// Auth error codes.
const (
	CodeAuthFailed   = "AUTH_FAILED"
	CodeTokenExpired = "TOKEN_EXPIRED"
	CodeTokenInvalid = "TOKEN_INVALID"
)

// Validation error codes.
const (
	CodeInvalidRequestField = "INVALID_REQUEST_FIELD"
	CodeMissingRequired     = "MISSING_REQUIRED_FIELD"
)

// Generic error codes.
const (
	CodeInternal     = "INTERNAL_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
)

// statusByCode maps well-known codes to their HTTP status.
var statusByCode = map[string]int{
	CodeNotificationNotFound: http.StatusNotFound,
	CodeQueueEntryNotFound:   http.StatusNotFound,
	CodeUserNotFound:         http.StatusNotFound,
	CodeUserInactive:         http.StatusForbidden,
	CodeAuthFailed:           http.StatusUnauthorized,
	CodeTokenExpired:         http.StatusUnauthorized,
	CodeTokenInvalid:         http.StatusUnauthorized,
	CodeUnauthorized:         http.StatusUnauthorized,
	CodeForbidden:            http.StatusForbidden,
	CodeInvalidRequestField:  http.StatusBadRequest,
	CodeMissingRequired:      http.StatusBadRequest,
}

// StatusFor returns the HTTP status for a code, defaulting to 500.
func StatusFor(code string) int {
	if s, ok := statusByCode[code]; ok {
		return s
	}
	return http.StatusInternalServerError
}
