package dto

import "net/http"

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
	// ErrCodeValidation is the base code for request validation errors
	ErrCodeValidation = "ERR_VALIDATION"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "ERR_CONFLICT"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes.
// Domain reason codes are listed verbatim so handlers can pass them
// through without translation.
var ErrorCodeHTTPStatus = map[string]int{
	// General errors
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	// Input errors -> 400 Bad Request
	ErrCodeBadRequest:    http.StatusBadRequest,
	ErrCodeInvalidInput:  http.StatusBadRequest,
	ErrCodeInvalidJSON:   http.StatusBadRequest,
	ErrCodeValidation:    http.StatusBadRequest,
	"INVALID_INPUT":      http.StatusBadRequest,
	"INVALID_NAME":       http.StatusBadRequest,
	"INDEX_OUT_OF_RANGE": http.StatusBadRequest,

	// Resource errors
	ErrCodeNotFound:         http.StatusNotFound,
	ErrCodeConflict:         http.StatusConflict,
	"NOT_FOUND":             http.StatusNotFound,
	"INSTALLMENT_NOT_FOUND": http.StatusNotFound,

	// Plan consistency and state-machine violations -> 422 Unprocessable Entity
	"INVALID_STATE":                       http.StatusUnprocessableEntity,
	"DATE_REQUIRED":                       http.StatusUnprocessableEntity,
	"DATE_BEFORE_MINIMUM":                 http.StatusUnprocessableEntity,
	"AMOUNT_NOT_POSITIVE":                 http.StatusUnprocessableEntity,
	"AMOUNT_EXCEEDS_AVAILABLE":            http.StatusUnprocessableEntity,
	"PERCENTAGE_OUT_OF_RANGE":             http.StatusUnprocessableEntity,
	"PERCENTAGE_EXCEEDS_AVAILABLE":        http.StatusUnprocessableEntity,
	"PERCENTAGE_SUM_INVALID":              http.StatusUnprocessableEntity,
	"PRIOR_INSTALLMENT_UNPAID":            http.StatusUnprocessableEntity,
	"INSTALLMENT_ALREADY_PAID_UNEDITABLE": http.StatusUnprocessableEntity,
	"SOLE_INSTALLMENT_UNDELETABLE":        http.StatusUnprocessableEntity,
	"PAID_INSTALLMENT_UNDELETABLE":        http.StatusUnprocessableEntity,
	"NO_REDISTRIBUTION_TARGET":            http.StatusUnprocessableEntity,
	"SEQUENCE_NOT_EMPTY":                  http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
