package domain

import (
	"errors"
	"strconv"
	"strings"
)

// DomainError is an error with a stable code.
//
// Codes read RD-<AREA>-<NNNN>; the first three digits of NNNN are the HTTP
// status the error corresponds to (RD-AUTH-4010 is a 401).
type DomainError struct {
	Code    string
	Message string
	Details string
	Cause   error
}

func (e *DomainError) Error() string {
	var b strings.Builder
	b.WriteString("[" + e.Code + "] " + e.Message)
	if e.Details != "" {
		b.WriteString(": " + e.Details)
	}
	return b.String()
}

func (e *DomainError) Unwrap() error { return e.Cause }

// Is matches any DomainError with the same code, so sentinel comparisons
// survive WithDetails and WithCause.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == e.Code
}

// NewDomainError returns a sentinel error.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// WithDetails returns a copy carrying details.
func (e *DomainError) WithDetails(details string) *DomainError {
	c := *e
	c.Details = details
	return &c
}

// WithCause returns a copy wrapping cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	c := *e
	c.Cause = cause
	return &c
}

// IsDomainError reports whether err wraps a DomainError. A non-empty code
// must also match.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if !errors.As(err, &de) {
		return false
	}
	return code == "" || de.Code == code
}

// GetErrorCode returns the code of the DomainError in err's chain, or "".
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// StatusOf extracts the HTTP status from an error code.
func StatusOf(code string) int {
	i := strings.LastIndexByte(code, '-')
	if i < 0 || len(code)-i-1 != 4 {
		return 500
	}
	n, err := strconv.Atoi(code[i+1 : i+4])
	if err != nil || n < 100 || n > 599 {
		return 500
	}
	return n
}

// Access token errors.
var (
	// ErrInvalidToken covers missing, malformed and unknown API keys alike.
	ErrInvalidToken = NewDomainError("RD-AUTH-4010", "invalid api key")

	ErrTokenNotFound = NewDomainError("RD-TOKN-4040", "access token not found")

	// ErrTokenConflict is returned by a store when the hash is already taken.
	ErrTokenConflict = NewDomainError("RD-TOKN-4090", "access token conflict")
)

// ErrInternalServer covers every failure a client cannot fix.
var ErrInternalServer = NewDomainError("RD-SYS-5000", "internal server error")
