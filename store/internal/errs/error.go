package errs

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrUnauthenticated  = errors.New("unauthenticated")
	// ErrIdentityConflict means the token username is held by a different user id.
	ErrIdentityConflict = errors.New("identity conflict")
)

// Response details.
const (
	DetailNotFound         = "Not found."
	DetailPermissionDenied = "You do not have permission to perform this action."
	DetailUnauthenticated  = "Authentication credentials were not provided."
	DetailIdentityConflict = "Username belongs to another user."
	MsgInternal            = "A server error occurred."
)

// Field messages.
const (
	MsgRequired = "This field is required."
	MsgBlank    = "This field may not be blank."
	MsgNumber   = "A valid number is required."
)

// ValidationError carries per-field messages, rendered as {"field": ["msg"]}.
type ValidationError struct {
	Fields map[string][]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

func (e *ValidationError) Add(field, msg string) {
	e.Fields[field] = append(e.Fields[field], msg)
}

// OrNil returns nil when no field failed.
func (e *ValidationError) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(e.Fields[f], " "))
	}
	return "validation: " + strings.Join(parts, "; ")
}
