// file: internals/helpers/apperror/apperror.go
package apperror

import (
	"errors"
	"fmt"
)

// Kind tags an error with the way callers must treat it.
type Kind int

const (
	KindUnexpected Kind = iota
	KindValidation
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "unexpected"
	}
}

// Stable codes surfaced to clients in error_code.
const (
	CodeMissingFields    = "MISSING_FIELDS"
	CodeMalformed        = "MALFORMED_INPUT"
	CodePastDate         = "PAST_DATE"
	CodeTimeOrder        = "TIME_ORDER"
	CodeOutsideRoomHours = "OUTSIDE_ROOM_HOURS"
	CodeNotPending       = "NOT_PENDING"
	CodeDuplicatePending = "DUPLICATE_PENDING_REQUEST"
	CodeUserNotFound     = "USER_NOT_FOUND"
	CodeRoomNotFound     = "ROOM_NOT_FOUND"
	CodeRequestNotFound  = "REQUEST_NOT_FOUND"
	CodeNoRequests       = "NO_REQUESTS"
	CodeDuplicate        = "DUPLICATE"
	CodeInternal         = "INTERNAL_ERROR"
)

type Error struct {
	Kind    Kind
	Code    string
	Message string
	Details any
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// WithDetails returns a copy carrying extra client-facing data.
func (e *Error) WithDetails(d any) *Error {
	cp := *e
	cp.Details = d
	return &cp
}

func Validation(code, msg string) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: msg}
}

func NotFound(code, msg string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: msg}
}

func Conflict(code, msg string) *Error {
	return &Error{Kind: KindConflict, Code: code, Message: msg}
}

// Unexpected wraps a storage/runtime failure. The message is what clients see.
func Unexpected(err error) *Error {
	return &Error{Kind: KindUnexpected, Code: CodeInternal, Message: "Erreur serveur.", Err: err}
}

// As extracts an *Error; anything else is reported as unexpected.
func As(err error) *Error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Unexpected(err)
}

func KindOf(err error) Kind {
	if ae := As(err); ae != nil {
		return ae.Kind
	}
	return KindUnexpected
}

func IsCode(err error, code string) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Code == code
}
