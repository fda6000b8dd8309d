package service

import (
	"errors"
	"fmt"
)

// Kind classifies service failures so the transport can pick a status code
// without inspecting messages.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindAuthentication
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindAuthentication:
		return "authentication"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Error is returned by every service operation that fails. Message is safe to
// show to the caller; Err carries the underlying cause, if any.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err is (or wraps) a service Error of kind k.
func IsKind(err error, k Kind) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind == k
	}
	return false
}

// KindOf returns the kind of err, or KindInternal for anything that is not a
// service Error.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}

// Caller-facing messages.
const (
	MsgRegisterFieldsRequired = "All fields (email, name, password, confirmPassword) are required"
	MsgPasswordsDoNotMatch    = "Passwords do not match"
	MsgEmailRegistered        = "Email is already registered"
	MsgLoginFieldsRequired    = "Email and password are required"
	MsgCredentialsMismatch    = "Email or password mismatch"
	MsgLoginRequired          = "Please login to access this route"
	MsgInvalidToken           = "Invalid or expired token"
	MsgUserGone               = "User no longer exists"
	MsgTaskNotFound           = "Task not found"
	MsgTaskIDRequired         = "Please provide a taskId"
	MsgInternal               = "Something went wrong"
)

func validationError(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

func conflictError(msg string, cause error) error {
	return &Error{Kind: KindConflict, Message: msg, Err: cause}
}

func authError(msg string, cause error) error {
	return &Error{Kind: KindAuthentication, Message: msg, Err: cause}
}

func notFoundError(msg string, cause error) error {
	return &Error{Kind: KindNotFound, Message: msg, Err: cause}
}

func internalError(cause error) error {
	return &Error{Kind: KindInternal, Message: MsgInternal, Err: cause}
}
