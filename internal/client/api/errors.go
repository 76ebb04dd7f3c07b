package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode is the machine-readable failure tag carried in the envelope.
type ErrorCode string

const (
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeEmailExists        ErrorCode = "EMAIL_EXISTS"
	CodeUnauthenticated    ErrorCode = "UNAUTHENTICATED"
	CodeBadRequest         ErrorCode = "BAD_REQUEST"
	CodeUnavailable        ErrorCode = "UNAVAILABLE"
	CodeInternal           ErrorCode = "INTERNAL"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email exists")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrBadRequest         = errors.New("bad request")
	ErrUnavailable        = errors.New("server unavailable")
	ErrInternal           = errors.New("internal error")
)

var sentinels = map[ErrorCode]error{
	CodeInvalidCredentials: ErrInvalidCredentials,
	CodeEmailExists:        ErrEmailExists,
	CodeUnauthenticated:    ErrUnauthenticated,
	CodeBadRequest:         ErrBadRequest,
	CodeUnavailable:        ErrUnavailable,
	CodeInternal:           ErrInternal,
}

// Error is a failed backend call. It unwraps to the sentinel for its code so
// callers can match with errors.Is.
type Error struct {
	Code       ErrorCode
	Message    string
	StatusCode int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.StatusCode, e.Message)
}

func (e *Error) Unwrap() error {
	return sentinels[e.Code]
}

func InvalidCredentials() *Error {
	return &Error{Code: CodeInvalidCredentials, Message: "Invalid email or password.", StatusCode: http.StatusUnauthorized}
}

func EmailExists() *Error {
	return &Error{Code: CodeEmailExists, Message: "An account with this email already exists.", StatusCode: http.StatusConflict}
}

func Unauthenticated() *Error {
	return &Error{Code: CodeUnauthenticated, Message: "User is not authenticated.", StatusCode: http.StatusUnauthorized}
}

func BadRequest(msg string) *Error {
	return &Error{Code: CodeBadRequest, Message: msg, StatusCode: http.StatusBadRequest}
}

// Code extracts the error code from err, or "" when err is not an *Error.
func Code(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Message returns the user-facing message for err.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	if errors.Is(err, ErrUnavailable) {
		return "Server unavailable."
	}
	return err.Error()
}
