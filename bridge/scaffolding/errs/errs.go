// Package errs provides types and support related to web error functionality.
package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime"
)

// ErrCode classifies an application error.
type ErrCode int

const (
	// OK means no error. The zero value is deliberately not an error code.
	OK ErrCode = iota

	// Internal is returned to the caller with a generic message.
	Internal

	// InternalOnlyLog carries internal detail that must be logged but never
	// serialized to the caller. The errors middleware downgrades it to a
	// plain Internal before responding.
	InternalOnlyLog

	NotFound
	InvalidArgument
	Unauthenticated
	Conflict
)

var codeNames = map[ErrCode]string{
	Internal:        "INTERNAL",
	InternalOnlyLog: "INTERNAL",
	NotFound:        "NOT_FOUND",
	InvalidArgument: "INVALID_ARGUMENT",
	Unauthenticated: "UNAUTHENTICATED",
	Conflict:        "CONFLICT",
}

var httpStatuses = map[ErrCode]int{
	Internal:        http.StatusInternalServerError,
	InternalOnlyLog: http.StatusInternalServerError,
	NotFound:        http.StatusNotFound,
	InvalidArgument: http.StatusBadRequest,
	Unauthenticated: http.StatusUnauthorized,
	Conflict:        http.StatusConflict,
}

// Error represents an application error with its classification and the
// location it was raised from.
type Error struct {
	Code     ErrCode
	Message  string
	FuncName string
	FileName string
}

// New constructs an Error from a code and an existing error.
func New(code ErrCode, err error) *Error {
	return newError(code, err.Error())
}

// Newf constructs an Error with a formatted message.
func Newf(code ErrCode, format string, v ...any) *Error {
	return newError(code, fmt.Sprintf(format, v...))
}

func newError(code ErrCode, message string) *Error {
	pc, filename, line, _ := runtime.Caller(2)

	return &Error{
		Code:     code,
		Message:  message,
		FuncName: runtime.FuncForPC(pc).Name(),
		FileName: fmt.Sprintf("%s:%d", filename, line),
	}
}

func (e *Error) Error() string {
	return e.Message
}

// Encode implements the web Encoder interface. InternalOnlyLog detail is the
// middleware's problem; by the time Encode runs the message is safe to send.
func (e *Error) Encode() ([]byte, string, error) {
	payload := struct {
		Error string `json:"error"`
		Code  string `json:"code,omitempty"`
	}{
		Error: e.Message,
		Code:  codeNames[e.Code],
	}

	data, err := json.Marshal(payload)
	return data, "application/json", err
}

// HTTPStatus returns the status code the error maps to.
func (e *Error) HTTPStatus() int {
	if status, exists := httpStatuses[e.Code]; exists {
		return status
	}
	return http.StatusInternalServerError
}

// IsError tests if the given error is an application Error.
func IsError(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr)
}

// GetError extracts the application Error, or nil.
func GetError(err error) *Error {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return nil
	}
	return appErr
}
