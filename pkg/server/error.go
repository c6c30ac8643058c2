package server

import (
	"errors"
	"fmt"
)

type ErrorCode uint

const (
	ErrInternalServerError ErrorCode = iota
	ErrNotFound
	ErrPathNotFound
	ErrInvalidArgument
	ErrOutOfRange
	ErrBadRequest
)

// Error carries an application error code across the graph/router boundary so
// callers branch on the code instead of matching message strings.
type Error struct {
	orig error
	msg  string
	code ErrorCode
}

func NewErrorf(code ErrorCode, format string, a ...interface{}) error {
	return WrapErrorf(nil, code, format, a...)
}

func WrapErrorf(orig error, code ErrorCode, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

func (e *Error) Error() string {
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

func (e *Error) Code() ErrorCode {
	return e.code
}

// GetCode walks the wrap chain and returns the outermost application code,
// ErrInternalServerError when err is not an application Error.
func GetCode(err error) ErrorCode {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code()
	}
	return ErrInternalServerError
}
