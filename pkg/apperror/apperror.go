package apperror

import (
	"fmt"
	"net/http"
)

type Error struct {
	Raw       error
	HTTPCode  int
	ErrorCode string
	Message   string
}

func NewError(err error, httpCode int, errCode string, message string) Error {
	return Error{
		Raw:       err,
		HTTPCode:  httpCode,
		ErrorCode: errCode,
		Message:   message,
	}
}

func (e Error) Error() string {
	if e.Raw != nil {
		return e.Raw.Error()
	}

	return e.Message
}

func (e Error) Unwrap() error {
	return e.Raw
}

// ErrHTTP wraps errors raised by the router itself (unknown route, wrong
// method, body too large, missing CSRF token) so they share the envelope.
func ErrHTTP(httpCode int, err error) Error {
	return NewError(err, httpCode, fmt.Sprintf("%d000", httpCode), http.StatusText(httpCode))
}
