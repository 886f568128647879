package apperror

import (
	"net/http"
)

const (
	BindingCode      = "400001"
	ValidationCode   = "400002"
	InvalidImageCode = "400003"
)

// 400 Bad Request
func ErrInvalidRequest(err error) Error {
	return NewError(err, http.StatusBadRequest, BindingCode, "Invalid request")
}

func ErrInvalidParam(err error) Error {
	return NewError(err, http.StatusBadRequest, ValidationCode, "Invalid param")
}

func ErrInvalidImage(err error) Error {
	return NewError(err, http.StatusBadRequest, InvalidImageCode, "Invalid image")
}
