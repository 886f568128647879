package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jobeserver/demo/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	t.Run("it should expose the raw error", func(t *testing.T) {
		raw := errors.New("boom")
		err := apperror.ErrInternalServer(raw)

		assert.Equal(t, "boom", err.Error())
		assert.ErrorIs(t, err, raw)
		assert.Equal(t, http.StatusInternalServerError, err.HTTPCode)
		assert.Equal(t, apperror.InternalServerCode, err.ErrorCode)
	})

	t.Run("it should fall back to the message", func(t *testing.T) {
		err := apperror.ErrInvalidParam(nil)

		assert.Equal(t, "Invalid param", err.Error())
	})

	t.Run("it should be found through a wrap", func(t *testing.T) {
		wrapped := fmt.Errorf("handler: %w", apperror.ErrInvalidImage(errors.New("bad")))

		var appErr apperror.Error
		assert.True(t, errors.As(wrapped, &appErr))
		assert.Equal(t, apperror.InvalidImageCode, appErr.ErrorCode)
	})
}

func TestErrHTTP(t *testing.T) {
	tests := []struct {
		status int
		code   string
		msg    string
	}{
		{http.StatusNotFound, "404000", "Not Found"},
		{http.StatusMethodNotAllowed, "405000", "Method Not Allowed"},
		{http.StatusRequestEntityTooLarge, "413000", "Request Entity Too Large"},
	}

	for _, tt := range tests {
		err := apperror.ErrHTTP(tt.status, errors.New("x"))
		if err.ErrorCode != tt.code || err.Message != tt.msg || err.HTTPCode != tt.status {
			t.Errorf("ErrHTTP(%d) = %+v; want code %q message %q", tt.status, err, tt.code, tt.msg)
		}
	}
}
