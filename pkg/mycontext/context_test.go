package mycontext_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jobeserver/demo/pkg/mycontext"
	"github.com/labstack/echo/v4"

	"github.com/stretchr/testify/assert"
)

type ctxKey struct{}

func TestEchoContextAdapter(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), ctxKey{}, "from-request"))
	rec := httptest.NewRecorder()
	rec.Header().Set(echo.HeaderXRequestID, "rid-1")

	c := e.NewContext(req, rec)
	c.Set("label", "cat")

	ctx := mycontext.NewEchoContextAdapter(c)

	assert.Equal(t, "cat", ctx.Value("label"))
	assert.Equal(t, "from-request", ctx.Value(ctxKey{}))
	assert.Nil(t, ctx.Value("missing"))
	assert.Equal(t, "rid-1", ctx.RequestID())
	assert.NoError(t, ctx.Err())
}
