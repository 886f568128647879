package mycontext

import (
	"context"

	"github.com/labstack/echo/v4"
)

type EchoContextAdapter struct {
	context.Context
	c echo.Context
}

// NewEchoContextAdapter lets lower layers take a plain context.Context while
// still seeing values stored on the echo context.
func NewEchoContextAdapter(c echo.Context) *EchoContextAdapter {
	return &EchoContextAdapter{
		Context: c.Request().Context(),
		c:       c,
	}
}

func (a *EchoContextAdapter) Value(key any) any {
	if k, ok := key.(string); ok {
		if v := a.c.Get(k); v != nil {
			return v
		}
	}

	return a.Context.Value(key)
}

func (a *EchoContextAdapter) RequestID() string {
	return a.c.Response().Header().Get(echo.HeaderXRequestID)
}
