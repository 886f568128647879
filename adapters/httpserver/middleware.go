package httpserver

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

const (
	CSRFCookieName  = "_csrf"
	CSRFTokenLookup = "header:" + echo.HeaderXCSRFToken + ",form:_csrf"
)

// csrfMiddleware issues a token on safe requests and checks it on unsafe
// ones, except for the exempt routes under the mount path. Requests that
// match no route are left to the router so they get their 404 or 405.
func (s *Server) csrfMiddleware(exemptPaths ...string) echo.MiddlewareFunc {
	mount := strings.TrimSuffix(s.Config.MountPath, "/")

	exempt := make([]string, 0, len(exemptPaths))
	for _, p := range exemptPaths {
		exempt = append(exempt, mount+p)
	}

	return middleware.CSRFWithConfig(middleware.CSRFConfig{
		Skipper: func(c echo.Context) bool {
			return containExact(exempt, c.Path()) || !s.hasRoute(c.Request().Method, c.Path())
		},
		TokenLookup:    CSRFTokenLookup,
		CookieName:     CSRFCookieName,
		CookiePath:     "/",
		CookieHTTPOnly: true,
	})
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.Logger.Infow("http request",
				zap.String("request_id", v.RequestID),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("remote_ip", v.RemoteIP),
			)

			return nil
		},
	})
}

func csrfToken(c echo.Context) string {
	token, _ := c.Get(middleware.DefaultCSRFConfig.ContextKey).(string)

	return token
}

func (s *Server) hasRoute(method, path string) bool {
	if path == "" {
		return false
	}

	for _, r := range s.router.Routes() {
		if r.Method == method && r.Path == path {
			return true
		}
	}

	return false
}

func containExact(elems []string, v string) bool {
	for _, s := range elems {
		if s == v {
			return true
		}
	}

	return false
}
