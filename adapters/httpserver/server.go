package httpserver

import (
	"net/http"
	"strings"

	"github.com/jobeserver/demo/adapters/event"
	"github.com/jobeserver/demo/adapters/event/listeners"
	"github.com/jobeserver/demo/adapters/httpserver/model"
	"github.com/jobeserver/demo/adapters/localstore"
	"github.com/jobeserver/demo/domain"
	"github.com/jobeserver/demo/domain/image"
	"github.com/jobeserver/demo/pkg/apperror"
	"github.com/jobeserver/demo/pkg/config"
	"github.com/jobeserver/demo/pkg/sentry"
	"github.com/pkg/errors"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

const (
	DashboardPath    = "/"
	SubmissionPath   = "/submission/"
	ReceiveImagePath = "/receive_image/"
)

type Options func(s *Server) error

type Server struct {
	router *echo.Echo
	Config *config.Config
	Logger *zap.SugaredLogger

	// storage adapters
	ImageStore image.Store

	// event bus
	EventDispatcher domain.EventDispatcher
}

func WithImageStore(store image.Store) Options {
	return func(s *Server) error {
		s.ImageStore = store
		return nil
	}
}

func WithEventDispatcher(d domain.EventDispatcher) Options {
	return func(s *Server) error {
		s.EventDispatcher = d
		return nil
	}
}

func New(cfg *config.Config, logger *zap.SugaredLogger, options ...Options) (*Server, error) {
	s := Server{
		router: echo.New(),
		Config: cfg,
		Logger: logger,
	}

	for _, fn := range options {
		if err := fn(&s); err != nil {
			return nil, err
		}
	}

	if s.ImageStore == nil {
		s.ImageStore = localstore.NewImageStore(localstore.ParseFromConfig(cfg))
	}

	if s.EventDispatcher == nil {
		s.EventDispatcher = event.NewEventDispatcher()
		listeners.RegisterAll(s.EventDispatcher, map[string]listeners.EventListener{
			image.ImageReceivedEventName: listeners.NewImageReceivedEventListener(logger),
		})
	}

	s.router.HideBanner = true
	s.router.HTTPErrorHandler = s.httpErrorHandler
	s.router.Renderer = newTemplateRenderer()

	s.RegisterGlobalMiddlewares()
	s.RegisterHealthCheck(s.router.Group(""))
	s.RegisterDemoRoutes(s.router.Group(strings.TrimSuffix(cfg.MountPath, "/")))

	return &s, nil
}

func (s *Server) RegisterGlobalMiddlewares() {
	s.router.Pre(middleware.AddTrailingSlashWithConfig(middleware.TrailingSlashConfig{
		Skipper: func(c echo.Context) bool { return strings.HasPrefix(c.Request().URL.Path, "/healthz") },
	}))

	s.router.Use(middleware.Recover())
	s.router.Use(middleware.Secure())
	s.router.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	s.router.Use(s.requestLogger())
	s.router.Use(middleware.BodyLimit(s.Config.BodyLimit))
	s.router.Use(middleware.Gzip())
	s.router.Use(sentryecho.New(sentryecho.Options{Repanic: true}))

	// CORS
	if s.Config.AllowOrigins != "" {
		aos := strings.Split(s.Config.AllowOrigins, ",")
		s.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: aos,
		}))
	}

	s.router.Use(s.csrfMiddleware(SubmissionPath, ReceiveImagePath))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) RegisterHealthCheck(router *echo.Group) {
	router.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK!!!")
	})
}

// httpErrorHandler renders errors raised by echo itself (404, 405, 413,
// CSRF rejections) and recovered panics with the same envelope as handlers.
func (s *Server) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		raw := he.Internal
		if raw == nil {
			raw = errors.Errorf("%v", he.Message)
		}

		err = apperror.ErrHTTP(he.Code, raw)
	}

	_ = s.error(c, err)
}

func (s *Server) error(c echo.Context, err error) error {
	s.Logger.Errorw(
		err.Error(),
		zap.String("request_id", s.requestID(c)),
	)

	var appErr apperror.Error
	if !errors.As(err, &appErr) {
		sentry.WithContext(c).Error(err)

		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{
			Code:    apperror.InternalServerCode,
			Message: "Internal Server Error",
			Info:    err.Error(),
		})
	}

	if appErr.HTTPCode >= http.StatusInternalServerError {
		sentry.WithContext(c).Error(err)
	}

	var errMessage string
	if appErr.Raw != nil {
		errMessage = appErr.Raw.Error()
	}

	return c.JSON(appErr.HTTPCode, model.ErrorResponse{
		Code:    appErr.ErrorCode,
		Message: appErr.Message,
		Info:    errMessage,
	})
}

func (s *Server) requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
