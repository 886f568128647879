package httpserver

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/jobeserver/demo/adapters/httpserver/model"
	"github.com/jobeserver/demo/domain/image"
	"github.com/jobeserver/demo/pkg/app"
	"github.com/jobeserver/demo/pkg/apperror"
	"github.com/jobeserver/demo/pkg/mycontext"
	"github.com/pkg/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Dashboard godoc
// @Summary Dashboard
// @Description Render the demo dashboard
// @Tags demo
// @Produce html
// @Success 200 {string} string "HTML page"
// @Failure 500 {object} model.ErrorResponse
// @Router / [get]
func (s *Server) Dashboard(c echo.Context) error {
	page := model.DashboardPage{
		Context:   model.DashboardContext,
		CSRFToken: csrfToken(c),
		MountPath: strings.TrimSuffix(s.Config.MountPath, "/"),
	}

	if err := c.Render(http.StatusOK, "dashboard.html", page); err != nil {
		return s.error(c, apperror.ErrInternalServer(err))
	}

	return nil
}

// Submission godoc
// @Summary Submission
// @Description Echo back the content of a form submission
// @Tags demo
// @Accept json
// @Produce json
// @Param payload body model.SubmissionRequest true "Form submission"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} model.ErrorResponse
// @Failure 405 {object} model.ErrorResponse
// @Router /submission/ [post]
func (s *Server) Submission(c echo.Context) error {
	var (
		ctx = mycontext.NewEchoContextAdapter(c)
		req model.SubmissionRequest
	)

	// the body is JSON whatever the Content-Type says, and nothing may follow it
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := json.Unmarshal(body, &req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	s.Logger.Infow("submission received",
		zap.Any("content", req.Content),
		zap.String("request_id", ctx.RequestID()),
	)

	return c.JSON(http.StatusOK, req.Content)
}

// ReceiveImage godoc
// @Summary ReceiveImage
// @Description Store a base64 encoded image, replacing the previous one
// @Tags demo
// @Accept x-www-form-urlencoded,multipart/form-data
// @Produce json
// @Param image formData string true "Base64 encoded image"
// @Param label formData string true "Label"
// @Param city formData string true "City"
// @Success 200 {object} model.ReceiveImageResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /receive_image/ [post]
func (s *Server) ReceiveImage(c echo.Context) error {
	var (
		ctx = mycontext.NewEchoContextAdapter(c)
		req model.ReceiveImageRequest
	)

	if err := c.Bind(&req); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if _, err := c.FormParams(); err != nil {
		return s.error(c, apperror.ErrInvalidRequest(err))
	}

	if err := req.Validate(ctx, c.Request().PostForm); err != nil {
		return s.error(c, apperror.ErrInvalidParam(err))
	}

	data, err := image.Decode(req.Image)
	if err != nil {
		return s.error(c, apperror.ErrInvalidImage(err))
	}

	size, err := s.ImageStore.Save(ctx, data)
	if err != nil {
		return s.error(c, apperror.ErrInternalServer(errors.Wrap(err, "save image")))
	}

	evt := image.NewImageReceivedEvent(req.Label, req.City, s.ImageStore.Path(), size, app.DetectContentType(data))
	if err := s.EventDispatcher.Dispatch(evt); err != nil {
		s.Logger.Warnw("dispatch image received event",
			zap.Error(err),
			zap.String("request_id", ctx.RequestID()),
		)
	}

	return c.JSON(http.StatusOK, model.ReceiveImageResponse{Context: "okay"})
}

func (s *Server) RegisterDemoRoutes(router *echo.Group) {
	router.GET(DashboardPath, s.Dashboard)
	router.POST(SubmissionPath, s.Submission)
	router.POST(ReceiveImagePath, s.ReceiveImage)
}
