// Package httpapi exposes the summary over HTTP with echo.
//
// Endpoints:
//
//	POST /api/summary  -> multipart field "file" or the raw CSV as body; options as query/form values
//	GET  /api/health   -> liveness and version
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/diillson/aws-reservation-summary/internal/application/usecase"
	"github.com/diillson/aws-reservation-summary/internal/domain/entity"
	"github.com/diillson/aws-reservation-summary/internal/shared/types"
	"github.com/diillson/aws-reservation-summary/pkg/version"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

const (
	uploadField = "file"
	bodyLimit   = "10M"
)

// SummaryGenerator is the part of the use case the HTTP layer needs.
type SummaryGenerator interface {
	GenerateSummary(ctx context.Context, raw []byte, req usecase.SummaryRequest) (*entity.SummaryReport, error)
}

// Server wraps the echo instance serving the summary API.
type Server struct {
	echo      *echo.Echo
	generator SummaryGenerator
	defaults  *types.Config
	logger    *zap.Logger
}

// NewServer registers the routes. defaults supplies the options a request does not set.
func NewServer(generator SummaryGenerator, defaults *types.Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = jsonSerializer{}

	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(bodyLimit))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			)
			return nil
		},
	}))

	s := &Server{echo: e, generator: generator, defaults: defaults, logger: logger}

	e.GET("/api/health", s.health)
	e.POST("/api/summary", s.summary)

	return s
}

// Handler returns the server as an http.Handler.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens on addr until Shutdown is called.
func (s *Server) Start(addr string) error {
	s.logger.Info("http server listening", zap.String("addr", addr))
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"version": version.FormatVersion(),
	})
}

func (s *Server) summary(c echo.Context) error {
	raw, err := readUpload(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	req, err := RequestOptions(c.FormValue, s.defaults)
	if err != nil {
		return c.JSON(StatusForError(err), ErrorResponse{Error: err.Error()})
	}

	report, err := s.generator.GenerateSummary(c.Request().Context(), raw, req)
	if err != nil {
		status := StatusForError(err)
		if status == http.StatusInternalServerError {
			s.logger.Error("summary failed", zap.Error(err))
		}
		return c.JSON(status, ErrorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, report)
}

// readUpload returns the multipart "file" field when the request is a form upload, or
// the whole body otherwise.
func readUpload(c echo.Context) ([]byte, error) {
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		fh, err := c.FormFile(uploadField)
		if err != nil {
			return nil, fmt.Errorf("missing form field %q: %w", uploadField, err)
		}
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("error opening upload: %w", err)
		}
		defer f.Close()
		return io.ReadAll(f)
	}

	raw, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, fmt.Errorf("error reading request body: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty request body")
	}
	return raw, nil
}
