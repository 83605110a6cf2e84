// Package httpapi exposes a Catalog over HTTP with echo.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/catalog/internal/metrics"
	"github.com/mesh-intelligence/catalog/pkg/types"
)

// Server routes HTTP requests to a Catalog.
type Server struct {
	catalog     types.Catalog
	echo        *echo.Echo
	logger      *zap.Logger
	metrics     *metrics.Collector
	metricsPath string
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger. The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics records request metrics on c and serves them at path.
func WithMetrics(c *metrics.Collector, path string) Option {
	return func(s *Server) {
		s.metrics = c
		s.metricsPath = path
	}
}

// New builds a Server for catalog with all routes registered.
func New(catalog types.Catalog, opts ...Option) *Server {
	s := &Server{
		catalog: catalog,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(s.observe)
	e.Use(middleware.Recover())
	s.echo = e

	s.registerRoutes()
	if s.metrics != nil {
		s.trackProducts()
	}
	return s
}

func (s *Server) registerRoutes() {
	s.echo.GET("/healthz", s.healthz)
	if s.metrics != nil {
		s.echo.GET(s.metricsPath, echo.WrapHandler(s.metrics.Handler()))
	}

	s.echo.GET("/products", s.listProducts)
	s.echo.POST("/products", s.createProduct)
	s.echo.GET("/products/:productId", s.getProduct)

	s.echo.POST("/products/:productId/attributes", s.addAttribute)
	s.echo.GET("/products/:productId/attributes/:attributeId", s.getAttribute)
	s.echo.PUT("/products/:productId/attributes/:attributeId", s.updateAttribute)
	s.echo.DELETE("/products/:productId/attributes/:attributeId", s.deleteAttribute)

	s.echo.POST("/products/:productId/attributes/:attributeId/params", s.addParam)
	s.echo.GET("/products/:productId/attributes/:attributeId/params/:paramId", s.getParam)
	s.echo.PUT("/products/:productId/attributes/:attributeId/params/:paramId", s.updateParam)
	s.echo.DELETE("/products/:productId/attributes/:attributeId/params/:paramId", s.deleteParam)

	s.echo.POST("/refresh", s.refresh)
}

// ServeHTTP lets the Server be used as an http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Run listens on addr until ctx is cancelled, then shuts down, waiting at
// most shutdownTimeout for in-flight requests.
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.echo.Start(addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Addr returns the listener address once Run has started listening, or an
// empty string before that.
func (s *Server) Addr() string {
	if a := s.echo.ListenerAddr(); a != nil {
		return a.String()
	}
	return ""
}

// observe logs each request and records its metrics.
func (s *Server) observe(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		if err := next(c); err != nil {
			c.Error(err)
		}
		elapsed := time.Since(start)

		req := c.Request()
		status := c.Response().Status
		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		s.logger.Info("request",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Duration("latency", elapsed),
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)))
		if s.metrics != nil && route != s.metricsPath {
			s.metrics.ObserveRequest(route, req.Method, status, elapsed)
		}
		return nil
	}
}
