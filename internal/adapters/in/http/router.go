// Package http is the driving adapter of the stockyard: a JSON API served by
// echo and described by the embedded openapi.yaml.
package http

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the echo instance with request logging, OpenAPI request
// validation, the API routes and the swagger UI at /swagger/*.
func NewRouter(server ServerInterface, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := GetSwagger()
	if err != nil {
		return nil, err
	}
	if err := registerSwaggerDoc(doc); err != nil {
		return nil, err
	}
	validator, err := OpenAPIValidator(doc)
	if err != nil {
		return nil, err
	}

	logger = logger.With("component", "http")

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = errorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= 500 {
				level = slog.LevelError
			}
			logger.LogAttrs(context.Background(), level, "Request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.Any("error", v.Error),
			)
			return nil
		},
	}))
	e.Use(validator)

	RegisterHandlers(e, server)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}
