package router

import (
	"airtable-relay/internal/relay/handler"
	"airtable-relay/internal/relay/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func RegisterRoutes(e *echo.Echo, h *handler.RelayHandler, m *metrics.Metrics) {
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	e.Use(handler.RequestIDMiddleware)
	e.Use(m.Middleware())

	// Service-local routes, no upstream call involved
	e.GET("/", h.GetStatus)
	e.GET("/health", h.GetHealth)
	e.GET("/logs", h.GetLogs)
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	// Proxied routes
	e.GET("/bases", h.GetBases)
	e.GET("/bases/:baseId/tables", h.GetTables)
	e.POST("/bases/:baseId/tables", h.PostTable)
	e.POST("/test", h.PostTest)
}
