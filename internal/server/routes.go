package server

import (
	"github.com/labstack/echo/v4"

	"github.com/xmi-schema/xmi-go/internal/server/routes"
)

// RegisterRoutes wires all API routes.
func RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/v1")
	v1.POST("/validate", routes.ValidateHandler)
	v1.POST("/normalize", routes.NormalizeHandler)
	v1.GET("/schema", routes.SchemaHandler)
}
