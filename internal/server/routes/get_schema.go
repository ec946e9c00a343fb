package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/xmi-schema/xmi-go/pkg/xmi"
)

// SchemaHandler returns the JSON Schema of the wire format.
func SchemaHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, xmi.DocumentSchema())
}
