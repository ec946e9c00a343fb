package routes

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/xmi-schema/xmi-go/pkg/payload"
	"github.com/xmi-schema/xmi-go/pkg/xmi"
)

// NormalizeHandler loads a wire document and returns it re-serialized in
// canonical form, rejected records included in the error list.
func NormalizeHandler(c echo.Context) error {
	type normalizeError struct {
		Message string `json:"message"`
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, normalizeError{
			Message: "Invalid request body",
		})
	}
	doc, err := payload.Parse(body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, normalizeError{
			Message: "Invalid request body",
		})
	}

	model := xmi.NewModel()
	model.Load(doc)

	return c.JSON(http.StatusOK, model.Dump())
}
