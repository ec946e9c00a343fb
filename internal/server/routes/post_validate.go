package routes

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/xmi-schema/xmi-go/pkg/payload"
	"github.com/xmi-schema/xmi-go/pkg/xmi"
)

// ValidateHandler loads a wire document and reports which records were
// rejected and why.
func ValidateHandler(c echo.Context) error {
	type validateParams struct {
		Tolerance float64 `query:"tolerance" validate:"omitempty,gt=0"`
	}

	type validateResponse struct {
		Message       string         `json:"message"`
		Valid         bool           `json:"valid"`
		Entities      int            `json:"entities"`
		Relationships int            `json:"relationships"`
		Errors        []xmi.ErrorLog `json:"errors"`
	}

	params := new(validateParams)
	if err := echo.QueryParamsBinder(c).Float64("tolerance", &params.Tolerance).BindError(); err != nil {
		return c.JSON(http.StatusBadRequest, validateResponse{
			Message: "Invalid request params",
		})
	}
	if err := c.Validate(params); err != nil {
		return c.JSON(http.StatusBadRequest, validateResponse{
			Message: "Invalid request params",
		})
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, validateResponse{
			Message: "Invalid request body",
		})
	}
	doc, err := payload.Parse(body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, validateResponse{
			Message: "Invalid request body",
		})
	}

	opts := []xmi.Option{}
	if params.Tolerance > 0 {
		opts = append(opts, xmi.WithTolerance(params.Tolerance))
	}
	model := xmi.NewModel(opts...)
	model.Load(doc)

	errs := model.Errors
	if errs == nil {
		errs = []xmi.ErrorLog{}
	}

	return c.JSON(http.StatusOK, validateResponse{
		Message:       "Model validated",
		Valid:         len(errs) == 0,
		Entities:      len(model.Entities),
		Relationships: len(model.Relationships),
		Errors:        errs,
	})
}
