package middleware

import (
	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// RequestIDHeader carries the request correlation id.
const RequestIDHeader = "X-Request-Id"

// RequestID assigns every request a correlation id, keeping one supplied by
// the caller.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(RequestIDHeader)
			if id == "" {
				generated, err := gonanoid.New()
				if err != nil {
					return err
				}
				id = generated
			}
			c.Response().Header().Set(RequestIDHeader, id)
			return next(c)
		}
	}
}
