// Package echoverify adapts the token-checking middleware to echo.
package echoverify

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hyalite/jwtverify"
)

// CheckToken wraps the middleware as an echo.MiddlewareFunc. The verified
// payload lands in the request context as usual, so handlers read it with
// jwtverify.GetPayload on c.Request().Context().
//
// When verification fails the middleware's error handler has already written
// the response and the rest of the echo chain does not run.
func CheckToken(mw *jwtverify.Middleware) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var handlerErr error
			var wrapped http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
				c.SetRequest(r)
				handlerErr = next(c)
			}

			mw.CheckToken(wrapped).ServeHTTP(c.Response(), c.Request())

			return handlerErr
		}
	}
}
