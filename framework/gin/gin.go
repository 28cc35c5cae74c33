// Package ginverify adapts the token-checking middleware to gin.
package ginverify

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hyalite/jwtverify"
)

// CheckToken wraps the middleware as a gin handler. The verified payload
// lands in the request context as usual, so handlers read it with
// jwtverify.GetPayload:
//
//	router.Use(ginverify.CheckToken(mw))
//	router.GET("/me", func(c *gin.Context) {
//		payload, err := jwtverify.GetPayload[map[string]any](c.Request.Context())
//		...
//	})
//
// When verification fails the middleware's error handler has already written
// the response and the gin chain is aborted.
func CheckToken(mw *jwtverify.Middleware) gin.HandlerFunc {
	return func(c *gin.Context) {
		passed := false
		var next http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
			passed = true
			c.Request = r
			c.Next()
		}

		mw.CheckToken(next).ServeHTTP(c.Writer, c.Request)

		if !passed {
			c.Abort()
		}
	}
}
