package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/AdrianaGRO/PyArch.dev/internal/auth"
)

// LoginRequiredMessage is flashed when an anonymous visitor hits an admin route.
const LoginRequiredMessage = "Please log in to access this page."

// Session attaches the signed session cookie to every request.
func Session(manager *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		manager.Attach(c)
		c.Next()
	}
}

// LoginRequired redirects anonymous visitors to the login page, remembering
// the requested path in the next parameter.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if auth.IsAuthenticated(c) {
			c.Next()
			return
		}

		RequestLogger(c).Info("Redirecting anonymous visitor to login")
		auth.AddFlash(c, "error", LoginRequiredMessage)
		c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(c.Request.URL.Path))
		c.Abort()
	}
}
