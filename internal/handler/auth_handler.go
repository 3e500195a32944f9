package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AdrianaGRO/PyArch.dev/internal/auth"
	"github.com/AdrianaGRO/PyArch.dev/internal/middleware"
)

// AuthHandler handles login and logout.
type AuthHandler struct {
	gate *auth.Gate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(gate *auth.Gate) *AuthHandler {
	return &AuthHandler{gate: gate}
}

// LoginForm handles GET /login
func (h *AuthHandler) LoginForm(c *gin.Context) {
	if auth.IsAuthenticated(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}
	renderPage(c, http.StatusOK, "login.html", "Log in", gin.H{"Next": auth.SafeNext(c.Query("next"))})
}

// Login handles POST /login
// On success it redirects to next when next is a local path.
func (h *AuthHandler) Login(c *gin.Context) {
	if auth.IsAuthenticated(c) {
		c.Redirect(http.StatusFound, "/")
		return
	}

	next := auth.SafeNext(c.Query("next"))
	if !h.gate.Login(c, c.PostForm("username"), c.PostForm("password")) {
		middleware.RequestLogger(c).Warn("Failed login attempt")
		auth.AddFlash(c, "error", "Invalid username or password")
		renderPage(c, http.StatusOK, "login.html", "Log in", gin.H{"Next": next})
		return
	}

	middleware.RequestLogger(c).Info("Admin logged in")
	auth.AddFlash(c, "success", "Login successful!")
	if next == "" {
		next = "/"
	}
	c.Redirect(http.StatusFound, next)
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.gate.Logout(c)
	auth.AddFlash(c, "success", "You have been logged out")
	c.Redirect(http.StatusFound, "/")
}
