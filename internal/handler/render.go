package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AdrianaGRO/PyArch.dev/internal/auth"
	"github.com/AdrianaGRO/PyArch.dev/internal/domain"
	"github.com/AdrianaGRO/PyArch.dev/internal/middleware"
)

// Messages shown on the error page.
const (
	PostNotFoundMessage    = "Post not found"
	ProjectNotFoundMessage = "Project not found"
	InternalErrorMessage   = "Something went wrong"
	TooLargeMessage        = "The upload is too large"
)

const errorPage = "error.html"

// pageData fills in what the layout needs: title, session state and flashes.
// It consumes the pending flashes, so call it before writing the response.
func pageData(c *gin.Context, title string, data gin.H) gin.H {
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title
	data["Authenticated"] = auth.IsAuthenticated(c)
	data["Flashes"] = auth.Flashes(c)
	data["RequestID"] = middleware.GetRequestID(c)
	return data
}

func renderPage(c *gin.Context, status int, name, title string, data gin.H) {
	c.HTML(status, name, pageData(c, title, data))
}

func renderError(c *gin.Context, status int, message string) {
	renderPage(c, status, errorPage, message, gin.H{"Status": status, "Message": message})
}

// handleError maps a service error onto an error page. notFound is the
// message used for domain.ErrNotFound.
func handleError(c *gin.Context, err error, notFound string) {
	if errors.Is(err, domain.ErrNotFound) {
		renderError(c, http.StatusNotFound, notFound)
		return
	}

	middleware.RequestLogger(c).Error("Request failed", slog.String("error", err.Error()))
	_ = c.Error(err)
	renderError(c, http.StatusInternalServerError, InternalErrorMessage)
}
