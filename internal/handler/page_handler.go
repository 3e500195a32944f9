package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AdrianaGRO/PyArch.dev/internal/service"
)

// RecentPostsOnAbout is how many posts the about page lists.
const RecentPostsOnAbout = 3

// PageHandler serves the public pages built from several documents.
type PageHandler struct {
	content service.ContentServiceInterface
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(content service.ContentServiceInterface) *PageHandler {
	return &PageHandler{content: content}
}

// Index handles GET /
func (h *PageHandler) Index(c *gin.Context) {
	ctx := c.Request.Context()

	posts, err := h.content.ListPosts(ctx, false)
	if err != nil {
		handleError(c, err, PostNotFoundMessage)
		return
	}
	projects, err := h.content.ListProjects(ctx)
	if err != nil {
		handleError(c, err, ProjectNotFoundMessage)
		return
	}
	featured, err := h.content.FeaturedProject(ctx)
	if err != nil {
		handleError(c, err, ProjectNotFoundMessage)
		return
	}

	renderPage(c, http.StatusOK, "index.html", "", gin.H{
		"Posts":    posts,
		"Projects": projects,
		"Featured": featured,
	})
}

// Blog handles GET /blog
func (h *PageHandler) Blog(c *gin.Context) {
	posts, err := h.content.ListPosts(c.Request.Context(), false)
	if err != nil {
		handleError(c, err, PostNotFoundMessage)
		return
	}
	renderPage(c, http.StatusOK, "blog.html", "Blog", gin.H{"Posts": posts})
}

// About handles GET /about
func (h *PageHandler) About(c *gin.Context) {
	ctx := c.Request.Context()

	recent, err := h.content.RecentPosts(ctx, RecentPostsOnAbout)
	if err != nil {
		handleError(c, err, PostNotFoundMessage)
		return
	}
	projects, err := h.content.ListProjects(ctx)
	if err != nil {
		handleError(c, err, ProjectNotFoundMessage)
		return
	}

	renderPage(c, http.StatusOK, "about.html", "About", gin.H{
		"RecentPosts": recent,
		"Projects":    projects,
	})
}

// Contact handles GET /contact
func (h *PageHandler) Contact(c *gin.Context) {
	pricing, err := h.content.Pricing(c.Request.Context())
	if err != nil {
		handleError(c, err, InternalErrorMessage)
		return
	}
	renderPage(c, http.StatusOK, "contact.html", "Contact", gin.H{"Contact": pricing.ContactInfo()})
}

// Pricing handles GET /pricing
func (h *PageHandler) Pricing(c *gin.Context) {
	pricing, err := h.content.Pricing(c.Request.Context())
	if err != nil {
		handleError(c, err, InternalErrorMessage)
		return
	}
	renderPage(c, http.StatusOK, "pricing.html", "Pricing", gin.H{"Pricing": pricing})
}

// NotFound renders the error page for unknown routes.
func (h *PageHandler) NotFound(c *gin.Context) {
	renderError(c, http.StatusNotFound, "Page not found")
}
