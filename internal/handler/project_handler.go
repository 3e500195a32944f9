package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AdrianaGRO/PyArch.dev/internal/service"
)

// GenericProjectTemplate renders projects without a dedicated page.
const GenericProjectTemplate = "project_detail.html"

// TemplateSet reports which page templates are available.
type TemplateSet interface {
	Has(name string) bool
}

// ProjectHandler serves the portfolio pages.
type ProjectHandler struct {
	content   service.ContentServiceInterface
	templates TemplateSet
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(content service.ContentServiceInterface, templates TemplateSet) *ProjectHandler {
	return &ProjectHandler{content: content, templates: templates}
}

// List handles GET /projects
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.content.ListProjects(c.Request.Context())
	if err != nil {
		handleError(c, err, ProjectNotFoundMessage)
		return
	}
	renderPage(c, http.StatusOK, "projects.html", "Projects", gin.H{"Projects": projects})
}

// Show handles GET /projects/:name
// A project with its own project_<slug>.html page uses it.
func (h *ProjectHandler) Show(c *gin.Context) {
	project, err := h.content.GetProject(c.Request.Context(), c.Param("name"))
	if err != nil {
		handleError(c, err, ProjectNotFoundMessage)
		return
	}
	renderPage(c, http.StatusOK, h.templateFor(project.Slug), project.Title, gin.H{"Project": project})
}

func (h *ProjectHandler) templateFor(slug string) string {
	if name := "project_" + slug + ".html"; h.templates != nil && h.templates.Has(name) {
		return name
	}
	return GenericProjectTemplate
}
