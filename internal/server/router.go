// Package server assembles the gin engine: middleware chain, routes and
// template renderer.
package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AdrianaGRO/PyArch.dev/internal/auth"
	"github.com/AdrianaGRO/PyArch.dev/internal/handler"
	"github.com/AdrianaGRO/PyArch.dev/internal/middleware"
	"github.com/AdrianaGRO/PyArch.dev/internal/service"
	"github.com/AdrianaGRO/PyArch.dev/internal/web"
)

// Deps are the collaborators the router wires into handlers.
type Deps struct {
	Content  service.ContentServiceInterface
	Sessions *auth.Manager
	Gate     *auth.Gate
	Renderer *web.Renderer

	// ContentDir is probed by the health endpoints.
	ContentDir string

	// StaticDir is served under /static, uploads included.
	StaticDir string

	MaxBodyBytes int64

	// Gatherer backs /metrics. Nil means the default registry.
	Gatherer prometheus.Gatherer

	// AccessLog enables gin's request logger.
	AccessLog bool
}

// NewRouter builds the engine with every route of the site.
func NewRouter(d Deps) *gin.Engine {
	router := gin.New()
	router.HTMLRender = d.Renderer

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	if d.AccessLog {
		router.Use(gin.Logger())
	}
	router.Use(middleware.BodyLimit(d.MaxBodyBytes))
	router.Use(middleware.Session(d.Sessions))

	pages := handler.NewPageHandler(d.Content)
	posts := handler.NewPostHandler(d.Content)
	projects := handler.NewProjectHandler(d.Content, d.Renderer)
	authHandler := handler.NewAuthHandler(d.Gate)
	health := handler.NewHealthHandler(d.ContentDir)

	// Health and metrics endpoints
	router.GET("/health", health.Health)
	router.GET("/ready", health.Ready)
	router.GET("/live", health.Live)
	router.GET("/metrics", metricsHandler(d.Gatherer))

	if d.StaticDir != "" {
		router.Static("/static", d.StaticDir)
	}

	// Public pages
	router.GET("/", pages.Index)
	router.GET("/blog", pages.Blog)
	router.GET("/about", pages.About)
	router.GET("/contact", pages.Contact)
	router.GET("/pricing", pages.Pricing)
	router.GET("/post/:id", posts.Show)
	router.GET("/projects", projects.List)
	router.GET("/projects/:name", projects.Show)

	// Session
	router.GET("/login", authHandler.LoginForm)
	router.POST("/login", authHandler.Login)
	router.GET("/logout", authHandler.Logout)

	// Admin
	admin := router.Group("/", middleware.LoginRequired())
	{
		admin.GET("/create", posts.NewForm)
		admin.POST("/create", posts.Create)
		admin.GET("/edit/:id", posts.EditForm)
		admin.POST("/edit/:id", posts.Update)
		admin.POST("/delete/:id", posts.Delete)
	}

	router.NoRoute(pages.NotFound)
	return router
}

func metricsHandler(g prometheus.Gatherer) gin.HandlerFunc {
	if g == nil {
		return gin.WrapH(promhttp.Handler())
	}
	return gin.WrapH(promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
}
