package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/AdrianaGRO/PyArch.dev/internal/auth"
	"github.com/AdrianaGRO/PyArch.dev/internal/config"
	"github.com/AdrianaGRO/PyArch.dev/internal/logger"
	"github.com/AdrianaGRO/PyArch.dev/internal/metrics"
	"github.com/AdrianaGRO/PyArch.dev/internal/repository"
	"github.com/AdrianaGRO/PyArch.dev/internal/server"
	"github.com/AdrianaGRO/PyArch.dev/internal/service"
	"github.com/AdrianaGRO/PyArch.dev/internal/upload"
	"github.com/AdrianaGRO/PyArch.dev/internal/validator"
	"github.com/AdrianaGRO/PyArch.dev/internal/web"
)

func newServeCmd(a *app) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port != "" {
				a.cfg.ServerPort = port
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, a.cfg)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "port to listen on (overrides SERVER_PORT)")
	return cmd
}

// openRepositories builds the three document stores. Posts are strict so a
// broken posts.json is never silently overwritten by an empty list.
func openRepositories(cfg *config.Config) (*repository.JSONPostRepository, *repository.JSONProjectRepository, *repository.JSONPricingRepository) {
	return repository.NewJSONPostRepository(cfg.PostsFile, repository.Strict),
		repository.NewJSONProjectRepository(cfg.ProjectsFile, repository.Lenient),
		repository.NewJSONPricingRepository(cfg.PricingFile, repository.Lenient)
}

// newImageStore picks S3 when a bucket is configured, local disk otherwise.
func newImageStore(ctx context.Context, cfg *config.Config) (upload.ImageStore, error) {
	if cfg.S3Bucket == "" {
		return upload.NewDiskStore(cfg.UploadDir), nil
	}

	client, err := upload.NewS3Client(ctx, upload.S3Options{
		Region:          cfg.S3Region,
		Endpoint:        cfg.S3Endpoint,
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create s3 client: %w", err)
	}
	return upload.NewS3Store(client, cfg.S3Bucket, cfg.S3PublicURL), nil
}

// newRenderer uses TEMPLATE_DIR when set, the embedded templates otherwise.
// In debug mode templates on disk are reloaded when they change.
func newRenderer(ctx context.Context, cfg *config.Config) (*web.Renderer, error) {
	if cfg.TemplateDir == "" {
		return web.NewRenderer(web.EmbeddedTemplates())
	}

	renderer, err := web.NewRenderer(os.DirFS(cfg.TemplateDir))
	if err != nil {
		return nil, err
	}
	if cfg.Debug {
		if err := renderer.Watch(ctx, cfg.TemplateDir); err != nil {
			return nil, fmt.Errorf("watch templates: %w", err)
		}
	}
	return renderer, nil
}

// buildHandler wires configuration into the router.
func buildHandler(ctx context.Context, cfg *config.Config, registerer prometheus.Registerer, gatherer prometheus.Gatherer) (http.Handler, error) {
	// Initialize repositories
	postRepo, projectRepo, pricingRepo := openRepositories(cfg)

	// Initialize image storage
	store, err := newImageStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	images := upload.NewIngestor(store, cfg.AllowedExtensions)

	// Initialize services
	content := service.NewContentService(postRepo, projectRepo, pricingRepo, images, validator.NewValidator())
	if err := registerer.Register(metrics.NewContentCollector(content)); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return nil, fmt.Errorf("register content collector: %w", err)
		}
	}

	renderer, err := newRenderer(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	return server.NewRouter(server.Deps{
		Content:  content,
		Sessions: auth.NewManager(cfg.SecretKey, cfg.SecureCookies),
		Gate: auth.NewGate(auth.Credentials{
			Username:     cfg.AdminUsername,
			Password:     cfg.AdminPassword,
			PasswordHash: cfg.AdminPasswordHash,
		}),
		Renderer:     renderer,
		ContentDir:   cfg.ContentDir,
		StaticDir:    cfg.StaticDir,
		MaxBodyBytes: cfg.MaxContentLength,
		Gatherer:     gatherer,
		AccessLog:    cfg.Debug,
	}), nil
}

func serve(ctx context.Context, cfg *config.Config) error {
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	if cfg.UsesDefaultCredentials() {
		logger.Warn("Default admin password or secret key in use; set BLOG_ADMIN_PASSWORD and SECRET_KEY")
	}

	handler, err := buildHandler(ctx, cfg, prometheus.DefaultRegisterer, nil)
	if err != nil {
		return err
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort),
			slog.String("content_dir", cfg.ContentDir))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for interrupt signal or a listener failure
	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server exited")
	return nil
}
