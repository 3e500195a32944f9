package service

import (
	"context"
	"io"

	"github.com/AdrianaGRO/PyArch.dev/internal/domain"
)

// ImageIngestor stores an uploaded image and returns its public path.
// A refused file returns an error wrapping domain.ErrValidationRejected.
type ImageIngestor interface {
	Accept(ctx context.Context, filename string, r io.Reader) (string, error)
}

// ContentServiceInterface defines the content operations used by the HTTP layer.
// Used for dependency injection and mocking in tests.
type ContentServiceInterface interface {
	// CreatePost validates the form, attaches an optional image and stores a new post.
	CreatePost(ctx context.Context, in domain.PostInput) (*domain.Post, error)
	// UpdatePost edits an existing post in place.
	UpdatePost(ctx context.Context, id string, in domain.PostInput) (*domain.Post, error)
	// DeletePost removes a post. Unknown ids are not an error.
	DeletePost(ctx context.Context, id string) error
	// GetPost returns one post by its id.
	GetPost(ctx context.Context, id string, includeUnpublished bool) (*domain.Post, error)
	// ListPosts returns posts newest first.
	ListPosts(ctx context.Context, includeUnpublished bool) ([]domain.Post, error)
	// RecentPosts returns the n newest published posts.
	RecentPosts(ctx context.Context, n int) ([]domain.Post, error)

	ListProjects(ctx context.Context) ([]domain.Project, error)
	GetProject(ctx context.Context, slug string) (*domain.Project, error)
	FeaturedProject(ctx context.Context) (*domain.Project, error)

	Pricing(ctx context.Context) (*domain.Pricing, error)
}
