package repository

import (
	"context"

	"github.com/AdrianaGRO/PyArch.dev/internal/domain"
)

// PostRepository defines methods for post data access.
type PostRepository interface {
	// LoadAll returns every stored post, published or not.
	LoadAll(ctx context.Context) ([]domain.Post, error)
	// SaveAll replaces the stored collection with posts.
	SaveAll(ctx context.Context, posts []domain.Post) error
}

// ProjectRepository defines methods for project data access.
type ProjectRepository interface {
	LoadAll(ctx context.Context) ([]domain.Project, error)
	SaveAll(ctx context.Context, projects []domain.Project) error
	// FindBySlug returns nil, nil when no project has the slug.
	FindBySlug(ctx context.Context, slug string) (*domain.Project, error)
}

// PricingRepository defines read access to the pricing document.
type PricingRepository interface {
	Load(ctx context.Context) (*domain.Pricing, error)
}
