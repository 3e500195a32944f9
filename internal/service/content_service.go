package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/AdrianaGRO/PyArch.dev/internal/domain"
	"github.com/AdrianaGRO/PyArch.dev/internal/logger"
	"github.com/AdrianaGRO/PyArch.dev/internal/metrics"
	"github.com/AdrianaGRO/PyArch.dev/internal/repository"
	"github.com/AdrianaGRO/PyArch.dev/internal/validator"
)

// ContentService orchestrates post, project and pricing operations.
// Every call loads the documents fresh and every mutation rewrites the
// whole posts document.
type ContentService struct {
	postRepo    repository.PostRepository
	projectRepo repository.ProjectRepository
	pricingRepo repository.PricingRepository
	images      ImageIngestor
	validator   *validator.Validator

	now func() time.Time
}

// NewContentService creates a new ContentService.
func NewContentService(
	postRepo repository.PostRepository,
	projectRepo repository.ProjectRepository,
	pricingRepo repository.PricingRepository,
	images ImageIngestor,
	v *validator.Validator,
) *ContentService {
	return &ContentService{
		postRepo:    postRepo,
		projectRepo: projectRepo,
		pricingRepo: pricingRepo,
		images:      images,
		validator:   v,
		now:         time.Now,
	}
}

// SetClock replaces the time source used for created_at.
func (s *ContentService) SetClock(now func() time.Time) {
	s.now = now
}

// CreatePost validates in, stores the optional image, and appends a new
// post with id max+1. The published field is left unset.
func (s *ContentService) CreatePost(ctx context.Context, in domain.PostInput) (*domain.Post, error) {
	if err := s.validator.ValidatePostInput(&in); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidationRejected, err)
	}

	posts, err := s.postRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load posts: %w", err)
	}

	content, err := s.attachImage(ctx, in.Content, in.Title, in.Image)
	if err != nil {
		return nil, err
	}

	post := domain.Post{
		ID:        domain.NextPostID(posts),
		Title:     in.Title,
		Content:   content,
		Category:  in.Category,
		CreatedAt: s.now().Format(domain.PostTimeLayout),
	}
	posts = append(posts, post)

	if err := s.postRepo.SaveAll(ctx, posts); err != nil {
		return nil, fmt.Errorf("save posts: %w", err)
	}

	metrics.ObservePostMutation("create")
	logger.InfoContext(ctx, "Post created",
		slog.Int("post_id", post.ID),
		slog.String("title", post.Title))
	return &post, nil
}

// UpdatePost replaces title, content and category of the post with id.
// created_at and every other stored field are kept.
func (s *ContentService) UpdatePost(ctx context.Context, id string, in domain.PostInput) (*domain.Post, error) {
	posts, err := s.postRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load posts: %w", err)
	}

	idx := domain.FindPost(posts, id)
	if idx < 0 {
		return nil, fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}

	if err := s.validator.ValidatePostInput(&in); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidationRejected, err)
	}

	content, err := s.attachImage(ctx, in.Content, in.Title, in.Image)
	if err != nil {
		return nil, err
	}

	post := &posts[idx]
	post.Title = in.Title
	post.Content = content
	post.Category = in.Category

	if err := s.postRepo.SaveAll(ctx, posts); err != nil {
		return nil, fmt.Errorf("save posts: %w", err)
	}

	metrics.ObservePostMutation("update")
	logger.InfoContext(ctx, "Post updated", slog.Int("post_id", post.ID))
	updated := *post
	return &updated, nil
}

// DeletePost removes the post with id if present. The collection is saved
// either way.
func (s *ContentService) DeletePost(ctx context.Context, id string) error {
	posts, err := s.postRepo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load posts: %w", err)
	}

	kept := make([]domain.Post, 0, len(posts))
	for _, p := range posts {
		if p.IDString() != id {
			kept = append(kept, p)
		}
	}
	removed := len(kept) != len(posts)

	if err := s.postRepo.SaveAll(ctx, kept); err != nil {
		return fmt.Errorf("save posts: %w", err)
	}

	if removed {
		metrics.ObservePostMutation("delete")
		logger.InfoContext(ctx, "Post deleted", slog.String("post_id", id))
	} else {
		logger.DebugContext(ctx, "Delete of unknown post ignored", slog.String("post_id", id))
	}
	return nil
}

// GetPost returns the post whose id matches id as a string. Unpublished
// posts are reported as not found unless includeUnpublished is set.
func (s *ContentService) GetPost(ctx context.Context, id string, includeUnpublished bool) (*domain.Post, error) {
	posts, err := s.postRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load posts: %w", err)
	}

	idx := domain.FindPost(posts, id)
	if idx < 0 || (!includeUnpublished && !posts[idx].IsPublished()) {
		return nil, fmt.Errorf("post %s: %w", id, domain.ErrNotFound)
	}
	post := posts[idx]
	return &post, nil
}

// ListPosts returns posts sorted newest first by their display date.
func (s *ContentService) ListPosts(ctx context.Context, includeUnpublished bool) ([]domain.Post, error) {
	posts, err := s.postRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load posts: %w", err)
	}

	visible := make([]domain.Post, 0, len(posts))
	for _, p := range posts {
		if includeUnpublished || p.IsPublished() {
			visible = append(visible, p)
		}
	}
	sortNewestFirst(visible)
	return visible, nil
}

// RecentPosts returns at most n published posts, newest first.
func (s *ContentService) RecentPosts(ctx context.Context, n int) ([]domain.Post, error) {
	posts, err := s.ListPosts(ctx, false)
	if err != nil {
		return nil, err
	}
	if n >= 0 && len(posts) > n {
		posts = posts[:n]
	}
	return posts, nil
}

// ListProjects returns all projects in file order.
func (s *ContentService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.projectRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}
	return projects, nil
}

// GetProject returns the project with slug.
func (s *ContentService) GetProject(ctx context.Context, slug string) (*domain.Project, error) {
	project, err := s.projectRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}
	if project == nil {
		return nil, fmt.Errorf("project %s: %w", slug, domain.ErrNotFound)
	}
	return project, nil
}

// FeaturedProject returns the first featured project, else the first
// project, else nil.
func (s *ContentService) FeaturedProject(ctx context.Context) (*domain.Project, error) {
	projects, err := s.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Featured(projects), nil
}

// Pricing returns the pricing document.
func (s *ContentService) Pricing(ctx context.Context) (*domain.Pricing, error) {
	pricing, err := s.pricingRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load pricing: %w", err)
	}
	return pricing, nil
}

// ContentStats counts posts by visibility and projects. It backs the
// content gauges exposed on /metrics.
func (s *ContentService) ContentStats(ctx context.Context) (metrics.ContentStats, error) {
	var stats metrics.ContentStats

	posts, err := s.postRepo.LoadAll(ctx)
	if err != nil {
		return stats, fmt.Errorf("load posts: %w", err)
	}
	for _, p := range posts {
		if p.IsPublished() {
			stats.PublishedPosts++
		} else {
			stats.UnpublishedPosts++
		}
	}

	projects, err := s.projectRepo.LoadAll(ctx)
	if err != nil {
		return stats, fmt.Errorf("load projects: %w", err)
	}
	stats.Projects = len(projects)
	return stats, nil
}

// attachImage stores image and appends its markdown reference to content.
// A refused file is logged and the content is returned unchanged.
func (s *ContentService) attachImage(ctx context.Context, content, title string, image *domain.ImageFile) (string, error) {
	if image == nil || image.Filename == "" || s.images == nil {
		return content, nil
	}

	path, err := s.images.Accept(ctx, image.Filename, image.Body)
	if errors.Is(err, domain.ErrValidationRejected) {
		logger.WarnContext(ctx, "Ignoring image upload", slog.String("error", err.Error()))
		return content, nil
	}
	if err != nil {
		return "", fmt.Errorf("store image: %w", err)
	}
	return content + fmt.Sprintf("\n\n![%s](%s)\n\n", title, path), nil
}

func sortNewestFirst(posts []domain.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].DisplayDate() > posts[j].DisplayDate()
	})
}
