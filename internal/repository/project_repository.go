package repository

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/AdrianaGRO/PyArch.dev/internal/domain"
)

// ErrReadOnly is returned when saving through a read-only repository.
var ErrReadOnly = errors.New("repository is read-only")

// JSONProjectRepository implements ProjectRepository on top of projects.json.
type JSONProjectRepository struct {
	doc      document
	readOnly bool
}

// NewJSONProjectRepository creates a projects repository. Projects are
// normally loaded in Lenient mode.
func NewJSONProjectRepository(path string, mode LoadMode) *JSONProjectRepository {
	return &JSONProjectRepository{doc: document{name: "projects", path: path, mode: mode}}
}

// ReadOnly returns a copy that never creates the backing file.
func (r *JSONProjectRepository) ReadOnly() *JSONProjectRepository {
	return &JSONProjectRepository{doc: r.doc, readOnly: true}
}

// Mode returns the load mode the repository was built with.
func (r *JSONProjectRepository) Mode() LoadMode { return r.doc.mode }

// Path returns the backing file.
func (r *JSONProjectRepository) Path() string { return r.doc.path }

// LoadAll returns the projects in file order. In Lenient mode a missing file
// is first created as an empty list, unless the repository is read-only.
func (r *JSONProjectRepository) LoadAll(ctx context.Context) ([]domain.Project, error) {
	if r.doc.mode == Lenient && !r.readOnly {
		r.ensureFile(ctx)
	}
	projects, err := readDocument(ctx, r.doc, []domain.Project{})
	if err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	return projects, nil
}

// SaveAll rewrites projects.json with the full collection.
func (r *JSONProjectRepository) SaveAll(ctx context.Context, projects []domain.Project) error {
	if r.readOnly {
		return fmt.Errorf("save %s: %w", r.doc.path, ErrReadOnly)
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	return writeDocument(ctx, r.doc, projects)
}

// FindBySlug scans the collection for slug.
func (r *JSONProjectRepository) FindBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	projects, err := r.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FindProject(projects, slug), nil
}

func (r *JSONProjectRepository) ensureFile(ctx context.Context) {
	if _, err := os.Stat(r.doc.path); !errors.Is(err, os.ErrNotExist) {
		return
	}
	// failures surface on the read that follows
	_ = writeDocument(ctx, r.doc, []domain.Project{})
}
