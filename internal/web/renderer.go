// Package web loads the HTML templates and renders them for gin.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/render"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/AdrianaGRO/PyArch.dev/internal/markdown"
)

//go:embed templates
var embedded embed.FS

const (
	layoutFile  = "layout.html"
	layoutName  = "layout"
	partialsDir = "partials"
	pagesDir    = "pages"
)

// EmbeddedTemplates returns the templates compiled into the binary.
func EmbeddedTemplates() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// FuncMap returns the functions available to every template.
func FuncMap() template.FuncMap {
	titleCaser := cases.Title(language.English)
	return template.FuncMap{
		"md": markdown.Render,
		"title": func(s string) string {
			return titleCaser.String(strings.ReplaceAll(s, "_", " "))
		},
		"year": func() int { return time.Now().Year() },
	}
}

// Renderer holds one parsed template set per page. Each set is the layout
// plus the partials plus the page itself, so pages can all define "content".
// It implements gin's render.HTMLRender.
type Renderer struct {
	fsys fs.FS

	mu    sync.RWMutex
	pages map[string]*template.Template
}

// NewRenderer parses every page found in fsys.
func NewRenderer(fsys fs.FS) (*Renderer, error) {
	r := &Renderer{fsys: fsys}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload parses the templates again. On failure the previous set stays active.
func (r *Renderer) Reload() error {
	pages, err := parsePages(r.fsys)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.pages = pages
	r.mu.Unlock()
	return nil
}

// Has reports whether a page template named name exists.
func (r *Renderer) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.pages[name]
	return ok
}

// Names lists the loaded page names in order.
func (r *Renderer) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.pages))
	for name := range r.pages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Instance returns the gin render for page name.
func (r *Renderer) Instance(name string, data any) render.Render {
	r.mu.RLock()
	tmpl, ok := r.pages[name]
	r.mu.RUnlock()
	if !ok {
		return missingPage{name: name}
	}
	return render.HTML{Template: tmpl, Name: layoutName, Data: data}
}

func parsePages(fsys fs.FS) (map[string]*template.Template, error) {
	base, err := template.New(layoutName).Funcs(FuncMap()).ParseFS(fsys, layoutFile)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	partials, err := fs.Glob(fsys, path.Join(partialsDir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("list partials: %w", err)
	}
	if len(partials) > 0 {
		if base, err = base.ParseFS(fsys, partials...); err != nil {
			return nil, fmt.Errorf("parse partials: %w", err)
		}
	}

	files, err := fs.Glob(fsys, path.Join(pagesDir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no page templates in %s", pagesDir)
	}

	pages := make(map[string]*template.Template, len(files))
	for _, file := range files {
		page, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", file, err)
		}
		if page, err = page.ParseFS(fsys, file); err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		pages[path.Base(file)] = page
	}
	return pages, nil
}

type missingPage struct {
	name string
}

func (m missingPage) Render(w http.ResponseWriter) error {
	return fmt.Errorf("html template %q is not defined", m.name)
}

func (m missingPage) WriteContentType(w http.ResponseWriter) {
	header := w.Header()
	if val := header["Content-Type"]; len(val) == 0 {
		header["Content-Type"] = []string{"text/html; charset=utf-8"}
	}
}
