// Package upload stores images attached to posts.
package upload

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/AdrianaGRO/PyArch.dev/internal/domain"
	"github.com/AdrianaGRO/PyArch.dev/internal/logger"
	"github.com/AdrianaGRO/PyArch.dev/internal/metrics"
)

// ImageStore persists an uploaded image under name and returns the public
// path that goes into the post markdown.
type ImageStore interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
}

// Ingestor validates uploaded images and hands them to an ImageStore.
type Ingestor struct {
	store   ImageStore
	allowed map[string]struct{}
	newName func() string
}

// NewIngestor creates an ingestor accepting the given extensions.
// Extensions are compared case-insensitively and without the leading dot.
func NewIngestor(store ImageStore, allowed []string) *Ingestor {
	set := make(map[string]struct{}, len(allowed))
	for _, ext := range allowed {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext != "" {
			set[ext] = struct{}{}
		}
	}
	return &Ingestor{
		store:   store,
		allowed: set,
		newName: func() string {
			id := uuid.New()
			return strings.ReplaceAll(id.String(), "-", "")
		},
	}
}

// Allowed reports whether filename carries an accepted extension.
func (i *Ingestor) Allowed(filename string) bool {
	ext, ok := extension(filename)
	if !ok {
		return false
	}
	_, ok = i.allowed[strings.ToLower(ext)]
	return ok
}

// AllowedFile reports whether name has a dot and its final extension is in allowed.
func AllowedFile(name string, allowed []string) bool {
	return NewIngestor(nil, allowed).Allowed(name)
}

// Accept stores r under a fresh random name that keeps the original
// extension and returns the public path. A missing or disallowed extension
// returns domain.ErrValidationRejected.
func (i *Ingestor) Accept(ctx context.Context, filename string, r io.Reader) (string, error) {
	ext, ok := extension(filename)
	if _, allowed := i.allowed[strings.ToLower(ext)]; !ok || !allowed {
		metrics.ObserveUpload("rejected", 0)
		logger.WarnContext(ctx, "Rejected image upload", slog.String("filename", filename))
		return "", fmt.Errorf("%w: file type not allowed: %q", domain.ErrValidationRejected, filename)
	}

	name := i.newName() + "." + ext
	counter := &countingReader{r: r}
	publicPath, err := i.store.Save(ctx, name, counter)
	if err != nil {
		metrics.ObserveUpload("failed", 0)
		return "", fmt.Errorf("store image %s: %w", name, err)
	}

	metrics.ObserveUpload("accepted", counter.n)
	logger.InfoContext(ctx, "Stored image upload",
		slog.String("name", name),
		slog.Int64("bytes", counter.n))
	return publicPath, nil
}

// extension returns the text after the last dot of the base name, with its case kept.
func extension(filename string) (string, bool) {
	base := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	idx := strings.LastIndex(base, ".")
	if idx < 0 || idx == len(base)-1 {
		return "", false
	}
	return base[idx+1:], true
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
