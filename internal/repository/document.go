package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/AdrianaGRO/PyArch.dev/internal/domain"
	"github.com/AdrianaGRO/PyArch.dev/internal/logger"
	"github.com/AdrianaGRO/PyArch.dev/internal/metrics"
)

// LoadMode selects how a document reacts to a missing or undecodable file.
type LoadMode int

const (
	// Strict returns ErrStorageUnavailable or ErrMalformedStorage to the caller.
	Strict LoadMode = iota
	// Lenient logs the failure and hands back the empty default.
	Lenient
)

// String returns the mode name.
func (m LoadMode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Lenient:
		return "lenient"
	default:
		return fmt.Sprintf("LoadMode(%d)", int(m))
	}
}

// document is one JSON file that is always read whole and rewritten whole.
// There is no locking: two concurrent load-modify-save cycles lose one update.
type document struct {
	name string
	path string
	mode LoadMode
}

// readDocument decodes the file into a fresh T. Under Lenient, failures yield empty.
func readDocument[T any](ctx context.Context, d document, empty T) (T, error) {
	if err := ctx.Err(); err != nil {
		return empty, err
	}

	timer := metrics.NewTimer()
	value, err := decodeFile[T](d.path)
	metrics.ObserveStorage(d.name, "load", err, timer.Seconds())

	if err == nil {
		return value, nil
	}
	if d.mode == Lenient {
		logger.WithDocument(d.name).WarnContext(ctx, "Falling back to empty content",
			slog.String("path", d.path),
			slog.String("error", err.Error()))
		return empty, nil
	}
	return empty, err
}

func decodeFile[T any](path string) (T, error) {
	var value T
	data, err := os.ReadFile(path)
	if err != nil {
		return value, fmt.Errorf("%w: read %s: %w", domain.ErrStorageUnavailable, path, err)
	}
	if err := json.Unmarshal(data, &value); err != nil {
		var zero T
		return zero, fmt.Errorf("%w: decode %s: %w", domain.ErrMalformedStorage, path, err)
	}
	return value, nil
}

// writeDocument encodes v with four-space indentation and replaces the file.
// The bytes go to a temp file in the same directory which is then renamed
// over the target, so readers see either the old or the new document.
func writeDocument(ctx context.Context, d document, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	timer := metrics.NewTimer()
	err := encodeFile(d.path, v)
	metrics.ObserveStorage(d.name, "save", err, timer.Seconds())
	if err != nil {
		logger.WithDocument(d.name).ErrorContext(ctx, "Failed to save content",
			slog.String("path", d.path),
			slog.String("error", err.Error()))
	}
	return err
}

func encodeFile(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
