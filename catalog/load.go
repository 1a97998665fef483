package catalog

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/khristoforovs/arshin/registry"
)

// LoadFile reads a catalog document from the given path and parses it.
// Read failures are reported as StorageError; parse and registration
// failures carry the path for context.
func LoadFile(path string) (*registry.Registry, error) {
	defs, err := loadDefinitions(path)
	if err != nil {
		return nil, err
	}

	r, err := buildRegistry(defs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("Loaded unit catalog", slog.String("path", path), slog.Int("units", r.Len()))
	return r, nil
}

// LoadGlob reads every catalog matching the given doublestar patterns
// (e.g. "catalogs/**/*.units") and parses them into a single registry.
// Duplicate names across files are rejected the same way as within one
// document. Patterns that match nothing are a StorageError.
func LoadGlob(patterns ...string) (*registry.Registry, error) {
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, &StorageError{Path: pattern, Err: err}
		}
		paths = append(paths, matches...)
	}
	if len(paths) == 0 {
		return nil, &StorageError{
			Path: fmt.Sprintf("%v", patterns),
			Err:  fmt.Errorf("no catalog files matched"),
		}
	}

	r := registry.New()
	for _, path := range paths {
		defs, err := loadDefinitions(path)
		if err != nil {
			return nil, err
		}
		for _, def := range defs {
			if err := registerDefinition(r, def); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	slog.Debug("Loaded unit catalogs",
		slog.Int("files", len(paths)), slog.Int("units", r.Len()))
	return r, nil
}

func loadDefinitions(path string) ([]definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &StorageError{Path: path, Err: err}
	}

	defs, err := parseDocument(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return defs, nil
}
