package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/helpcenter/pkg/corpus"
)

// DefaultPath is where `helpcenter build` writes the corpus when no path is given.
const DefaultPath = "corpus.json"

// Artifact is the serialized corpus on the local filesystem.
// It implements both ports.CorpusSource and ports.CorpusPublisher.
type Artifact struct {
	Path string
}

// New creates an Artifact at path (DefaultPath when empty).
func New(path string) *Artifact {
	if path == "" {
		path = DefaultPath
	}
	return &Artifact{Path: path}
}

// Load reads and decodes the artifact.
func (a *Artifact) Load(_ context.Context) (*corpus.Corpus, error) {
	data, err := os.ReadFile(a.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("corpus artifact %s not found (run `helpcenter build` first): %w", a.Path, err)
		}
		return nil, fmt.Errorf("failed to read corpus artifact: %w", err)
	}

	c, err := corpus.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.Path, err)
	}
	return c, nil
}

// Publish writes the artifact atomically.
// It writes to a temporary file first, syncs via fsync, and then renames it to the destination.
func (a *Artifact) Publish(_ context.Context, c *corpus.Corpus) error {
	data, err := corpus.Encode(c)
	if err != nil {
		return err
	}

	dir := filepath.Dir(a.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to ensure artifact directory: %w", err)
	}

	// Same directory, so the rename stays on one filesystem.
	tmpFile, err := os.CreateTemp(dir, "tmp-corpus-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	// Windows cannot rename an open file.
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// On Windows, os.Rename fails if dest exists.
	if _, err := os.Stat(a.Path); err == nil {
		if err := os.Remove(a.Path); err != nil {
			return fmt.Errorf("failed to remove existing artifact for overwrite: %w", err)
		}
	}
	if err := os.Rename(tmpPath, a.Path); err != nil {
		return fmt.Errorf("failed to rename temp file to artifact: %w", err)
	}
	return nil
}
