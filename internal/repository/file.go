package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"

	"github.com/spf13/afero"
)

// fileRepository keeps one JSON document per namespace, shaped like
// {"key": ["member", ...]}.
type fileRepository struct {
	fs   afero.Fs
	path string
}

func NewFileRepository(fsys afero.Fs, dir, namespace string) (FavoritesRepository, error) {
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create preferences directory: %w", err)
	}
	return &fileRepository{
		fs:   fsys,
		path: filepath.Join(dir, namespace+".json"),
	}, nil
}

func (r *fileRepository) Load(_ context.Context, key string) ([]string, error) {
	doc, err := r.read()
	if err != nil {
		return nil, err
	}
	return doc[key], nil
}

func (r *fileRepository) Save(_ context.Context, key string, members []string) error {
	doc, err := r.read()
	if errors.Is(err, ErrCorrupt) {
		doc = map[string][]string{}
	} else if err != nil {
		return err
	}

	stored := slices.Clone(members)
	slices.Sort(stored)
	doc[key] = stored
	return r.write(doc)
}

func (r *fileRepository) Delete(_ context.Context, key string) error {
	doc, err := r.read()
	if errors.Is(err, ErrCorrupt) {
		doc = map[string][]string{}
	} else if err != nil {
		return err
	}

	delete(doc, key)
	return r.write(doc)
}

func (r *fileRepository) read() (map[string][]string, error) {
	data, err := afero.ReadFile(r.fs, r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string][]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", r.path, err)
	}

	doc := map[string][]string{}
	if len(data) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, r.path, err)
	}
	// A literal null decodes into a nil map.
	if doc == nil {
		doc = map[string][]string{}
	}
	return doc, nil
}

// write goes through a temp file and a rename so readers never see a partial document.
func (r *fileRepository) write(doc map[string][]string) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := afero.WriteFile(r.fs, tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := r.fs.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", r.path, err)
	}
	return nil
}
