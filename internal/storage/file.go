package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// document is the on-disk layout of the settings file.
type document struct {
	Values map[string]string `toml:"values"`
}

// File persists values in a TOML document. Every write rewrites the whole
// file through a temp file and rename, so readers never see a partial file.
type File struct {
	path string

	mu     sync.Mutex
	values map[string]string
	closed bool
}

// NewFile opens (or lazily creates) the settings file at path.
func NewFile(path string) (*File, error) {
	if path == "" {
		return nil, errors.New("settings file path is empty")
	}
	f := &File{path: path, values: make(map[string]string)}
	if err := f.load(); err != nil {
		return nil, err
	}
	return f, nil
}

// Path returns the settings file location.
func (f *File) Path() string {
	return f.path
}

func (f *File) load() error {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read settings %s: %w", f.path, err)
	}

	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse settings %s: %w", f.path, err)
	}
	if doc.Values != nil {
		f.values = doc.Values
	}
	return nil
}

// flush must be called with f.mu held.
func (f *File) flush() error {
	data, err := toml.Marshal(document{Values: f.values})
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".settings-*.toml")
	if err != nil {
		return fmt.Errorf("create temp settings: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp settings: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp settings: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace settings: %w", err)
	}
	return nil
}

func (f *File) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return "", false, ErrClosed
	}
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *File) Set(ctx context.Context, key, value string) error {
	return f.SetMany(ctx, map[string]string{key: value})
}

func (f *File) SetMany(_ context.Context, values map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}

	previous := make(map[string]*string, len(values))
	for k, v := range values {
		if old, ok := f.values[k]; ok {
			previous[k] = &old
		} else {
			previous[k] = nil
		}
		f.values[k] = v
	}

	if err := f.flush(); err != nil {
		// Keep memory consistent with disk.
		for k, old := range previous {
			if old == nil {
				delete(f.values, k)
			} else {
				f.values[k] = *old
			}
		}
		return err
	}
	return nil
}

func (f *File) Delete(_ context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}

	removed := make(map[string]string)
	for _, k := range keys {
		if v, ok := f.values[k]; ok {
			removed[k] = v
			delete(f.values, k)
		}
	}
	if len(removed) == 0 {
		return nil
	}

	if err := f.flush(); err != nil {
		for k, v := range removed {
			f.values[k] = v
		}
		return err
	}
	return nil
}

func (f *File) Has(ctx context.Context, key string) (bool, error) {
	_, ok, err := f.Get(ctx, key)
	return ok, err
}

func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}
