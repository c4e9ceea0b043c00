// Package store lists, reads and writes journal files in a directory.
package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/djherbis/times"
	"github.com/mitchellh/go-homedir"
	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/write/pkg/entry"
)

// Repository defines the persistence contract for journal files. Every call
// reflects what is on disk at that moment; nothing is cached between calls.
type Repository interface {
	List(ctx context.Context, dir string) ([]entry.File, error)
	Read(dir, name string) (string, error)
	Write(dir, name, content string) (string, error)
}

// Option customises New.
type Option func(*repository)

// WithLocation sets the zone used to decode filename tokens when the
// filesystem cannot report a birth time.
func WithLocation(loc *time.Location) Option {
	return func(r *repository) {
		if loc != nil {
			r.loc = loc
		}
	}
}

// New creates a Repository backed by one diskv store per directory.
func New(opts ...Option) Repository {
	r := &repository{
		disks: make(map[string]*diskv.Diskv),
		loc:   time.Local,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type repository struct {
	mu    sync.Mutex
	disks map[string]*diskv.Diskv
	loc   *time.Location
}

// disk returns the diskv store rooted at dir. Keys are plain file names
// stored flat in dir and reads bypass the cache.
func (r *repository) disk(dir string) *diskv.Diskv {
	dir = filepath.Clean(dir)
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.disks[dir]
	if !ok {
		d = diskv.New(diskv.Options{
			BasePath:     dir,
			Transform:    flatTransform,
			CacheSizeMax: 0,
			PathPerm:     0o755,
			FilePerm:     0o644,
		})
		r.disks[dir] = d
	}
	return d
}

func flatTransform(string) []string { return []string{} }

func (r *repository) List(ctx context.Context, dir string) ([]entry.File, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, &entry.ValidationError{Field: "directory", Reason: "required"}
	}
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, &entry.IOError{Op: "list", Path: dir, Err: err}
	}

	files := make([]entry.File, 0, len(dirents))
	for _, d := range dirents {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := d.Name()
		if d.IsDir() || !entry.IsEntryFile(name) {
			continue
		}
		f, err := r.stat(dir, name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				// Removed between ReadDir and Stat.
				continue
			}
			return nil, &entry.IOError{Op: "stat", Path: filepath.Join(dir, name), Err: err}
		}
		files = append(files, f)
	}
	return files, nil
}

// stat prefers the filesystem birth time, then the token in the name, then
// the modification time.
func (r *repository) stat(dir, name string) (entry.File, error) {
	ts, err := times.Stat(filepath.Join(dir, name))
	if err != nil {
		return entry.File{}, err
	}
	f := entry.File{Name: name, ModifiedAt: ts.ModTime()}
	switch {
	case ts.HasBirthTime():
		f.CreatedAt = ts.BirthTime()
	default:
		if created, ok := entry.CreatedFromName(name, r.loc); ok {
			f.CreatedAt = created
		} else {
			f.CreatedAt = ts.ModTime()
		}
	}
	return f, nil
}

func (r *repository) Read(dir, name string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		return "", &entry.ValidationError{Field: "directory", Reason: "required"}
	}
	if err := entry.ValidateName(name); err != nil {
		return "", err
	}
	val, err := r.disk(dir).Read(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &entry.NotFoundError{Name: name, Err: err}
		}
		return "", &entry.IOError{Op: "read", Path: filepath.Join(dir, name), Err: err}
	}
	return string(val), nil
}

func (r *repository) Write(dir, name, content string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		return "", &entry.ValidationError{Field: "directory", Reason: "required"}
	}
	if err := entry.ValidateName(name); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := r.disk(dir).Write(name, []byte(content)); err != nil {
		return "", &entry.IOError{Op: "write", Path: path, Err: err}
	}
	return path, nil
}

// CreateDirectory creates base/name and any missing parents.
func CreateDirectory(base, name string) (string, error) {
	if strings.TrimSpace(base) == "" || strings.TrimSpace(name) == "" {
		return "", &entry.ValidationError{Field: "directory", Reason: "both path and folder name are required"}
	}
	base, err := Expand(base)
	if err != nil {
		return "", err
	}
	target := filepath.Join(base, name)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return "", &entry.IOError{Op: "create directory", Path: target, Err: err}
	}
	return target, nil
}

// Expand resolves a leading ~ to the user's home directory.
func Expand(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("store: expand %q: %w", path, err)
	}
	return expanded, nil
}
