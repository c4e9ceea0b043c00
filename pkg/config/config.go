// Package config holds the persisted user preferences (the last used journal
// directory and any other keys a host chooses to store).
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

const (
	// DefaultPathKey is the preference holding the last used directory.
	DefaultPathKey = "defaultPath"
	// FileName is the name of the preference file inside the config dir.
	FileName = "config.json"
)

// Config is the typed view of the preference document. Keys other than
// defaultPath are preserved in Extra with their original casing.
type Config struct {
	DefaultPath string
	Extra       map[string]any
}

// FromMap builds a Config from a decoded preference document.
func FromMap(m map[string]any) Config {
	c := Config{Extra: make(map[string]any)}
	for k, v := range m {
		if k == DefaultPathKey {
			if s, ok := v.(string); ok {
				c.DefaultPath = s
			}
			continue
		}
		c.Extra[k] = v
	}
	return c
}

// Map renders c back into a preference document.
func (c Config) Map() map[string]any {
	m := make(map[string]any, len(c.Extra)+1)
	for k, v := range c.Extra {
		m[k] = v
	}
	m[DefaultPathKey] = c.DefaultPath
	return m
}

// Port reads and writes the preference document.
type Port interface {
	Load() (map[string]any, error)
	Save(map[string]any) error
}

// Store loads preferences once through a Port and writes them back on
// Update. It is safe for concurrent use.
type Store struct {
	port Port

	mu      sync.Mutex
	current map[string]any
}

// NewStore creates a Store over p.
func NewStore(p Port) *Store {
	return &Store{port: p}
}

func (s *Store) load() error {
	if s.current != nil {
		return nil
	}
	m, err := s.port.Load()
	if err != nil {
		return err
	}
	if m == nil {
		m = map[string]any{}
	}
	if _, ok := m[DefaultPathKey]; !ok {
		m[DefaultPathKey] = ""
	}
	s.current = m
	return nil
}

// Get returns the current preferences, loading them on first use.
func (s *Store) Get() (Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(); err != nil {
		return Config{}, err
	}
	return FromMap(s.current), nil
}

// Update shallowly merges partial into the preferences, persists the result
// and returns it. On a failed save the previous preferences stay in effect.
func (s *Store) Update(partial map[string]any) (Config, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(); err != nil {
		return Config{}, err
	}
	merged := make(map[string]any, len(s.current)+len(partial))
	for k, v := range s.current {
		merged[k] = v
	}
	for k, v := range partial {
		merged[k] = v
	}
	if err := s.port.Save(merged); err != nil {
		return FromMap(s.current), err
	}
	s.current = merged
	return FromMap(merged), nil
}

// SetDefaultPath records dir as the last used directory.
func (s *Store) SetDefaultPath(dir string) (Config, error) {
	return s.Update(map[string]any{DefaultPathKey: dir})
}

// FilePort keeps the preference document as pretty-printed JSON.
type FilePort struct {
	Path string
}

// NewFilePort stores preferences in dir/config.json.
func NewFilePort(dir string) *FilePort {
	return &FilePort{Path: filepath.Join(dir, FileName)}
}

// ensure creates the directory and a default document on first access.
func (p *FilePort) ensure() error {
	if err := os.MkdirAll(filepath.Dir(p.Path), 0o755); err != nil {
		return fmt.Errorf("config: ensure dir: %w", err)
	}
	if _, err := os.Stat(p.Path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: stat: %w", err)
	}
	return p.Save(map[string]any{DefaultPathKey: ""})
}

func (p *FilePort) Load() (map[string]any, error) {
	if err := p.ensure(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("config: read: %w", err)
	}
	m := make(map[string]any)
	if len(data) == 0 {
		return m, nil
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", p.Path, err)
	}
	return m, nil
}

func (p *FilePort) Save(m map[string]any) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(p.Path), 0o755); err != nil {
		return fmt.Errorf("config: ensure dir: %w", err)
	}
	tmp := p.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("config: write: %w", err)
	}
	if err := os.Rename(tmp, p.Path); err != nil {
		return fmt.Errorf("config: write: %w", err)
	}
	return nil
}
