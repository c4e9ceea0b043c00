package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryPort struct {
	doc   map[string]any
	loads int
	saves int
	fail  error
}

func (m *memoryPort) Load() (map[string]any, error) {
	m.loads++
	out := make(map[string]any, len(m.doc))
	for k, v := range m.doc {
		out[k] = v
	}
	return out, nil
}

func (m *memoryPort) Save(doc map[string]any) error {
	if m.fail != nil {
		return m.fail
	}
	m.saves++
	m.doc = doc
	return nil
}

func TestStoreLoadsOnce(t *testing.T) {
	port := &memoryPort{doc: map[string]any{DefaultPathKey: "/journal"}}
	s := NewStore(port)

	c, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, "/journal", c.DefaultPath)

	_, err = s.Get()
	require.NoError(t, err)
	assert.Equal(t, 1, port.loads)
}

func TestStoreUpdateMergesShallowly(t *testing.T) {
	port := &memoryPort{doc: map[string]any{
		DefaultPathKey: "/old",
		"theme":        "dark",
		"window":       map[string]any{"width": 800.0, "height": 600.0},
	}}
	s := NewStore(port)

	c, err := s.Update(map[string]any{
		DefaultPathKey: "/new",
		"window":       map[string]any{"width": 1024.0},
	})
	require.NoError(t, err)
	assert.Equal(t, "/new", c.DefaultPath)
	assert.Equal(t, "dark", c.Extra["theme"])
	assert.Equal(t, map[string]any{"width": 1024.0}, c.Extra["window"])
	assert.Equal(t, "/new", port.doc[DefaultPathKey])
	assert.Equal(t, 1, port.saves)
}

func TestStoreUpdateFailureKeepsPrevious(t *testing.T) {
	port := &memoryPort{doc: map[string]any{DefaultPathKey: "/old"}}
	s := NewStore(port)
	port.fail = errors.New("disk full")

	c, err := s.SetDefaultPath("/new")
	require.Error(t, err)
	assert.Equal(t, "/old", c.DefaultPath)

	c, err = s.Get()
	require.NoError(t, err)
	assert.Equal(t, "/old", c.DefaultPath)
}

func TestStoreDefaultsMissingDefaultPath(t *testing.T) {
	s := NewStore(&memoryPort{doc: map[string]any{}})
	c, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, "", c.DefaultPath)
	assert.Equal(t, "", c.Map()[DefaultPathKey])
}

func TestFilePortCreatesDefault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".write")
	port := NewFilePort(dir)

	doc, err := port.Load()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{DefaultPathKey: ""}, doc)

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.JSONEq(t, `{"defaultPath": ""}`, string(data))
}

func TestFilePortPreservesKeyCase(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(NewFilePort(dir))

	_, err := s.Update(map[string]any{DefaultPathKey: "/journal", "lastOpenedEntry": "240102-100000.txt"})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "/journal", doc["defaultPath"])
	assert.Equal(t, "240102-100000.txt", doc["lastOpenedEntry"])

	c, err := NewStore(NewFilePort(dir)).Get()
	require.NoError(t, err)
	assert.Equal(t, "/journal", c.DefaultPath)
	assert.Equal(t, "240102-100000.txt", c.Extra["lastOpenedEntry"])
}

func TestFilePortCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("{not json"), 0o644))

	_, err := NewStore(NewFilePort(dir)).Get()
	require.Error(t, err)
}

func TestConfigMapRoundTrip(t *testing.T) {
	c := FromMap(map[string]any{DefaultPathKey: "/j", "x": 1.0, "defaultpath": "other"})
	assert.Equal(t, "/j", c.DefaultPath)
	assert.Equal(t, "other", c.Extra["defaultpath"])
	assert.Equal(t, map[string]any{DefaultPathKey: "/j", "x": 1.0, "defaultpath": "other"}, c.Map())
}
