package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// FileKV stores the whole key space as a single JSON object on disk,
// mirroring browser local storage: synchronous reads and writes, the file
// rewritten in full on every Set. A missing or unreadable file behaves as
// an empty store.
type FileKV struct {
	mu   sync.Mutex
	path string
}

// NewFileKV opens (or lazily creates) a file-backed store at path.
func NewFileKV(path string) (*FileKV, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, errors.New("storage: file path is empty")
	}
	if dir := filepath.Dir(trimmed); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: create data dir: %w", err)
		}
	}
	return &FileKV{path: trimmed}, nil
}

// Path returns the backing file location.
func (f *FileKV) Path() string {
	return f.path
}

func (f *FileKV) Get(key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data := f.load()
	value, ok := data[key]
	if !ok {
		return nil, false, nil
	}
	return []byte(value), true, nil
}

func (f *FileKV) Set(key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data := f.load()
	data[key] = string(value)
	return f.flush(data)
}

func (f *FileKV) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data := f.load()
	if _, ok := data[key]; !ok {
		return nil
	}
	delete(data, key)
	return f.flush(data)
}

func (f *FileKV) Keys(prefix string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data := f.load()
	keys := make([]string, 0, len(data))
	for key := range data {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// load reads the backing file, falling back to an empty map when the file
// is missing or does not parse. Corrupt state is never surfaced to the
// caller.
func (f *FileKV) load() map[string]string {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return make(map[string]string)
	}
	data := make(map[string]string)
	if err := json.Unmarshal(raw, &data); err != nil {
		return make(map[string]string)
	}
	return data
}

func (f *FileKV) flush(data map[string]string) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: encode store: %w", err)
	}
	if err := os.WriteFile(f.path, raw, fs.FileMode(0o644)); err != nil {
		return fmt.Errorf("storage: write store: %w", err)
	}
	return nil
}
