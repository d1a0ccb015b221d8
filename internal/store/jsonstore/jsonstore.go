// Package jsonstore persists the session store as a single JSON file.
//
// Human-readable, portable, whole-file overwrite. No locking; fine for a
// local single-user CLI, concurrent invocations are last-writer-wins.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/idilsaglam/ttd/internal/model"
)

const dataFileName = "tasks.json"

// DefaultPath returns the XDG config location of the data file,
// ~/.config/ttd/tasks.json on most systems.
func DefaultPath() (string, error) {
	p, err := xdg.ConfigFile(filepath.Join("ttd", dataFileName))
	if err != nil {
		return "", fmt.Errorf("resolve data path: %w", err)
	}
	return p, nil
}

// Load reads the store from path. A missing or empty file yields an empty
// store; so does malformed JSON, trading old data for availability rather
// than refusing to start. Every session is re-sorted on the way in.
func Load(path string) (*model.Store, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.NewStore(), nil
		}
		return nil, fmt.Errorf("read data file: %w", err)
	}

	store := model.NewStore()
	if strings.TrimSpace(string(b)) != "" {
		if err := json.Unmarshal(b, store); err != nil {
			store = model.NewStore()
		}
	}
	if store.Sessions == nil {
		store.Sessions = make(map[string][]model.Task)
	}
	for name, tasks := range store.Sessions {
		model.SortTasks(tasks)
		store.Sessions[name] = tasks
	}
	return store, nil
}

// Save writes the whole store to path, creating parent directories.
func Save(path string, store *model.Store) error {
	b, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write data file: %w", err)
	}
	return nil
}
