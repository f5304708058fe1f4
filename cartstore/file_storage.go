package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/i-iangurazov/roksosh/models"
)

// FileStorage keeps the cart snapshot in a JSON file on the device. This is
// the default persistence when no Redis is configured.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (f *FileStorage) Load(_ context.Context) (models.CartSnapshot, bool, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.CartSnapshot{}, false, nil
	}
	if err != nil {
		return models.CartSnapshot{}, false, err
	}

	var snap models.CartSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return models.CartSnapshot{}, false, err
	}
	return snap, true, nil
}

// Save writes the snapshot through a temp file and rename so a crash mid-write
// never leaves a half-written snapshot behind.
func (f *FileStorage) Save(_ context.Context, snap models.CartSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}
