package sessionRepo

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"marhaba/models"
)

// FileSessionRepo persists the session record as a single JSON file. An absent
// file means no session is stored.
type FileSessionRepo struct {
	path string
}

// NewFileSessionRepo returns a session repository backed by the given file path.
func NewFileSessionRepo(path string) *FileSessionRepo {
	return &FileSessionRepo{path: path}
}

// Save writes the session record, replacing any prior one.
func (r *FileSessionRepo) Save(s *models.Session) error {
	if s == nil {
		return fmt.Errorf("session is nil")
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to prepare session directory: %w", err)
		}
	}
	if err := os.WriteFile(r.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Load reads the stored session record, or (nil, nil) when absent.
func (r *FileSessionRepo) Load() (*models.Session, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}
	var s models.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse session file: %w", err)
	}
	return &s, nil
}

// Clear empties the slot; clearing an already-empty slot is a no-op.
func (r *FileSessionRepo) Clear() error {
	if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear session file: %w", err)
	}
	return nil
}
