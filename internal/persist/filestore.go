package persist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

// FileStore keeps settings in a YAML file. Writes go through a sidecar
// lock file so multiple processes sharing one settings file cannot
// interleave, and through a temp-file rename so a crash mid-write leaves
// the old settings intact.
type FileStore struct {
	path string
	lock *flock.Flock
}

// NewFileStore returns a store backed by the YAML file at path. The file
// does not need to exist yet.
func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
		lock: flock.New(path + ".lock"),
	}
}

func (s *FileStore) Load() (Settings, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return Settings{}, nil
	}
	if err != nil {
		return Settings{}, err
	}

	var out Settings
	if err := yaml.Unmarshal(data, &out); err != nil {
		return Settings{}, fmt.Errorf("parse settings %s: %w", s.path, err)
	}
	return out, nil
}

func (s *FileStore) Save(settings Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}

	if err := s.lock.Lock(); err != nil {
		return err
	}
	defer s.lock.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
