package persist

import "sync"

// MemStore is an in-memory Store for tests. LoadErr and SaveErr, when set,
// are returned by the corresponding call so failure paths can be exercised.
type MemStore struct {
	mu       sync.Mutex
	settings Settings

	LoadErr error
	SaveErr error
	Saves   int
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (m *MemStore) Load() (Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return Settings{}, m.LoadErr
	}
	out := m.settings
	out.PinnedFolders = append([]string(nil), m.settings.PinnedFolders...)
	return out, nil
}

func (m *MemStore) Save(settings Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.settings = settings
	m.settings.PinnedFolders = append([]string(nil), settings.PinnedFolders...)
	m.Saves++
	return nil
}
