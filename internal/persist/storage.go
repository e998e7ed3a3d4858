// Package persist is the durability boundary for dialog settings. The
// dialog core reads settings once at session start and writes them back
// through the Store interface; it never owns the wire format.
package persist

// Settings is the dialog state that survives across sessions.
type Settings struct {
	PinnedFolders     []string `yaml:"pinned_folders,omitempty"`
	ShowHidden        bool     `yaml:"show_hidden"`
	ShowSystem        bool     `yaml:"show_system"`
	DefaultTypeFilter string   `yaml:"default_type_filter,omitempty"`
}

// Store loads and saves Settings. Implementations must tolerate a missing
// backing record by returning zero Settings from Load.
type Store interface {
	Load() (Settings, error)
	Save(Settings) error
}
