// Package dialog is the navigation and entry-loading core of an embeddable
// file/directory picker. A host renders by calling Session.Poll once per
// frame and issues commands between polls; directory reads happen off the
// polling path and are applied newest-generation-wins.
package dialog

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/kk-code-lab/filedlg/internal/fs"
	"github.com/kk-code-lab/filedlg/internal/persist"
)

// Options configure a new session. Mode and StartDir are the only fields a
// host usually sets; the rest have useful zero values.
type Options struct {
	Mode            Mode
	StartDir        string // defaults to the user's home directory
	DefaultFileName string // SaveFile initial name buffer
	TypeFilters     []TypeFilter

	// SyncLoad makes every directory read happen inline on the issuing
	// call. Intended for tests that need deterministic load completion.
	SyncLoad bool

	Store  persist.Store // optional; nil disables persistence
	Logger *zap.Logger   // optional; nil means no logging
}

// Session owns one dialog's navigation history, selection, filter state and
// latest snapshot. It is not safe for concurrent use; the host drives it
// from a single goroutine, and only the loader's workers run elsewhere.
type Session struct {
	fsys  fs.FileSystem
	store persist.Store
	log   *zap.Logger

	mode    Mode
	filters []TypeFilter

	loader  *loader
	history *History

	snap        *Snapshot
	inflightGen uint64 // 0 when no load is in flight

	filter FilterState
	sel    *selection

	fileName string
	pending  string // path to pre-select when the next load applies

	showHidden bool
	showSystem bool

	pinned []string
	disks  []fs.Disk

	phase         Phase
	pendingTarget string // SaveFile target awaiting overwrite answer
	result        []string
}

// NewSession validates the start directory, loads persisted settings, and
// issues the initial directory load.
func NewSession(fsys fs.FileSystem, opts Options) (*Session, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	start := opts.StartDir
	if start == "" {
		home, err := fsys.HomeDir()
		if err != nil {
			return nil, mapFSError(err)
		}
		start = home
	}
	start, err := fsys.Canonicalize(start)
	if err != nil {
		return nil, mapFSError(err)
	}
	if !fsys.Exists(start) {
		return nil, ErrPathNotFound
	}
	if !fsys.IsDir(start) {
		return nil, ErrNotADirectory
	}

	s := &Session{
		fsys:     fsys,
		store:    opts.Store,
		log:      logger,
		mode:     opts.Mode,
		filters:  opts.TypeFilters,
		loader:   newLoader(fsys, opts.SyncLoad),
		history:  newHistory(start),
		sel:      newSelection(opts.Mode),
		fileName: opts.DefaultFileName,
		disks:    fs.DedupeDisks(fsys.Disks()),
		phase:    PhaseActive,
	}
	s.snap = &Snapshot{Dir: start, State: Loading}

	s.loadSettings()
	s.startLoad(start)
	return s, nil
}

func (s *Session) loadSettings() {
	if s.store == nil {
		return
	}
	settings, err := s.store.Load()
	if err != nil {
		s.log.Warn("settings load failed", zap.Error(err))
		return
	}
	s.pinned = append([]string(nil), settings.PinnedFolders...)
	s.showHidden = settings.ShowHidden
	s.showSystem = settings.ShowSystem
	if settings.DefaultTypeFilter != "" {
		for i := range s.filters {
			if s.filters[i].ID == settings.DefaultTypeFilter {
				s.filter.TypeFilter = &s.filters[i]
				break
			}
		}
	}
}

// saveSettings re-reads the store before writing so fields added by a
// concurrent writer are not lost, then merges the session-owned values.
// Persistence failures are logged, not surfaced; the in-session change
// already took effect.
func (s *Session) saveSettings() {
	if s.store == nil {
		return
	}
	settings, err := s.store.Load()
	if err != nil {
		settings = persist.Settings{}
	}
	settings.PinnedFolders = append([]string(nil), s.pinned...)
	settings.ShowHidden = s.showHidden
	settings.ShowSystem = s.showSystem
	settings.DefaultTypeFilter = ""
	if s.filter.TypeFilter != nil {
		settings.DefaultTypeFilter = s.filter.TypeFilter.ID
	}
	if err := s.store.Save(settings); err != nil {
		s.log.Warn("settings save failed", zap.Error(err))
	}
}

// Poll drains completed loads, applies the newest applicable one, and
// returns an immutable view. It never blocks and never touches disk.
func (s *Session) Poll() View {
	s.drainLoads()
	return s.view()
}

func (s *Session) drainLoads() {
	for {
		select {
		case res := <-s.loader.results:
			s.applyLoad(res)
		default:
			return
		}
	}
}

func (s *Session) applyLoad(res loadResult) {
	if res.gen != s.inflightGen {
		s.log.Debug("discarding stale load",
			zap.Uint64("gen", res.gen), zap.String("dir", res.dir))
		return
	}
	s.inflightGen = 0

	if res.err != nil {
		s.log.Debug("load failed",
			zap.String("dir", res.dir), zap.Error(res.err))
		// Keep the previous good entries visible under the error.
		s.snap = &Snapshot{
			Dir:     res.dir,
			Entries: s.snap.Entries,
			Gen:     res.gen,
			State:   Errored,
			Err:     res.err,
		}
		return
	}

	s.log.Debug("load applied",
		zap.Uint64("gen", res.gen),
		zap.String("dir", res.dir),
		zap.Int("entries", len(res.entries)))
	s.snap = &Snapshot{Dir: res.dir, Entries: res.entries, Gen: res.gen, State: Loaded}

	vis := s.visible()
	if s.pending != "" {
		if indexOfPath(vis, s.pending) >= 0 {
			s.sel.replaceWith(s.pending)
		}
		s.pending = ""
	}
	s.sel.prune(vis)
}

func (s *Session) visible() []fs.Entry {
	return Visible(s.snap, s.filter)
}

func (s *Session) startLoad(dir string) {
	s.inflightGen = s.loader.start(dir, loadOptions{
		showHidden: s.showHidden,
		showSystem: s.showSystem,
		dirsOnly:   s.mode == SelectDirectory,
	})
	s.log.Debug("load started",
		zap.Uint64("gen", s.inflightGen), zap.String("dir", dir))
}

// navigate is startLoad for user navigation: the search query is reset so
// the new directory comes up unfiltered.
func (s *Session) navigate(dir string) {
	s.filter.Query = ""
	s.startLoad(dir)
}

// ensureInteractive rejects commands once the session is terminal or while
// an overwrite answer is pending.
func (s *Session) ensureInteractive() error {
	if s.phase != PhaseActive {
		return ErrNotAvailable
	}
	return nil
}

// Open navigates to path, which must name an existing directory. Opening
// the current directory again is a no-op.
func (s *Session) Open(path string) error {
	if err := s.ensureInteractive(); err != nil {
		return err
	}
	canon, err := s.fsys.Canonicalize(path)
	if err != nil {
		return mapFSError(err)
	}
	if !s.fsys.Exists(canon) {
		return ErrPathNotFound
	}
	if !s.fsys.IsDir(canon) {
		return ErrNotADirectory
	}
	if canon == s.history.Current() {
		return nil
	}
	s.history.Visit(canon)
	s.navigate(canon)
	return nil
}

// Back moves one step back in history and reloads the directory there.
func (s *Session) Back() error {
	if err := s.ensureInteractive(); err != nil {
		return err
	}
	dir, err := s.history.Back()
	if err != nil {
		return err
	}
	s.navigate(dir)
	return nil
}

// Forward undoes the most recent Back.
func (s *Session) Forward() error {
	if err := s.ensureInteractive(); err != nil {
		return err
	}
	dir, err := s.history.Forward()
	if err != nil {
		return err
	}
	s.navigate(dir)
	return nil
}

// Up opens the parent of the current directory.
func (s *Session) Up() error {
	if err := s.ensureInteractive(); err != nil {
		return err
	}
	cur := s.history.Current()
	parent := filepath.Dir(cur)
	if parent == cur {
		return ErrNoParent
	}
	return s.Open(parent)
}

// Reload re-reads the current directory and refreshes the disk list. The
// search query is kept.
func (s *Session) Reload() error {
	if err := s.ensureInteractive(); err != nil {
		return err
	}
	s.disks = fs.DedupeDisks(s.fsys.Disks())
	s.startLoad(s.history.Current())
	return nil
}

// CancelLoad abandons the in-flight load, leaving the previous snapshot in
// place. Hosts use this to impose their own timeout on hung filesystems.
func (s *Session) CancelLoad() error {
	if s.inflightGen == 0 {
		return ErrNotAvailable
	}
	s.loader.cancel(s.inflightGen)
	s.inflightGen = 0
	return nil
}

// SetQuery replaces the search query. Selected entries that fall out of the
// visible set are dropped.
func (s *Session) SetQuery(query string) error {
	if err := s.ensureInteractive(); err != nil {
		return err
	}
	s.filter.Query = query
	s.sel.prune(s.visible())
	return nil
}

// SetTypeFilter activates the registered filter with the given ID, or
// clears the filter when id is empty. The choice is persisted as the
// default for future sessions.
func (s *Session) SetTypeFilter(id string) error {
	if err := s.ensureInteractive(); err != nil {
		return err
	}
	if id == "" {
		s.filter.TypeFilter = nil
	} else {
		found := false
		for i := range s.filters {
			if s.filters[i].ID == id {
				s.filter.TypeFilter = &s.filters[i]
				found = true
				break
			}
		}
		if !found {
			return ErrNotAvailable
		}
	}
	s.sel.prune(s.visible())
	s.saveSettings()
	return nil
}

// ToggleHidden flips dotfile visibility, persists the choice, and reloads.
func (s *Session) ToggleHidden() error {
	if err := s.ensureInteractive(); err != nil {
		return err
	}
	s.showHidden = !s.showHidden
	s.saveSettings()
	s.startLoad(s.history.Current())
	return nil
}

// ToggleSystem flips system-file visibility, persists it, and reloads.
func (s *Session) ToggleSystem() error {
	if err := s.ensureInteractive(); err != nil {
		return err
	}
	s.showSystem = !s.showSystem
	s.saveSettings()
	s.startLoad(s.history.Current())
	return nil
}

// Click selects the visible entry at path according to the mode and
// modifiers. In SaveFile mode clicking a file also copies its name into the
// name buffer.
func (s *Session) Click(path string, mods Modifiers) error {
	if err := s.ensureInteractive(); err != nil {
		return err
	}
	vis := s.visible()
	idx := indexOfPath(vis, path)
	if idx < 0 {
		return ErrPathNotFound
	}
	if s.mode == SaveFile && !vis[idx].IsDir {
		s.fileName = vis[idx].Name
	}
	s.sel.click(vis, path, mods)
	return nil
}

// SelectAll selects every visible entry. Only available in SelectMultiple
// mode.
func (s *Session) SelectAll() error {
	if err := s.ensureInteractive(); err != nil {
		return err
	}
	if s.mode != SelectMultiple {
		return ErrNotAvailable
	}
	s.sel.selectAll(s.visible())
	return nil
}

// SetFileName replaces the SaveFile name buffer.
func (s *Session) SetFileName(name string) error {
	if err := s.ensureInteractive(); err != nil {
		return err
	}
	if s.mode != SaveFile {
		return ErrNotAvailable
	}
	s.fileName = name
	return nil
}

// CreateFolder creates a new child directory of the current directory and
// pre-selects it once the triggered reload applies.
func (s *Session) CreateFolder(name string) error {
	if err := s.ensureInteractive(); err != nil {
		return err
	}
	if !validName(name) {
		return ErrInvalidName
	}
	target := filepath.Join(s.history.Current(), name)
	if s.fsys.Exists(target) {
		return ErrAlreadyExists
	}
	if err := s.fsys.CreateDir(target); err != nil {
		return mapFSError(err)
	}
	s.pending = target
	s.navigate(s.history.Current())
	return nil
}

// TogglePin adds path to the pinned folders, or removes it if already
// pinned. Identity is the canonical path. The change is persisted.
func (s *Session) TogglePin(path string) error {
	if err := s.ensureInteractive(); err != nil {
		return err
	}
	canon, err := s.fsys.Canonicalize(path)
	if err != nil {
		return mapFSError(err)
	}
	if !s.fsys.IsDir(canon) {
		return ErrNotADirectory
	}

	kept := s.pinned[:0]
	removed := false
	for _, p := range s.pinned {
		if p == canon {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	s.pinned = kept
	if !removed {
		s.pinned = append(s.pinned, canon)
	}
	s.saveSettings()
	return nil
}

// Confirm commits the current selection. In SaveFile mode an existing
// target defers the commit behind an overwrite prompt answered via
// AnswerOverwrite.
func (s *Session) Confirm() error {
	if err := s.ensureInteractive(); err != nil {
		return err
	}

	switch s.mode {
	case SelectFile, SelectDirectory:
		paths := s.sel.inVisibleOrder(s.visible())
		if len(paths) != 1 {
			return ErrNotAvailable
		}
		entry, err := s.fsys.Stat(paths[0])
		if err != nil {
			return mapFSError(err)
		}
		if entry.IsDir != (s.mode == SelectDirectory) {
			return ErrWrongEntryType
		}
		s.commit(paths)

	case SelectMultiple:
		paths := s.sel.inVisibleOrder(s.visible())
		if len(paths) == 0 {
			return ErrNotAvailable
		}
		s.commit(paths)

	case SaveFile:
		name := strings.TrimSpace(s.fileName)
		if !validName(name) {
			return ErrInvalidName
		}
		target := filepath.Join(s.history.Current(), name)
		if s.fsys.IsDir(target) {
			return ErrWrongEntryType
		}
		if s.fsys.Exists(target) {
			s.pendingTarget = target
			s.phase = PhasePendingOverwrite
			return nil
		}
		s.commit([]string{target})
	}
	return nil
}

// AnswerOverwrite resolves a pending overwrite prompt. Yes commits the
// deferred target; no returns to Active with the name buffer retained.
func (s *Session) AnswerOverwrite(yes bool) error {
	if s.phase != PhasePendingOverwrite {
		return ErrNotAvailable
	}
	target := s.pendingTarget
	s.pendingTarget = ""
	if !yes {
		s.phase = PhaseActive
		return nil
	}
	s.commit([]string{target})
	return nil
}

// Cancel ends the session without a result. Terminal.
func (s *Session) Cancel() error {
	if s.phase == PhaseCommitted || s.phase == PhaseCancelled {
		return ErrNotAvailable
	}
	s.abortInflight()
	s.phase = PhaseCancelled
	return nil
}

func (s *Session) commit(paths []string) {
	s.abortInflight()
	s.result = append([]string(nil), paths...)
	s.phase = PhaseCommitted
	s.log.Debug("committed", zap.Strings("paths", s.result))
}

func (s *Session) abortInflight() {
	if s.inflightGen != 0 {
		s.loader.cancel(s.inflightGen)
		s.inflightGen = 0
	}
}

// Result returns the committed paths, or false while the session is open or
// after a cancel.
func (s *Session) Result() ([]string, bool) {
	if s.phase != PhaseCommitted {
		return nil, false
	}
	return append([]string(nil), s.result...), true
}

func (s *Session) Phase() Phase { return s.phase }

func (s *Session) view() View {
	vis := s.visible()

	state := s.snap.State
	if s.inflightGen != 0 {
		state = Loading
	}

	return View{
		Dir:         s.history.Current(),
		Breadcrumbs: breadcrumbs(s.history.Current()),
		Entries:     vis,
		Loading:     s.inflightGen != 0,
		LoadState:   state,
		LoadErr:     s.snap.Err,
		Selected:    s.sel.inVisibleOrder(vis),
		FileName:    s.fileName,
		Query:       s.filter.Query,
		TypeFilter:  s.filter.TypeFilter,
		Phase:       s.phase,
		CanBack:     s.history.CanBack(),
		CanForward:  s.history.CanForward(),
		Pinned:      append([]string(nil), s.pinned...),
		Disks:       append([]fs.Disk(nil), s.disks...),
		Result:      append([]string(nil), s.result...),
	}
}

// validName rejects empty names and names containing a path separator.
func validName(name string) bool {
	return name != "" && !strings.ContainsAny(name, `/\`)
}
