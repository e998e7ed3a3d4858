package dialog

import "github.com/kk-code-lab/filedlg/internal/fs"

// Modifiers describe how a click combines with the existing selection.
type Modifiers struct {
	Toggle bool // ctrl-click: flip membership
	Range  bool // shift-click: select anchor..clicked in visible order
}

// selection tracks the chosen paths plus the anchor used for range clicks.
// Cardinality is at most one except in SelectMultiple mode.
type selection struct {
	mode   Mode
	picked map[string]struct{}
	anchor string
}

func newSelection(mode Mode) *selection {
	return &selection{mode: mode, picked: make(map[string]struct{})}
}

func (s *selection) count() int { return len(s.picked) }

func (s *selection) has(path string) bool {
	_, ok := s.picked[path]
	return ok
}

func (s *selection) replaceWith(path string) {
	s.picked = map[string]struct{}{path: {}}
	s.anchor = path
}

// click applies one click against the currently visible entries. Range and
// toggle modifiers only have an effect in SelectMultiple mode.
func (s *selection) click(visible []fs.Entry, path string, mods Modifiers) {
	if s.mode != SelectMultiple {
		s.replaceWith(path)
		return
	}

	switch {
	case mods.Range && s.anchor != "":
		ai := indexOfPath(visible, s.anchor)
		ci := indexOfPath(visible, path)
		if ai < 0 || ci < 0 {
			s.replaceWith(path)
			return
		}
		if ai > ci {
			ai, ci = ci, ai
		}
		s.picked = make(map[string]struct{}, ci-ai+1)
		for _, e := range visible[ai : ci+1] {
			s.picked[e.Path] = struct{}{}
		}
		// Anchor is retained so a follow-up range click re-extends from
		// the same origin.
	case mods.Toggle:
		if s.has(path) {
			delete(s.picked, path)
		} else {
			s.picked[path] = struct{}{}
		}
		s.anchor = path
	default:
		s.replaceWith(path)
	}
}

// selectAll selects every visible entry.
func (s *selection) selectAll(visible []fs.Entry) {
	s.picked = make(map[string]struct{}, len(visible))
	for _, e := range visible {
		s.picked[e.Path] = struct{}{}
	}
}

// prune drops selected paths that are no longer in the visible set and
// clears a dangling anchor.
func (s *selection) prune(visible []fs.Entry) {
	if len(s.picked) == 0 {
		return
	}
	keep := make(map[string]struct{}, len(s.picked))
	for _, e := range visible {
		if s.has(e.Path) {
			keep[e.Path] = struct{}{}
		}
	}
	s.picked = keep
	if s.anchor != "" && !s.has(s.anchor) {
		s.anchor = ""
	}
}

// inVisibleOrder returns the selected paths ordered by their position in
// the visible set.
func (s *selection) inVisibleOrder(visible []fs.Entry) []string {
	if len(s.picked) == 0 {
		return nil
	}
	out := make([]string, 0, len(s.picked))
	for _, e := range visible {
		if s.has(e.Path) {
			out = append(out, e.Path)
		}
	}
	return out
}

func indexOfPath(entries []fs.Entry, path string) int {
	for i, e := range entries {
		if e.Path == path {
			return i
		}
	}
	return -1
}
