package dialog

// History is a browser-style back/forward record of visited directories.
// Paths are stored canonicalized by the caller; mixing textual variants of
// the same location would make back/forward loop. Depth is unbounded; a
// dialog session is short-lived.
type History struct {
	back    []string
	forward []string
	current string
}

func newHistory(start string) *History {
	return &History{current: start}
}

func (h *History) Current() string { return h.current }

func (h *History) CanBack() bool    { return len(h.back) > 0 }
func (h *History) CanForward() bool { return len(h.forward) > 0 }

// Visit moves to path, pushing the old current onto the back stack and
// clearing the forward stack. Visiting the current path is a no-op.
func (h *History) Visit(path string) {
	if path == h.current {
		return
	}
	if h.current != "" {
		h.back = append(h.back, h.current)
	}
	h.forward = nil
	h.current = path
}

// Back moves current one step into the back stack and returns the new
// current path.
func (h *History) Back() (string, error) {
	if len(h.back) == 0 {
		return "", ErrNotAvailable
	}
	h.forward = append(h.forward, h.current)
	h.current = h.back[len(h.back)-1]
	h.back = h.back[:len(h.back)-1]
	return h.current, nil
}

// Forward undoes the most recent Back.
func (h *History) Forward() (string, error) {
	if len(h.forward) == 0 {
		return "", ErrNotAvailable
	}
	h.back = append(h.back, h.current)
	h.current = h.forward[len(h.forward)-1]
	h.forward = h.forward[:len(h.forward)-1]
	return h.current, nil
}
