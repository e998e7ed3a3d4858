package render

// PromptKind says what the single-line prompt at the bottom edits.
type PromptKind int

const (
	PromptNone PromptKind = iota
	PromptSearch
	PromptNewFolder
	PromptFileName
)

// UIState is the host-side view state the dialog core does not own: cursor
// position, scroll offset, and the bottom-line prompt.
type UIState struct {
	Cursor int
	Scroll int

	Prompt PromptKind
	Input  string

	Status string

	ScreenWidth  int
	ScreenHeight int
}

// ClampCursor keeps the cursor inside the visible entry count and scrolls
// the viewport to keep it on screen.
func (u *UIState) ClampCursor(visibleCount, listHeight int) {
	if u.Cursor >= visibleCount {
		u.Cursor = visibleCount - 1
	}
	if u.Cursor < 0 {
		u.Cursor = 0
	}
	if listHeight <= 0 {
		return
	}
	if u.Cursor < u.Scroll {
		u.Scroll = u.Cursor
	}
	if u.Cursor >= u.Scroll+listHeight {
		u.Scroll = u.Cursor - listHeight + 1
	}
	if u.Scroll < 0 {
		u.Scroll = 0
	}
}

// ListHeight is the number of entry rows between the header and footer.
func (u *UIState) ListHeight() int {
	h := u.ScreenHeight - 3 // breadcrumb, status, help
	if u.Prompt != PromptNone {
		h--
	}
	if h < 0 {
		h = 0
	}
	return h
}
