// Package input converts tcell events into dialog session commands.
package input

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/filedlg/internal/dialog"
	"github.com/kk-code-lab/filedlg/internal/fs"
	"github.com/kk-code-lab/filedlg/internal/ui/render"
)

// Handler applies keyboard events to a session and the host-side UI state.
type Handler struct {
	session *dialog.Session
	ui      *render.UIState
	home    string
}

func NewHandler(session *dialog.Session, ui *render.UIState, home string) *Handler {
	return &Handler{session: session, ui: ui, home: home}
}

// ProcessEvent handles one event. Returns false when the host should stop
// the loop immediately.
func (h *Handler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.processKey(ev)
	case *tcell.EventResize:
		w, ht := ev.Size()
		h.ui.ScreenWidth = w
		h.ui.ScreenHeight = ht
		return true
	}
	return true
}

func (h *Handler) processKey(ev *tcell.EventKey) bool {
	v := h.session.Poll()

	if v.Phase == dialog.PhasePendingOverwrite {
		h.handleOverwriteKey(ev)
		return true
	}
	if h.ui.Prompt != render.PromptNone {
		h.handlePromptKey(ev)
		return true
	}

	switch ev.Key() {
	case tcell.KeyCtrlC:
		h.report(h.session.Cancel())
		return false
	case tcell.KeyEscape:
		h.report(h.session.Cancel())
		return true
	case tcell.KeyUp:
		h.moveCursor(-1, len(v.Entries))
		return true
	case tcell.KeyDown:
		h.moveCursor(1, len(v.Entries))
		return true
	case tcell.KeyPgUp:
		h.moveCursor(-h.ui.ListHeight(), len(v.Entries))
		return true
	case tcell.KeyPgDn:
		h.moveCursor(h.ui.ListHeight(), len(v.Entries))
		return true
	case tcell.KeyHome:
		h.ui.Cursor = 0
		return true
	case tcell.KeyEnd:
		h.ui.Cursor = len(v.Entries) - 1
		return true
	case tcell.KeyEnter:
		h.activateCursor(v)
		return true
	case tcell.KeyLeft, tcell.KeyBackspace, tcell.KeyBackspace2:
		h.navigate(h.session.Up())
		return true
	case tcell.KeyRight:
		if e := h.cursorEntry(v); e != nil && e.IsDir {
			h.navigate(h.session.Open(e.Path))
		}
		return true
	case tcell.KeyCtrlX:
		h.report(h.session.CancelLoad())
		return true
	}

	if ev.Key() != tcell.KeyRune {
		return true
	}

	switch ev.Rune() {
	case 'q':
		h.report(h.session.Cancel())
	case 'j':
		h.moveCursor(1, len(v.Entries))
	case 'k':
		h.moveCursor(-1, len(v.Entries))
	case 'b':
		h.navigate(h.session.Back())
	case 'f':
		h.navigate(h.session.Forward())
	case 'g':
		h.navigate(h.session.Open(h.home))
	case 'r':
		h.report(h.session.Reload())
	case '/':
		h.ui.Prompt = render.PromptSearch
		h.ui.Input = v.Query
	case 'n':
		h.ui.Prompt = render.PromptNewFolder
		h.ui.Input = ""
	case 's':
		h.ui.Prompt = render.PromptFileName
		h.ui.Input = v.FileName
	case ' ':
		if e := h.cursorEntry(v); e != nil {
			h.report(h.session.Click(e.Path, dialog.Modifiers{}))
		}
	case 'x':
		if e := h.cursorEntry(v); e != nil {
			h.report(h.session.Click(e.Path, dialog.Modifiers{Toggle: true}))
		}
	case 'a':
		h.report(h.session.SelectAll())
	case 'p':
		if e := h.cursorEntry(v); e != nil && e.IsDir {
			h.report(h.session.TogglePin(e.Path))
		} else {
			h.report(h.session.TogglePin(v.Dir))
		}
	case '.':
		h.report(h.session.ToggleHidden())
	case ',':
		h.report(h.session.ToggleSystem())
	case 'c':
		h.report(h.session.Confirm())
	}
	return true
}

func (h *Handler) handleOverwriteKey(ev *tcell.EventKey) {
	switch {
	case ev.Key() == tcell.KeyEscape:
		h.report(h.session.AnswerOverwrite(false))
	case ev.Key() == tcell.KeyRune && (ev.Rune() == 'y' || ev.Rune() == 'Y'):
		h.report(h.session.AnswerOverwrite(true))
	case ev.Key() == tcell.KeyRune && (ev.Rune() == 'n' || ev.Rune() == 'N'):
		h.report(h.session.AnswerOverwrite(false))
	}
}

func (h *Handler) handlePromptKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		if h.ui.Prompt == render.PromptSearch {
			h.report(h.session.SetQuery(""))
		}
		h.closePrompt()
	case tcell.KeyEnter:
		h.commitPrompt()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if h.ui.Input != "" {
			runes := []rune(h.ui.Input)
			h.ui.Input = string(runes[:len(runes)-1])
			if h.ui.Prompt == render.PromptSearch {
				h.report(h.session.SetQuery(h.ui.Input))
			}
		}
	case tcell.KeyRune:
		h.ui.Input += string(ev.Rune())
		if h.ui.Prompt == render.PromptSearch {
			h.report(h.session.SetQuery(h.ui.Input))
		}
	}
}

func (h *Handler) commitPrompt() {
	switch h.ui.Prompt {
	case render.PromptSearch:
		// Query is already live; enter just closes the prompt.
	case render.PromptNewFolder:
		if !h.report(h.session.CreateFolder(h.ui.Input)) {
			return
		}
	case render.PromptFileName:
		if !h.report(h.session.SetFileName(h.ui.Input)) {
			return
		}
	}
	h.closePrompt()
}

func (h *Handler) closePrompt() {
	h.ui.Prompt = render.PromptNone
	h.ui.Input = ""
}

// activateCursor opens a directory under the cursor, or picks a file by
// selecting and confirming in one step.
func (h *Handler) activateCursor(v dialog.View) {
	e := h.cursorEntry(v)
	if e == nil {
		return
	}
	if e.IsDir {
		h.navigate(h.session.Open(e.Path))
		return
	}
	if !h.report(h.session.Click(e.Path, dialog.Modifiers{})) {
		return
	}
	err := h.session.Confirm()
	if errors.Is(err, dialog.ErrNotAvailable) {
		// Confirm needs more input in this mode; the click alone stands.
		err = nil
	}
	h.report(err)
}

func (h *Handler) cursorEntry(v dialog.View) *fs.Entry {
	if h.ui.Cursor < 0 || h.ui.Cursor >= len(v.Entries) {
		return nil
	}
	return &v.Entries[h.ui.Cursor]
}

func (h *Handler) moveCursor(delta, count int) {
	h.ui.Cursor += delta
	h.ui.ClampCursor(count, h.ui.ListHeight())
}

// navigate resets the viewport after a successful navigation command.
func (h *Handler) navigate(err error) {
	if !h.report(err) {
		return
	}
	h.ui.Cursor = 0
	h.ui.Scroll = 0
}

// report surfaces a command failure on the status line. Returns true when
// the command succeeded.
func (h *Handler) report(err error) bool {
	if err != nil {
		h.ui.Status = err.Error()
		return false
	}
	h.ui.Status = ""
	return true
}
