// Package app is the demo host: a tcell event loop around one dialog
// session.
package app

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/filedlg/internal/dialog"
	inputui "github.com/kk-code-lab/filedlg/internal/ui/input"
	renderui "github.com/kk-code-lab/filedlg/internal/ui/render"
)

// Application owns the screen and drives one session to a terminal phase.
type Application struct {
	screen   tcell.Screen
	session  *dialog.Session
	renderer *renderui.Renderer
	input    *inputui.Handler
	ui       *renderui.UIState
	home     string

	lastClickRow  int
	lastClickTime time.Time
}

// NewApplication initializes the terminal screen for the given session.
// home is shown as the sidebar shortcut.
func NewApplication(session *dialog.Session, home string) (*Application, error) {
	// UTF-8 fallback so non-ASCII names render on limited locales.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	// Parse mouse sequences so modified clicks don't leak as key events.
	screen.EnableMouse()

	ui := &renderui.UIState{}
	ui.ScreenWidth, ui.ScreenHeight = screen.Size()

	return &Application{
		screen:       screen,
		session:      session,
		renderer:     renderui.NewRenderer(screen, home),
		input:        inputui.NewHandler(session, ui, home),
		ui:           ui,
		home:         home,
		lastClickRow: -1,
	}, nil
}

// Close releases the terminal.
func (app *Application) Close() {
	app.screen.Fini()
}
