package app

import (
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/filedlg/internal/dialog"
	renderui "github.com/kk-code-lab/filedlg/internal/ui/render"
)

const doubleClickThreshold = 300 * time.Millisecond
const pollInterval = 50 * time.Millisecond

// Run drives the session until it commits or cancels and returns the
// result. While a load is in flight the loop wakes on a timer so Poll keeps
// draining results even without input.
func (app *Application) Run() ([]string, bool) {
	defer app.screen.Fini()

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			eventChan <- app.screen.PollEvent()
		}
	}()

	var pollTimer *time.Timer
	var pollCh <-chan time.Time

	startPolling := func() {
		if pollTimer == nil {
			pollTimer = time.NewTimer(pollInterval)
		} else {
			if !pollTimer.Stop() {
				select {
				case <-pollTimer.C:
				default:
				}
			}
			pollTimer.Reset(pollInterval)
		}
		pollCh = pollTimer.C
	}

	stopPolling := func() {
		if pollTimer == nil {
			return
		}
		if !pollTimer.Stop() {
			select {
			case <-pollTimer.C:
			default:
			}
		}
		pollCh = nil
	}

	v := app.session.Poll()
	app.renderer.Render(v, app.ui)

	for v.Phase != dialog.PhaseCommitted && v.Phase != dialog.PhaseCancelled {
		if v.Loading {
			startPolling()
		} else {
			stopPolling()
		}

		select {
		case ev := <-eventChan:
			if !app.handleEvent(ev, v) {
				_ = app.session.Cancel()
			}
		case <-pollCh:
		}

		v = app.session.Poll()
		app.renderer.Render(v, app.ui)
	}

	stopPolling()
	return app.session.Result()
}

func (app *Application) handleEvent(ev tcell.Event, v dialog.View) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey, *tcell.EventResize:
		return app.input.ProcessEvent(ev)
	case *tcell.EventMouse:
		app.handleMouse(ev, v)
	}
	return true
}

// handleMouse maps primary clicks to sidebar navigation and list selection,
// with double-click opening directories and picking files.
func (app *Application) handleMouse(ev *tcell.EventMouse, v dialog.View) {
	if ev.Buttons()&tcell.Button1 == 0 {
		return
	}
	x, y := ev.Position()

	listStartY := 1
	if app.ui.Prompt != renderui.PromptNone {
		listStartY = 2
	}

	side := renderui.SidebarWidth(app.ui.ScreenWidth)
	if side > 0 && x < side {
		app.handleSidebarClick(v, y-listStartY)
		return
	}

	bottom := app.ui.ScreenHeight - 2
	if y < listStartY || y >= bottom {
		return
	}
	row := y - listStartY

	idx := app.ui.Scroll + row
	if idx < 0 || idx >= len(v.Entries) {
		return
	}
	entry := v.Entries[idx]
	app.ui.Cursor = idx

	doubleClick := app.lastClickRow == idx &&
		time.Since(app.lastClickTime) <= doubleClickThreshold
	app.lastClickRow = idx
	app.lastClickTime = time.Now()

	mods := dialog.Modifiers{
		Toggle: ev.Modifiers()&tcell.ModCtrl != 0,
		Range:  ev.Modifiers()&tcell.ModShift != 0,
	}
	if err := app.session.Click(entry.Path, mods); err != nil {
		app.ui.Status = err.Error()
		return
	}
	app.ui.Status = ""

	if !doubleClick {
		return
	}
	if entry.IsDir {
		app.navigateTo(entry.Path)
		return
	}
	if err := app.session.Confirm(); err != nil && !errors.Is(err, dialog.ErrNotAvailable) {
		app.ui.Status = err.Error()
	}
}

func (app *Application) handleSidebarClick(v dialog.View, idx int) {
	items := renderui.SidebarItems(v, app.home)
	if idx < 0 || idx >= len(items) || items[idx].Path == "" {
		return
	}
	app.navigateTo(items[idx].Path)
}

func (app *Application) navigateTo(path string) {
	if err := app.session.Open(path); err != nil {
		app.ui.Status = err.Error()
		return
	}
	app.ui.Status = ""
	app.ui.Cursor = 0
	app.ui.Scroll = 0
}
