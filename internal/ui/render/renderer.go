package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/kk-code-lab/filedlg/internal/dialog"
)

const sidebarMinScreen = 60
const sidebarWidth = 24

// SidebarWidth returns the sidebar width for a given screen width, 0 when
// the screen is too narrow for one.
func SidebarWidth(screenWidth int) int {
	if screenWidth < sidebarMinScreen {
		return 0
	}
	return sidebarWidth
}

// SidebarItem is one clickable sidebar row. Header rows have an empty Path.
type SidebarItem struct {
	Label string
	Path  string
}

// SidebarItems builds the sidebar rows for a view: places (home + pinned)
// followed by devices. Row order here matches what Render draws, so the
// mouse handler can hit-test by index.
func SidebarItems(v dialog.View, home string) []SidebarItem {
	items := []SidebarItem{{Label: "Places"}}
	if home != "" {
		items = append(items, SidebarItem{Label: "~ Home", Path: home})
	}
	for _, p := range v.Pinned {
		items = append(items, SidebarItem{Label: "★ " + baseName(p), Path: p})
	}
	items = append(items, SidebarItem{Label: "Devices"})
	for _, d := range v.Disks {
		label := d.DisplayName
		if d.Removable {
			label += " ⏏"
		}
		items = append(items, SidebarItem{Label: label, Path: d.MountPath})
	}
	return items
}

func baseName(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' || path[i] == '\\' {
			if i == len(path)-1 {
				continue
			}
			return path[i+1:]
		}
	}
	return path
}

// Renderer draws a dialog view onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
	home   string
}

func NewRenderer(screen tcell.Screen, home string) *Renderer {
	return &Renderer{screen: screen, theme: GetColorTheme(), home: home}
}

// Render draws one frame.
func (r *Renderer) Render(v dialog.View, ui *UIState) {
	w, h := r.screen.Size()
	ui.ScreenWidth = w
	ui.ScreenHeight = h
	r.screen.Clear()

	base := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)

	r.drawBreadcrumb(v, w, base)

	listStartY := 1
	if ui.Prompt != PromptNone {
		r.drawPrompt(ui, w, base)
		listStartY = 2
	}

	side := SidebarWidth(w)
	if side > 0 {
		r.drawSidebar(v, side, listStartY, h-2, base)
	}

	listHeight := ui.ListHeight()
	ui.ClampCursor(len(v.Entries), listHeight)
	r.drawEntries(v, ui, side, listStartY, listHeight, w, base)

	r.drawStatus(v, ui, w, h, base)
	r.drawHelp(v, w, h, base)

	r.screen.Show()
}

func (r *Renderer) drawBreadcrumb(v dialog.View, w int, base tcell.Style) {
	style := base.Foreground(r.theme.HeaderFg).Bold(true)
	x := drawText(r.screen, 0, 0, w, style, truncate(v.Dir, w-10))
	if v.Loading {
		drawText(r.screen, x+1, 0, w-x-1, base.Foreground(r.theme.HiddenFg), "(loading)")
	}
}

func (r *Renderer) drawPrompt(ui *UIState, w int, base tcell.Style) {
	var label string
	switch ui.Prompt {
	case PromptSearch:
		label = "search: "
	case PromptNewFolder:
		label = "new folder: "
	case PromptFileName:
		label = "file name: "
	default:
		return
	}
	style := base.Foreground(r.theme.PromptFg)
	x := drawText(r.screen, 0, 1, w, style, label)
	x = drawText(r.screen, x, 1, w-x, style, ui.Input)
	drawText(r.screen, x, 1, w-x, style, "_")
}

func (r *Renderer) drawSidebar(v dialog.View, width, top, bottom int, base tcell.Style) {
	y := top
	for _, item := range SidebarItems(v, r.home) {
		if y >= bottom {
			break
		}
		style := base.Foreground(r.theme.SidebarFg)
		label := item.Label
		if item.Path == "" {
			style = base.Foreground(r.theme.SidebarHdr).Bold(true)
		} else {
			label = "  " + label
			if item.Path == v.Dir {
				style = style.Foreground(r.theme.HeaderFg).Bold(true)
			}
		}
		drawText(r.screen, 0, y, width-1, style, truncate(label, width-2))
		y++
	}
	for y := top; y < bottom; y++ {
		r.screen.SetContent(width-1, y, '│', nil, base.Foreground(r.theme.SidebarHdr))
	}
}

func (r *Renderer) drawEntries(v dialog.View, ui *UIState, side, top, height, w int, base tcell.Style) {
	selected := make(map[string]struct{}, len(v.Selected))
	for _, p := range v.Selected {
		selected[p] = struct{}{}
	}

	x := side
	listWidth := w - x
	for row := 0; row < height; row++ {
		idx := ui.Scroll + row
		if idx >= len(v.Entries) {
			break
		}
		e := v.Entries[idx]

		style := base.Foreground(r.theme.FileFg)
		switch {
		case e.IsHidden:
			style = base.Foreground(r.theme.HiddenFg)
		case e.IsSymlink:
			style = base.Foreground(r.theme.SymlinkFg)
		case e.IsDir:
			style = base.Foreground(r.theme.DirectoryFg)
		}

		marker := "  "
		if _, ok := selected[e.Path]; ok {
			marker = "* "
			style = style.Foreground(r.theme.SelectedFg)
		}
		if idx == ui.Cursor {
			style = style.Background(r.theme.CursorBg).Foreground(r.theme.CursorFg)
		}

		name := e.Name
		if e.IsDir {
			name += "/"
		}
		size := ""
		if !e.IsDir {
			size = humanSize(e.Size)
		}

		nameWidth := listWidth - len(marker) - runewidth.StringWidth(size) - 1
		if nameWidth < 1 {
			nameWidth = 1
		}
		line := marker + padRight(name, nameWidth) + " " + size
		drawText(r.screen, x, top+row, listWidth, style, line)
	}
}

func (r *Renderer) drawStatus(v dialog.View, ui *UIState, w, h int, base tcell.Style) {
	y := h - 2
	switch {
	case v.Phase == dialog.PhasePendingOverwrite:
		msg := fmt.Sprintf("overwrite %q? (y/n)", v.FileName)
		drawText(r.screen, 0, y, w, base.Foreground(r.theme.PromptFg).Bold(true), msg)
	case v.LoadErr != nil:
		drawText(r.screen, 0, y, w, base.Foreground(r.theme.ErrorFg), "error: "+v.LoadErr.Error())
	case ui.Status != "":
		drawText(r.screen, 0, y, w, base.Foreground(r.theme.ErrorFg), ui.Status)
	default:
		msg := fmt.Sprintf("%d entries", len(v.Entries))
		if v.Query != "" {
			msg += fmt.Sprintf("  query: %s", v.Query)
		}
		if v.TypeFilter != nil {
			msg += fmt.Sprintf("  filter: %s", v.TypeFilter.Name)
		}
		if v.FileName != "" {
			msg += fmt.Sprintf("  name: %s", v.FileName)
		}
		drawText(r.screen, 0, y, w, base.Foreground(r.theme.FooterFg), msg)
	}
}

func (r *Renderer) drawHelp(v dialog.View, w, h int, base tcell.Style) {
	help := "enter open/pick  c confirm  ←/bksp up  b/f history  / search  n new dir  p pin  . hidden  r reload  esc cancel"
	if v.Phase == dialog.PhasePendingOverwrite {
		help = "y confirm overwrite  n keep editing"
	}
	drawText(r.screen, 0, h-1, w, base.Foreground(r.theme.HiddenFg), truncate(help, w))
}

func humanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
