package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Background  tcell.Color
	Foreground  tcell.Color
	HeaderFg    tcell.Color
	SidebarFg   tcell.Color
	SidebarHdr  tcell.Color
	DirectoryFg tcell.Color
	FileFg      tcell.Color
	HiddenFg    tcell.Color
	SymlinkFg   tcell.Color
	CursorBg    tcell.Color
	CursorFg    tcell.Color
	SelectedFg  tcell.Color
	FooterFg    tcell.Color
	ErrorFg     tcell.Color
	PromptFg    tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:  tcell.ColorDefault,
		Foreground:  tcell.ColorDefault,
		HeaderFg:    tcell.Color33,
		SidebarFg:   tcell.ColorDefault,
		SidebarHdr:  tcell.ColorLightSlateGray,
		DirectoryFg: tcell.Color33,
		FileFg:      tcell.ColorDefault,
		HiddenFg:    tcell.ColorLightSlateGray,
		SymlinkFg:   tcell.Color51,
		CursorBg:    tcell.Color33,
		CursorFg:    tcell.ColorWhite,
		SelectedFg:  tcell.Color220,
		FooterFg:    tcell.ColorDefault,
		ErrorFg:     tcell.Color196,
		PromptFg:    tcell.Color220,
	}
}
