package render

import (
	"testing"

	"github.com/kk-code-lab/filedlg/internal/dialog"
	"github.com/kk-code-lab/filedlg/internal/fs"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		width  int
		expect string
	}{
		{
			name:   "fits without truncation",
			text:   "file.txt",
			width:  20,
			expect: "file.txt",
		},
		{
			name:   "adds ellipsis when needed",
			text:   "verylongname",
			width:  6,
			expect: "veryl…",
		},
		{
			name:   "multi-byte characters respected",
			text:   "你好世界",
			width:  5,
			expect: "你好…",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.text, tt.width); got != tt.expect {
				t.Fatalf("expected %q, got %q (width %d)", tt.expect, got, tt.width)
			}
		})
	}
}

func TestPadRightFillsToWidth(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Fatalf("padRight = %q", got)
	}
	if got := padRight("abcdef", 4); got != "abc…" {
		t.Fatalf("padRight over width = %q", got)
	}
}

func TestHumanSize(t *testing.T) {
	tests := []struct {
		n      int64
		expect string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{3 * 1024 * 1024, "3.0 MB"},
	}
	for _, tt := range tests {
		if got := humanSize(tt.n); got != tt.expect {
			t.Fatalf("humanSize(%d) = %q, want %q", tt.n, got, tt.expect)
		}
	}
}

func TestSidebarWidthThreshold(t *testing.T) {
	if SidebarWidth(40) != 0 {
		t.Fatal("narrow screen should have no sidebar")
	}
	if SidebarWidth(120) != sidebarWidth {
		t.Fatal("wide screen should have a sidebar")
	}
}

func TestSidebarItemsOrderAndHitTargets(t *testing.T) {
	v := dialog.View{
		Pinned: []string{"/home/user/docs"},
		Disks: []fs.Disk{
			{MountPath: "/", DisplayName: "/"},
			{MountPath: "/mnt/usb", DisplayName: "usb", Removable: true},
		},
	}

	items := SidebarItems(v, "/home/user")
	if len(items) != 6 {
		t.Fatalf("items = %d, want 6", len(items))
	}

	// Headers are not clickable.
	if items[0].Path != "" || items[3].Path != "" {
		t.Fatalf("header rows must have empty paths: %+v", items)
	}
	if items[1].Path != "/home/user" {
		t.Fatalf("home row = %+v", items[1])
	}
	if items[2].Path != "/home/user/docs" {
		t.Fatalf("pinned row = %+v", items[2])
	}
	if items[5].Path != "/mnt/usb" {
		t.Fatalf("disk row = %+v", items[5])
	}
}

func TestClampCursorScrolls(t *testing.T) {
	ui := &UIState{Cursor: 30, Scroll: 0}
	ui.ClampCursor(50, 10)
	if ui.Scroll != 21 {
		t.Fatalf("scroll = %d, want 21", ui.Scroll)
	}

	ui.Cursor = 5
	ui.ClampCursor(50, 10)
	if ui.Scroll != 5 {
		t.Fatalf("scroll = %d, want 5", ui.Scroll)
	}

	ui.Cursor = 99
	ui.ClampCursor(8, 10)
	if ui.Cursor != 7 {
		t.Fatalf("cursor = %d, want clamp to 7", ui.Cursor)
	}
}
