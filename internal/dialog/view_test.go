package dialog

import (
	"runtime"
	"testing"
)

func TestBreadcrumbs(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("crumb fixtures use unix separators")
	}

	crumbs := breadcrumbs("/home/user/docs")
	want := []Crumb{
		{Name: "/", Path: "/"},
		{Name: "home", Path: "/home"},
		{Name: "user", Path: "/home/user"},
		{Name: "docs", Path: "/home/user/docs"},
	}
	if len(crumbs) != len(want) {
		t.Fatalf("crumbs = %v, want %v", crumbs, want)
	}
	for i := range want {
		if crumbs[i] != want[i] {
			t.Fatalf("crumb %d = %+v, want %+v", i, crumbs[i], want[i])
		}
	}
}

func TestBreadcrumbsRoot(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("crumb fixtures use unix separators")
	}

	crumbs := breadcrumbs("/")
	if len(crumbs) != 1 || crumbs[0].Path != "/" {
		t.Fatalf("crumbs = %v, want single root", crumbs)
	}
}
