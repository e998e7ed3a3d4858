package dialog

import (
	"testing"

	"github.com/kk-code-lab/filedlg/internal/fs"
)

func snapOf(entries ...fs.Entry) *Snapshot {
	return &Snapshot{Dir: "/t", Entries: entries, State: Loaded}
}

func file(name string) fs.Entry {
	return fs.Entry{Name: name, Path: "/t/" + name}
}

func dir(name string) fs.Entry {
	return fs.Entry{Name: name, Path: "/t/" + name, IsDir: true}
}

func TestVisibleEmptyQueryIsIdentity(t *testing.T) {
	snap := snapOf(dir("docs"), file("a.txt"), file("b.png"))

	got := Visible(snap, FilterState{})
	if len(got) != len(snap.Entries) {
		t.Fatalf("visible = %d entries, want %d", len(got), len(snap.Entries))
	}
	for i := range got {
		if got[i].Path != snap.Entries[i].Path {
			t.Fatalf("entry %d = %q, want %q", i, got[i].Path, snap.Entries[i].Path)
		}
	}
}

func TestVisibleQueryIsCaseInsensitiveSubstring(t *testing.T) {
	snap := snapOf(file("Report.txt"), file("notes.md"), file("REPORTS.pdf"))

	got := Visible(snap, FilterState{Query: "report"})
	if len(got) != 2 {
		t.Fatalf("visible = %d entries, want 2", len(got))
	}
	for _, e := range got {
		if e.Name == "notes.md" {
			t.Fatal("non-matching entry passed the query")
		}
	}
}

func TestVisibleTypeFilterPassesDirectories(t *testing.T) {
	txt := &TypeFilter{ID: "txt", Name: "Text", Extensions: []string{"txt", ".TXT"}}
	snap := snapOf(dir("sub"), file("a.txt"), file("b.png"), file("C.TXT"))

	got := Visible(snap, FilterState{TypeFilter: txt})
	if len(got) != 3 {
		t.Fatalf("visible = %d entries, want 3", len(got))
	}
	if !got[0].IsDir {
		t.Fatal("directory must pass an active type filter")
	}
	for _, e := range got {
		if e.Name == "b.png" {
			t.Fatal("filtered extension passed")
		}
	}
}

func TestVisibleNilSnapshot(t *testing.T) {
	if got := Visible(nil, FilterState{Query: "x"}); got != nil {
		t.Fatalf("visible of nil snapshot = %v, want nil", got)
	}
}
