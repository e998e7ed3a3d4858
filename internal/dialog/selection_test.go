package dialog

import (
	"reflect"
	"testing"

	"github.com/kk-code-lab/filedlg/internal/fs"
)

func visibleFixture() []fs.Entry {
	return []fs.Entry{file("a"), file("b"), file("c"), file("d"), file("e")}
}

func TestSelectionSingleModeReplaces(t *testing.T) {
	vis := visibleFixture()
	sel := newSelection(SelectFile)

	sel.click(vis, "/t/a", Modifiers{})
	sel.click(vis, "/t/b", Modifiers{Toggle: true})

	got := sel.inVisibleOrder(vis)
	if !reflect.DeepEqual(got, []string{"/t/b"}) {
		t.Fatalf("selection = %v, want [/t/b]", got)
	}
}

func TestSelectionToggleTwiceRestores(t *testing.T) {
	vis := visibleFixture()
	sel := newSelection(SelectMultiple)

	sel.click(vis, "/t/a", Modifiers{})
	before := sel.inVisibleOrder(vis)

	sel.click(vis, "/t/c", Modifiers{Toggle: true})
	sel.click(vis, "/t/c", Modifiers{Toggle: true})

	if got := sel.inVisibleOrder(vis); !reflect.DeepEqual(got, before) {
		t.Fatalf("selection = %v, want %v after toggle-toggle", got, before)
	}
}

func TestSelectionRangeUsesVisibleOrder(t *testing.T) {
	vis := visibleFixture()
	sel := newSelection(SelectMultiple)

	sel.click(vis, "/t/b", Modifiers{})
	sel.click(vis, "/t/d", Modifiers{Range: true})

	got := sel.inVisibleOrder(vis)
	want := []string{"/t/b", "/t/c", "/t/d"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("selection = %v, want %v", got, want)
	}

	// Reverse direction from the same anchor.
	sel.click(vis, "/t/a", Modifiers{Range: true})
	got = sel.inVisibleOrder(vis)
	want = []string{"/t/a", "/t/b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("selection = %v, want %v", got, want)
	}
}

func TestSelectionRangeWithoutAnchorFallsBack(t *testing.T) {
	vis := visibleFixture()
	sel := newSelection(SelectMultiple)

	sel.click(vis, "/t/c", Modifiers{Range: true})
	got := sel.inVisibleOrder(vis)
	if !reflect.DeepEqual(got, []string{"/t/c"}) {
		t.Fatalf("selection = %v, want [/t/c]", got)
	}
}

func TestSelectionSelectAllAndPrune(t *testing.T) {
	vis := visibleFixture()
	sel := newSelection(SelectMultiple)

	sel.selectAll(vis)
	if sel.count() != len(vis) {
		t.Fatalf("count = %d, want %d", sel.count(), len(vis))
	}

	narrowed := vis[:2]
	sel.prune(narrowed)
	got := sel.inVisibleOrder(narrowed)
	if !reflect.DeepEqual(got, []string{"/t/a", "/t/b"}) {
		t.Fatalf("selection = %v after prune", got)
	}
}
