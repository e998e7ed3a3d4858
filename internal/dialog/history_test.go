package dialog

import (
	"errors"
	"testing"
)

func TestHistoryBackForwardIdentity(t *testing.T) {
	h := newHistory("/a")
	h.Visit("/a/b")
	h.Visit("/a/b/c")

	if _, err := h.Back(); err != nil {
		t.Fatalf("Back: %v", err)
	}
	if _, err := h.Forward(); err != nil {
		t.Fatalf("Forward: %v", err)
	}
	if got := h.Current(); got != "/a/b/c" {
		t.Fatalf("current = %q, want /a/b/c", got)
	}
}

func TestHistoryVisitClearsForward(t *testing.T) {
	h := newHistory("/a")
	h.Visit("/b")
	h.Visit("/c")

	if _, err := h.Back(); err != nil {
		t.Fatalf("Back: %v", err)
	}
	if !h.CanForward() {
		t.Fatal("expected forward stack after Back")
	}

	h.Visit("/d")
	if h.CanForward() {
		t.Fatal("Visit must clear the forward stack")
	}
	if _, err := h.Forward(); !errors.Is(err, ErrNotAvailable) {
		t.Fatalf("Forward after Visit = %v, want ErrNotAvailable", err)
	}
}

func TestHistoryEmptyStacks(t *testing.T) {
	h := newHistory("/a")

	if _, err := h.Back(); !errors.Is(err, ErrNotAvailable) {
		t.Fatalf("Back on empty stack = %v, want ErrNotAvailable", err)
	}
	if _, err := h.Forward(); !errors.Is(err, ErrNotAvailable) {
		t.Fatalf("Forward on empty stack = %v, want ErrNotAvailable", err)
	}
	if got := h.Current(); got != "/a" {
		t.Fatalf("current mutated by failed moves: %q", got)
	}
}

func TestHistoryVisitCurrentIsNoop(t *testing.T) {
	h := newHistory("/a")
	h.Visit("/b")
	h.Visit("/b")

	if _, err := h.Back(); err != nil {
		t.Fatalf("Back: %v", err)
	}
	if got := h.Current(); got != "/a" {
		t.Fatalf("current = %q, want /a (revisit must not stack)", got)
	}
	if h.CanBack() {
		t.Fatal("back stack should be empty")
	}
}
