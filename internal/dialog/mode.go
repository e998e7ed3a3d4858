package dialog

import "fmt"

// Mode is the task the dialog performs. It governs selection cardinality,
// what the loader lists, and how Confirm validates.
type Mode int

const (
	SelectFile Mode = iota
	SelectDirectory
	SelectMultiple
	SaveFile
)

func (m Mode) String() string {
	switch m {
	case SelectFile:
		return "file"
	case SelectDirectory:
		return "directory"
	case SelectMultiple:
		return "multiple"
	case SaveFile:
		return "save"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode maps a mode flag value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "file":
		return SelectFile, nil
	case "directory", "dir":
		return SelectDirectory, nil
	case "multiple", "multi":
		return SelectMultiple, nil
	case "save":
		return SaveFile, nil
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// Phase is the session lifecycle state. Committed and Cancelled are
// terminal; a reopened dialog starts a fresh session.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseActive
	PhasePendingOverwrite
	PhaseCommitted
	PhaseCancelled
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseActive:
		return "active"
	case PhasePendingOverwrite:
		return "pending-overwrite"
	case PhaseCommitted:
		return "committed"
	case PhaseCancelled:
		return "cancelled"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}
