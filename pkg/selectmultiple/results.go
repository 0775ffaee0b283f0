package selectmultiple

import "github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/selection"

// Action is what an input event did to a SelectMultiple.
type Action int

const (
	ActionNone      Action = iota // Event ignored or only moved focus
	ActionToggled                 // A row was toggled (A button, tap)
	ActionConfirmed               // User confirmed the selection (Start button)
	ActionCancelled               // User went back (B button)
	ActionQuit                    // Window closed
)

func (a Action) String() string {
	switch a {
	case ActionToggled:
		return "toggled"
	case ActionConfirmed:
		return "confirmed"
	case ActionCancelled:
		return "cancelled"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// SelectMultipleResult is returned by Run when the user confirms.
type SelectMultipleResult struct {
	Action            Action
	Selected          []selection.Entry // Selection as last supplied by the owner
	FocusIndex        int
	VisibleStartIndex int
}

// ConfirmResult is the answer to a Confirm dialog.
type ConfirmResult struct {
	Confirmed     bool
	SelectedIndex int
}
