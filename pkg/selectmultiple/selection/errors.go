package selection

import "errors"

var (
	// ErrMissingItems means no item collection was supplied.
	ErrMissingItems = errors.New("selectmultiple: items are required")

	// ErrMissingCallback means no selection change callback was supplied.
	// Nothing here owns a selection, so without a callback a toggle would
	// have nowhere to go.
	ErrMissingCallback = errors.New("selectmultiple: OnSelectionsChange is required")
)
