package router

import (
	"errors"
	"fmt"
)

// Screen is a type-safe identifier for screens.
// Applications should define their own Screen constants using iota.
type Screen int

// ScreenFunc runs a screen. The input and result types are screen-specific.
type ScreenFunc func(input any) (result any, err error)

// TransitionFunc is called after each screen completes to determine the
// next screen and its input. Return ScreenExit to stop the router.
type TransitionFunc func(from Screen, result any, stack *Stack) (next Screen, input any)

// ScreenExit is a special Screen value that signals the router to exit.
const ScreenExit Screen = -1

// Cancelled is the result handed to the transition function when a screen
// returned an error accepted by the router's CancelAs predicate.
type Cancelled struct {
	Err error
}

// IsCancelled reports whether a screen result is a Cancelled marker.
func IsCancelled(result any) bool {
	_, ok := result.(Cancelled)
	return ok
}

// ErrInputType is returned by screens built with Typed when they receive
// an input of the wrong type.
var ErrInputType = errors.New("router: unexpected screen input type")

// Typed adapts a screen with concrete input and result types.
func Typed[I, O any](fn func(I) (O, error)) ScreenFunc {
	return func(input any) (any, error) {
		in, ok := input.(I)
		if !ok {
			var zero I
			return nil, fmt.Errorf("%w: got %T, want %T", ErrInputType, input, zero)
		}
		return fn(in)
	}
}

// Router manages screen navigation with explicit data flow.
type Router struct {
	screens     map[Screen]ScreenFunc
	transition  TransitionFunc
	isCancelled func(error) bool
	stack       *Stack
}

// New creates a new Router.
func New() *Router {
	return &Router{
		screens: make(map[Screen]ScreenFunc),
		stack:   NewStack(),
	}
}

// Register adds a screen to the router.
func (r *Router) Register(screen Screen, fn ScreenFunc) *Router {
	r.screens[screen] = fn
	return r
}

// OnTransition sets the transition function that determines navigation flow.
func (r *Router) OnTransition(fn TransitionFunc) *Router {
	r.transition = fn
	return r
}

// CancelAs makes errors matching pred a normal result. The transition
// function then receives Cancelled instead of the router stopping.
func (r *Router) CancelAs(pred func(error) bool) *Router {
	r.isCancelled = pred
	return r
}

// Run starts the router at the given screen with the given input.
// It continues running until the transition function returns ScreenExit
// or a screen fails.
func (r *Router) Run(start Screen, input any) error {
	if r.transition == nil {
		return fmt.Errorf("router: no transition function set")
	}

	current := start
	currentInput := input

	for current != ScreenExit {
		fn, ok := r.screens[current]
		if !ok {
			return fmt.Errorf("router: screen %d not registered", current)
		}

		result, err := fn(currentInput)
		if err != nil {
			if r.isCancelled == nil || !r.isCancelled(err) {
				return fmt.Errorf("router: screen %d error: %w", current, err)
			}
			result = Cancelled{Err: err}
		}

		current, currentInput = r.transition(current, result, r.stack)
	}
	return nil
}

// Stack returns the navigation stack for use in transition functions.
func (r *Router) Stack() *Stack {
	return r.stack
}
