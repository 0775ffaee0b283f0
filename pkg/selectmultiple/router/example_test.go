package router_test

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/router"
	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/selection"
)

const (
	ScreenSelect router.Screen = iota
	ScreenConfirm
)

var errBack = errors.New("back pressed")

type SelectInput struct {
	Items    []selection.Item
	Selected []selection.Item
	Focus    int
}

// Resume reopens the select screen on the row that had focus.
func (in SelectInput) Resume(state any) any {
	in.Focus = state.(int)
	return in
}

type SelectResult struct {
	Input    SelectInput
	Selected []selection.Entry
	Focus    int
}

type ConfirmInput struct {
	Selected []selection.Entry
}

type ConfirmResult struct {
	Keep bool
}

func names(entries []selection.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Text()
	}
	return out
}

func transitions(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
	if router.IsCancelled(result) {
		return stack.Back()
	}

	switch from {
	case ScreenSelect:
		res := result.(SelectResult)
		in := res.Input
		in.Selected = selection.Items(res.Selected)
		stack.Push(from, in, res.Focus)
		return ScreenConfirm, ConfirmInput{Selected: res.Selected}

	case ScreenConfirm:
		if !result.(ConfirmResult).Keep {
			return stack.Back()
		}
	}
	return router.ScreenExit, nil
}

// Example walks a select screen into a confirm dialog, backs out of the
// dialog once, and keeps the selection on the second try.
func Example() {
	r := router.New().CancelAs(func(err error) bool { return errors.Is(err, errBack) })
	visits := 0

	r.Register(ScreenSelect, router.Typed(func(in SelectInput) (SelectResult, error) {
		visits++
		fmt.Printf("select: focus %d, selected %v\n", in.Focus, names(selection.NormalizeAll(in.Selected)))

		rows := selection.Reconcile(in.Items, in.Selected)
		next, _ := selection.Toggle(in.Selected, rows[visits])
		return SelectResult{Input: in, Selected: next, Focus: visits}, nil
	}))

	confirms := 0
	r.Register(ScreenConfirm, router.Typed(func(in ConfirmInput) (ConfirmResult, error) {
		confirms++
		fmt.Printf("confirm %v: keep=%t\n", names(in.Selected), confirms > 1)
		return ConfirmResult{Keep: confirms > 1}, nil
	}))

	r.OnTransition(transitions)

	err := r.Run(ScreenSelect, SelectInput{Items: selection.Labels("Apple", "Banana", "Cherry")})
	fmt.Println("err:", err)

	// Output:
	// select: focus 0, selected []
	// confirm [Banana]: keep=false
	// select: focus 1, selected [Banana]
	// confirm [Banana Cherry]: keep=true
	// err: <nil>
}

// Example_cancelled shows a screen error turned into a Cancelled result.
func Example_cancelled() {
	r := router.New().CancelAs(func(err error) bool { return errors.Is(err, errBack) })

	r.Register(ScreenSelect, router.Typed(func(in SelectInput) (SelectResult, error) {
		fmt.Println("select: back pressed")
		return SelectResult{}, errBack
	}))
	r.OnTransition(transitions)

	fmt.Println("err:", r.Run(ScreenSelect, SelectInput{}))

	// Output:
	// select: back pressed
	// err: <nil>
}

// Example_wrongInput shows the error from a Typed screen given the wrong input.
func Example_wrongInput() {
	r := router.New()
	r.Register(ScreenConfirm, router.Typed(func(in ConfirmInput) (ConfirmResult, error) {
		return ConfirmResult{}, nil
	}))
	r.OnTransition(transitions)

	err := r.Run(ScreenConfirm, "not an input")
	fmt.Println(errors.Is(err, router.ErrInputType))

	// Output:
	// true
}
