// Package router sequences screens with explicit data flow.
//
// Each screen takes an input and returns a result. A single transition
// function decides, from the screen that finished and its result, which
// screen runs next. Back navigation goes through a Stack that remembers
// the input and resume state (focus, scroll position) of earlier screens.
//
// # Basic Usage
//
//	const (
//	    ScreenSelect router.Screen = iota
//	    ScreenConfirm
//	)
//
//	r := router.New().CancelAs(selectmultiple.IsCancelled)
//
//	r.Register(ScreenSelect, router.Typed(func(in SelectInput) (SelectResult, error) {
//	    return selectScreen(in)
//	}))
//
//	r.Register(ScreenConfirm, router.Typed(func(in ConfirmInput) (ConfirmResult, error) {
//	    return confirmScreen(in)
//	}))
//
//	r.OnTransition(func(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
//	    if router.IsCancelled(result) {
//	        return stack.Back()
//	    }
//	    switch from {
//	    case ScreenSelect:
//	        res := result.(SelectResult)
//	        stack.Push(from, res.Input, res.Resume)
//	        return ScreenConfirm, ConfirmInput{Selected: res.Selected}
//	    case ScreenConfirm:
//	        if !result.(ConfirmResult).Keep {
//	            return stack.Back()
//	        }
//	    }
//	    return router.ScreenExit, nil
//	})
//
//	err := r.Run(ScreenSelect, SelectInput{Items: items})
//
// # Resume State
//
// A screen that is navigated away from can leave resume state on the stack.
// Stack.Back pops the entry and, when the stored input implements Resumer,
// hands the resume state back to it so the screen reopens where it was.
//
// Dialogs and confirmations usually have no resume state and push nil.
package router
