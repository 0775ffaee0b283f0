package internal

import (
	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// WindowOptions selects SDL window flags. The zero value means "use the
// defaults for the current environment".
type WindowOptions struct {
	Borderless        bool
	Resizable         bool
	Fullscreen        bool
	FullscreenDesktop bool
	AlwaysOnTop       bool
	Maximized         bool
	Hidden            bool // Omits SDL_WINDOW_SHOWN
}

// DefaultWindowOptions is resizable everywhere and borderless in dev mode,
// where the window stands in for a handheld screen.
func DefaultWindowOptions() WindowOptions {
	return WindowOptions{Resizable: true, Borderless: constants.IsDevMode()}
}

func (wo WindowOptions) IsZero() bool {
	return wo == WindowOptions{}
}

func (wo WindowOptions) ToSDLFlags() uint32 {
	flags := []struct {
		on   bool
		flag uint32
	}{
		{!wo.Hidden, sdl.WINDOW_SHOWN},
		{wo.Resizable, sdl.WINDOW_RESIZABLE},
		{wo.Borderless, sdl.WINDOW_BORDERLESS},
		{wo.Fullscreen, sdl.WINDOW_FULLSCREEN},
		{wo.FullscreenDesktop, sdl.WINDOW_FULLSCREEN_DESKTOP},
		{wo.AlwaysOnTop, sdl.WINDOW_ALWAYS_ON_TOP},
		{wo.Maximized, sdl.WINDOW_MAXIMIZED},
	}

	var out uint32
	for _, f := range flags {
		if f.on {
			out |= f.flag
		}
	}
	return out
}
