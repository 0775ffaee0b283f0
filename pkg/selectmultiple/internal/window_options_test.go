package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

func TestWindowOptionsFlags(t *testing.T) {
	require.Equal(t, uint32(sdl.WINDOW_SHOWN), WindowOptions{}.ToSDLFlags())
	require.Equal(t, uint32(0), WindowOptions{Hidden: true}.ToSDLFlags())

	got := WindowOptions{Resizable: true, Borderless: true}.ToSDLFlags()
	require.Equal(t, uint32(sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE|sdl.WINDOW_BORDERLESS), got)
}

func TestDefaultWindowOptions(t *testing.T) {
	t.Setenv("ENVIRONMENT", "DEV")
	require.True(t, DefaultWindowOptions().Borderless)

	t.Setenv("ENVIRONMENT", "")
	opts := DefaultWindowOptions()
	require.False(t, opts.Borderless)
	require.True(t, opts.Resizable)
	require.False(t, opts.IsZero())
}
