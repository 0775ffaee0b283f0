package selectmultiple

import (
	"testing"

	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/constants"
	"github.com/stretchr/testify/require"
)

func pressAll(c *confirmController, buttons ...constants.VirtualButton) {
	for _, b := range buttons {
		c.handleButton(b)
	}
}

func TestConfirmDefaults(t *testing.T) {
	SetLanguage("en")
	c := newConfirmController("Keep?", nil, ConfirmSettings{InitialSelection: 7})
	c.inputDelay = 0

	require.Equal(t, []string{"Yes", "No"}, c.options)
	require.Equal(t, 0, c.selectedIndex)
	require.Equal(t, []FooterHelpItem{
		{ButtonName: "B", HelpText: "Back"},
		{ButtonName: "A", HelpText: "Done"},
	}, c.footer)
}

func TestConfirmNavigationWraps(t *testing.T) {
	c := newConfirmController("Pick", nil, ConfirmSettings{Options: []string{"One", "Two", "Three"}})
	c.inputDelay = 0

	pressAll(c, constants.VirtualButtonLeft)
	require.Equal(t, 2, c.selectedIndex)

	pressAll(c, constants.VirtualButtonRight, constants.VirtualButtonRight)
	require.Equal(t, 1, c.selectedIndex)

	pressAll(c, constants.VirtualButtonA)
	require.True(t, c.confirmed)
	require.False(t, c.cancelled)
}

func TestConfirmBack(t *testing.T) {
	c := newConfirmController("Keep?", nil, ConfirmSettings{})
	c.inputDelay = 0
	pressAll(c, constants.VirtualButtonB)
	require.True(t, c.cancelled)

	c = newConfirmController("Keep?", nil, ConfirmSettings{DisableBackButton: true})
	c.inputDelay = 0
	pressAll(c, constants.VirtualButtonB)
	require.False(t, c.cancelled)
	require.Len(t, c.footer, 1)

	pressAll(c, constants.VirtualButtonStart)
	require.True(t, c.confirmed)
}

func TestConfirmGerman(t *testing.T) {
	SetLanguage("de")
	defer SetLanguage("en")

	c := newConfirmController("?", nil, ConfirmSettings{})
	require.Equal(t, []string{"Ja", "Nein"}, c.options)
}
