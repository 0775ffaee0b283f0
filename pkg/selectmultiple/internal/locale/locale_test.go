package locale

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestBundleLoadsEmbeddedMessages(t *testing.T) {
	b, err := Bundle()
	require.NoError(t, err)
	require.ElementsMatch(t, []language.Tag{language.English, language.German}, b.LanguageTags())
}

func TestEnglish(t *testing.T) {
	l := New("en-US")

	require.Equal(t, language.English, l.Tag())
	require.Equal(t, "Toggle", l.T(Toggle))
	require.Equal(t, "Nothing selected", l.SelectedCount(0))
	require.Equal(t, "1 item selected", l.SelectedCount(1))
	require.Equal(t, "3 items selected", l.SelectedCount(3))
	require.Equal(t, "Keep 2 selected items?", l.ConfirmSelection(2))
}

func TestGerman(t *testing.T) {
	l := New("de-AT", "en")

	require.Equal(t, language.German, l.Tag())
	require.Equal(t, "Fertig", l.T(Done))
	require.Equal(t, "1 Eintrag ausgewählt", l.SelectedCount(1))
	require.Equal(t, "Nichts ausgewählt", l.SelectedCount(0))
}

func TestUnsupportedFallsBackToEnglish(t *testing.T) {
	l := New("ja")

	require.Equal(t, language.English, l.Tag())
	require.Equal(t, "Back", l.T(Back))
}

func TestUnknownMessageReturnsID(t *testing.T) {
	require.Equal(t, "Missing", New().T("Missing"))

	var nilLocalizer *Localizer
	require.Equal(t, Yes, nilLocalizer.T(Yes))
}
