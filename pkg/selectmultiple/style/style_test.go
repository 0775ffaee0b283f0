package style

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMergeLaterLayerWins(t *testing.T) {
	base := Style{TextColor: Hex(0xFFFFFF), Height: Int32(60), MaxLines: Int(2)}
	override := Style{TextColor: Hex(0x00FF00)}
	selected := Style{TextColor: Hex(0xFF0000), Height: Int32(80)}

	got := Merge(base, override, selected)

	require.Equal(t, color.RGBA{R: 255, A: 255}, *got.TextColor)
	require.Equal(t, int32(80), *got.Height)
	require.Equal(t, 2, *got.MaxLines)
	require.Nil(t, got.BackgroundColor)
}

func TestMergeDoesNotMutateLayers(t *testing.T) {
	base := Style{Height: Int32(60)}
	_ = Merge(base, Style{Height: Int32(10)})

	require.Equal(t, int32(60), *base.Height)
}

func TestResolve(t *testing.T) {
	base := Style{Width: Int32(30)}
	override := Style{Tint: Hex(0x123456)}
	selected := Style{Tint: Hex(0xABCDEF), Width: Int32(40)}

	plain := Resolve(base, override, selected, false)
	require.Equal(t, int32(30), *plain.Width)
	require.Equal(t, *Hex(0x123456), *plain.Tint)

	chosen := Resolve(base, override, selected, true)
	require.Equal(t, int32(40), *chosen.Width)
	require.Equal(t, *Hex(0xABCDEF), *chosen.Tint)
}

func TestGettersFallBack(t *testing.T) {
	var s Style
	require.True(t, s.IsZero())
	require.Equal(t, int32(7), s.HeightOr(7))
	require.Equal(t, 3, s.MaxLinesOr(3))
	require.Equal(t, FontSizeLarge, s.FontSizeOr(FontSizeLarge))
	require.Equal(t, Padding{Left: 1}, s.PaddingOr(Padding{Left: 1}))
	require.Equal(t, *Hex(0x123456), s.BackgroundOr(*Hex(0x123456)))

	s.Height = Int32(9)
	require.False(t, s.IsZero())
	require.Equal(t, int32(9), s.HeightOr(7))
}

func TestSheetResolveRow(t *testing.T) {
	sheet := Sheet{
		Row:           Style{BackgroundColor: Hex(0x000000)},
		SelectedRow:   Style{BackgroundColor: Hex(0xFFFFFF)},
		Label:         Style{MaxLines: Int(1)},
		SelectedLabel: Style{TextColor: Hex(0x000000)},
	}

	row, checkbox, label := sheet.ResolveRow(false)
	require.Equal(t, *Hex(0x000000), *row.BackgroundColor)
	require.Equal(t, int32(60), *row.Height)
	require.Equal(t, int32(30), *checkbox.Width)
	require.Equal(t, 1, *label.MaxLines)
	require.Equal(t, *Hex(0xFFFFFF), *label.TextColor)

	row, _, label = sheet.ResolveRow(true)
	require.Equal(t, *Hex(0xFFFFFF), *row.BackgroundColor)
	require.Equal(t, *Hex(0x000000), *label.TextColor)
	require.Equal(t, 1, *label.MaxLines)
}

func TestSheetOver(t *testing.T) {
	a := Sheet{Row: Style{Height: Int32(10), Width: Int32(5)}}
	b := Sheet{Row: Style{Height: Int32(20)}, Label: Style{MaxLines: Int(1)}}

	got := a.Over(b)

	require.Equal(t, int32(20), *got.Row.Height)
	require.Equal(t, int32(5), *got.Row.Width)
	require.Equal(t, 1, *got.Label.MaxLines)
}

func TestDecodeSheet(t *testing.T) {
	data := []byte(`
[container]
background = "#101010"

[row]
padding = [4, 8]
height = 48

[checkbox]
tint = "#FFFFFF80"

[label]
font_size = "medium"
max_lines = 1

[selected_row]
background = "#008080"
corner_radius = 12

[selected_label]
text = "#000000"
`)
	sheet, err := DecodeSheet(data)
	require.NoError(t, err)

	require.Equal(t, color.RGBA{R: 16, G: 16, B: 16, A: 255}, *sheet.Container.BackgroundColor)
	require.Equal(t, Padding{Top: 4, Right: 8, Bottom: 4, Left: 8}, *sheet.Row.Padding)
	require.Equal(t, int32(48), *sheet.Row.Height)
	require.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 128}, *sheet.Checkbox.Tint)
	require.Equal(t, FontSizeMedium, *sheet.Label.FontSize)
	require.Equal(t, 1, *sheet.Label.MaxLines)
	require.Equal(t, int32(12), *sheet.SelectedRow.CornerRadius)
	require.Equal(t, color.RGBA{A: 255}, *sheet.SelectedLabel.TextColor)
	require.True(t, sheet.SelectedCheckbox.IsZero())
}

func TestDecodeSheetErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad colour", "[row]\nbackground = \"#12\"", "style sheet [row]: background"},
		{"bad padding", "[label]\npadding = [1, 2, 3]", "padding: want 1, 2 or 4 values"},
		{"bad font", "[label]\nfont_size = \"huge\"", "unknown size"},
		{"unknown key", "[row]\ncolour = \"#FFFFFF\"", "unknown key"},
		{"not toml", "[row", "decode style sheet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeSheet([]byte(tt.data))
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#008080")
	require.NoError(t, err)
	require.Equal(t, color.RGBA{G: 128, B: 128, A: 255}, c)

	_, err = ParseColor("teal")
	require.Error(t, err)
}
