package term

import (
	"fmt"
	"image/color"

	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/style"
	"github.com/charmbracelet/lipgloss"
)

// Pixel lengths in a style sheet are converted to terminal cells at this
// ratio horizontally. Vertical padding has no terminal equivalent.
const pixelsPerCell = 10

const (
	colorHint  lipgloss.Color = "#b4b4b4"
	colorFocus lipgloss.Color = "#f5c2e7"
)

// DefaultSheet is the terminal counterpart of the device theme.
func DefaultSheet() style.Sheet {
	return style.Sheet{
		SelectedLabel:    style.Style{TextColor: style.Hex(0x94e2d5)},
		SelectedCheckbox: style.Style{Tint: style.Hex(0x008080)},
	}
}

type rowStyles struct {
	row      lipgloss.Style
	checkbox lipgloss.Style
	label    lipgloss.Style
	gap      int
	maxLines int
}

type styles struct {
	container lipgloss.Style
	title     lipgloss.Style
	hint      lipgloss.Style
	cursor    lipgloss.Style
	rows      [2]rowStyles // indexed by selected
}

func newStyles(sheet style.Sheet) styles {
	s := styles{
		container: boxStyle(sheet.Container),
		title:     lipgloss.NewStyle().Bold(true),
		hint:      lipgloss.NewStyle().Foreground(colorHint),
		cursor:    lipgloss.NewStyle().Foreground(colorFocus).Bold(true),
	}

	for i, selected := range []bool{false, true} {
		row, checkbox, label := sheet.ResolveRow(selected)
		s.rows[i] = rowStyles{
			row:      boxStyle(row),
			checkbox: textStyle(checkbox.Tint, lipgloss.NewStyle()),
			label:    labelStyle(label),
			gap:      max(cells(checkbox.SpacingOr(0)), 1),
			maxLines: label.MaxLinesOr(2),
		}
	}
	return s
}

func (s styles) forRow(selected bool) rowStyles {
	if selected {
		return s.rows[1]
	}
	return s.rows[0]
}

func boxStyle(st style.Style) lipgloss.Style {
	ls := lipgloss.NewStyle()
	if st.BackgroundColor != nil {
		ls = ls.Background(hex(*st.BackgroundColor))
	}
	if st.Padding != nil {
		ls = ls.PaddingLeft(cells(st.Padding.Left)).PaddingRight(cells(st.Padding.Right))
	}
	return ls
}

func labelStyle(st style.Style) lipgloss.Style {
	ls := textStyle(st.TextColor, lipgloss.NewStyle())
	if st.BackgroundColor != nil {
		ls = ls.Background(hex(*st.BackgroundColor))
	}
	if st.FontSizeOr(style.FontSizeSmall) == style.FontSizeLarge {
		ls = ls.Bold(true)
	}
	return ls
}

func textStyle(c *color.RGBA, ls lipgloss.Style) lipgloss.Style {
	if c == nil {
		return ls
	}
	return ls.Foreground(hex(*c))
}

func hex(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

func cells(px int32) int {
	return int(px / pixelsPerCell)
}
