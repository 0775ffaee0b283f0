package style

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Sheet is the full style configuration of a SelectMultiple: a container
// style plus a base and a selected-state override for each row slot.
type Sheet struct {
	Container        Style
	Row              Style
	Checkbox         Style
	Label            Style
	SelectedRow      Style
	SelectedCheckbox Style
	SelectedLabel    Style
}

// Defaults returns the component's own base styles. Caller styles are
// layered on top of these.
func Defaults() Sheet {
	return Sheet{
		Row: Style{
			Padding:      &Padding{Top: 10, Right: 10, Bottom: 10, Left: 10},
			Height:       Int32(60),
			CornerRadius: Int32(20),
			Spacing:      Int32(0),
		},
		Checkbox: Style{
			Width:   Int32(30),
			Height:  Int32(30),
			Spacing: Int32(15),
		},
		Label: Style{
			TextColor: Hex(0xFFFFFF),
			FontSize:  Size(FontSizeSmall),
			MaxLines:  Int(2),
		},
	}
}

// ResolveRow layers the defaults, the sheet's overrides and, for selected
// rows, the selected overrides for each slot.
func (s Sheet) ResolveRow(selected bool) (row, checkbox, label Style) {
	base := Defaults()
	row = Resolve(base.Row, s.Row, s.SelectedRow, selected)
	checkbox = Resolve(base.Checkbox, s.Checkbox, s.SelectedCheckbox, selected)
	label = Resolve(base.Label, s.Label, s.SelectedLabel, selected)
	return row, checkbox, label
}

// Over returns s with every slot overridden by the same slot of over.
func (s Sheet) Over(over Sheet) Sheet {
	return Sheet{
		Container:        s.Container.With(over.Container),
		Row:              s.Row.With(over.Row),
		Checkbox:         s.Checkbox.With(over.Checkbox),
		Label:            s.Label.With(over.Label),
		SelectedRow:      s.SelectedRow.With(over.SelectedRow),
		SelectedCheckbox: s.SelectedCheckbox.With(over.SelectedCheckbox),
		SelectedLabel:    s.SelectedLabel.With(over.SelectedLabel),
	}
}

type fileStyle struct {
	Background   string  `toml:"background"`
	Text         string  `toml:"text"`
	Tint         string  `toml:"tint"`
	Padding      []int32 `toml:"padding"`
	Height       *int32  `toml:"height"`
	Width        *int32  `toml:"width"`
	CornerRadius *int32  `toml:"corner_radius"`
	Spacing      *int32  `toml:"spacing"`
	FontSize     string  `toml:"font_size"`
	MaxLines     *int    `toml:"max_lines"`
}

type fileSheet struct {
	Container        fileStyle `toml:"container"`
	Row              fileStyle `toml:"row"`
	Checkbox         fileStyle `toml:"checkbox"`
	Label            fileStyle `toml:"label"`
	SelectedRow      fileStyle `toml:"selected_row"`
	SelectedCheckbox fileStyle `toml:"selected_checkbox"`
	SelectedLabel    fileStyle `toml:"selected_label"`
}

// LoadSheet reads a TOML style sheet from path.
func LoadSheet(path string) (Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Sheet{}, fmt.Errorf("read style sheet: %w", err)
	}
	return DecodeSheet(data)
}

// DecodeSheet parses a TOML style sheet. Tables are named after the slots
// (container, row, checkbox, label, selected_row, selected_checkbox,
// selected_label); colours are "#RRGGBB" or "#RRGGBBAA".
func DecodeSheet(data []byte) (Sheet, error) {
	var fs fileSheet
	md, err := toml.Decode(string(data), &fs)
	if err != nil {
		return Sheet{}, fmt.Errorf("decode style sheet: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Sheet{}, fmt.Errorf("decode style sheet: unknown key %q", undecoded[0].String())
	}

	var sheet Sheet
	slots := []struct {
		name string
		in   fileStyle
		out  *Style
	}{
		{"container", fs.Container, &sheet.Container},
		{"row", fs.Row, &sheet.Row},
		{"checkbox", fs.Checkbox, &sheet.Checkbox},
		{"label", fs.Label, &sheet.Label},
		{"selected_row", fs.SelectedRow, &sheet.SelectedRow},
		{"selected_checkbox", fs.SelectedCheckbox, &sheet.SelectedCheckbox},
		{"selected_label", fs.SelectedLabel, &sheet.SelectedLabel},
	}
	for _, slot := range slots {
		s, err := slot.in.toStyle()
		if err != nil {
			return Sheet{}, fmt.Errorf("style sheet [%s]: %w", slot.name, err)
		}
		*slot.out = s
	}
	return sheet, nil
}

func (f fileStyle) toStyle() (Style, error) {
	var s Style
	var err error

	if s.BackgroundColor, err = parseOptionalColor(f.Background); err != nil {
		return Style{}, fmt.Errorf("background: %w", err)
	}
	if s.TextColor, err = parseOptionalColor(f.Text); err != nil {
		return Style{}, fmt.Errorf("text: %w", err)
	}
	if s.Tint, err = parseOptionalColor(f.Tint); err != nil {
		return Style{}, fmt.Errorf("tint: %w", err)
	}

	switch len(f.Padding) {
	case 0:
	case 1:
		s.Padding = Uniform(f.Padding[0])
	case 2:
		s.Padding = &Padding{Top: f.Padding[0], Right: f.Padding[1], Bottom: f.Padding[0], Left: f.Padding[1]}
	case 4:
		s.Padding = &Padding{Top: f.Padding[0], Right: f.Padding[1], Bottom: f.Padding[2], Left: f.Padding[3]}
	default:
		return Style{}, fmt.Errorf("padding: want 1, 2 or 4 values, got %d", len(f.Padding))
	}

	s.Height = f.Height
	s.Width = f.Width
	s.CornerRadius = f.CornerRadius
	s.Spacing = f.Spacing
	s.MaxLines = f.MaxLines

	if f.FontSize != "" {
		size, err := ParseFontSize(f.FontSize)
		if err != nil {
			return Style{}, err
		}
		s.FontSize = &size
	}
	return s, nil
}

// ParseFontSize accepts "small", "medium" or "large".
func ParseFontSize(raw string) (FontSize, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "small":
		return FontSizeSmall, nil
	case "medium":
		return FontSizeMedium, nil
	case "large":
		return FontSizeLarge, nil
	}
	return 0, fmt.Errorf("font_size: unknown size %q", raw)
}

// ParseColor parses "#RRGGBB" or "#RRGGBBAA".
func ParseColor(raw string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(raw), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid colour %q", raw)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", raw, err)
	}
	if len(hex) == 6 {
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func parseOptionalColor(raw string) (*color.RGBA, error) {
	if raw == "" {
		return nil, nil
	}
	c, err := ParseColor(raw)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
