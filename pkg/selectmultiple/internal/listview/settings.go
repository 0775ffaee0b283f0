package listview

import (
	"time"

	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/constants"
	"github.com/BrandonKowalski/selectmultiple/pkg/selectmultiple/internal"
)

// Settings configures a ListView. Zero values fall back to DefaultSettings
// when passed through Merge.
type Settings struct {
	Title        string
	TitleAlign   constants.TextAlign
	TitleSpacing int32
	Margins      internal.Padding
	RowSpacing   int32
	InputDelay   time.Duration
	InitialFocus int
	VisibleStart int
	CacheSize    int
	HideFocus    bool
}

func DefaultSettings() Settings {
	return Settings{
		TitleAlign:   constants.TextAlignLeft,
		TitleSpacing: constants.DefaultTitleSpacing,
		Margins:      internal.UniformPadding(20),
		InputDelay:   constants.DefaultInputDelay,
		VisibleStart: -1,
		CacheSize:    32,
	}
}

// Merge lays over on top of s. Only fields set in over replace those in s.
func (s Settings) Merge(over Settings) Settings {
	if over.Title != "" {
		s.Title = over.Title
	}
	if over.TitleAlign != constants.TextAlignLeft {
		s.TitleAlign = over.TitleAlign
	}
	if over.TitleSpacing != 0 {
		s.TitleSpacing = over.TitleSpacing
	}
	if over.Margins != (internal.Padding{}) {
		s.Margins = over.Margins
	}
	if over.RowSpacing != 0 {
		s.RowSpacing = over.RowSpacing
	}
	if over.InputDelay != 0 {
		s.InputDelay = over.InputDelay
	}
	if over.InitialFocus != 0 {
		s.InitialFocus = over.InitialFocus
	}
	if over.VisibleStart > 0 {
		s.VisibleStart = over.VisibleStart
	}
	if over.CacheSize != 0 {
		s.CacheSize = over.CacheSize
	}
	if over.HideFocus {
		s.HideFocus = true
	}
	return s
}
