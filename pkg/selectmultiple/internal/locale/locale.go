// Package locale translates the fixed strings the toolkit draws itself:
// footer hints, confirm prompts and selection counts.
package locale

import (
	"embed"
	"path"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed messages/*.toml
var messageFS embed.FS

// Message ids.
const (
	Toggle           = "Toggle"
	Done             = "Done"
	Back             = "Back"
	Navigate         = "Navigate"
	Yes              = "Yes"
	No               = "No"
	Quit             = "Quit"
	NothingSelected  = "NothingSelected"
	SelectedCount    = "SelectedCount"
	ConfirmSelection = "ConfirmSelection"
)

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
	bundleErr  error
)

// Bundle returns the shared message bundle, loading the embedded message
// files on first use.
func Bundle() (*i18n.Bundle, error) {
	bundleOnce.Do(func() {
		b := i18n.NewBundle(language.English)
		b.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		entries, err := messageFS.ReadDir("messages")
		if err != nil {
			bundleErr = err
			return
		}
		for _, e := range entries {
			if _, err := b.LoadMessageFileFS(messageFS, path.Join("messages", e.Name())); err != nil {
				bundleErr = err
				return
			}
		}
		bundle = b
	})
	return bundle, bundleErr
}

// Localizer resolves messages for one preferred language.
type Localizer struct {
	tag       language.Tag
	localizer *i18n.Localizer
}

// New picks the best supported language for the given preferences
// (BCP 47 tags or Accept-Language strings). English is the fallback.
func New(preferences ...string) *Localizer {
	b, err := Bundle()
	if err != nil {
		return &Localizer{tag: language.English}
	}

	matcher := language.NewMatcher(b.LanguageTags())
	tag, _ := language.MatchStrings(matcher, preferences...)
	base, _ := tag.Base()

	return &Localizer{
		tag:       language.Make(base.String()),
		localizer: i18n.NewLocalizer(b, append(preferences, language.English.String())...),
	}
}

// Tag is the language the localizer settled on.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// T returns the message for id, or id itself when it cannot be resolved.
func (l *Localizer) T(id string) string {
	return l.localize(&i18n.LocalizeConfig{MessageID: id}, id)
}

// SelectedCount describes how many items are selected.
func (l *Localizer) SelectedCount(n int) string {
	if n == 0 {
		return l.T(NothingSelected)
	}
	return l.localize(&i18n.LocalizeConfig{
		MessageID:    SelectedCount,
		PluralCount:  n,
		TemplateData: map[string]any{"Count": n},
	}, SelectedCount)
}

// ConfirmSelection asks whether to keep n selected items.
func (l *Localizer) ConfirmSelection(n int) string {
	return l.localize(&i18n.LocalizeConfig{
		MessageID:    ConfirmSelection,
		PluralCount:  n,
		TemplateData: map[string]any{"Count": n},
	}, ConfirmSelection)
}

func (l *Localizer) localize(cfg *i18n.LocalizeConfig, fallback string) string {
	if l == nil || l.localizer == nil {
		return fallback
	}
	msg, err := l.localizer.Localize(cfg)
	if err != nil {
		return fallback
	}
	return msg
}
