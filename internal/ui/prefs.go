// Package ui holds the ephemeral view preferences that parameterize the
// derivation functions, plus the theme-aware render styles. Everything but
// the theme resets to defaults on every run.
package ui

import (
	"github.com/denizaydn/linkmark-cli/internal/bookmarks"
)

// Theme is the light/dark display flag, the only preference with
// cross-session persistence.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ThemeStore is the durable key-value collaborator the theme is persisted
// against.
type ThemeStore interface {
	LoadTheme() string
	SaveTheme(theme string) error
}

// Prefs carries the query and display parameters consumed by the
// presentation layer. Any string may be searched and any tag selected;
// unmatched values simply filter to nothing.
type Prefs struct {
	SearchQuery  string
	SelectedTags []string
	SortBy       bookmarks.SortMode
	ShowArchived bool
	Theme        Theme

	themes ThemeStore
}

// NewPrefs returns defaults (empty search, no tags, recent sort, archive
// view off) with the theme restored from ts when one was saved.
func NewPrefs(ts ThemeStore) *Prefs {
	p := &Prefs{
		SortBy: bookmarks.SortRecent,
		Theme:  ThemeLight,
		themes: ts,
	}
	if ts != nil {
		if saved := ts.LoadTheme(); saved == string(ThemeDark) || saved == string(ThemeLight) {
			p.Theme = Theme(saved)
		}
	}
	return p
}

// SetTheme switches the theme and saves it immediately.
func (p *Prefs) SetTheme(t Theme) error {
	p.Theme = t
	if p.themes == nil {
		return nil
	}
	return p.themes.SaveTheme(string(t))
}

// ToggleTheme flips between light and dark.
func (p *Prefs) ToggleTheme() error {
	if p.Theme == ThemeDark {
		return p.SetTheme(ThemeLight)
	}
	return p.SetTheme(ThemeDark)
}
