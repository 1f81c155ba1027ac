package commands

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/denizaydn/linkmark-cli/internal/api"
	"github.com/denizaydn/linkmark-cli/internal/auth"
	"github.com/denizaydn/linkmark-cli/internal/config"
	"github.com/denizaydn/linkmark-cli/internal/models"
	"github.com/denizaydn/linkmark-cli/internal/store"
	"github.com/denizaydn/linkmark-cli/internal/ui"
)

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// currentUserID resolves the signed-in user, uuid.Nil when signed out.
// The store's Load takes this as an explicit input so identity changes
// (login, logout) flow through one place.
func currentUserID() uuid.UUID {
	if auth.RetrieveAPIKey() == "" {
		return uuid.Nil
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		return uuid.Nil
	}
	return cfg.UserID
}

// loadStore builds the store over the API client and loads the current
// user's bookmarks.
func loadStore() *store.Store {
	st := store.New(api.NewClient())
	st.Load(currentUserID())
	return st
}

// loadPrefs restores the view preferences, with the theme coming from the
// config file.
func loadPrefs() *ui.Prefs {
	cfg, err := config.LoadConfig()
	if err != nil {
		return ui.NewPrefs(nil)
	}
	return ui.NewPrefs(cfg)
}

// resolveBookmark matches an id or unambiguous id prefix against the
// cached collection.
func resolveBookmark(st *store.Store, idArg string) (*models.Bookmark, error) {
	idArg = strings.ToLower(strings.TrimSpace(idArg))
	if idArg == "" {
		return nil, fmt.Errorf("bookmark ID is required")
	}

	var match *models.Bookmark
	for _, b := range st.Bookmarks() {
		if strings.HasPrefix(b.ID.String(), idArg) {
			if match != nil {
				return nil, fmt.Errorf("bookmark ID '%s' is ambiguous", idArg)
			}
			bb := b
			match = &bb
		}
	}
	if match == nil {
		return nil, fmt.Errorf("bookmark with ID '%s' not found", idArg)
	}
	return match, nil
}

// splitTags parses a comma-separated tag flag into trimmed names.
func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
