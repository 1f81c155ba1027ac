// Package bookmarks holds the pure derivation functions over a bookmark
// collection: filtering, ordering and tag aggregation. Nothing in here
// mutates its input or talks to the network.
package bookmarks

import (
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/denizaydn/linkmark-cli/internal/models"
)

// SortMode selects the ordering applied within the pinned and unpinned
// partitions.
type SortMode string

const (
	SortRecent  SortMode = "recent"
	SortVisited SortMode = "visited"
	SortViews   SortMode = "views"
)

// ValidSortMode reports whether s names a known sort mode.
func ValidSortMode(s string) bool {
	switch SortMode(s) {
	case SortRecent, SortVisited, SortViews:
		return true
	}
	return false
}

// Filter returns the bookmarks whose archived flag equals showArchived,
// that match the search text (case-insensitive substring over title,
// description and URL, empty search matches everything) and whose tag set
// contains every selected tag. The input slice is not modified.
func Filter(list []models.Bookmark, search string, selectedTags []string, showArchived bool) []models.Bookmark {
	query := strings.ToLower(strings.TrimSpace(search))

	out := make([]models.Bookmark, 0, len(list))
	for _, b := range list {
		if b.IsArchived != showArchived {
			continue
		}

		if query != "" {
			matches := strings.Contains(strings.ToLower(b.Title), query) ||
				strings.Contains(strings.ToLower(b.Description), query) ||
				strings.Contains(strings.ToLower(b.URL), query)
			if !matches {
				continue
			}
		}

		if len(selectedTags) > 0 && !containsAll(b.Tags, selectedTags) {
			continue
		}

		out = append(out, b)
	}
	return out
}

func containsAll(have, want []string) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if h == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Sort returns a new slice ordered by mode, with every pinned bookmark
// ahead of every unpinned one. Ties keep the relative order of the input
// (stable). Bookmarks never visited sort as if visited at the epoch.
func Sort(list []models.Bookmark, mode SortMode) []models.Bookmark {
	sorted := make([]models.Bookmark, len(list))
	copy(sorted, list)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		switch mode {
		case SortRecent:
			return a.CreatedAt.After(b.CreatedAt)
		case SortVisited:
			return visitedAt(a).After(visitedAt(b))
		case SortViews:
			return a.ViewCount > b.ViewCount
		}
		return false
	})

	out := make([]models.Bookmark, 0, len(sorted))
	for _, b := range sorted {
		if b.IsPinned {
			out = append(out, b)
		}
	}
	for _, b := range sorted {
		if !b.IsPinned {
			out = append(out, b)
		}
	}
	return out
}

func visitedAt(b models.Bookmark) time.Time {
	if b.LastVisited == nil {
		return time.Time{}
	}
	return *b.LastVisited
}

// UniqueTags returns every distinct tag name appearing across the
// collection, in first-seen order.
func UniqueTags(list []models.Bookmark) []string {
	seen := make(map[string]bool)
	var out []string
	for _, b := range list {
		for _, t := range b.Tags {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	return out
}

// TagCounts returns how many bookmarks carry each tag name.
func TagCounts(list []models.Bookmark) map[string]int {
	counts := make(map[string]int)
	for _, b := range list {
		for _, t := range b.Tags {
			counts[t]++
		}
	}
	return counts
}

// FormatDate renders a timestamp as a relative phrase ("3 days ago").
func FormatDate(t time.Time) string {
	return humanize.Time(t)
}

// FaviconURL returns a favicon lookup URL for a bookmark's link, or ""
// when the link does not parse.
func FaviconURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	return "https://www.google.com/s2/favicons?domain=" + u.Hostname() + "&sz=128"
}
