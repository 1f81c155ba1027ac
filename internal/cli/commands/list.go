package commands

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/denizaydn/linkmark-cli/internal/bookmarks"
	"github.com/denizaydn/linkmark-cli/internal/models"
	"github.com/denizaydn/linkmark-cli/internal/ui"
)

func NewListCommand() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List bookmarks",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "search",
				Aliases: []string{"s"},
				Usage:   "Filter by text in title, description or URL",
			},
			&cli.StringSliceFlag{
				Name:    "tag",
				Aliases: []string{"t"},
				Usage:   "Only bookmarks carrying this tag (repeatable, all must match)",
			},
			&cli.StringFlag{
				Name:  "sort",
				Value: string(bookmarks.SortRecent),
				Usage: "Sort mode: recent, visited or views",
			},
			&cli.BoolFlag{
				Name:    "archived",
				Aliases: []string{"a"},
				Usage:   "Show archived bookmarks instead of active ones",
			},
		},
		Action: func(c *cli.Context) error {
			if !bookmarks.ValidSortMode(c.String("sort")) {
				return fmt.Errorf("unknown sort mode '%s'", c.String("sort"))
			}

			prefs := loadPrefs()
			prefs.SearchQuery = c.String("search")
			prefs.SelectedTags = c.StringSlice("tag")
			prefs.SortBy = bookmarks.SortMode(c.String("sort"))
			prefs.ShowArchived = c.Bool("archived")

			st := loadStore()
			visible := bookmarks.Sort(
				bookmarks.Filter(st.Bookmarks(), prefs.SearchQuery, prefs.SelectedTags, prefs.ShowArchived),
				prefs.SortBy,
			)

			if len(visible) == 0 {
				if prefs.SearchQuery != "" || len(prefs.SelectedTags) > 0 {
					fmt.Println("🔍 No bookmarks match the current filters.")
				} else {
					fmt.Println("📑 No bookmarks yet. Save one with 'linkmark add'.")
				}
				return nil
			}

			renderList(visible, ui.NewStyles(prefs.Theme))
			return nil
		},
	}
}

func renderList(list []models.Bookmark, styles ui.Styles) {
	for _, b := range list {
		title := styles.Title.Render(truncateString(b.Title, 70))
		if b.IsArchived {
			title = styles.Archived.Render(truncateString(b.Title, 70))
		}

		marker := "  "
		if b.IsPinned {
			marker = styles.Pinned.Render("📌") + " "
		}

		fmt.Printf("%s%s  %s\n", marker, styles.Muted.Render(b.ID.String()[:8]), title)
		fmt.Printf("   %s\n", styles.URL.Render(b.URL))

		var meta []string
		if len(b.Tags) > 0 {
			meta = append(meta, styles.Tag.Render("#"+strings.Join(b.Tags, " #")))
		}
		meta = append(meta, fmt.Sprintf("%d views", b.ViewCount))
		meta = append(meta, "saved "+bookmarks.FormatDate(b.CreatedAt))
		if b.LastVisited != nil {
			meta = append(meta, "visited "+bookmarks.FormatDate(*b.LastVisited))
		}
		fmt.Printf("   %s\n", styles.Muted.Render(strings.Join(meta, " · ")))
	}
	fmt.Printf("\n%d bookmark(s)\n", len(list))
}
