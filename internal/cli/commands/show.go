package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v2"

	"github.com/denizaydn/linkmark-cli/internal/bookmarks"
)

func NewShowCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show details for a bookmark",
		ArgsUsage: "[bookmark-id]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("bookmark ID is required")
			}

			st := loadStore()
			b, err := resolveBookmark(st, c.Args().First())
			if err != nil {
				return err
			}

			fmt.Printf("Bookmark '%s':\n", b.Title)
			fmt.Printf("----------------------------------\n")
			fmt.Printf("ID:        %s\n", b.ID.String())
			fmt.Printf("URL:       %s\n", b.URL)
			if favicon := bookmarks.FaviconURL(b.URL); favicon != "" {
				fmt.Printf("Favicon:   %s\n", favicon)
			}
			if len(b.Tags) > 0 {
				fmt.Printf("Tags:      %s\n", strings.Join(b.Tags, ", "))
			}
			fmt.Printf("Pinned:    %v\n", b.IsPinned)
			fmt.Printf("Archived:  %v\n", b.IsArchived)
			fmt.Printf("Views:     %d\n", b.ViewCount)
			if b.LastVisited != nil {
				fmt.Printf("Visited:   %s\n", bookmarks.FormatDate(*b.LastVisited))
			}
			fmt.Printf("Saved:     %s\n", b.CreatedAt.Format("2006-01-02 15:04:05"))

			if b.Description != "" {
				rendered, err := glamour.Render(b.Description, "auto")
				if err != nil {
					fmt.Printf("\n%s\n", b.Description)
				} else {
					fmt.Print(rendered)
				}
			}
			return nil
		},
	}
}
