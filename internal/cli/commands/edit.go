package commands

import (
	"fmt"
	"net/url"

	"github.com/urfave/cli/v2"

	"github.com/denizaydn/linkmark-cli/internal/store"
)

func NewEditCommand() *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "Edit a bookmark's fields",
		ArgsUsage: "[bookmark-id]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "title",
				Usage: "New title",
			},
			&cli.StringFlag{
				Name:    "url",
				Aliases: []string{"u"},
				Usage:   "New URL",
			},
			&cli.StringFlag{
				Name:    "description",
				Aliases: []string{"d"},
				Usage:   "New description",
			},
			&cli.StringFlag{
				Name:    "tags",
				Aliases: []string{"t"},
				Usage:   "Replacement tag list, comma-separated (use \"\" to clear)",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("bookmark ID is required")
			}

			st := loadStore()
			b, err := resolveBookmark(st, c.Args().First())
			if err != nil {
				return err
			}

			var upd store.Update
			if c.IsSet("title") {
				title := c.String("title")
				if title == "" {
					return fmt.Errorf("title cannot be empty")
				}
				upd.Title = &title
			}
			if c.IsSet("url") {
				raw := c.String("url")
				u, err := url.Parse(raw)
				if err != nil || !u.IsAbs() || u.Host == "" {
					return fmt.Errorf("'%s' is not a valid URL", raw)
				}
				upd.URL = &raw
			}
			if c.IsSet("description") {
				desc := c.String("description")
				upd.Description = &desc
			}
			if c.IsSet("tags") {
				tags := splitTags(c.String("tags"))
				if tags == nil {
					tags = []string{}
				}
				upd.Tags = &tags
			}

			if upd == (store.Update{}) {
				fmt.Println("No update fields provided.")
				return nil
			}

			st.Update(b.ID, upd)
			fmt.Printf("✅ Bookmark %s updated.\n", b.ID.String()[:8])
			return nil
		},
	}
}
