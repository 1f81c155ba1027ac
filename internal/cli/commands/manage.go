package commands

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func NewRemoveCommand() *cli.Command {
	return &cli.Command{
		Name:      "rm",
		Aliases:   []string{"delete"},
		Usage:     "Delete a bookmark (irreversible)",
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

			st.Remove(b.ID)
			fmt.Printf("🗑️ Bookmark '%s' deleted.\n", b.Title)
			return nil
		},
	}
}

func NewPinCommand() *cli.Command {
	return &cli.Command{
		Name:      "pin",
		Usage:     "Pin or unpin a bookmark",
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

			st.TogglePin(b.ID)
			if b.IsPinned {
				fmt.Printf("📌 Bookmark '%s' unpinned.\n", b.Title)
			} else {
				fmt.Printf("📌 Bookmark '%s' pinned.\n", b.Title)
			}
			return nil
		},
	}
}

func NewArchiveCommand() *cli.Command {
	return &cli.Command{
		Name:      "archive",
		Usage:     "Archive or unarchive a bookmark",
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

			st.ToggleArchive(b.ID)
			if b.IsArchived {
				fmt.Printf("📂 Bookmark '%s' restored from the archive.\n", b.Title)
			} else {
				fmt.Printf("📂 Bookmark '%s' archived.\n", b.Title)
			}
			return nil
		},
	}
}
