package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/urfave/cli/v2"
)

func NewOpenCommand() *cli.Command {
	return &cli.Command{
		Name:      "open",
		Aliases:   []string{"visit"},
		Usage:     "Record a visit and copy the bookmark's URL to the clipboard",
		ArgsUsage: "[bookmark-id]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "no-copy",
				Usage: "Only record the visit, skip the clipboard",
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

			st.RecordVisit(b.ID)
			fmt.Println(b.URL)

			if !c.Bool("no-copy") {
				if err := clipboard.WriteAll(b.URL); err == nil {
					fmt.Println("📋 URL copied to clipboard.")
				}
			}
			return nil
		},
	}
}
