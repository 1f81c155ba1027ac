package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/denizaydn/linkmark-cli/internal/api"
	"github.com/denizaydn/linkmark-cli/internal/bookmarks"
)

func NewTagsCommand() *cli.Command {
	return &cli.Command{
		Name:  "tags",
		Usage: "List every tag in use, with bookmark counts",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "all",
				Aliases: []string{"a"},
				Usage:   "Include tags not attached to any of your bookmarks",
			},
		},
		Action: func(c *cli.Context) error {
			if c.Bool("all") {
				return listAllTags()
			}

			st := loadStore()
			names := bookmarks.UniqueTags(st.Bookmarks())
			if len(names) == 0 {
				fmt.Println("🏷️ No tags yet. Add some with 'linkmark add --tags'.")
				return nil
			}

			counts := bookmarks.TagCounts(st.Bookmarks())

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TAG\tBOOKMARKS")
			fmt.Fprintln(w, "---\t---------")
			for _, name := range names {
				fmt.Fprintf(w, "%s\t%d\n", name, counts[name])
			}
			w.Flush()
			return nil
		},
	}
}

// listAllTags prints the server-wide tag list, which can include names
// created by other clients and not yet attached locally.
func listAllTags() error {
	tags, err := api.NewClient().ListTags()
	if err != nil {
		return fmt.Errorf("failed to list tags: %w", err)
	}
	if len(tags) == 0 {
		fmt.Println("🏷️ No tags yet. Add some with 'linkmark add --tags'.")
		return nil
	}

	for _, tag := range tags {
		fmt.Println(tag.Name)
	}
	return nil
}
