package commands

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/urfave/cli/v2"

	"github.com/google/uuid"
)

// addInput is what the add dialog collects. Title and URL are required;
// the URL must parse as an absolute URL. Validation happens here, before
// the store ever sees the input.
type addInput struct {
	Title       string
	URL         string
	Description string
	Tags        []string
}

func validateAddInput(in addInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if strings.TrimSpace(in.URL) == "" {
		return fmt.Errorf("url is required")
	}
	u, err := url.Parse(in.URL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("'%s' is not a valid URL", in.URL)
	}
	return nil
}

func NewAddCommand() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Save a new bookmark",
		ArgsUsage: "[title]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "url",
				Aliases: []string{"u"},
				Usage:   "Bookmark URL",
			},
			&cli.StringFlag{
				Name:    "description",
				Aliases: []string{"d"},
				Usage:   "Bookmark description",
			},
			&cli.StringFlag{
				Name:    "tags",
				Aliases: []string{"t"},
				Usage:   "Comma-separated tag names",
			},
			&cli.BoolFlag{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "Prompt for all fields interactively",
			},
		},
		Action: func(c *cli.Context) error {
			userID := currentUserID()
			if userID == uuid.Nil {
				return fmt.Errorf("not logged in, run 'linkmark setup login' first")
			}

			var in addInput
			if c.Bool("interactive") {
				collected, err := promptAddInput()
				if err != nil {
					return err
				}
				in = collected
			} else {
				in = addInput{
					Title:       strings.Join(c.Args().Slice(), " "),
					URL:         c.String("url"),
					Description: c.String("description"),
					Tags:        splitTags(c.String("tags")),
				}
			}

			if err := validateAddInput(in); err != nil {
				return err
			}

			st := loadStore()
			before := len(st.Bookmarks())
			st.Add(userID, in.Title, in.URL, in.Description, in.Tags)
			if len(st.Bookmarks()) == before {
				return fmt.Errorf("bookmark could not be saved")
			}

			saved := st.Bookmarks()[0]
			fmt.Printf("✅ Bookmark '%s' saved!\n", saved.Title)
			fmt.Printf("ID: %s\n", saved.ID.String()[:8])
			if len(saved.Tags) > 0 {
				fmt.Printf("Tags: %s\n", strings.Join(saved.Tags, ", "))
			}
			return nil
		},
	}
}

// promptAddInput runs the interactive bookmark dialog.
func promptAddInput() (addInput, error) {
	var in addInput
	var rawTags string

	qs := []*survey.Question{
		{
			Name:     "title",
			Prompt:   &survey.Input{Message: "Title:"},
			Validate: survey.Required,
		},
		{
			Name:   "url",
			Prompt: &survey.Input{Message: "URL:"},
			Validate: func(ans interface{}) error {
				s, _ := ans.(string)
				u, err := url.Parse(s)
				if err != nil || !u.IsAbs() || u.Host == "" {
					return fmt.Errorf("please enter a valid absolute URL")
				}
				return nil
			},
		},
		{
			Name:   "description",
			Prompt: &survey.Input{Message: "Description (optional):"},
		},
	}

	if err := survey.Ask(qs, &in); err != nil {
		return in, err
	}
	if err := survey.AskOne(&survey.Input{Message: "Tags (comma-separated, optional):"}, &rawTags); err != nil {
		return in, err
	}
	in.Tags = splitTags(rawTags)
	return in, nil
}
