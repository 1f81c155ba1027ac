package commands

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/denizaydn/linkmark-cli/internal/ui"
)

func NewThemeCommand() *cli.Command {
	return &cli.Command{
		Name:      "theme",
		Usage:     "Show or change the display theme",
		ArgsUsage: "[light|dark|toggle]",
		Action: func(c *cli.Context) error {
			prefs := loadPrefs()

			if c.NArg() == 0 {
				fmt.Printf("Current theme: %s\n", prefs.Theme)
				return nil
			}

			var err error
			switch c.Args().First() {
			case "light":
				err = prefs.SetTheme(ui.ThemeLight)
			case "dark":
				err = prefs.SetTheme(ui.ThemeDark)
			case "toggle":
				err = prefs.ToggleTheme()
			default:
				return fmt.Errorf("unknown theme '%s' (expected light, dark or toggle)", c.Args().First())
			}
			if err != nil {
				return fmt.Errorf("could not save theme: %w", err)
			}

			fmt.Printf("🎨 Theme set to %s.\n", prefs.Theme)
			return nil
		},
	}
}
