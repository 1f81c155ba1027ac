package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/denizaydn/linkmark-cli/internal/cli/commands"
)

// Version will be set during build with ldflags
var Version = "1.0.0"

func main() {
	app := &cli.App{
		Name:    "linkmark",
		Usage:   "Bookmark manager CLI",
		Version: Version,
		Commands: []*cli.Command{
			// Account
			commands.NewSetupCommand(),

			// Bookmarks
			commands.NewAddCommand(),
			commands.NewListCommand(),
			commands.NewShowCommand(),
			commands.NewEditCommand(),
			commands.NewRemoveCommand(),
			commands.NewPinCommand(),
			commands.NewArchiveCommand(),
			commands.NewOpenCommand(),

			// Tags & appearance
			commands.NewTagsCommand(),
			commands.NewThemeCommand(),

			// Meta
			commands.NewConfigCommand(),
			commands.NewMcpCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
