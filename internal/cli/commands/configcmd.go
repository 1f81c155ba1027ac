package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/denizaydn/linkmark-cli/internal/config"
)

func NewConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Show or change CLI configuration",
		Subcommands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Print the current configuration",
				Action: func(c *cli.Context) error {
					cfg, err := config.LoadConfig()
					if err != nil {
						return fmt.Errorf("could not load config: %w", err)
					}

					path, _ := config.GetConfigPath()
					fmt.Printf("Config file: %s\n", path)
					if cfg.Email != "" {
						fmt.Printf("Account:     %s\n", cfg.Email)
					}
					if cfg.UserID != uuid.Nil {
						fmt.Printf("User ID:     %s\n", cfg.UserID)
					}
					if cfg.APIBaseURL != "" {
						fmt.Printf("API URL:     %s\n", cfg.APIBaseURL)
					}
					if cfg.Theme != "" {
						fmt.Printf("Theme:       %s\n", cfg.Theme)
					}
					return nil
				},
			},
			{
				Name:      "set-api-url",
				Usage:     "Point the CLI at a different backend",
				ArgsUsage: "[url]",
				Action: func(c *cli.Context) error {
					if c.NArg() == 0 {
						return fmt.Errorf("URL is required")
					}

					cfg, err := config.LoadConfig()
					if err != nil {
						return fmt.Errorf("could not load config: %w", err)
					}
					cfg.APIBaseURL = c.Args().First()
					if err := config.SaveConfig(cfg); err != nil {
						return fmt.Errorf("could not save config: %w", err)
					}

					fmt.Printf("✅ API URL set to %s\n", cfg.APIBaseURL)
					return nil
				},
			},
		},
		Action: func(c *cli.Context) error {
			return cli.ShowCommandHelp(c, "config")
		},
	}
}
