package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/denizaydn/linkmark-cli/internal/api"
	"github.com/denizaydn/linkmark-cli/internal/auth"
	"github.com/denizaydn/linkmark-cli/internal/config"
)

func NewSetupCommand() *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Configure the CLI with user authentication",
		Subcommands: []*cli.Command{
			{
				Name:  "register",
				Usage: "Register a new user account",
				Action: func(c *cli.Context) error {
					return handleUserRegistration()
				},
			},
			{
				Name:  "login",
				Usage: "Login with existing user credentials",
				Action: func(c *cli.Context) error {
					return handleUserLogin()
				},
			},
			{
				Name:  "logout",
				Usage: "Sign out and forget the stored API key",
				Action: func(c *cli.Context) error {
					return handleUserLogout()
				},
			},
		},
		Action: func(c *cli.Context) error {
			return cli.ShowCommandHelp(c, "setup")
		},
	}
}

func promptCredentials() (string, string, error) {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Enter your email: ")
	email, err := reader.ReadString('\n')
	if err != nil {
		return "", "", fmt.Errorf("could not read email: %w", err)
	}
	email = strings.TrimSpace(email)

	fmt.Print("Enter your password: ")
	passwordBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", "", fmt.Errorf("could not read password: %w", err)
	}

	return email, string(passwordBytes), nil
}

func handleUserRegistration() error {
	email, password, err := promptCredentials()
	if err != nil {
		return err
	}

	client := api.NewClient()
	apiKey, userID, err := client.RegisterUser(email, password)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	if err := saveSession(apiKey, email, userID); err != nil {
		return err
	}

	fmt.Println("✅ Account registered successfully!")
	return nil
}

func handleUserLogin() error {
	email, password, err := promptCredentials()
	if err != nil {
		return err
	}

	client := api.NewClient()
	apiKey, userID, err := client.LoginUser(email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if err := saveSession(apiKey, email, userID); err != nil {
		return err
	}

	fmt.Printf("✅ Logged in as %s\n", email)
	return nil
}

func handleUserLogout() error {
	if err := auth.DeleteAPIKey(); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	cfg, err := config.LoadConfig()
	if err == nil {
		cfg.UserID = uuid.Nil
		cfg.Email = ""
		_ = config.SaveConfig(cfg)
	}

	fmt.Println("✅ Logged out.")
	return nil
}

func saveSession(apiKey, email string, userID uuid.UUID) error {
	if err := auth.StoreAPIKey(apiKey); err != nil {
		return fmt.Errorf("could not store API key: %w", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		cfg = &config.Config{}
	}
	cfg.UserID = userID
	cfg.Email = email
	if err := config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("could not save config: %w", err)
	}
	return nil
}
