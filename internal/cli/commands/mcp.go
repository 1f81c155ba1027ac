package commands

import (
	"github.com/urfave/cli/v2"

	"github.com/denizaydn/linkmark-cli/internal/api"
	"github.com/denizaydn/linkmark-cli/internal/mcp"
	"github.com/denizaydn/linkmark-cli/internal/store"
)

func NewMcpCommand() *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Run the MCP server over stdio (for AI agent integrations)",
		Action: func(c *cli.Context) error {
			st := store.New(api.NewClient())
			return mcp.ServeStdio(st, currentUserID)
		},
	}
}
