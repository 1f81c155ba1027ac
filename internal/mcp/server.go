// Package mcp exposes the bookmark store to AI agents over the Model
// Context Protocol (stdio transport).
package mcp

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/denizaydn/linkmark-cli/internal/store"
)

// bookmarkStore and resolveOwnerID back the tool handlers for the lifetime
// of one stdio session.
var (
	bookmarkStore  *store.Store
	resolveOwnerID func() uuid.UUID
)

// ServeStdio starts the MCP server over stdio. The store is loaded once at
// startup and reloaded by tools that need fresh state.
func ServeStdio(st *store.Store, resolveOwner func() uuid.UUID) error {
	if st == nil {
		return errors.New("bookmark store is required")
	}
	bookmarkStore = st
	resolveOwnerID = resolveOwner

	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "linkmark",
			Version: "1.0.0",
		},
		&mcp.ServerOptions{
			Instructions: `🔖 LINKMARK - Bookmark manager

You are connected to the user's bookmark collection.

## Tools
- search_bookmarks: filter by text, tags and archive state, sorted
- add_bookmark: save a new URL with optional description and tags
- visit_bookmark: record that a bookmark was opened
- list_tags: every tag in use with bookmark counts

## Guidelines
- Search before adding to avoid duplicates.
- Tag filters are AND: every given tag must be present.
- Call visit_bookmark whenever you hand the user a URL from the
  collection, so view counts stay honest.`,
		},
	)

	registerTools(server)

	return server.Run(context.Background(), &mcp.StdioTransport{})
}

// formatMCPResponse wraps tool output in a record so array results satisfy
// the structured-content schema.
func formatMCPResponse(data interface{}) map[string]interface{} {
	return map[string]interface{}{
		"result": data,
	}
}
