package mcp

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/denizaydn/linkmark-cli/internal/bookmarks"
)

// registerTools registers all bookmark tools. The SDK infers each input
// schema from the handler's input struct.
func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_bookmarks",
		Description: "Search the user's bookmarks. Filters by free text, tags (all must match) and archive state; sorts by recent, visited or views.",
	}, handleSearchBookmarks)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_bookmark",
		Description: "Save a new bookmark. Title and an absolute URL are required; description and tags are optional.",
	}, handleAddBookmark)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "visit_bookmark",
		Description: "Record that a bookmark was opened: bumps its view count and stamps the visit time.",
	}, handleVisitBookmark)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_tags",
		Description: "List every tag in use across the user's bookmarks, with bookmark counts.",
	}, handleListTags)
}

type SearchBookmarksInput struct {
	Search   string   `json:"search,omitempty" jsonschema:"free text matched against title, description and URL"`
	Tags     []string `json:"tags,omitempty" jsonschema:"tag names that must all be present"`
	Archived bool     `json:"archived,omitempty" jsonschema:"search archived bookmarks instead of active ones"`
	Sort     string   `json:"sort,omitempty" jsonschema:"sort mode: recent (default), visited or views"`
}

func handleSearchBookmarks(ctx context.Context, req *mcp.CallToolRequest, input SearchBookmarksInput) (*mcp.CallToolResult, map[string]interface{}, error) {
	mode := bookmarks.SortRecent
	if input.Sort != "" {
		if !bookmarks.ValidSortMode(input.Sort) {
			return nil, nil, fmt.Errorf("unknown sort mode %q", input.Sort)
		}
		mode = bookmarks.SortMode(input.Sort)
	}

	bookmarkStore.Load(resolveOwnerID())
	visible := bookmarks.Sort(
		bookmarks.Filter(bookmarkStore.Bookmarks(), input.Search, input.Tags, input.Archived),
		mode,
	)
	return nil, formatMCPResponse(visible), nil
}

type AddBookmarkInput struct {
	Title       string   `json:"title" jsonschema:"bookmark title"`
	URL         string   `json:"url" jsonschema:"absolute URL to save"`
	Description string   `json:"description,omitempty" jsonschema:"optional description, markdown allowed"`
	Tags        []string `json:"tags,omitempty" jsonschema:"optional tag names"`
}

func handleAddBookmark(ctx context.Context, req *mcp.CallToolRequest, input AddBookmarkInput) (*mcp.CallToolResult, map[string]interface{}, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, nil, fmt.Errorf("title is required")
	}
	u, err := url.Parse(input.URL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return nil, nil, fmt.Errorf("%q is not a valid absolute URL", input.URL)
	}

	owner := resolveOwnerID()
	if owner == uuid.Nil {
		return nil, nil, fmt.Errorf("not logged in")
	}

	bookmarkStore.Load(owner)
	before := len(bookmarkStore.Bookmarks())
	bookmarkStore.Add(owner, input.Title, input.URL, input.Description, input.Tags)
	if len(bookmarkStore.Bookmarks()) == before {
		return nil, nil, fmt.Errorf("bookmark could not be saved")
	}
	return nil, formatMCPResponse(bookmarkStore.Bookmarks()[0]), nil
}

type VisitBookmarkInput struct {
	ID string `json:"id" jsonschema:"bookmark id"`
}

func handleVisitBookmark(ctx context.Context, req *mcp.CallToolRequest, input VisitBookmarkInput) (*mcp.CallToolResult, map[string]interface{}, error) {
	id, err := uuid.Parse(input.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid bookmark id: %w", err)
	}

	bookmarkStore.Load(resolveOwnerID())
	bookmarkStore.RecordVisit(id)

	for _, b := range bookmarkStore.Bookmarks() {
		if b.ID == id {
			return nil, formatMCPResponse(b), nil
		}
	}
	return nil, nil, fmt.Errorf("bookmark %s not found", input.ID)
}

type EmptyInput struct{}

func handleListTags(ctx context.Context, req *mcp.CallToolRequest, input EmptyInput) (*mcp.CallToolResult, map[string]interface{}, error) {
	bookmarkStore.Load(resolveOwnerID())

	counts := bookmarks.TagCounts(bookmarkStore.Bookmarks())
	out := make([]map[string]interface{}, 0, len(counts))
	for _, name := range bookmarks.UniqueTags(bookmarkStore.Bookmarks()) {
		out = append(out, map[string]interface{}{
			"name":      name,
			"bookmarks": counts[name],
		})
	}
	return nil, formatMCPResponse(out), nil
}
