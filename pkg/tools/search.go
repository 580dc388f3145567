package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/boardgate/trello-mcp-go/pkg/trello"
)

type searchInput struct {
	Query string `json:"query" jsonschema:"The text to search for"`
}

func registerSearchTools(server *mcp.Server, svc *trello.Services) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_trello",
		Description: "Searches Trello cards and boards using a query string.",
		Annotations: readOnly,
	}, func(ctx context.Context, req *mcp.CallToolRequest, input searchInput) (*mcp.CallToolResult, any, error) {
		result, err := svc.Search.Search(ctx, input.Query)
		if err != nil {
			return nil, nil, err
		}
		res, err := jsonResult(result)
		return res, nil, err
	})
}
