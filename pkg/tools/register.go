package tools

import (
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/boardgate/trello-mcp-go/pkg/trello"
)

// Register adds every Trello tool to the server.
func Register(server *mcp.Server, svc *trello.Services) {
	registerBoardTools(server, svc)
	registerListTools(server, svc)
	registerCardTools(server, svc)
	registerChecklistTools(server, svc)
	registerAttachmentTools(server, svc)
	registerCustomFieldTools(server, svc)
	registerSearchTools(server, svc)
}

// Tool annotation helpers shared across the catalogue.
func boolPtr(b bool) *bool { return &b }

var (
	readOnly            = &mcp.ToolAnnotations{ReadOnlyHint: true}
	writeNonDestructive = &mcp.ToolAnnotations{DestructiveHint: boolPtr(false), IdempotentHint: true}
	writeDestructive    = &mcp.ToolAnnotations{DestructiveHint: boolPtr(true)}
)

// jsonResult renders a value as pretty-printed JSON text content.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("tools: encode result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil
}
