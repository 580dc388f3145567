package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/boardgate/trello-mcp-go/pkg/gateway"
	"github.com/boardgate/trello-mcp-go/pkg/trello"
)

type getCardAttachmentsInput struct {
	CardID string `json:"card_id" jsonschema:"The ID of the card whose attachments to retrieve"`
}

type addAttachmentInput struct {
	CardID string `json:"card_id" jsonschema:"The ID of the card"`
	URL    string `json:"url" jsonschema:"The URL to attach"`
	Name   string `json:"name,omitempty" jsonschema:"Optional display name for the attachment"`
}

type deleteAttachmentInput struct {
	CardID       string `json:"card_id" jsonschema:"The ID of the card"`
	AttachmentID string `json:"attachment_id" jsonschema:"The ID of the attachment to delete"`
}

func registerAttachmentTools(server *mcp.Server, svc *trello.Services) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_card_attachments",
		Description: "Retrieves all attachments on a card.",
		Annotations: readOnly,
	}, func(ctx context.Context, req *mcp.CallToolRequest, input getCardAttachmentsInput) (*mcp.CallToolResult, any, error) {
		attachments, err := svc.Attachments.ForCard(ctx, input.CardID)
		if err != nil {
			return nil, nil, err
		}
		res, err := jsonResult(attachments)
		return res, nil, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_attachment_to_card",
		Description: "Attaches a URL to a card.",
		Annotations: writeNonDestructive,
	}, gateway.RequireWrite("add_attachment_to_card", func(ctx context.Context, req *mcp.CallToolRequest, input addAttachmentInput) (*mcp.CallToolResult, any, error) {
		attachment, err := svc.Attachments.Add(ctx, input.CardID, input.URL, input.Name)
		if err != nil {
			return nil, nil, err
		}
		res, err := jsonResult(attachment)
		return res, nil, err
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_attachment_from_card",
		Description: "Deletes an attachment from a card.",
		Annotations: writeDestructive,
	}, gateway.RequireWrite("delete_attachment_from_card", func(ctx context.Context, req *mcp.CallToolRequest, input deleteAttachmentInput) (*mcp.CallToolResult, any, error) {
		if err := svc.Attachments.Delete(ctx, input.CardID, input.AttachmentID); err != nil {
			return nil, nil, err
		}
		res, err := jsonResult(map[string]string{"deleted": input.AttachmentID})
		return res, nil, err
	}))
}
