package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/boardgate/trello-mcp-go/pkg/gateway"
	"github.com/boardgate/trello-mcp-go/pkg/trello"
)

type getBoardCustomFieldsInput struct {
	BoardID string `json:"board_id" jsonschema:"The ID of the board whose custom field definitions to retrieve"`
}

type getCardCustomFieldsInput struct {
	CardID string `json:"card_id" jsonschema:"The ID of the card whose custom field values to retrieve"`
}

type updateCardCustomFieldInput struct {
	CardID        string         `json:"card_id" jsonschema:"The ID of the card"`
	CustomFieldID string         `json:"custom_field_id" jsonschema:"The ID of the custom field definition"`
	Value         map[string]any `json:"value" jsonschema:"Typed value object, e.g. {\"text\": \"hello\"} or {\"number\": \"12\"}"`
}

func registerCustomFieldTools(server *mcp.Server, svc *trello.Services) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_board_custom_field_definitions",
		Description: "Retrieves the custom field definitions configured on a board.",
		Annotations: readOnly,
	}, func(ctx context.Context, req *mcp.CallToolRequest, input getBoardCustomFieldsInput) (*mcp.CallToolResult, any, error) {
		fields, err := svc.CustomFields.BoardDefinitions(ctx, input.BoardID)
		if err != nil {
			return nil, nil, err
		}
		res, err := jsonResult(fields)
		return res, nil, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_card_custom_field_items",
		Description: "Retrieves the custom field values set on a card.",
		Annotations: readOnly,
	}, func(ctx context.Context, req *mcp.CallToolRequest, input getCardCustomFieldsInput) (*mcp.CallToolResult, any, error) {
		items, err := svc.CustomFields.CardItems(ctx, input.CardID)
		if err != nil {
			return nil, nil, err
		}
		res, err := jsonResult(items)
		return res, nil, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_card_custom_field_value",
		Description: "Sets a custom field value on a card. Use get_board_custom_field_definitions to discover the field type, then pass a typed value object.",
		Annotations: writeNonDestructive,
	}, gateway.RequireWrite("update_card_custom_field_value", func(ctx context.Context, req *mcp.CallToolRequest, input updateCardCustomFieldInput) (*mcp.CallToolResult, any, error) {
		if err := svc.CustomFields.UpdateValue(ctx, input.CardID, input.CustomFieldID, input.Value); err != nil {
			return nil, nil, err
		}
		res, err := jsonResult(map[string]string{"updated": input.CustomFieldID, "card": input.CardID})
		return res, nil, err
	}))
}
