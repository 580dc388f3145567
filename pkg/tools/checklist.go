package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/boardgate/trello-mcp-go/pkg/gateway"
	"github.com/boardgate/trello-mcp-go/pkg/trello"
)

type getChecklistInput struct {
	ChecklistID string `json:"checklist_id" jsonschema:"The ID of the checklist to retrieve"`
}

type getCardChecklistsInput struct {
	CardID string `json:"card_id" jsonschema:"The ID of the card whose checklists to retrieve"`
}

type createChecklistInput struct {
	CardID string `json:"card_id" jsonschema:"The ID of the card to add the checklist to"`
	Name   string `json:"name" jsonschema:"The name of the new checklist"`
	Pos    string `json:"pos,omitempty" jsonschema:"Position of the checklist: top, bottom, or a positive number"`
}

type updateChecklistInput struct {
	ChecklistID string `json:"checklist_id" jsonschema:"The ID of the checklist to update"`
	Name        string `json:"name,omitempty" jsonschema:"The new name of the checklist"`
	Pos         string `json:"pos,omitempty" jsonschema:"New position of the checklist"`
}

type deleteChecklistInput struct {
	ChecklistID string `json:"checklist_id" jsonschema:"The ID of the checklist to delete"`
}

type addCheckItemInput struct {
	ChecklistID string `json:"checklist_id" jsonschema:"The ID of the checklist"`
	Name        string `json:"name" jsonschema:"The text of the new check item"`
	Checked     bool   `json:"checked,omitempty" jsonschema:"Whether the item starts completed"`
	Pos         string `json:"pos,omitempty" jsonschema:"Position of the item"`
}

type updateCheckItemInput struct {
	CardID      string `json:"card_id" jsonschema:"The ID of the card owning the checklist"`
	CheckItemID string `json:"check_item_id" jsonschema:"The ID of the check item to update"`
	Name        string `json:"name,omitempty" jsonschema:"The new text of the item"`
	State       string `json:"state,omitempty" jsonschema:"complete or incomplete"`
	Pos         string `json:"pos,omitempty" jsonschema:"New position of the item"`
}

type deleteCheckItemInput struct {
	ChecklistID string `json:"checklist_id" jsonschema:"The ID of the checklist"`
	CheckItemID string `json:"check_item_id" jsonschema:"The ID of the check item to delete"`
}

func registerChecklistTools(server *mcp.Server, svc *trello.Services) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_checklist",
		Description: "Retrieves a specific checklist by its ID, including its check items.",
		Annotations: readOnly,
	}, func(ctx context.Context, req *mcp.CallToolRequest, input getChecklistInput) (*mcp.CallToolResult, any, error) {
		checklist, err := svc.Checklists.Get(ctx, input.ChecklistID)
		if err != nil {
			return nil, nil, err
		}
		res, err := jsonResult(checklist)
		return res, nil, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_card_checklists",
		Description: "Retrieves all checklists on a card.",
		Annotations: readOnly,
	}, func(ctx context.Context, req *mcp.CallToolRequest, input getCardChecklistsInput) (*mcp.CallToolResult, any, error) {
		checklists, err := svc.Checklists.ForCard(ctx, input.CardID)
		if err != nil {
			return nil, nil, err
		}
		res, err := jsonResult(checklists)
		return res, nil, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_checklist",
		Description: "Creates a checklist on a card.",
		Annotations: writeNonDestructive,
	}, gateway.RequireWrite("create_checklist", func(ctx context.Context, req *mcp.CallToolRequest, input createChecklistInput) (*mcp.CallToolResult, any, error) {
		checklist, err := svc.Checklists.Create(ctx, trello.CreateChecklistRequest{
			IDCard: input.CardID,
			Name:   input.Name,
			Pos:    input.Pos,
		})
		if err != nil {
			return nil, nil, err
		}
		res, err := jsonResult(checklist)
		return res, nil, err
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_checklist",
		Description: "Updates a checklist's name or position.",
		Annotations: writeNonDestructive,
	}, gateway.RequireWrite("update_checklist", func(ctx context.Context, req *mcp.CallToolRequest, input updateChecklistInput) (*mcp.CallToolResult, any, error) {
		checklist, err := svc.Checklists.Update(ctx, input.ChecklistID, trello.UpdateChecklistRequest{
			Name: input.Name,
			Pos:  input.Pos,
		})
		if err != nil {
			return nil, nil, err
		}
		res, err := jsonResult(checklist)
		return res, nil, err
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_checklist",
		Description: "Permanently deletes a checklist from its card.",
		Annotations: writeDestructive,
	}, gateway.RequireWrite("delete_checklist", func(ctx context.Context, req *mcp.CallToolRequest, input deleteChecklistInput) (*mcp.CallToolResult, any, error) {
		if err := svc.Checklists.Delete(ctx, input.ChecklistID); err != nil {
			return nil, nil, err
		}
		res, err := jsonResult(map[string]string{"deleted": input.ChecklistID})
		return res, nil, err
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_checkitem",
		Description: "Adds an item to a checklist.",
		Annotations: writeNonDestructive,
	}, gateway.RequireWrite("add_checkitem", func(ctx context.Context, req *mcp.CallToolRequest, input addCheckItemInput) (*mcp.CallToolResult, any, error) {
		item, err := svc.Checklists.AddItem(ctx, input.ChecklistID, trello.AddCheckItemRequest{
			Name:    input.Name,
			Checked: input.Checked,
			Pos:     input.Pos,
		})
		if err != nil {
			return nil, nil, err
		}
		res, err := jsonResult(item)
		return res, nil, err
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_checkitem",
		Description: "Updates a check item's text, completion state, or position.",
		Annotations: writeNonDestructive,
	}, gateway.RequireWrite("update_checkitem", func(ctx context.Context, req *mcp.CallToolRequest, input updateCheckItemInput) (*mcp.CallToolResult, any, error) {
		item, err := svc.Checklists.UpdateItem(ctx, input.CardID, input.CheckItemID, trello.UpdateCheckItemRequest{
			Name:  input.Name,
			State: input.State,
			Pos:   input.Pos,
		})
		if err != nil {
			return nil, nil, err
		}
		res, err := jsonResult(item)
		return res, nil, err
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_checkitem",
		Description: "Deletes an item from a checklist.",
		Annotations: writeDestructive,
	}, gateway.RequireWrite("delete_checkitem", func(ctx context.Context, req *mcp.CallToolRequest, input deleteCheckItemInput) (*mcp.CallToolResult, any, error) {
		if err := svc.Checklists.DeleteItem(ctx, input.ChecklistID, input.CheckItemID); err != nil {
			return nil, nil, err
		}
		res, err := jsonResult(map[string]string{"deleted": input.CheckItemID})
		return res, nil, err
	}))
}
