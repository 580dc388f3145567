package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/boardgate/trello-mcp-go/pkg/gateway"
	"github.com/boardgate/trello-mcp-go/pkg/trello"
)

type getListInput struct {
	ListID string `json:"list_id" jsonschema:"The ID of the list to retrieve"`
}

type getListsInput struct {
	BoardID string `json:"board_id" jsonschema:"The ID of the board whose lists to retrieve"`
}

type createListInput struct {
	BoardID string `json:"idBoard" jsonschema:"The ID of the board to create the list on"`
	Name    string `json:"name" jsonschema:"The name of the new list"`
	Pos     string `json:"pos,omitempty" jsonschema:"Position of the list: top, bottom, or a positive number"`
}

type updateListInput struct {
	ListID string `json:"list_id" jsonschema:"The ID of the list to update"`
	Name   string `json:"name,omitempty" jsonschema:"The new name of the list"`
	Closed *bool  `json:"closed,omitempty" jsonschema:"Whether the list is archived"`
	Pos    string `json:"pos,omitempty" jsonschema:"New position of the list"`
}

type deleteListInput struct {
	ListID string `json:"list_id" jsonschema:"The ID of the list to archive"`
}

func registerListTools(server *mcp.Server, svc *trello.Services) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_list",
		Description: "Retrieves a specific Trello list by its ID.",
		Annotations: readOnly,
	}, func(ctx context.Context, req *mcp.CallToolRequest, input getListInput) (*mcp.CallToolResult, any, error) {
		list, err := svc.Lists.Get(ctx, input.ListID)
		if err != nil {
			return nil, nil, err
		}
		res, err := jsonResult(list)
		return res, nil, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_lists",
		Description: "Retrieves all lists on a given board.",
		Annotations: readOnly,
	}, func(ctx context.Context, req *mcp.CallToolRequest, input getListsInput) (*mcp.CallToolResult, any, error) {
		lists, err := svc.Lists.ForBoard(ctx, input.BoardID)
		if err != nil {
			return nil, nil, err
		}
		res, err := jsonResult(lists)
		return res, nil, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_list",
		Description: "Creates a new list on a board.",
		Annotations: writeNonDestructive,
	}, gateway.RequireWrite("create_list", func(ctx context.Context, req *mcp.CallToolRequest, input createListInput) (*mcp.CallToolResult, any, error) {
		list, err := svc.Lists.Create(ctx, trello.CreateListRequest{
			Name:    input.Name,
			IDBoard: input.BoardID,
			Pos:     input.Pos,
		})
		if err != nil {
			return nil, nil, err
		}
		res, err := jsonResult(list)
		return res, nil, err
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_list",
		Description: "Updates an existing list's name, archived state, or position.",
		Annotations: writeNonDestructive,
	}, gateway.RequireWrite("update_list", func(ctx context.Context, req *mcp.CallToolRequest, input updateListInput) (*mcp.CallToolResult, any, error) {
		list, err := svc.Lists.Update(ctx, input.ListID, trello.UpdateListRequest{
			Name:   input.Name,
			Closed: input.Closed,
			Pos:    input.Pos,
		})
		if err != nil {
			return nil, nil, err
		}
		res, err := jsonResult(list)
		return res, nil, err
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_list",
		Description: "Archives a list. Trello does not support hard-deleting lists.",
		Annotations: writeDestructive,
	}, gateway.RequireWrite("delete_list", func(ctx context.Context, req *mcp.CallToolRequest, input deleteListInput) (*mcp.CallToolResult, any, error) {
		list, err := svc.Lists.Archive(ctx, input.ListID)
		if err != nil {
			return nil, nil, err
		}
		res, err := jsonResult(list)
		return res, nil, err
	}))
}
