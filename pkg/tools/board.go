package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/boardgate/trello-mcp-go/pkg/gateway"
	"github.com/boardgate/trello-mcp-go/pkg/trello"
)

type getBoardInput struct {
	BoardID string `json:"board_id" jsonschema:"The ID of the board to retrieve"`
}

type getBoardsInput struct {
	Filter string `json:"filter,omitempty" jsonschema:"Board status filter: all, closed, members, open (default), organization, public, starred"`
}

type getWorkspacesInput struct{}

type getWorkspaceBoardsInput struct {
	WorkspaceID string `json:"workspace_id" jsonschema:"The ID of the workspace (organization)"`
	Filter      string `json:"filter,omitempty" jsonschema:"Board status filter, defaults to open"`
}

type getBoardLabelsInput struct {
	BoardID string `json:"board_id" jsonschema:"The ID of the board whose labels to retrieve"`
}

type createBoardLabelInput struct {
	BoardID string `json:"board_id" jsonschema:"The ID of the board to add the label to"`
	Name    string `json:"name" jsonschema:"The name of the label"`
	Color   string `json:"color,omitempty" jsonschema:"The color of the label"`
}

type getBoardMembersInput struct {
	BoardID string `json:"board_id" jsonschema:"The ID of the board whose members to retrieve"`
}

type getBoardActionsInput struct {
	BoardID string `json:"board_id" jsonschema:"The ID of the board"`
	Filter  string `json:"filter,omitempty" jsonschema:"Action types to return, defaults to all"`
	Limit   int    `json:"limit,omitempty" jsonschema:"Maximum number of actions, defaults to 50"`
}

type getMeInput struct{}

type createBoardInput struct {
	Name                 string `json:"name" jsonschema:"The name of the new board"`
	Desc                 string `json:"desc,omitempty" jsonschema:"Optional description of the board"`
	IDOrganization       string `json:"idOrganization,omitempty" jsonschema:"The workspace to create the board in"`
	DefaultLists         *bool  `json:"defaultLists,omitempty" jsonschema:"Whether to create the default To Do/Doing/Done lists (default true)"`
	PrefsBackground      string `json:"prefs_background,omitempty" jsonschema:"The background color or image for the board"`
	PrefsPermissionLevel string `json:"prefs_permissionLevel,omitempty" jsonschema:"Board permission level: private, org, or public"`
}

type updateBoardInput struct {
	BoardID         string `json:"board_id" jsonschema:"The ID of the board to update"`
	Name            string `json:"name,omitempty" jsonschema:"The new name of the board"`
	Desc            string `json:"desc,omitempty" jsonschema:"The new description of the board"`
	Closed          *bool  `json:"closed,omitempty" jsonschema:"Whether the board is archived"`
	PrefsBackground string `json:"prefs_background,omitempty" jsonschema:"The background color or image for the board"`
}

func registerBoardTools(server *mcp.Server, svc *trello.Services) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_board",
		Description: "Retrieves a specific Trello board by its ID.",
		Annotations: readOnly,
	}, func(ctx context.Context, req *mcp.CallToolRequest, input getBoardInput) (*mcp.CallToolResult, any, error) {
		board, err := svc.Boards.Get(ctx, input.BoardID)
		if err != nil {
			return nil, nil, err
		}
		res, err := jsonResult(board)
		return res, nil, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_boards",
		Description: "Retrieves all boards for the authenticated user with optional status filtering.",
		Annotations: readOnly,
	}, func(ctx context.Context, req *mcp.CallToolRequest, input getBoardsInput) (*mcp.CallToolResult, any, error) {
		boards, err := svc.Boards.List(ctx, input.Filter)
		if err != nil {
			return nil, nil, err
		}
		res, err := jsonResult(boards)
		return res, nil, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_workspaces",
		Description: "Retrieves all Trello workspaces (organizations) the current user is a member of.",
		Annotations: readOnly,
	}, func(ctx context.Context, req *mcp.CallToolRequest, input getWorkspacesInput) (*mcp.CallToolResult, any, error) {
		workspaces, err := svc.Boards.Workspaces(ctx)
		if err != nil {
			return nil, nil, err
		}
		res, err := jsonResult(workspaces)
		return res, nil, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_workspace_boards",
		Description: "Retrieves all boards belonging to a specific Trello workspace.",
		Annotations: readOnly,
	}, func(ctx context.Context, req *mcp.CallToolRequest, input getWorkspaceBoardsInput) (*mcp.CallToolResult, any, error) {
		boards, err := svc.Boards.WorkspaceBoards(ctx, input.WorkspaceID, input.Filter)
		if err != nil {
			return nil, nil, err
		}
		res, err := jsonResult(boards)
		return res, nil, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_board_labels",
		Description: "Retrieves all labels for a specific board.",
		Annotations: readOnly,
	}, func(ctx context.Context, req *mcp.CallToolRequest, input getBoardLabelsInput) (*mcp.CallToolResult, any, error) {
		labels, err := svc.Boards.Labels(ctx, input.BoardID)
		if err != nil {
			return nil, nil, err
		}
		res, err := jsonResult(labels)
		return res, nil, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_board_label",
		Description: "Creates a label on a specific board.",
		Annotations: writeNonDestructive,
	}, gateway.RequireWrite("create_board_label", func(ctx context.Context, req *mcp.CallToolRequest, input createBoardLabelInput) (*mcp.CallToolResult, any, error) {
		label, err := svc.Boards.CreateLabel(ctx, input.BoardID, trello.CreateLabelRequest{
			Name:  input.Name,
			Color: input.Color,
		})
		if err != nil {
			return nil, nil, err
		}
		res, err := jsonResult(label)
		return res, nil, err
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_board_members",
		Description: "Retrieves all members for a specific board. Email may be missing depending on permissions.",
		Annotations: readOnly,
	}, func(ctx context.Context, req *mcp.CallToolRequest, input getBoardMembersInput) (*mcp.CallToolResult, any, error) {
		members, err := svc.Boards.Members(ctx, input.BoardID)
		if err != nil {
			return nil, nil, err
		}
		res, err := jsonResult(members)
		return res, nil, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_board_actions",
		Description: "Retrieves recent actions/activity for a Trello board.",
		Annotations: readOnly,
	}, func(ctx context.Context, req *mcp.CallToolRequest, input getBoardActionsInput) (*mcp.CallToolResult, any, error) {
		actions, err := svc.Boards.Actions(ctx, input.BoardID, input.Filter, input.Limit)
		if err != nil {
			return nil, nil, err
		}
		res, err := jsonResult(actions)
		return res, nil, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_me",
		Description: "Retrieves the authenticated user's Trello profile.",
		Annotations: readOnly,
	}, func(ctx context.Context, req *mcp.CallToolRequest, input getMeInput) (*mcp.CallToolResult, any, error) {
		me, err := svc.Boards.Me(ctx)
		if err != nil {
			return nil, nil, err
		}
		res, err := jsonResult(me)
		return res, nil, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_board",
		Description: "Creates a new Trello board.",
		Annotations: writeNonDestructive,
	}, gateway.RequireWrite("create_board", func(ctx context.Context, req *mcp.CallToolRequest, input createBoardInput) (*mcp.CallToolResult, any, error) {
		board, err := svc.Boards.Create(ctx, trello.CreateBoardRequest{
			Name:                 input.Name,
			Desc:                 input.Desc,
			IDOrganization:       input.IDOrganization,
			DefaultLists:         input.DefaultLists,
			PrefsBackground:      input.PrefsBackground,
			PrefsPermissionLevel: input.PrefsPermissionLevel,
		})
		if err != nil {
			return nil, nil, err
		}
		res, err := jsonResult(board)
		return res, nil, err
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_board",
		Description: "Updates an existing Trello board.",
		Annotations: writeNonDestructive,
	}, gateway.RequireWrite("update_board", func(ctx context.Context, req *mcp.CallToolRequest, input updateBoardInput) (*mcp.CallToolResult, any, error) {
		board, err := svc.Boards.Update(ctx, input.BoardID, trello.UpdateBoardRequest{
			Name:            input.Name,
			Desc:            input.Desc,
			Closed:          input.Closed,
			PrefsBackground: input.PrefsBackground,
		})
		if err != nil {
			return nil, nil, err
		}
		res, err := jsonResult(board)
		return res, nil, err
	}))
}
