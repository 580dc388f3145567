package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/boardgate/trello-mcp-go/pkg/gateway"
	"github.com/boardgate/trello-mcp-go/pkg/trello"
)

type getCardInput struct {
	CardID string `json:"card_id" jsonschema:"The ID of the card to retrieve"`
}

type getCardsInput struct {
	ListID string `json:"list_id" jsonschema:"The ID of the list whose cards to retrieve"`
}

type createCardInput struct {
	IDList string `json:"idList" jsonschema:"The ID of the list to create the card in"`
	Name   string `json:"name" jsonschema:"The name of the new card"`
	Desc   string `json:"desc,omitempty" jsonschema:"The description of the new card"`
	Due    string `json:"due,omitempty" jsonschema:"Due date as an ISO 8601 timestamp"`
	Pos    string `json:"pos,omitempty" jsonschema:"Position of the card: top, bottom, or a positive number"`
}

type updateCardInput struct {
	CardID string `json:"card_id" jsonschema:"The ID of the card to update"`
	Name   string `json:"name,omitempty" jsonschema:"The new name of the card"`
	Desc   string `json:"desc,omitempty" jsonschema:"The new description of the card"`
	Closed *bool  `json:"closed,omitempty" jsonschema:"Whether the card is archived"`
	IDList string `json:"idList,omitempty" jsonschema:"Move the card to this list"`
	Due    string `json:"due,omitempty" jsonschema:"New due date as an ISO 8601 timestamp"`
}

type deleteCardInput struct {
	CardID string `json:"card_id" jsonschema:"The ID of the card to delete"`
}

type copyCardInput struct {
	IDCardSource   string `json:"idCardSource" jsonschema:"The ID of the card to copy"`
	IDList         string `json:"idList" jsonschema:"The ID of the target list for the new card"`
	Name           string `json:"name,omitempty" jsonschema:"Optional new name for the copied card"`
	Desc           string `json:"desc,omitempty" jsonschema:"Optional new description for the copied card"`
	KeepFromSource string `json:"keepFromSource,omitempty" jsonschema:"Components to keep from source (all, attachments, checkitems, comments, labels, members, stickers)"`
}

type getCardCommentsInput struct {
	CardID string `json:"card_id" jsonschema:"The ID of the card"`
}

type addCommentInput struct {
	CardID string `json:"card_id" jsonschema:"The ID of the card"`
	Text   string `json:"text" jsonschema:"The comment text"`
}

type cardMemberInput struct {
	CardID   string `json:"card_id" jsonschema:"The ID of the card"`
	MemberID string `json:"member_id" jsonschema:"The ID of the member"`
}

func registerCardTools(server *mcp.Server, svc *trello.Services) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_card",
		Description: "Retrieves a specific Trello card by its ID.",
		Annotations: readOnly,
	}, func(ctx context.Context, req *mcp.CallToolRequest, input getCardInput) (*mcp.CallToolResult, any, error) {
		card, err := svc.Cards.Get(ctx, input.CardID)
		if err != nil {
			return nil, nil, err
		}
		res, err := jsonResult(card)
		return res, nil, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_cards",
		Description: "Retrieves all cards in a given list.",
		Annotations: readOnly,
	}, func(ctx context.Context, req *mcp.CallToolRequest, input getCardsInput) (*mcp.CallToolResult, any, error) {
		cards, err := svc.Cards.ForList(ctx, input.ListID)
		if err != nil {
			return nil, nil, err
		}
		res, err := jsonResult(cards)
		return res, nil, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_card",
		Description: "Creates a new card in a given list.",
		Annotations: writeNonDestructive,
	}, gateway.RequireWrite("create_card", func(ctx context.Context, req *mcp.CallToolRequest, input createCardInput) (*mcp.CallToolResult, any, error) {
		card, err := svc.Cards.Create(ctx, trello.CreateCardRequest{
			IDList: input.IDList,
			Name:   input.Name,
			Desc:   input.Desc,
			Due:    input.Due,
			Pos:    input.Pos,
		})
		if err != nil {
			return nil, nil, err
		}
		res, err := jsonResult(card)
		return res, nil, err
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_card",
		Description: "Updates a card's attributes.",
		Annotations: writeNonDestructive,
	}, gateway.RequireWrite("update_card", func(ctx context.Context, req *mcp.CallToolRequest, input updateCardInput) (*mcp.CallToolResult, any, error) {
		card, err := svc.Cards.Update(ctx, input.CardID, trello.UpdateCardRequest{
			Name:   input.Name,
			Desc:   input.Desc,
			Closed: input.Closed,
			IDList: input.IDList,
			Due:    input.Due,
		})
		if err != nil {
			return nil, nil, err
		}
		res, err := jsonResult(card)
		return res, nil, err
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_card",
		Description: "Permanently deletes a card.",
		Annotations: writeDestructive,
	}, gateway.RequireWrite("delete_card", func(ctx context.Context, req *mcp.CallToolRequest, input deleteCardInput) (*mcp.CallToolResult, any, error) {
		if err := svc.Cards.Delete(ctx, input.CardID); err != nil {
			return nil, nil, err
		}
		res, err := jsonResult(map[string]string{"deleted": input.CardID})
		return res, nil, err
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "copy_card",
		Description: "Clones an existing Trello card to a new list.",
		Annotations: writeNonDestructive,
	}, gateway.RequireWrite("copy_card", func(ctx context.Context, req *mcp.CallToolRequest, input copyCardInput) (*mcp.CallToolResult, any, error) {
		card, err := svc.Cards.Copy(ctx, trello.CopyCardRequest{
			IDCardSource:   input.IDCardSource,
			IDList:         input.IDList,
			Name:           input.Name,
			Desc:           input.Desc,
			KeepFromSource: input.KeepFromSource,
		})
		if err != nil {
			return nil, nil, err
		}
		res, err := jsonResult(card)
		return res, nil, err
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_card_comments",
		Description: "Retrieves all comments for a specific card.",
		Annotations: readOnly,
	}, func(ctx context.Context, req *mcp.CallToolRequest, input getCardCommentsInput) (*mcp.CallToolResult, any, error) {
		comments, err := svc.Cards.Comments(ctx, input.CardID)
		if err != nil {
			return nil, nil, err
		}
		res, err := jsonResult(comments)
		return res, nil, err
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_comment_to_card",
		Description: "Adds a new comment to a card.",
		Annotations: writeNonDestructive,
	}, gateway.RequireWrite("add_comment_to_card", func(ctx context.Context, req *mcp.CallToolRequest, input addCommentInput) (*mcp.CallToolResult, any, error) {
		comment, err := svc.Cards.AddComment(ctx, input.CardID, input.Text)
		if err != nil {
			return nil, nil, err
		}
		res, err := jsonResult(comment)
		return res, nil, err
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_member_to_card",
		Description: "Adds a member to a card.",
		Annotations: writeNonDestructive,
	}, gateway.RequireWrite("add_member_to_card", func(ctx context.Context, req *mcp.CallToolRequest, input cardMemberInput) (*mcp.CallToolResult, any, error) {
		members, err := svc.Cards.AddMember(ctx, input.CardID, input.MemberID)
		if err != nil {
			return nil, nil, err
		}
		res, err := jsonResult(members)
		return res, nil, err
	}))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "remove_member_from_card",
		Description: "Removes a member from a card.",
		Annotations: writeNonDestructive,
	}, gateway.RequireWrite("remove_member_from_card", func(ctx context.Context, req *mcp.CallToolRequest, input cardMemberInput) (*mcp.CallToolResult, any, error) {
		if err := svc.Cards.RemoveMember(ctx, input.CardID, input.MemberID); err != nil {
			return nil, nil, err
		}
		res, err := jsonResult(map[string]string{"removed": input.MemberID, "card": input.CardID})
		return res, nil, err
	}))
}
