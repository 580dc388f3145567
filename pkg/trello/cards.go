package trello

import (
	"context"
	"net/url"
)

// CardService manages Trello cards, comments, and card members.
type CardService struct {
	client *Client
}

// Get retrieves a specific card by its ID.
func (s *CardService) Get(ctx context.Context, cardID string) (*Card, error) {
	var card Card
	if err := s.client.get(ctx, "/cards/"+cardID, nil, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// ForList retrieves all cards in a list.
func (s *CardService) ForList(ctx context.Context, listID string) ([]Card, error) {
	var cards []Card
	if err := s.client.get(ctx, "/lists/"+listID+"/cards", nil, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// CreateCardRequest carries the fields for a new card.
type CreateCardRequest struct {
	IDList string `json:"idList"`
	Name   string `json:"name"`
	Desc   string `json:"desc,omitempty"`
	Due    string `json:"due,omitempty"`
	Pos    string `json:"pos,omitempty"`
}

// Create creates a new card in a list.
func (s *CardService) Create(ctx context.Context, req CreateCardRequest) (*Card, error) {
	var card Card
	if err := s.client.post(ctx, "/cards", nil, req, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// UpdateCardRequest carries the mutable card attributes.
type UpdateCardRequest struct {
	Name   string `json:"name,omitempty"`
	Desc   string `json:"desc,omitempty"`
	Closed *bool  `json:"closed,omitempty"`
	IDList string `json:"idList,omitempty"`
	Due    string `json:"due,omitempty"`
}

// Update updates an existing card.
func (s *CardService) Update(ctx context.Context, cardID string, req UpdateCardRequest) (*Card, error) {
	var card Card
	if err := s.client.put(ctx, "/cards/"+cardID, nil, req, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// Delete permanently deletes a card.
func (s *CardService) Delete(ctx context.Context, cardID string) error {
	return s.client.delete(ctx, "/cards/"+cardID, nil)
}

// CopyCardRequest carries the fields for cloning a card into a list.
type CopyCardRequest struct {
	IDCardSource string `json:"idCardSource"`
	IDList       string `json:"idList"`
	Name         string `json:"name,omitempty"`
	Desc         string `json:"desc,omitempty"`
	// KeepFromSource lists components to copy: all, attachments, checkitems,
	// comments, labels, members, stickers.
	KeepFromSource string `json:"keepFromSource,omitempty"`
}

// Copy clones an existing card.
func (s *CardService) Copy(ctx context.Context, req CopyCardRequest) (*Card, error) {
	if req.KeepFromSource == "" {
		req.KeepFromSource = "all"
	}
	var card Card
	if err := s.client.post(ctx, "/cards", nil, req, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// Comments retrieves the comment actions on a card.
func (s *CardService) Comments(ctx context.Context, cardID string) ([]Action, error) {
	query := url.Values{"filter": {"commentCard"}}
	var actions []Action
	if err := s.client.get(ctx, "/cards/"+cardID+"/actions", query, &actions); err != nil {
		return nil, err
	}
	return actions, nil
}

// AddComment posts a comment on a card.
func (s *CardService) AddComment(ctx context.Context, cardID, text string) (*Action, error) {
	body := map[string]string{"text": text}
	var action Action
	if err := s.client.post(ctx, "/cards/"+cardID+"/actions/comments", nil, body, &action); err != nil {
		return nil, err
	}
	return &action, nil
}

// AddMember adds a member to a card and returns the card's updated member
// list.
func (s *CardService) AddMember(ctx context.Context, cardID, memberID string) ([]Member, error) {
	body := map[string]string{"value": memberID}
	var members []Member
	if err := s.client.post(ctx, "/cards/"+cardID+"/idMembers", nil, body, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// RemoveMember removes a member from a card.
func (s *CardService) RemoveMember(ctx context.Context, cardID, memberID string) error {
	return s.client.delete(ctx, "/cards/"+cardID+"/idMembers/"+memberID, nil)
}
