package trello

import "context"

// ListService manages Trello lists.
type ListService struct {
	client *Client
}

// Get retrieves a specific list by its ID.
func (s *ListService) Get(ctx context.Context, listID string) (*List, error) {
	var list List
	if err := s.client.get(ctx, "/lists/"+listID, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// ForBoard retrieves all lists on a board.
func (s *ListService) ForBoard(ctx context.Context, boardID string) ([]List, error) {
	var lists []List
	if err := s.client.get(ctx, "/boards/"+boardID+"/lists", nil, &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

// CreateListRequest carries the fields for a new list.
type CreateListRequest struct {
	Name    string `json:"name"`
	IDBoard string `json:"idBoard"`
	Pos     string `json:"pos,omitempty"`
}

// Create creates a new list on a board.
func (s *ListService) Create(ctx context.Context, req CreateListRequest) (*List, error) {
	var list List
	if err := s.client.post(ctx, "/lists", nil, req, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// UpdateListRequest carries the mutable list attributes.
type UpdateListRequest struct {
	Name   string `json:"name,omitempty"`
	Closed *bool  `json:"closed,omitempty"`
	Pos    string `json:"pos,omitempty"`
}

// Update updates an existing list.
func (s *ListService) Update(ctx context.Context, listID string, req UpdateListRequest) (*List, error) {
	var list List
	if err := s.client.put(ctx, "/lists/"+listID, nil, req, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Archive closes a list. Trello has no hard delete for lists; archiving is
// the delete operation the API supports.
func (s *ListService) Archive(ctx context.Context, listID string) (*List, error) {
	body := map[string]string{"value": "true"}
	var list List
	if err := s.client.put(ctx, "/lists/"+listID+"/closed", nil, body, &list); err != nil {
		return nil, err
	}
	return &list, nil
}
