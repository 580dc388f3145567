package trello

import (
	"context"
	"net/url"
	"strconv"
)

// BoardService manages Trello boards, labels, members, and workspaces.
type BoardService struct {
	client *Client
}

// Get retrieves a specific board by its ID.
func (s *BoardService) Get(ctx context.Context, boardID string) (*Board, error) {
	var board Board
	if err := s.client.get(ctx, "/boards/"+boardID, nil, &board); err != nil {
		return nil, err
	}
	return &board, nil
}

// List retrieves all boards for the authenticated member. Filter is one of
// 'all', 'closed', 'members', 'open', 'organization', 'public', 'starred'.
func (s *BoardService) List(ctx context.Context, filter string) ([]Board, error) {
	if filter == "" {
		filter = "open"
	}
	var boards []Board
	query := url.Values{"filter": {filter}}
	if err := s.client.get(ctx, "/members/me/boards", query, &boards); err != nil {
		return nil, err
	}
	return boards, nil
}

// Workspaces retrieves all workspaces (organizations) for the authenticated
// member.
func (s *BoardService) Workspaces(ctx context.Context) ([]Workspace, error) {
	var workspaces []Workspace
	if err := s.client.get(ctx, "/members/me/organizations", nil, &workspaces); err != nil {
		return nil, err
	}
	return workspaces, nil
}

// WorkspaceBoards retrieves all boards within a specific workspace.
func (s *BoardService) WorkspaceBoards(ctx context.Context, workspaceID, filter string) ([]Board, error) {
	if filter == "" {
		filter = "open"
	}
	var boards []Board
	query := url.Values{"filter": {filter}}
	if err := s.client.get(ctx, "/organizations/"+workspaceID+"/boards", query, &boards); err != nil {
		return nil, err
	}
	return boards, nil
}

// Labels retrieves all labels defined on a board.
func (s *BoardService) Labels(ctx context.Context, boardID string) ([]Label, error) {
	var labels []Label
	if err := s.client.get(ctx, "/boards/"+boardID+"/labels", nil, &labels); err != nil {
		return nil, err
	}
	return labels, nil
}

// CreateLabelRequest carries the fields for a new board label.
type CreateLabelRequest struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// CreateLabel creates a label on a board.
func (s *BoardService) CreateLabel(ctx context.Context, boardID string, req CreateLabelRequest) (*Label, error) {
	var label Label
	if err := s.client.post(ctx, "/boards/"+boardID+"/labels", nil, req, &label); err != nil {
		return nil, err
	}
	return &label, nil
}

// Members retrieves all members of a board. Email may be absent depending on
// token permissions.
func (s *BoardService) Members(ctx context.Context, boardID string) ([]Member, error) {
	var members []Member
	if err := s.client.get(ctx, "/boards/"+boardID+"/members", nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// Me retrieves the authenticated member's profile.
func (s *BoardService) Me(ctx context.Context) (*Member, error) {
	var member Member
	if err := s.client.get(ctx, "/members/me", nil, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

// Actions retrieves recent activity on a board.
func (s *BoardService) Actions(ctx context.Context, boardID, filter string, limit int) ([]Action, error) {
	if filter == "" {
		filter = "all"
	}
	if limit <= 0 {
		limit = 50
	}
	query := url.Values{
		"filter": {filter},
		"limit":  {strconv.Itoa(limit)},
	}
	var actions []Action
	if err := s.client.get(ctx, "/boards/"+boardID+"/actions", query, &actions); err != nil {
		return nil, err
	}
	return actions, nil
}

// CreateBoardRequest carries the fields for a new board.
type CreateBoardRequest struct {
	Name                 string `json:"name"`
	Desc                 string `json:"desc,omitempty"`
	IDOrganization       string `json:"idOrganization,omitempty"`
	DefaultLists         *bool  `json:"defaultLists,omitempty"`
	PrefsBackground      string `json:"prefs_background,omitempty"`
	PrefsPermissionLevel string `json:"prefs_permissionLevel,omitempty"`
}

// Create creates a new board.
func (s *BoardService) Create(ctx context.Context, req CreateBoardRequest) (*Board, error) {
	var board Board
	if err := s.client.post(ctx, "/boards/", nil, req, &board); err != nil {
		return nil, err
	}
	return &board, nil
}

// UpdateBoardRequest carries the mutable board attributes. Nil/empty fields
// are left unchanged.
type UpdateBoardRequest struct {
	Name            string `json:"name,omitempty"`
	Desc            string `json:"desc,omitempty"`
	Closed          *bool  `json:"closed,omitempty"`
	PrefsBackground string `json:"prefs_background,omitempty"`
}

// Update updates an existing board.
func (s *BoardService) Update(ctx context.Context, boardID string, req UpdateBoardRequest) (*Board, error) {
	var board Board
	if err := s.client.put(ctx, "/boards/"+boardID, nil, req, &board); err != nil {
		return nil, err
	}
	return &board, nil
}
