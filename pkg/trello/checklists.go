package trello

import "context"

// ChecklistService manages checklists and check items on cards.
type ChecklistService struct {
	client *Client
}

// Get retrieves a specific checklist by its ID.
func (s *ChecklistService) Get(ctx context.Context, checklistID string) (*Checklist, error) {
	var checklist Checklist
	if err := s.client.get(ctx, "/checklists/"+checklistID, nil, &checklist); err != nil {
		return nil, err
	}
	return &checklist, nil
}

// ForCard retrieves all checklists on a card.
func (s *ChecklistService) ForCard(ctx context.Context, cardID string) ([]Checklist, error) {
	var checklists []Checklist
	if err := s.client.get(ctx, "/cards/"+cardID+"/checklists", nil, &checklists); err != nil {
		return nil, err
	}
	return checklists, nil
}

// CreateChecklistRequest carries the fields for a new checklist.
type CreateChecklistRequest struct {
	IDCard string `json:"idCard"`
	Name   string `json:"name"`
	Pos    string `json:"pos,omitempty"`
}

// Create creates a checklist on a card.
func (s *ChecklistService) Create(ctx context.Context, req CreateChecklistRequest) (*Checklist, error) {
	var checklist Checklist
	if err := s.client.post(ctx, "/checklists", nil, req, &checklist); err != nil {
		return nil, err
	}
	return &checklist, nil
}

// UpdateChecklistRequest carries the mutable checklist attributes.
type UpdateChecklistRequest struct {
	Name string `json:"name,omitempty"`
	Pos  string `json:"pos,omitempty"`
}

// Update updates an existing checklist.
func (s *ChecklistService) Update(ctx context.Context, checklistID string, req UpdateChecklistRequest) (*Checklist, error) {
	var checklist Checklist
	if err := s.client.put(ctx, "/checklists/"+checklistID, nil, req, &checklist); err != nil {
		return nil, err
	}
	return &checklist, nil
}

// Delete permanently deletes a checklist.
func (s *ChecklistService) Delete(ctx context.Context, checklistID string) error {
	return s.client.delete(ctx, "/checklists/"+checklistID, nil)
}

// AddCheckItemRequest carries the fields for a new check item.
type AddCheckItemRequest struct {
	Name    string `json:"name"`
	Checked bool   `json:"checked,omitempty"`
	Pos     string `json:"pos,omitempty"`
}

// AddItem appends an item to a checklist.
func (s *ChecklistService) AddItem(ctx context.Context, checklistID string, req AddCheckItemRequest) (*CheckItem, error) {
	var item CheckItem
	if err := s.client.post(ctx, "/checklists/"+checklistID+"/checkItems", nil, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateCheckItemRequest carries the mutable check item attributes. State is
// "complete" or "incomplete".
type UpdateCheckItemRequest struct {
	Name  string `json:"name,omitempty"`
	State string `json:"state,omitempty"`
	Pos   string `json:"pos,omitempty"`
}

// UpdateItem updates a check item. Trello routes the update through the
// owning card, not the checklist.
func (s *ChecklistService) UpdateItem(ctx context.Context, cardID, checkItemID string, req UpdateCheckItemRequest) (*CheckItem, error) {
	var item CheckItem
	if err := s.client.put(ctx, "/cards/"+cardID+"/checkItem/"+checkItemID, nil, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteItem removes an item from a checklist.
func (s *ChecklistService) DeleteItem(ctx context.Context, checklistID, checkItemID string) error {
	return s.client.delete(ctx, "/checklists/"+checklistID+"/checkItems/"+checkItemID, nil)
}
