package trello

import "context"

// CustomFieldService manages custom field definitions and values.
type CustomFieldService struct {
	client *Client
}

// BoardDefinitions retrieves the custom field definitions on a board.
func (s *CustomFieldService) BoardDefinitions(ctx context.Context, boardID string) ([]CustomField, error) {
	var fields []CustomField
	if err := s.client.get(ctx, "/boards/"+boardID+"/customFields", nil, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// CardItems retrieves the custom field values set on a card.
func (s *CustomFieldService) CardItems(ctx context.Context, cardID string) ([]CustomFieldItem, error) {
	var items []CustomFieldItem
	if err := s.client.get(ctx, "/cards/"+cardID+"/customFieldItems", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateValue sets a custom field value on a card. Trello expects the value
// wrapped in a typed object, e.g. {"value": {"text": "hello"}}; callers that
// already pass a payload with a "value" key are forwarded as-is.
func (s *CustomFieldService) UpdateValue(ctx context.Context, cardID, customFieldID string, value map[string]any) error {
	payload := value
	if _, ok := value["value"]; !ok {
		payload = map[string]any{"value": value}
	}
	return s.client.put(ctx, "/cards/"+cardID+"/customField/"+customFieldID+"/item", nil, payload, nil)
}
