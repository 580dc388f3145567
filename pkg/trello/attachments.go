package trello

import "context"

// AttachmentService manages URL attachments on cards.
type AttachmentService struct {
	client *Client
}

// ForCard retrieves all attachments on a card.
func (s *AttachmentService) ForCard(ctx context.Context, cardID string) ([]Attachment, error) {
	var attachments []Attachment
	if err := s.client.get(ctx, "/cards/"+cardID+"/attachments", nil, &attachments); err != nil {
		return nil, err
	}
	return attachments, nil
}

// Add attaches a URL to a card. Name is optional.
func (s *AttachmentService) Add(ctx context.Context, cardID, attachmentURL, name string) (*Attachment, error) {
	body := map[string]string{"url": attachmentURL}
	if name != "" {
		body["name"] = name
	}
	var attachment Attachment
	if err := s.client.post(ctx, "/cards/"+cardID+"/attachments", nil, body, &attachment); err != nil {
		return nil, err
	}
	return &attachment, nil
}

// Delete removes an attachment from a card.
func (s *AttachmentService) Delete(ctx context.Context, cardID, attachmentID string) error {
	return s.client.delete(ctx, "/cards/"+cardID+"/attachments/"+attachmentID, nil)
}
