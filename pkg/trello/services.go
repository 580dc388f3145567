package trello

// Services bundles the per-resource services over a shared client.
type Services struct {
	Boards       *BoardService
	Lists        *ListService
	Cards        *CardService
	Checklists   *ChecklistService
	Attachments  *AttachmentService
	CustomFields *CustomFieldService
	Search       *SearchService
}

// NewServices wires every resource service onto one client.
func NewServices(c *Client) *Services {
	return &Services{
		Boards:       &BoardService{client: c},
		Lists:        &ListService{client: c},
		Cards:        &CardService{client: c},
		Checklists:   &ChecklistService{client: c},
		Attachments:  &AttachmentService{client: c},
		CustomFields: &CustomFieldService{client: c},
		Search:       &SearchService{client: c},
	}
}
