package trello

import "encoding/json"

// Board is a Trello board.
type Board struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Desc           string `json:"desc,omitempty"`
	Closed         bool   `json:"closed"`
	IDOrganization string `json:"idOrganization,omitempty"`
	URL            string `json:"url"`
}

// List is a Trello list within a board.
type List struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Closed  bool    `json:"closed"`
	IDBoard string  `json:"idBoard"`
	Pos     float64 `json:"pos"`
}

// Label is a Trello board label.
type Label struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// Card is a Trello card.
type Card struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Desc    string  `json:"desc,omitempty"`
	Closed  bool    `json:"closed"`
	IDList  string  `json:"idList"`
	IDBoard string  `json:"idBoard"`
	URL     string  `json:"url"`
	Pos     float64 `json:"pos"`
	Labels  []Label `json:"labels,omitempty"`
	Due     string  `json:"due,omitempty"`
}

// Member is a Trello member. Email is only populated when the authenticated
// token has permission to see it.
type Member struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	URL      string `json:"url,omitempty"`
}

// Workspace is a Trello organization. Name is the machine-readable short
// name; DisplayName is what users see.
type Workspace struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	URL         string `json:"url"`
	Desc        string `json:"desc,omitempty"`
}

// Checklist is a Trello checklist attached to a card.
type Checklist struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	IDBoard    string      `json:"idBoard"`
	IDCard     string      `json:"idCard"`
	Pos        float64     `json:"pos"`
	CheckItems []CheckItem `json:"checkItems,omitempty"`
}

// CheckItem is a single entry in a checklist. State is "complete" or
// "incomplete".
type CheckItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	State string  `json:"state"`
	Pos   float64 `json:"pos"`
	Due   string  `json:"due,omitempty"`
}

// Attachment is a file or URL attached to a card.
type Attachment struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	MimeType string `json:"mimeType,omitempty"`
	Bytes    int64  `json:"bytes,omitempty"`
	Date     string `json:"date,omitempty"`
}

// Action is a Trello activity record (comments included). Data is kept raw:
// its shape varies per action type and callers forward it verbatim.
type Action struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Date          string          `json:"date"`
	Data          json.RawMessage `json:"data,omitempty"`
	MemberCreator *Member         `json:"memberCreator,omitempty"`
}

// CustomField is a custom field definition on a board.
type CustomField struct {
	ID      string          `json:"id"`
	IDModel string          `json:"idModel"`
	Name    string          `json:"name"`
	Type    string          `json:"type"`
	Options json.RawMessage `json:"options,omitempty"`
}

// CustomFieldItem is a custom field value set on a card. Value's shape
// depends on the field type ({"text": ...}, {"number": ...}, ...).
type CustomFieldItem struct {
	ID            string          `json:"id"`
	IDCustomField string          `json:"idCustomField"`
	IDModel       string          `json:"idModel"`
	Value         json.RawMessage `json:"value,omitempty"`
	IDValue       string          `json:"idValue,omitempty"`
}

// SearchResult aggregates the card and board hits for a search query.
type SearchResult struct {
	Cards  []Card  `json:"cards"`
	Boards []Board `json:"boards"`
}
