package trello

import (
	"context"
	"net/url"
)

// SearchService queries Trello's cross-resource search endpoint.
type SearchService struct {
	client *Client
}

// Search looks up cards and boards matching the query string.
func (s *SearchService) Search(ctx context.Context, query string) (*SearchResult, error) {
	params := url.Values{
		"query":        {query},
		"modelTypes":   {"cards,boards"},
		"partial":      {"true"},
		"cards_limit":  {"20"},
		"boards_limit": {"20"},
	}
	var result SearchResult
	if err := s.client.get(ctx, "/search", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
