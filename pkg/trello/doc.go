// Package trello is a thin client for the Trello REST API, exposing the
// board, list, card, checklist, attachment, custom-field, and search
// operations the MCP tool catalogue dispatches into. Every call is a
// stateless request-and-map against api.trello.com; authentication uses the
// key/token query parameters Trello requires.
package trello
