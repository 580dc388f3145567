// Package tools registers the Trello tool catalogue on an MCP server. Each
// tool is a thin call-and-map into pkg/trello; mutating tools are wrapped
// with gateway.RequireWrite so a read-only caller can never reach the remote
// API through them.
package tools
