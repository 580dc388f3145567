// Package gateway exposes a Trello tool catalogue over a Streamable MCP
// endpoint behind an authenticated HTTP middleware pipeline. Inbound
// connections pass through CORS handling, bearer-credential role resolution,
// and anti-buffering response rewriting before reaching the MCP dispatcher;
// mutating tools are additionally gated on the resolved role via RequireWrite.
// The streamable session subsystem is bounded by a scoped lifecycle so that
// sessions can only be created while the gateway is serving.
package gateway
