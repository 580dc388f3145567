package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// PermissionDeniedError reports a mutating tool invocation by a caller whose
// resolved role lacks write capability.
type PermissionDeniedError struct {
	// Tool is the name of the guarded operation.
	Tool string
	// Role is the caller's resolved role, "none" when no binding exists.
	Role string
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("gateway: tool %q requires read-write access, current role is %s", e.Tool, e.Role)
}

// RequireWrite wraps a tool handler with a capability check. The wrapped
// handler's body never executes unless the request's bound role can write;
// a failed check performs no remote calls and is safe to re-enter.
func RequireWrite[In, Out any](name string, h mcp.ToolHandlerFor[In, Out]) mcp.ToolHandlerFor[In, Out] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input In) (*mcp.CallToolResult, Out, error) {
		if role, ok := RoleFromContext(ctx); !ok || !role.CanWrite() {
			actual := "none"
			if ok {
				actual = role.String()
			}
			slog.Warn("blocked write attempt", "tool", name, "role", actual)
			var zero Out
			return nil, zero, &PermissionDeniedError{Tool: name, Role: actual}
		}
		return h(ctx, req, input)
	}
}
