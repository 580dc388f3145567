package gateway

import "context"

// Role is the coarse-grained capability level resolved from a bearer
// credential. Roles are totally ordered on the single axis "may mutate remote
// state": RoleReadWrite subsumes RoleReadOnly.
type Role int

const (
	// RoleReadOnly permits invoking non-mutating tools only.
	RoleReadOnly Role = iota + 1
	// RoleReadWrite permits invoking every tool.
	RoleReadWrite
)

func (r Role) String() string {
	switch r {
	case RoleReadOnly:
		return "read_only"
	case RoleReadWrite:
		return "read_write"
	default:
		return "none"
	}
}

// CanWrite reports whether the role may invoke mutating tools.
func (r Role) CanWrite() bool { return r == RoleReadWrite }

type roleContextKey struct{}

// WithRole returns a context carrying the resolved role. The binding is
// created once per request by the authentication middleware and is never
// shared across concurrently handled requests.
func WithRole(ctx context.Context, role Role) context.Context {
	return context.WithValue(ctx, roleContextKey{}, role)
}

// RoleFromContext retrieves the role bound to this request's context.
// The second return is false when no binding exists, for example when a
// guarded operation is invoked outside a request scope.
func RoleFromContext(ctx context.Context) (Role, bool) {
	role, ok := ctx.Value(roleContextKey{}).(Role)
	return role, ok
}
