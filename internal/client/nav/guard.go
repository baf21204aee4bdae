package nav

import "github.com/liuwf/chainmarket/internal/client/session"

// Decision is the outcome of one guard evaluation: either proceed to the
// requested view or redirect elsewhere.
type Decision struct {
	Proceed  bool
	Redirect string // target path when Proceed is false
	ReturnTo string // requested path preserved so sign-in can resume it
	Reason   string
}

// Reasons a transition can be redirected.
const (
	ReasonAuthRequired     = "authentication required"
	ReasonPermissionDenied = "permission denied"
)

// Decide evaluates one transition to target, requested as path, against the
// session snapshot. It mutates nothing and caches nothing; callers evaluate
// it fresh on every transition.
func Decide(target Route, path string, snap session.Snapshot) Decision {
	if target.RequiresAuth && !snap.Connected {
		return Decision{Redirect: LoginPath, ReturnTo: path, Reason: ReasonAuthRequired}
	}

	if target.RequiredRole != "" && snap.Role != target.RequiredRole {
		return Decision{Redirect: HomeFor(snap.Role), Reason: ReasonPermissionDenied}
	}

	return Decision{Proceed: true}
}

// Decide resolves path against the route table and evaluates the guard.
// Unknown paths carry no requirements and proceed; the view layer deals
// with them.
func (r *Router) Decide(path string, snap session.Snapshot) Decision {
	route, ok := r.Find(path)
	if !ok {
		return Decision{Proceed: true}
	}
	return Decide(route, path, snap)
}

// HomeFor returns the default landing view for a role.
func HomeFor(role session.Role) string {
	switch role {
	case session.RoleMerchant:
		return "/merchant"
	case session.RoleAdmin:
		return "/admin"
	default:
		return "/"
	}
}
