// Package nav holds the view route table and the guard that decides, per
// requested transition, whether the current session may proceed.
package nav

import (
	"strings"

	"github.com/liuwf/chainmarket/internal/client/session"
)

// Route declares one view and its access requirements. A zero RequiredRole
// means any role may enter.
type Route struct {
	Path         string
	Name         string
	Title        string
	RequiresAuth bool
	RequiredRole session.Role
}

// LoginPath is where unauthenticated visitors are sent.
const LoginPath = "/login"

// Routes returns the full view table. Path segments starting with ':' match
// any single segment.
func Routes() []Route {
	return []Route{
		{Path: "/", Name: "Home", Title: "Home"},
		{Path: "/login", Name: "Login", Title: "Sign in"},
		{Path: "/product/:id", Name: "ProductDetail", Title: "Product detail"},
		{Path: "/checkout", Name: "Checkout", Title: "Checkout", RequiresAuth: true},
		{Path: "/reviews", Name: "UserReviews", Title: "My reviews"},
		{Path: "/transactions", Name: "Transactions", Title: "Transactions", RequiresAuth: true},
		{Path: "/review/:productId", Name: "Review", Title: "Write a review", RequiresAuth: true},
		{Path: "/rewards", Name: "Rewards", Title: "My rewards", RequiresAuth: true},
		{Path: "/account", Name: "Account", Title: "My account", RequiresAuth: true},

		{Path: "/merchant", Name: "Merchant", Title: "Merchant center", RequiresAuth: true, RequiredRole: session.RoleMerchant},
		{Path: "/merchant/shop", Name: "ShopManage", Title: "Shop management", RequiresAuth: true, RequiredRole: session.RoleMerchant},
		{Path: "/merchant/shop/apply", Name: "ShopApply", Title: "Apply for a shop", RequiresAuth: true, RequiredRole: session.RoleMerchant},
		{Path: "/merchant/products", Name: "ProductManage", Title: "Product management", RequiresAuth: true, RequiredRole: session.RoleMerchant},
		{Path: "/merchant/orders", Name: "MerchantOrders", Title: "Order management", RequiresAuth: true, RequiredRole: session.RoleMerchant},

		{Path: "/admin", Name: "Admin", Title: "Admin", RequiresAuth: true, RequiredRole: session.RoleAdmin},
		{Path: "/admin/dashboard", Name: "AdminDashboard", Title: "System overview", RequiresAuth: true, RequiredRole: session.RoleAdmin},
		{Path: "/admin/users", Name: "UserManage", Title: "User management", RequiresAuth: true, RequiredRole: session.RoleAdmin},
		{Path: "/admin/shop-audit", Name: "ShopAudit", Title: "Shop audit", RequiresAuth: true, RequiredRole: session.RoleAdmin},
	}
}

// Router resolves requested paths against the route table.
type Router struct {
	routes []Route
}

func NewRouter() *Router {
	return &Router{routes: Routes()}
}

// Find returns the route matching path, honoring ':param' segments.
func (r *Router) Find(path string) (Route, bool) {
	for _, route := range r.routes {
		if matchPath(route.Path, path) {
			return route, true
		}
	}
	return Route{}, false
}

func matchPath(pattern, path string) bool {
	if pattern == path {
		return true
	}
	ps := strings.Split(strings.Trim(pattern, "/"), "/")
	xs := strings.Split(strings.Trim(path, "/"), "/")
	if len(ps) != len(xs) {
		return false
	}
	for i := range ps {
		if strings.HasPrefix(ps[i], ":") {
			if xs[i] == "" {
				return false
			}
			continue
		}
		if ps[i] != xs[i] {
			return false
		}
	}
	return true
}
