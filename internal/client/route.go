package client

import "github.com/qawafel/crm-backend/internal/intake"

type RouteKind string

const (
	RouteDashboard RouteKind = "dashboard"
	RouteIntake    RouteKind = "intake"
)

// Route is where a browser path lands. Token is set for intake routes only.
type Route struct {
	Kind  RouteKind
	Token string
}

// ResolveRoute sends /form/lead/{token} to the public intake form and every
// other path to the dashboard.
func ResolveRoute(path string) Route {
	if token := intake.TokenFromPath(path); token != "" {
		return Route{Kind: RouteIntake, Token: token}
	}
	return Route{Kind: RouteDashboard}
}
