package config

type SecurityLevel int

const (
	SecurityPublic SecurityLevel = iota // No authentication
	SecurityAdmin                       // Admin token required
)

// RouteSecurityConfig maps "METHOD path-template" to the level the route requires.
// Routes missing from the map are treated as SecurityAdmin.
var RouteSecurityConfig = map[string]SecurityLevel{
	"GET /health": SecurityPublic,

	// Catalog and calendar
	"GET /api/v1/equipments":                     SecurityPublic,
	"GET /api/v1/equipments/{id}/reserved-dates": SecurityPublic,

	// Requests
	"POST /api/v1/rentals":       SecurityPublic,
	"GET /api/v1/rentals/rented": SecurityPublic,

	// Admin gate
	"POST /api/v1/admin/login": SecurityPublic,

	// Admin
	"GET /api/v1/admin/rentals":               SecurityAdmin,
	"POST /api/v1/admin/rentals/{id}/approve": SecurityAdmin,
	"POST /api/v1/admin/rentals/{id}/return":  SecurityAdmin,
	"GET /api/v1/admin/equipments":            SecurityAdmin,
	"POST /api/v1/admin/equipments":           SecurityAdmin,
	"DELETE /api/v1/admin/equipments/{id}":    SecurityAdmin,
}

// RouteSecurity returns the level configured for a route, defaulting to SecurityAdmin.
func RouteSecurity(method, pathTemplate string) SecurityLevel {
	if level, ok := RouteSecurityConfig[method+" "+pathTemplate]; ok {
		return level
	}
	return SecurityAdmin
}
