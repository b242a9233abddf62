package security

import (
	"strings"

	"github.com/shopfront/admin-api/internal/core/domain"
)

const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

// adminPrefixes are the path trees reserved for the admin role.
var adminPrefixes = []string{"/dashboard/admin", "/admin", "/api/admin"}

// Decision is the outcome of a route authorization check. A zero
// RedirectTo means access is allowed.
type Decision struct {
	RedirectTo string
}

func Allow() Decision { return Decision{} }

func RedirectTo(path string) Decision { return Decision{RedirectTo: path} }

func (d Decision) Allowed() bool { return d.RedirectTo == "" }

// Authorize decides whether session may access a route that needs
// requiredRole. An empty requiredRole only needs a valid session.
// Unauthenticated callers go to the login page; authenticated callers
// lacking the role go to the general dashboard.
func Authorize(session *domain.Session, requiredRole string) Decision {
	if session == nil {
		return RedirectTo(LoginPath)
	}
	if requiredRole != "" && session.Role != requiredRole {
		return RedirectTo(DashboardPath)
	}
	return Allow()
}

// RequiredRole returns the role a path demands: admin for the admin trees,
// empty for everything else.
func RequiredRole(path string) string {
	for _, prefix := range adminPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return domain.RoleAdmin
		}
	}
	return ""
}
