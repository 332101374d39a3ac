package security

import (
	"strings"

	"github.com/fokanendapascal/internship-management-app/internal/domain"
)

// Rule is one line of the route authorization table: an HTTP method
// (or "*"), a path pattern and the roles allowed through. Public rules
// require no principal at all. Patterns match by path segment: "*"
// matches exactly one segment, a trailing "**" matches any remainder.
type Rule struct {
	Method  string
	Pattern string
	Roles   []domain.Role
	Public  bool
}

// Matrix is an ordered rule table evaluated top to bottom, first match
// wins. Rule authors must keep the most specific method/path pair above
// broader patterns covering the same prefix (the agreements validate
// rule before the generic agreements PUT rule, for example).
type Matrix struct {
	rules []Rule
}

// NewMatrix creates a matrix from an ordered rule list.
func NewMatrix(rules []Rule) *Matrix {
	return &Matrix{rules: rules}
}

// DefaultRules returns the route authorization table of the API.
func DefaultRules() []Rule {
	return []Rule{
		{Method: "GET", Pattern: "/health/**", Public: true},
		{Method: "*", Pattern: "/docs/**", Public: true},
		{Method: "*", Pattern: "/swagger/**", Public: true},
		{Method: "*", Pattern: "/api/v1/auth/login", Public: true},
		{Method: "*", Pattern: "/api/v1/auth/register", Public: true},
		{Method: "POST", Pattern: "/api/v1/auth/refresh-token", Public: true},

		{Method: "POST", Pattern: "/api/v1/internships", Roles: []domain.Role{domain.RoleCompany, domain.RoleAdmin}},
		{Method: "PUT", Pattern: "/api/v1/internships/**", Roles: []domain.Role{domain.RoleCompany, domain.RoleAdmin}},
		{Method: "DELETE", Pattern: "/api/v1/internships/**", Roles: []domain.Role{domain.RoleCompany, domain.RoleAdmin}},
		{Method: "GET", Pattern: "/api/v1/internships/**", Public: true},

		{Method: "POST", Pattern: "/api/v1/applications", Roles: []domain.Role{domain.RoleStudent}},
		{Method: "POST", Pattern: "/api/v1/applications/for-student/**", Roles: []domain.Role{domain.RoleAdmin}},
		{Method: "PUT", Pattern: "/api/v1/applications/**", Roles: []domain.Role{domain.RoleStudent, domain.RoleAdmin}},
		{Method: "DELETE", Pattern: "/api/v1/applications/**", Roles: []domain.Role{domain.RoleAdmin}},
		{Method: "GET", Pattern: "/api/v1/applications/**", Public: true},

		{Method: "POST", Pattern: "/api/v1/agreements", Roles: []domain.Role{domain.RoleTeacher}},
		{Method: "POST", Pattern: "/api/v1/agreements/admin-create", Roles: []domain.Role{domain.RoleAdmin}},
		{Method: "PUT", Pattern: "/api/v1/agreements/*/validate", Roles: []domain.Role{domain.RoleTeacher}},
		{Method: "PUT", Pattern: "/api/v1/agreements/**", Roles: []domain.Role{domain.RoleTeacher, domain.RoleAdmin, domain.RoleStudent, domain.RoleCompany}},
		{Method: "DELETE", Pattern: "/api/v1/agreements/**", Roles: []domain.Role{domain.RoleAdmin}},
		{Method: "GET", Pattern: "/api/v1/agreements/**", Public: true},

		{Method: "*", Pattern: "/api/v1/users/**", Roles: []domain.Role{domain.RoleAdmin}},
	}
}

// Evaluate decides whether the request may proceed. A nil error means
// allow. Anonymous requests on non-public routes fail with
// ErrUnauthenticated; authenticated requests lacking a required role
// fail with ErrForbidden. Requests matching no rule require any
// authenticated principal.
func (m *Matrix) Evaluate(method, path string, p *domain.Principal) error {
	for _, rule := range m.rules {
		if rule.Method != "*" && rule.Method != method {
			continue
		}
		if !matchPattern(rule.Pattern, path) {
			continue
		}
		if rule.Public {
			return nil
		}
		if p == nil {
			return domain.ErrUnauthenticated
		}
		if len(rule.Roles) == 0 || p.HasAnyRole(rule.Roles...) {
			return nil
		}
		return domain.ErrForbidden
	}

	// No rule matched: any authenticated principal may proceed.
	if p == nil {
		return domain.ErrUnauthenticated
	}
	return nil
}

// matchPattern matches a path against a segment pattern. "*" matches a
// single segment, a trailing "**" matches zero or more segments.
func matchPattern(pattern, path string) bool {
	pat := splitPath(pattern)
	seg := splitPath(path)

	for i, p := range pat {
		if p == "**" {
			// Trailing ** swallows the rest, including nothing.
			return i == len(pat)-1
		}
		if i >= len(seg) {
			return false
		}
		if p != "*" && p != seg[i] {
			return false
		}
	}
	return len(pat) == len(seg)
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
