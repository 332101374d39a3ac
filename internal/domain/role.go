package domain

import "strings"

// Role represents a coarse-grained authority granted to a user account.
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleTeacher Role = "TEACHER"
	RoleCompany Role = "COMPANY"
	RoleAdmin   Role = "ADMIN"
	RoleUser    Role = "USER"
)

// IsValid checks if the role is a known Role
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleCompany, RoleAdmin, RoleUser:
		return true
	}
	return false
}

// String returns the wire representation of the role
func (r Role) String() string {
	return string(r)
}

// ParseRole maps a role name to a Role. It accepts the legacy
// "ROLE_" prefixed form still present in older tokens.
func ParseRole(s string) (Role, bool) {
	name := strings.ToUpper(strings.TrimSpace(s))
	name = strings.TrimPrefix(name, "ROLE_")
	role := Role(name)
	if !role.IsValid() {
		return "", false
	}
	return role, true
}

// ParseRoles maps a list of role names to Roles, silently dropping
// unknown names. An empty result defaults to the USER role.
func ParseRoles(names []string) []Role {
	roles := make([]Role, 0, len(names))
	for _, name := range names {
		if role, ok := ParseRole(name); ok {
			roles = append(roles, role)
		}
	}
	if len(roles) == 0 {
		roles = append(roles, RoleUser)
	}
	return roles
}

// RoleNames converts roles to their wire names.
func RoleNames(roles []Role) []string {
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, role.String())
	}
	return names
}
