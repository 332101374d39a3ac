package domain

// Principal is the authenticated identity bound to a single request.
// It is built by the identity resolver from a verified token plus a
// fresh account lookup, and discarded when the request ends.
type Principal struct {
	AccountID int64
	Email     string
	Roles     []Role
}

// HasRole checks if the principal holds the given role.
func (p *Principal) HasRole(role Role) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasAnyRole checks if the principal holds at least one of the given roles.
func (p *Principal) HasAnyRole(roles ...Role) bool {
	for _, role := range roles {
		if p.HasRole(role) {
			return true
		}
	}
	return false
}
