package security

import "github.com/fokanendapascal/internship-management-app/internal/domain"

// Ownership checks cover the object-level rules the route matrix cannot
// express. Every new ownership rule belongs here, not inline in a
// service or handler.

// IsOwningStudent reports whether the principal is the student whose
// application the agreement is bound to.
func IsOwningStudent(p *domain.Principal, agreement *domain.Agreement) bool {
	if p == nil || !p.HasRole(domain.RoleStudent) {
		return false
	}
	if agreement.Application == nil || agreement.Application.Student == nil {
		return false
	}
	return agreement.Application.Student.ID == p.AccountID
}

// IsOwningCompany reports whether the principal is the company offering
// the internship the agreement's application targets.
func IsOwningCompany(p *domain.Principal, agreement *domain.Agreement) bool {
	if p == nil || !p.HasRole(domain.RoleCompany) {
		return false
	}
	if agreement.Application == nil || agreement.Application.Internship == nil ||
		agreement.Application.Internship.Company == nil {
		return false
	}
	return agreement.Application.Internship.Company.ID == p.AccountID
}

// IsAssignedValidator reports whether the principal is the teacher
// assigned to validate the agreement.
func IsAssignedValidator(p *domain.Principal, agreement *domain.Agreement) bool {
	if p == nil || agreement.Validator == nil {
		return false
	}
	return agreement.Validator.ID == p.AccountID
}
