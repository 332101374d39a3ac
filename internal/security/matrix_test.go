package security

import (
	"errors"
	"testing"

	"github.com/fokanendapascal/internship-management-app/internal/domain"
)

func studentP() *domain.Principal {
	return &domain.Principal{AccountID: 1, Roles: []domain.Role{domain.RoleStudent}}
}

func teacherP() *domain.Principal {
	return &domain.Principal{AccountID: 2, Roles: []domain.Role{domain.RoleTeacher}}
}

func adminP() *domain.Principal {
	return &domain.Principal{AccountID: 3, Roles: []domain.Role{domain.RoleAdmin}}
}

func TestMatrixPublicRoutesAllowAnonymous(t *testing.T) {
	m := NewMatrix(DefaultRules())

	cases := []struct{ method, path string }{
		{"POST", "/api/v1/auth/login"},
		{"POST", "/api/v1/auth/register"},
		{"POST", "/api/v1/auth/refresh-token"},
		{"GET", "/api/v1/internships"},
		{"GET", "/api/v1/internships/7"},
		{"GET", "/api/v1/applications/7"},
		{"GET", "/api/v1/agreements"},
		{"GET", "/api/v1/agreements/7"},
		{"GET", "/health/ready"},
		{"GET", "/swagger/index.html"},
	}
	for _, tc := range cases {
		if err := m.Evaluate(tc.method, tc.path, nil); err != nil {
			t.Errorf("%s %s: expected anonymous allow, got %v", tc.method, tc.path, err)
		}
	}
}

func TestMatrixAnonymousRejectedOnProtectedRoutes(t *testing.T) {
	m := NewMatrix(DefaultRules())

	cases := []struct{ method, path string }{
		{"POST", "/api/v1/internships"},
		{"POST", "/api/v1/agreements"},
		{"PUT", "/api/v1/agreements/7"},
		{"GET", "/api/v1/users"},
		{"GET", "/api/v1/notifications"}, // unmatched: needs any principal
	}
	for _, tc := range cases {
		if err := m.Evaluate(tc.method, tc.path, nil); !errors.Is(err, domain.ErrUnauthenticated) {
			t.Errorf("%s %s: expected ErrUnauthenticated, got %v", tc.method, tc.path, err)
		}
	}
}

func TestMatrixRoleEnforcement(t *testing.T) {
	m := NewMatrix(DefaultRules())

	// Students cannot create agreements.
	if err := m.Evaluate("POST", "/api/v1/agreements", studentP()); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("student POST agreements: expected ErrForbidden, got %v", err)
	}
	// Teachers can.
	if err := m.Evaluate("POST", "/api/v1/agreements", teacherP()); err != nil {
		t.Errorf("teacher POST agreements: expected allow, got %v", err)
	}
	// Only admins reach the user administration surface.
	if err := m.Evaluate("GET", "/api/v1/users", teacherP()); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("teacher GET users: expected ErrForbidden, got %v", err)
	}
	if err := m.Evaluate("DELETE", "/api/v1/users/9", adminP()); err != nil {
		t.Errorf("admin DELETE user: expected allow, got %v", err)
	}
	// admin-create is admin-only even though plain create is teacher-only.
	if err := m.Evaluate("POST", "/api/v1/agreements/admin-create", teacherP()); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("teacher admin-create: expected ErrForbidden, got %v", err)
	}
	if err := m.Evaluate("POST", "/api/v1/agreements/admin-create", adminP()); err != nil {
		t.Errorf("admin admin-create: expected allow, got %v", err)
	}
}

func TestMatrixValidateRuleBeatsGenericPut(t *testing.T) {
	m := NewMatrix(DefaultRules())

	// The validate rule is TEACHER-only; the generic agreements PUT
	// would admit students. Ordering must pick the validate rule.
	if err := m.Evaluate("PUT", "/api/v1/agreements/7/validate", studentP()); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("student PUT validate: expected ErrForbidden, got %v", err)
	}
	if err := m.Evaluate("PUT", "/api/v1/agreements/7/validate", teacherP()); err != nil {
		t.Errorf("teacher PUT validate: expected allow, got %v", err)
	}
	// Generic agreement PUT stays open to students.
	if err := m.Evaluate("PUT", "/api/v1/agreements/7", studentP()); err != nil {
		t.Errorf("student PUT agreement: expected allow, got %v", err)
	}
}

func TestMatrixUnmatchedRouteNeedsAnyPrincipal(t *testing.T) {
	m := NewMatrix(DefaultRules())

	if err := m.Evaluate("GET", "/api/v1/messages/conversation/4", studentP()); err != nil {
		t.Errorf("authenticated unmatched route: expected allow, got %v", err)
	}
}

func TestMatchPattern(t *testing.T) {
	cases := []struct {
		pattern, path string
		want          bool
	}{
		{"/api/v1/agreements/*/validate", "/api/v1/agreements/7/validate", true},
		{"/api/v1/agreements/*/validate", "/api/v1/agreements/7", false},
		{"/api/v1/agreements/**", "/api/v1/agreements", true},
		{"/api/v1/agreements/**", "/api/v1/agreements/7/validate", true},
		{"/api/v1/agreements", "/api/v1/agreements/7", false},
		{"/docs/**", "/docs", true},
		{"/docs/**", "/docs/index.html", true},
	}
	for _, tc := range cases {
		if got := matchPattern(tc.pattern, tc.path); got != tc.want {
			t.Errorf("matchPattern(%q, %q) = %v, want %v", tc.pattern, tc.path, got, tc.want)
		}
	}
}
