package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fokanendapascal/internship-management-app/internal/domain"
	"github.com/fokanendapascal/internship-management-app/internal/dto"
	"github.com/fokanendapascal/internship-management-app/internal/notifier"
)

type applicationFixture struct {
	svc        ApplicationService
	files      *MockFileStore
	student    *domain.Student
	company    *domain.Company
	internship *domain.Internship
}

func newApplicationFixture(t *testing.T) *applicationFixture {
	t.Helper()
	ctx := context.Background()

	studentRepo := NewMockStudentRepository()
	internshipRepo := NewMockInternshipRepository()
	applicationRepo := NewMockApplicationRepository()
	files := NewMockFileStore()

	student := &domain.Student{UserID: 10, StudentCode: "S-001"}
	if err := studentRepo.Create(ctx, student); err != nil {
		t.Fatal(err)
	}
	company := &domain.Company{ID: 5, UserID: 30, Name: "Acme"}
	internship := &domain.Internship{
		Title:     "Data intern",
		StartDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC),
		CompanyID: company.ID,
		Company:   company,
	}
	if err := internshipRepo.Create(ctx, internship); err != nil {
		t.Fatal(err)
	}

	svc := NewApplicationService(applicationRepo, internshipRepo, studentRepo, files, notifier.NopNotifier{})
	return &applicationFixture{svc: svc, files: files, student: student, company: company, internship: internship}
}

func TestApplicationCreateWithCV(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()
	p := &domain.Principal{AccountID: f.student.UserID, Roles: []domain.Role{domain.RoleStudent}}

	application, err := f.svc.Create(ctx, p, &dto.CreateApplicationRequest{
		InternshipID: f.internship.ID,
		CoverLetter:  "Motivated and available.",
	}, []byte("%PDF-1.4 cv"), "cv.pdf")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if application.Status != domain.ApplicationStatusPending {
		t.Errorf("expected PENDING, got %s", application.Status)
	}
	if !strings.HasSuffix(application.CvURL, "cv.pdf") {
		t.Errorf("expected stored CV URL, got %q", application.CvURL)
	}
	if _, ok := f.files.files["cv.pdf"]; !ok {
		t.Error("CV bytes not stored")
	}
}

func TestApplicationCreateWithoutProfile(t *testing.T) {
	f := newApplicationFixture(t)
	p := &domain.Principal{AccountID: 999, Roles: []domain.Role{domain.RoleStudent}}

	_, err := f.svc.Create(context.Background(), p, &dto.CreateApplicationRequest{InternshipID: f.internship.ID}, nil, "")
	if !errors.Is(err, domain.ErrStudentNotFound) {
		t.Errorf("expected ErrStudentNotFound, got %v", err)
	}
}

func TestApplicationUpdateByOwningStudent(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateForStudent(ctx, f.student.ID, &dto.CreateApplicationRequest{
		InternshipID: f.internship.ID,
		CoverLetter:  "First draft.",
	})
	if err != nil {
		t.Fatal(err)
	}

	owner := &domain.Principal{AccountID: f.student.ID, Roles: []domain.Role{domain.RoleStudent}}
	updated, err := f.svc.Update(ctx, owner, created.ID, &dto.UpdateApplicationRequest{
		CvURL:       "http://files.test/cv-v2.pdf",
		CoverLetter: "Revised letter.",
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.CvURL != "http://files.test/cv-v2.pdf" || updated.CoverLetter != "Revised letter." {
		t.Errorf("fields not updated: %+v", updated)
	}
}

func TestApplicationUpdateByNonOwnerForbidden(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateForStudent(ctx, f.student.ID, &dto.CreateApplicationRequest{
		InternshipID: f.internship.ID,
	})
	if err != nil {
		t.Fatal(err)
	}

	other := &domain.Principal{AccountID: 777, Roles: []domain.Role{domain.RoleStudent}}
	_, err = f.svc.Update(ctx, other, created.ID, &dto.UpdateApplicationRequest{
		CvURL:       "http://files.test/other.pdf",
		CoverLetter: "Not mine.",
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}

	// Admins bypass the ownership check.
	if _, err := f.svc.Update(ctx, adminPrincipal(), created.ID, &dto.UpdateApplicationRequest{
		CvURL:       "http://files.test/fixed.pdf",
		CoverLetter: "Corrected by staff.",
	}); err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
}

func TestApplicationCreateForStudent(t *testing.T) {
	f := newApplicationFixture(t)

	application, err := f.svc.CreateForStudent(context.Background(), f.student.ID, &dto.CreateApplicationRequest{
		InternshipID: f.internship.ID,
	})
	if err != nil {
		t.Fatalf("CreateForStudent failed: %v", err)
	}
	if application.StudentID != f.student.ID {
		t.Errorf("wrong student bound: %d", application.StudentID)
	}
}

func TestApplicationCreateUnknownInternship(t *testing.T) {
	f := newApplicationFixture(t)

	_, err := f.svc.CreateForStudent(context.Background(), f.student.ID, &dto.CreateApplicationRequest{InternshipID: 4242})
	if !errors.Is(err, domain.ErrInternshipNotFound) {
		t.Errorf("expected ErrInternshipNotFound, got %v", err)
	}
}

func TestApplicationDecide(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	application, err := f.svc.CreateForStudent(ctx, f.student.ID, &dto.CreateApplicationRequest{InternshipID: f.internship.ID})
	if err != nil {
		t.Fatal(err)
	}

	companyP := &domain.Principal{AccountID: f.company.ID, Roles: []domain.Role{domain.RoleCompany}}
	decided, err := f.svc.Decide(ctx, companyP, application.ID, domain.ApplicationStatusAccepted)
	if err != nil {
		t.Fatalf("Decide failed: %v", err)
	}
	if decided.Status != domain.ApplicationStatusAccepted {
		t.Errorf("expected ACCEPTED, got %s", decided.Status)
	}

	// Already decided.
	_, err = f.svc.Decide(ctx, companyP, application.ID, domain.ApplicationStatusRejected)
	if !errors.Is(err, domain.ErrInvalidApplicationState) {
		t.Errorf("expected ErrInvalidApplicationState, got %v", err)
	}
}

func TestApplicationDecideWrongCompanyForbidden(t *testing.T) {
	f := newApplicationFixture(t)
	ctx := context.Background()

	application, err := f.svc.CreateForStudent(ctx, f.student.ID, &dto.CreateApplicationRequest{InternshipID: f.internship.ID})
	if err != nil {
		t.Fatal(err)
	}

	other := &domain.Principal{AccountID: 888, Roles: []domain.Role{domain.RoleCompany}}
	_, err = f.svc.Decide(ctx, other, application.ID, domain.ApplicationStatusAccepted)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}
