package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fokanendapascal/internship-management-app/internal/domain"
	"github.com/fokanendapascal/internship-management-app/internal/dto"
	"github.com/fokanendapascal/internship-management-app/internal/notifier"
)

type agreementFixture struct {
	svc           AgreementService
	agreementRepo *MockAgreementRepository
	application   *domain.Application
	student       *domain.Student
	company       *domain.Company
	teacher       *domain.Teacher
}

func newAgreementFixture(t *testing.T) *agreementFixture {
	t.Helper()
	ctx := context.Background()

	studentRepo := NewMockStudentRepository()
	teacherRepo := NewMockTeacherRepository()
	companyRepo := NewMockCompanyRepository()
	internshipRepo := NewMockInternshipRepository()
	applicationRepo := NewMockApplicationRepository()
	agreementRepo := NewMockAgreementRepository()

	student := &domain.Student{UserID: 10, StudentCode: "S-001"}
	if err := studentRepo.Create(ctx, student); err != nil {
		t.Fatal(err)
	}
	teacher := &domain.Teacher{UserID: 20, Department: "CS"}
	if err := teacherRepo.Create(ctx, teacher); err != nil {
		t.Fatal(err)
	}
	company := &domain.Company{UserID: 30, Name: "Acme"}
	if err := companyRepo.Create(ctx, company); err != nil {
		t.Fatal(err)
	}

	internship := &domain.Internship{
		Title:     "Backend intern",
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		CompanyID: company.ID,
		Company:   company,
	}
	if err := internshipRepo.Create(ctx, internship); err != nil {
		t.Fatal(err)
	}

	application := &domain.Application{
		StudentID:    student.ID,
		Student:      student,
		InternshipID: internship.ID,
		Internship:   internship,
		Status:       domain.ApplicationStatusAccepted,
	}
	if err := applicationRepo.Create(ctx, application); err != nil {
		t.Fatal(err)
	}

	svc := NewAgreementService(agreementRepo, applicationRepo, teacherRepo, notifier.NopNotifier{})
	return &agreementFixture{
		svc:           svc,
		agreementRepo: agreementRepo,
		application:   application,
		student:       student,
		company:       company,
		teacher:       teacher,
	}
}

func (f *agreementFixture) createRequest() *dto.CreateAgreementRequest {
	return &dto.CreateAgreementRequest{
		StartDate:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		DocumentURL: "http://files.test/draft.pdf",
	}
}

func (f *agreementFixture) teacherPrincipal() *domain.Principal {
	return &domain.Principal{AccountID: f.teacher.ID, Email: "teacher@test", Roles: []domain.Role{domain.RoleTeacher}}
}

func (f *agreementFixture) studentPrincipal() *domain.Principal {
	return &domain.Principal{AccountID: f.student.ID, Email: "student@test", Roles: []domain.Role{domain.RoleStudent}}
}

func (f *agreementFixture) companyPrincipal() *domain.Principal {
	return &domain.Principal{AccountID: f.company.ID, Email: "company@test", Roles: []domain.Role{domain.RoleCompany}}
}

func adminPrincipal() *domain.Principal {
	return &domain.Principal{AccountID: 999, Email: "admin@test", Roles: []domain.Role{domain.RoleAdmin}}
}

func TestAgreementCreateAsTeacher(t *testing.T) {
	f := newAgreementFixture(t)
	ctx := context.Background()

	agreement, err := f.svc.CreateAsTeacher(ctx, f.teacherPrincipal(), f.application.ID, f.createRequest())
	if err != nil {
		t.Fatalf("CreateAsTeacher failed: %v", err)
	}
	if agreement.Status != domain.AgreementStatusDraft {
		t.Errorf("expected DRAFT, got %s", agreement.Status)
	}
	if agreement.ValidatorID != f.teacher.ID {
		t.Errorf("expected validator %d, got %d", f.teacher.ID, agreement.ValidatorID)
	}
	req := f.createRequest()
	if !agreement.StartDate.Equal(req.StartDate) || !agreement.EndDate.Equal(req.EndDate) {
		t.Errorf("dates not taken from the request: %s - %s", agreement.StartDate, agreement.EndDate)
	}
	if agreement.DocumentURL != req.DocumentURL {
		t.Errorf("document URL not taken from the request: %q", agreement.DocumentURL)
	}
}

func TestAgreementCreateDuplicate(t *testing.T) {
	f := newAgreementFixture(t)
	ctx := context.Background()

	if _, err := f.svc.CreateAsTeacher(ctx, f.teacherPrincipal(), f.application.ID, f.createRequest()); err != nil {
		t.Fatal(err)
	}
	_, err := f.svc.CreateAsAdmin(ctx, f.application.ID, f.teacher.ID, f.createRequest())
	if !errors.Is(err, domain.ErrAgreementAlreadyExists) {
		t.Errorf("expected ErrAgreementAlreadyExists, got %v", err)
	}
}

func TestAgreementCreateUnknownApplication(t *testing.T) {
	f := newAgreementFixture(t)

	_, err := f.svc.CreateAsTeacher(context.Background(), f.teacherPrincipal(), 12345, f.createRequest())
	if !errors.Is(err, domain.ErrApplicationNotFound) {
		t.Errorf("expected ErrApplicationNotFound, got %v", err)
	}
}

func TestAgreementCreateAsAdminUnknownTeacher(t *testing.T) {
	f := newAgreementFixture(t)

	_, err := f.svc.CreateAsAdmin(context.Background(), f.application.ID, 12345, f.createRequest())
	if !errors.Is(err, domain.ErrTeacherNotFound) {
		t.Errorf("expected ErrTeacherNotFound, got %v", err)
	}
}

func TestAgreementUpdateByOwningStudent(t *testing.T) {
	f := newAgreementFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateAsTeacher(ctx, f.teacherPrincipal(), f.application.ID, f.createRequest())
	if err != nil {
		t.Fatal(err)
	}

	newEnd := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
	updated, err := f.svc.Update(ctx, f.studentPrincipal(), created.ID, &dto.UpdateAgreementRequest{
		EndDate:     &newEnd,
		DocumentURL: "http://files.test/contract.pdf",
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !updated.EndDate.Equal(newEnd) {
		t.Errorf("end date not updated")
	}
	if updated.Status != domain.AgreementStatusDraft {
		t.Errorf("update without status request must keep DRAFT, got %s", updated.Status)
	}
}

func TestAgreementUpdateByOwningCompany(t *testing.T) {
	f := newAgreementFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateAsTeacher(ctx, f.teacherPrincipal(), f.application.ID, f.createRequest())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.Update(ctx, f.companyPrincipal(), created.ID, &dto.UpdateAgreementRequest{DocumentURL: "http://files.test/v2.pdf"}); err != nil {
		t.Fatalf("owning company update failed: %v", err)
	}
}

func TestAgreementUpdateByNonOwnerForbidden(t *testing.T) {
	f := newAgreementFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateAsTeacher(ctx, f.teacherPrincipal(), f.application.ID, f.createRequest())
	if err != nil {
		t.Fatal(err)
	}

	// Student role but a different account than the applicant.
	other := &domain.Principal{AccountID: 777, Roles: []domain.Role{domain.RoleStudent}}
	_, err = f.svc.Update(ctx, other, created.ID, &dto.UpdateAgreementRequest{DocumentURL: "x"})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestAgreementUpdateByAdmin(t *testing.T) {
	f := newAgreementFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateAsTeacher(ctx, f.teacherPrincipal(), f.application.ID, f.createRequest())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.Update(ctx, adminPrincipal(), created.ID, &dto.UpdateAgreementRequest{DocumentURL: "http://files.test/admin.pdf"}); err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
}

func TestAgreementUpdateByTeacher(t *testing.T) {
	f := newAgreementFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateAsTeacher(ctx, f.teacherPrincipal(), f.application.ID, f.createRequest())
	if err != nil {
		t.Fatal(err)
	}

	// The assigned validator edits the draft.
	if _, err := f.svc.Update(ctx, f.teacherPrincipal(), created.ID, &dto.UpdateAgreementRequest{DocumentURL: "http://files.test/v2.pdf"}); err != nil {
		t.Fatalf("validator teacher update failed: %v", err)
	}

	// Teachers are not subject to ownership checks; any teacher may
	// edit a DRAFT agreement.
	other := &domain.Principal{AccountID: 555, Roles: []domain.Role{domain.RoleTeacher}}
	if _, err := f.svc.Update(ctx, other, created.ID, &dto.UpdateAgreementRequest{DocumentURL: "http://files.test/v3.pdf"}); err != nil {
		t.Fatalf("teacher update failed: %v", err)
	}
}

func TestAgreementUpdateSubmittedReportsInvalidState(t *testing.T) {
	f := newAgreementFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateAsTeacher(ctx, f.teacherPrincipal(), f.application.ID, f.createRequest())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.Update(ctx, f.studentPrincipal(), created.ID, &dto.UpdateAgreementRequest{Status: "PENDING_VALIDATION"}); err != nil {
		t.Fatal(err)
	}

	// The state check runs before ownership, so a non-owner sees the
	// same InvalidState outcome an owner would.
	other := &domain.Principal{AccountID: 777, Roles: []domain.Role{domain.RoleStudent}}
	_, err = f.svc.Update(ctx, other, created.ID, &dto.UpdateAgreementRequest{DocumentURL: "x"})
	if !errors.Is(err, domain.ErrInvalidAgreementState) {
		t.Errorf("expected ErrInvalidAgreementState, got %v", err)
	}
}

func TestAgreementUpdateIdempotent(t *testing.T) {
	f := newAgreementFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateAsTeacher(ctx, f.teacherPrincipal(), f.application.ID, f.createRequest())
	if err != nil {
		t.Fatal(err)
	}

	newEnd := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	req := &dto.UpdateAgreementRequest{
		EndDate:     &newEnd,
		DocumentURL: "http://files.test/final.pdf",
	}

	if _, err := f.svc.Update(ctx, f.studentPrincipal(), created.ID, req); err != nil {
		t.Fatal(err)
	}
	first, err := f.svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := f.svc.Update(ctx, f.studentPrincipal(), created.ID, req); err != nil {
		t.Fatalf("second identical update failed: %v", err)
	}
	second, err := f.svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatal(err)
	}

	if second.Status != first.Status ||
		!second.StartDate.Equal(first.StartDate) ||
		!second.EndDate.Equal(first.EndDate) ||
		second.DocumentURL != first.DocumentURL {
		t.Errorf("applying the same payload twice changed persisted state:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestAgreementUpdateIgnoresOtherStatuses(t *testing.T) {
	f := newAgreementFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateAsTeacher(ctx, f.teacherPrincipal(), f.application.ID, f.createRequest())
	if err != nil {
		t.Fatal(err)
	}

	updated, err := f.svc.Update(ctx, f.studentPrincipal(), created.ID, &dto.UpdateAgreementRequest{Status: "SIGNED"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Status != domain.AgreementStatusDraft {
		t.Errorf("requesting SIGNED must be ignored, got %s", updated.Status)
	}
}

func TestAgreementSubmitForValidation(t *testing.T) {
	f := newAgreementFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateAsTeacher(ctx, f.teacherPrincipal(), f.application.ID, f.createRequest())
	if err != nil {
		t.Fatal(err)
	}

	updated, err := f.svc.Update(ctx, f.studentPrincipal(), created.ID, &dto.UpdateAgreementRequest{Status: "PENDING_VALIDATION"})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if updated.Status != domain.AgreementStatusPendingValidation {
		t.Errorf("expected PENDING_VALIDATION, got %s", updated.Status)
	}

	// No longer DRAFT, so further edits are rejected.
	_, err = f.svc.Update(ctx, f.studentPrincipal(), created.ID, &dto.UpdateAgreementRequest{DocumentURL: "x"})
	if !errors.Is(err, domain.ErrInvalidAgreementState) {
		t.Errorf("expected ErrInvalidAgreementState, got %v", err)
	}
}

func TestAgreementValidate(t *testing.T) {
	f := newAgreementFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateAsTeacher(ctx, f.teacherPrincipal(), f.application.ID, f.createRequest())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.Update(ctx, f.studentPrincipal(), created.ID, &dto.UpdateAgreementRequest{Status: "PENDING_VALIDATION"}); err != nil {
		t.Fatal(err)
	}

	validated, err := f.svc.Validate(ctx, f.teacherPrincipal(), created.ID)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if validated.Status != domain.AgreementStatusValidated {
		t.Errorf("expected VALIDATED, got %s", validated.Status)
	}
}

func TestAgreementValidateDraftRejected(t *testing.T) {
	f := newAgreementFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateAsTeacher(ctx, f.teacherPrincipal(), f.application.ID, f.createRequest())
	if err != nil {
		t.Fatal(err)
	}
	_, err = f.svc.Validate(ctx, f.teacherPrincipal(), created.ID)
	if !errors.Is(err, domain.ErrInvalidAgreementState) {
		t.Errorf("expected ErrInvalidAgreementState for DRAFT, got %v", err)
	}
}

func TestAgreementValidateWrongTeacherForbidden(t *testing.T) {
	f := newAgreementFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateAsTeacher(ctx, f.teacherPrincipal(), f.application.ID, f.createRequest())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.Update(ctx, f.studentPrincipal(), created.ID, &dto.UpdateAgreementRequest{Status: "PENDING_VALIDATION"}); err != nil {
		t.Fatal(err)
	}

	other := &domain.Principal{AccountID: 555, Roles: []domain.Role{domain.RoleTeacher}}
	_, err = f.svc.Validate(ctx, other, created.ID)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestAgreementConcurrentValidateSingleWinner(t *testing.T) {
	f := newAgreementFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateAsTeacher(ctx, f.teacherPrincipal(), f.application.ID, f.createRequest())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.Update(ctx, f.studentPrincipal(), created.ID, &dto.UpdateAgreementRequest{Status: "PENDING_VALIDATION"}); err != nil {
		t.Fatal(err)
	}

	if _, err := f.svc.Validate(ctx, f.teacherPrincipal(), created.ID); err != nil {
		t.Fatal(err)
	}
	// Second validation finds the agreement VALIDATED already.
	_, err = f.svc.Validate(ctx, f.teacherPrincipal(), created.ID)
	if !errors.Is(err, domain.ErrInvalidAgreementState) {
		t.Errorf("expected ErrInvalidAgreementState on second validation, got %v", err)
	}
}

func TestAgreementDeleteAnyStatus(t *testing.T) {
	f := newAgreementFixture(t)
	ctx := context.Background()

	created, err := f.svc.CreateAsTeacher(ctx, f.teacherPrincipal(), f.application.ID, f.createRequest())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.Update(ctx, f.studentPrincipal(), created.ID, &dto.UpdateAgreementRequest{Status: "PENDING_VALIDATION"}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.Validate(ctx, f.teacherPrincipal(), created.ID); err != nil {
		t.Fatal(err)
	}

	if err := f.svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	_, err = f.svc.GetByID(ctx, created.ID)
	if !errors.Is(err, domain.ErrAgreementNotFound) {
		t.Errorf("expected ErrAgreementNotFound after delete, got %v", err)
	}
}

func TestAgreementDeleteUnknown(t *testing.T) {
	f := newAgreementFixture(t)

	err := f.svc.Delete(context.Background(), 4242)
	if !errors.Is(err, domain.ErrAgreementNotFound) {
		t.Errorf("expected ErrAgreementNotFound, got %v", err)
	}
}
