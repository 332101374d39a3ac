package service

import (
	"context"
	"errors"
	"testing"

	"github.com/fokanendapascal/internship-management-app/internal/domain"
	"github.com/fokanendapascal/internship-management-app/internal/dto"
)

func TestStudentCreateGrantsRole(t *testing.T) {
	ctx := context.Background()
	userRepo := NewMockUserRepository()
	studentRepo := NewMockStudentRepository()
	svc := NewStudentService(studentRepo, userRepo)

	user := &domain.User{Email: "new@test.edu", Roles: []domain.Role{domain.RoleUser}}
	if err := userRepo.Create(ctx, user); err != nil {
		t.Fatal(err)
	}

	student, err := svc.Create(ctx, &dto.CreateStudentRequest{UserID: user.ID, StudentCode: "S-042", Level: "M1"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if student.ID == 0 {
		t.Error("student not persisted")
	}

	updated, _ := userRepo.GetByID(ctx, user.ID)
	if !updated.HasRole(domain.RoleStudent) {
		t.Error("STUDENT role not granted on profile creation")
	}
}

func TestStudentCreateUnknownUser(t *testing.T) {
	svc := NewStudentService(NewMockStudentRepository(), NewMockUserRepository())

	_, err := svc.Create(context.Background(), &dto.CreateStudentRequest{UserID: 404, StudentCode: "S-404"})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestStudentUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	userRepo := NewMockUserRepository()
	studentRepo := NewMockStudentRepository()
	svc := NewStudentService(studentRepo, userRepo)

	user := &domain.User{Email: "x@test.edu"}
	if err := userRepo.Create(ctx, user); err != nil {
		t.Fatal(err)
	}
	student, err := svc.Create(ctx, &dto.CreateStudentRequest{UserID: user.ID, StudentCode: "S-1", Level: "L3"})
	if err != nil {
		t.Fatal(err)
	}

	updated, err := svc.Update(ctx, student.ID, &dto.UpdateStudentRequest{Level: "M1"})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Level != "M1" || updated.StudentCode != "S-1" {
		t.Errorf("unexpected update result: %+v", updated)
	}

	if err := svc.Delete(ctx, student.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := svc.Delete(ctx, student.ID); !errors.Is(err, domain.ErrStudentNotFound) {
		t.Errorf("expected ErrStudentNotFound, got %v", err)
	}
}
