package service

import (
	"context"

	"github.com/fokanendapascal/internship-management-app/internal/domain"
	"github.com/fokanendapascal/internship-management-app/internal/dto"
	"github.com/fokanendapascal/internship-management-app/internal/repository"
	"github.com/fokanendapascal/internship-management-app/pkg/telemetry"
)

// StudentService defines the interface for student profile operations
type StudentService interface {
	Create(ctx context.Context, req *dto.CreateStudentRequest) (*domain.Student, error)
	GetByID(ctx context.Context, id int64) (*domain.Student, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Student, error)
	List(ctx context.Context) ([]*domain.Student, error)
	Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*domain.Student, error)
	Delete(ctx context.Context, id int64) error
}

// studentService implements StudentService
type studentService struct {
	studentRepo repository.StudentRepository
	userRepo    repository.UserRepository
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo repository.StudentRepository, userRepo repository.UserRepository) StudentService {
	return &studentService{studentRepo: studentRepo, userRepo: userRepo}
}

// Create creates a student profile for an account and grants the
// account the STUDENT role.
func (s *studentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*domain.Student, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.student.create")
	defer span.End()

	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	student := &domain.Student{
		UserID:      req.UserID,
		StudentCode: req.StudentCode,
		Level:       req.Level,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	if !user.HasRole(domain.RoleStudent) {
		user.Roles = append(user.Roles, domain.RoleStudent)
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
	}
	student.User = user
	return student, nil
}

// GetByID retrieves a student profile by ID
func (s *studentService) GetByID(ctx context.Context, id int64) (*domain.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, domain.ErrStudentNotFound
	}
	return student, nil
}

// GetByUserID retrieves a student profile by its user account ID
func (s *studentService) GetByUserID(ctx context.Context, userID int64) (*domain.Student, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, domain.ErrStudentNotFound
	}
	return student, nil
}

// List retrieves all student profiles
func (s *studentService) List(ctx context.Context) ([]*domain.Student, error) {
	return s.studentRepo.List(ctx)
}

// Update updates a student profile
func (s *studentService) Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*domain.Student, error) {
	student, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.StudentCode != "" {
		student.StudentCode = req.StudentCode
	}
	if req.Level != "" {
		student.Level = req.Level
	}
	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// Delete removes a student profile
func (s *studentService) Delete(ctx context.Context, id int64) error {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if student == nil {
		return domain.ErrStudentNotFound
	}
	return s.studentRepo.Delete(ctx, id)
}
