package service

import (
	"context"

	"github.com/fokanendapascal/internship-management-app/internal/domain"
	"github.com/fokanendapascal/internship-management-app/internal/dto"
	"github.com/fokanendapascal/internship-management-app/internal/repository"
	"github.com/fokanendapascal/internship-management-app/pkg/telemetry"
)

// TeacherService defines the interface for teacher profile operations
type TeacherService interface {
	Create(ctx context.Context, req *dto.CreateTeacherRequest) (*domain.Teacher, error)
	GetByID(ctx context.Context, id int64) (*domain.Teacher, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Teacher, error)
	List(ctx context.Context) ([]*domain.Teacher, error)
	Update(ctx context.Context, id int64, req *dto.UpdateTeacherRequest) (*domain.Teacher, error)
	Delete(ctx context.Context, id int64) error
}

// teacherService implements TeacherService
type teacherService struct {
	teacherRepo repository.TeacherRepository
	userRepo    repository.UserRepository
}

// NewTeacherService creates a new TeacherService
func NewTeacherService(teacherRepo repository.TeacherRepository, userRepo repository.UserRepository) TeacherService {
	return &teacherService{teacherRepo: teacherRepo, userRepo: userRepo}
}

// Create creates a teacher profile for an account and grants the
// account the TEACHER role.
func (s *teacherService) Create(ctx context.Context, req *dto.CreateTeacherRequest) (*domain.Teacher, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.teacher.create")
	defer span.End()

	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	teacher := &domain.Teacher{
		UserID:     req.UserID,
		Department: req.Department,
		Grade:      req.Grade,
		Specialty:  req.Specialty,
	}
	if err := s.teacherRepo.Create(ctx, teacher); err != nil {
		return nil, err
	}

	if !user.HasRole(domain.RoleTeacher) {
		user.Roles = append(user.Roles, domain.RoleTeacher)
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
	}
	teacher.User = user
	return teacher, nil
}

// GetByID retrieves a teacher profile by ID
func (s *teacherService) GetByID(ctx context.Context, id int64) (*domain.Teacher, error) {
	teacher, err := s.teacherRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if teacher == nil {
		return nil, domain.ErrTeacherNotFound
	}
	return teacher, nil
}

// GetByUserID retrieves a teacher profile by its user account ID
func (s *teacherService) GetByUserID(ctx context.Context, userID int64) (*domain.Teacher, error) {
	teacher, err := s.teacherRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if teacher == nil {
		return nil, domain.ErrTeacherNotFound
	}
	return teacher, nil
}

// List retrieves all teacher profiles
func (s *teacherService) List(ctx context.Context) ([]*domain.Teacher, error) {
	return s.teacherRepo.List(ctx)
}

// Update updates a teacher profile
func (s *teacherService) Update(ctx context.Context, id int64, req *dto.UpdateTeacherRequest) (*domain.Teacher, error) {
	teacher, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Department != "" {
		teacher.Department = req.Department
	}
	if req.Grade != "" {
		teacher.Grade = req.Grade
	}
	if req.Specialty != "" {
		teacher.Specialty = req.Specialty
	}
	if err := s.teacherRepo.Update(ctx, teacher); err != nil {
		return nil, err
	}
	return teacher, nil
}

// Delete removes a teacher profile
func (s *teacherService) Delete(ctx context.Context, id int64) error {
	teacher, err := s.teacherRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if teacher == nil {
		return domain.ErrTeacherNotFound
	}
	return s.teacherRepo.Delete(ctx, id)
}
