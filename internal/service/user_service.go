package service

import (
	"context"
	"time"

	"github.com/fokanendapascal/internship-management-app/internal/domain"
	"github.com/fokanendapascal/internship-management-app/internal/dto"
	"github.com/fokanendapascal/internship-management-app/internal/repository"
	"github.com/fokanendapascal/internship-management-app/pkg/telemetry"
)

// UserService defines the interface for account administration
type UserService interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

// userService implements UserService
type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// GetByID retrieves an account by ID
func (s *userService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// List retrieves all accounts
func (s *userService) List(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.List(ctx)
}

// Update updates an account's profile fields and roles
func (s *userService) Update(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*domain.User, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.user.update")
	defer span.End()

	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Telephone != "" {
		user.Telephone = req.Telephone
	}
	if len(req.Roles) > 0 {
		user.Roles = domain.ParseRoles(req.Roles)
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes an account
func (s *userService) Delete(ctx context.Context, id int64) error {
	ctx, span := telemetry.StartSpan(ctx, "service.user.delete")
	defer span.End()

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return s.userRepo.Delete(ctx, id)
}
