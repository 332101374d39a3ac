package service

import (
	"context"

	"github.com/fokanendapascal/internship-management-app/internal/domain"
	"github.com/fokanendapascal/internship-management-app/internal/dto"
	"github.com/fokanendapascal/internship-management-app/internal/repository"
	"github.com/fokanendapascal/internship-management-app/pkg/telemetry"
)

// CompanyService defines the interface for company profile operations
type CompanyService interface {
	Create(ctx context.Context, req *dto.CreateCompanyRequest) (*domain.Company, error)
	GetByID(ctx context.Context, id int64) (*domain.Company, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Company, error)
	List(ctx context.Context) ([]*domain.Company, error)
	Update(ctx context.Context, id int64, req *dto.UpdateCompanyRequest) (*domain.Company, error)
	Delete(ctx context.Context, id int64) error
}

// companyService implements CompanyService
type companyService struct {
	companyRepo repository.CompanyRepository
	userRepo    repository.UserRepository
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(companyRepo repository.CompanyRepository, userRepo repository.UserRepository) CompanyService {
	return &companyService{companyRepo: companyRepo, userRepo: userRepo}
}

// Create creates a company profile for an account and grants the
// account the COMPANY role.
func (s *companyService) Create(ctx context.Context, req *dto.CreateCompanyRequest) (*domain.Company, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.company.create")
	defer span.End()

	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	company := &domain.Company{
		UserID:            req.UserID,
		Name:              req.Name,
		Address:           req.Address,
		Description:       req.Description,
		Website:           req.Website,
		Phone:             req.Phone,
		ProfessionalEmail: req.ProfessionalEmail,
	}
	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}

	if !user.HasRole(domain.RoleCompany) {
		user.Roles = append(user.Roles, domain.RoleCompany)
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
	}
	company.User = user
	return company, nil
}

// GetByID retrieves a company profile by ID
func (s *companyService) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}
	return company, nil
}

// GetByUserID retrieves a company profile by its user account ID
func (s *companyService) GetByUserID(ctx context.Context, userID int64) (*domain.Company, error) {
	company, err := s.companyRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}
	return company, nil
}

// List retrieves all company profiles
func (s *companyService) List(ctx context.Context) ([]*domain.Company, error) {
	return s.companyRepo.List(ctx)
}

// Update updates a company profile
func (s *companyService) Update(ctx context.Context, id int64, req *dto.UpdateCompanyRequest) (*domain.Company, error) {
	company, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		company.Name = req.Name
	}
	if req.Address != "" {
		company.Address = req.Address
	}
	if req.Description != "" {
		company.Description = req.Description
	}
	if req.Website != "" {
		company.Website = req.Website
	}
	if req.Phone != "" {
		company.Phone = req.Phone
	}
	if req.ProfessionalEmail != "" {
		company.ProfessionalEmail = req.ProfessionalEmail
	}
	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// Delete removes a company profile
func (s *companyService) Delete(ctx context.Context, id int64) error {
	company, err := s.companyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrCompanyNotFound
	}
	return s.companyRepo.Delete(ctx, id)
}
