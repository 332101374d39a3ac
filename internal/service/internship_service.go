package service

import (
	"context"

	"github.com/fokanendapascal/internship-management-app/internal/domain"
	"github.com/fokanendapascal/internship-management-app/internal/dto"
	"github.com/fokanendapascal/internship-management-app/internal/repository"
	"github.com/fokanendapascal/internship-management-app/pkg/telemetry"
)

// InternshipService defines the interface for internship offer operations
type InternshipService interface {
	Create(ctx context.Context, req *dto.CreateInternshipRequest) (*domain.Internship, error)
	GetByID(ctx context.Context, id int64) (*domain.Internship, error)
	List(ctx context.Context) ([]*domain.Internship, error)
	Update(ctx context.Context, principal *domain.Principal, id int64, req *dto.UpdateInternshipRequest) (*domain.Internship, error)
	Delete(ctx context.Context, principal *domain.Principal, id int64) error
}

// internshipService implements InternshipService
type internshipService struct {
	internshipRepo repository.InternshipRepository
	companyRepo    repository.CompanyRepository
}

// NewInternshipService creates a new InternshipService
func NewInternshipService(internshipRepo repository.InternshipRepository, companyRepo repository.CompanyRepository) InternshipService {
	return &internshipService{internshipRepo: internshipRepo, companyRepo: companyRepo}
}

// Create creates a new internship offer
func (s *internshipService) Create(ctx context.Context, req *dto.CreateInternshipRequest) (*domain.Internship, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.internship.create")
	defer span.End()

	company, err := s.companyRepo.GetByID(ctx, req.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}

	internship := &domain.Internship{
		Title:       req.Title,
		Description: req.Description,
		City:        req.City,
		Country:     req.Country,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsActive:    true,
		IsPaid:      req.IsPaid,
		CompanyID:   req.CompanyID,
		Company:     company,
	}
	if req.IsActive != nil {
		internship.IsActive = *req.IsActive
	}
	if err := s.internshipRepo.Create(ctx, internship); err != nil {
		return nil, err
	}
	return internship, nil
}

// GetByID retrieves an internship offer by ID
func (s *internshipService) GetByID(ctx context.Context, id int64) (*domain.Internship, error) {
	internship, err := s.internshipRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if internship == nil {
		return nil, domain.ErrInternshipNotFound
	}
	return internship, nil
}

// List retrieves all internship offers
func (s *internshipService) List(ctx context.Context) ([]*domain.Internship, error) {
	return s.internshipRepo.List(ctx)
}

// Update updates an internship offer. Companies may only edit their own
// offers; admins may edit any.
func (s *internshipService) Update(ctx context.Context, principal *domain.Principal, id int64, req *dto.UpdateInternshipRequest) (*domain.Internship, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.internship.update")
	defer span.End()

	internship, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.canManage(principal, internship) {
		return nil, domain.ErrForbidden
	}

	if req.Title != "" {
		internship.Title = req.Title
	}
	if req.Description != "" {
		internship.Description = req.Description
	}
	if req.City != "" {
		internship.City = req.City
	}
	if req.Country != "" {
		internship.Country = req.Country
	}
	if req.StartDate != nil {
		internship.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		internship.EndDate = *req.EndDate
	}
	if req.IsActive != nil {
		internship.IsActive = *req.IsActive
	}
	if req.IsPaid != nil {
		internship.IsPaid = *req.IsPaid
	}

	if err := s.internshipRepo.Update(ctx, internship); err != nil {
		return nil, err
	}
	return internship, nil
}

// Delete removes an internship offer, with the same ownership rule as Update
func (s *internshipService) Delete(ctx context.Context, principal *domain.Principal, id int64) error {
	ctx, span := telemetry.StartSpan(ctx, "service.internship.delete")
	defer span.End()

	internship, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !s.canManage(principal, internship) {
		return domain.ErrForbidden
	}
	return s.internshipRepo.Delete(ctx, id)
}

func (s *internshipService) canManage(principal *domain.Principal, internship *domain.Internship) bool {
	if principal == nil {
		return false
	}
	if principal.HasRole(domain.RoleAdmin) {
		return true
	}
	return principal.HasRole(domain.RoleCompany) && internship.CompanyID == principal.AccountID
}
