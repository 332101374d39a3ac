package service

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/fokanendapascal/internship-management-app/internal/domain"
	"github.com/fokanendapascal/internship-management-app/internal/dto"
	"github.com/fokanendapascal/internship-management-app/internal/notifier"
	"github.com/fokanendapascal/internship-management-app/internal/repository"
	"github.com/fokanendapascal/internship-management-app/internal/storage"
	"github.com/fokanendapascal/internship-management-app/pkg/telemetry"
)

// ApplicationService defines the interface for application operations
type ApplicationService interface {
	// Create submits the calling student's application, storing the
	// attached CV when one is provided.
	Create(ctx context.Context, principal *domain.Principal, req *dto.CreateApplicationRequest, cv []byte, cvName string) (*domain.Application, error)
	// CreateForStudent submits an application on behalf of a student,
	// used by administrators.
	CreateForStudent(ctx context.Context, studentID int64, req *dto.CreateApplicationRequest) (*domain.Application, error)
	// GetByID retrieves an application with its associations
	GetByID(ctx context.Context, id int64) (*domain.Application, error)
	// List retrieves all applications
	List(ctx context.Context) ([]*domain.Application, error)
	// Update revises an application's CV link and cover letter. Only
	// the owning student or an admin may update.
	Update(ctx context.Context, principal *domain.Principal, id int64, req *dto.UpdateApplicationRequest) (*domain.Application, error)
	// Decide records the offering company's accept/reject decision
	Decide(ctx context.Context, principal *domain.Principal, id int64, status domain.ApplicationStatus) (*domain.Application, error)
	// Delete removes an application
	Delete(ctx context.Context, id int64) error
}

// applicationService implements ApplicationService
type applicationService struct {
	applicationRepo repository.ApplicationRepository
	internshipRepo  repository.InternshipRepository
	studentRepo     repository.StudentRepository
	files           storage.FileStore
	notifier        notifier.Notifier
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(
	applicationRepo repository.ApplicationRepository,
	internshipRepo repository.InternshipRepository,
	studentRepo repository.StudentRepository,
	files storage.FileStore,
	notifier notifier.Notifier,
) ApplicationService {
	return &applicationService{
		applicationRepo: applicationRepo,
		internshipRepo:  internshipRepo,
		studentRepo:     studentRepo,
		files:           files,
		notifier:        notifier,
	}
}

// Create submits the calling student's application
func (s *applicationService) Create(ctx context.Context, principal *domain.Principal, req *dto.CreateApplicationRequest, cv []byte, cvName string) (*domain.Application, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.application.create")
	defer span.End()
	span.SetAttributes(attribute.Int64("internship.id", req.InternshipID))

	student, err := s.studentRepo.GetByUserID(ctx, principal.AccountID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, domain.ErrStudentNotFound
	}

	cvURL := ""
	if len(cv) > 0 {
		cvURL, err = s.files.Store(cv, cvName)
		if err != nil {
			return nil, err
		}
	}
	return s.create(ctx, student, req, cvURL)
}

// CreateForStudent submits an application on behalf of a student
func (s *applicationService) CreateForStudent(ctx context.Context, studentID int64, req *dto.CreateApplicationRequest) (*domain.Application, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.application.create_for_student")
	defer span.End()

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, domain.ErrStudentNotFound
	}
	return s.create(ctx, student, req, "")
}

func (s *applicationService) create(ctx context.Context, student *domain.Student, req *dto.CreateApplicationRequest, cvURL string) (*domain.Application, error) {
	internship, err := s.internshipRepo.GetByID(ctx, req.InternshipID)
	if err != nil {
		return nil, err
	}
	if internship == nil {
		return nil, domain.ErrInternshipNotFound
	}

	application := &domain.Application{
		StudentID:       student.ID,
		Student:         student,
		InternshipID:    internship.ID,
		Internship:      internship,
		Status:          domain.ApplicationStatusPending,
		CvURL:           cvURL,
		CoverLetter:     req.CoverLetter,
		ApplicationDate: time.Now(),
	}
	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return nil, err
	}

	if internship.Company != nil {
		s.notifier.Notify(ctx, &domain.Notification{
			Message:          fmt.Sprintf("New application received for %q", internship.Title),
			NotificationDate: time.Now(),
			RelatedURL:       fmt.Sprintf("/applications/%d", application.ID),
			UserID:           internship.Company.UserID,
		})
	}
	return application, nil
}

// GetByID retrieves an application with its associations
func (s *applicationService) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	application, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if application == nil {
		return nil, domain.ErrApplicationNotFound
	}
	return application, nil
}

// List retrieves all applications
func (s *applicationService) List(ctx context.Context) ([]*domain.Application, error) {
	return s.applicationRepo.List(ctx)
}

// Update revises an application's CV link and cover letter
func (s *applicationService) Update(ctx context.Context, principal *domain.Principal, id int64, req *dto.UpdateApplicationRequest) (*domain.Application, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.application.update")
	defer span.End()
	span.SetAttributes(attribute.Int64("application.id", id))

	application, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.canUpdate(principal, application) {
		return nil, domain.ErrForbidden
	}

	application.CvURL = req.CvURL
	application.CoverLetter = req.CoverLetter
	if err := s.applicationRepo.Update(ctx, application); err != nil {
		return nil, err
	}
	return application, nil
}

// Decide records the offering company's accept/reject decision. Only
// the company behind the internship (or an admin) may decide, and only
// while the application is still pending.
func (s *applicationService) Decide(ctx context.Context, principal *domain.Principal, id int64, status domain.ApplicationStatus) (*domain.Application, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.application.decide")
	defer span.End()
	span.SetAttributes(attribute.Int64("application.id", id))

	application, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.canDecide(principal, application) {
		return nil, domain.ErrForbidden
	}
	if !application.IsPending() {
		return nil, domain.ErrInvalidApplicationState
	}

	application.Status = status
	if err := s.applicationRepo.Update(ctx, application); err != nil {
		return nil, err
	}

	if application.Student != nil {
		s.notifier.Notify(ctx, &domain.Notification{
			Message:          fmt.Sprintf("Your application has been %s", status),
			NotificationDate: time.Now(),
			RelatedURL:       fmt.Sprintf("/applications/%d", application.ID),
			UserID:           application.Student.UserID,
		})
	}
	return application, nil
}

// Delete removes an application
func (s *applicationService) Delete(ctx context.Context, id int64) error {
	ctx, span := telemetry.StartSpan(ctx, "service.application.delete")
	defer span.End()

	application, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if application == nil {
		return domain.ErrApplicationNotFound
	}
	return s.applicationRepo.Delete(ctx, id)
}

func (s *applicationService) canUpdate(principal *domain.Principal, application *domain.Application) bool {
	if principal == nil {
		return false
	}
	if principal.HasRole(domain.RoleAdmin) {
		return true
	}
	return principal.HasRole(domain.RoleStudent) && application.StudentID == principal.AccountID
}

func (s *applicationService) canDecide(principal *domain.Principal, application *domain.Application) bool {
	if principal == nil {
		return false
	}
	if principal.HasRole(domain.RoleAdmin) {
		return true
	}
	if !principal.HasRole(domain.RoleCompany) || application.Internship == nil {
		return false
	}
	return application.Internship.CompanyID == principal.AccountID
}
