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
	"github.com/fokanendapascal/internship-management-app/internal/security"
	"github.com/fokanendapascal/internship-management-app/pkg/telemetry"
)

// AgreementService drives the agreement lifecycle: creation in DRAFT,
// owner edits, submission for validation and the assigned teacher's
// validation decision.
type AgreementService interface {
	// CreateAsTeacher creates a DRAFT agreement for an application with
	// the calling teacher as its validator.
	CreateAsTeacher(ctx context.Context, principal *domain.Principal, applicationID int64, req *dto.CreateAgreementRequest) (*domain.Agreement, error)
	// CreateAsAdmin creates a DRAFT agreement for an application with an
	// explicitly chosen validator teacher.
	CreateAsAdmin(ctx context.Context, applicationID, teacherID int64, req *dto.CreateAgreementRequest) (*domain.Agreement, error)
	// GetByID retrieves an agreement with its full ownership graph
	GetByID(ctx context.Context, id int64) (*domain.Agreement, error)
	// List retrieves all agreements
	List(ctx context.Context) ([]*domain.Agreement, error)
	// Update edits a DRAFT agreement, optionally submitting it for
	// validation. Students and companies must own the agreement;
	// teachers and admins may edit any DRAFT agreement.
	Update(ctx context.Context, principal *domain.Principal, id int64, req *dto.UpdateAgreementRequest) (*domain.Agreement, error)
	// Validate records the assigned teacher's validation decision
	Validate(ctx context.Context, principal *domain.Principal, id int64) (*domain.Agreement, error)
	// Delete removes an agreement regardless of its status
	Delete(ctx context.Context, id int64) error
}

// agreementService implements AgreementService
type agreementService struct {
	agreementRepo   repository.AgreementRepository
	applicationRepo repository.ApplicationRepository
	teacherRepo     repository.TeacherRepository
	notifier        notifier.Notifier
}

// NewAgreementService creates a new AgreementService
func NewAgreementService(
	agreementRepo repository.AgreementRepository,
	applicationRepo repository.ApplicationRepository,
	teacherRepo repository.TeacherRepository,
	notifier notifier.Notifier,
) AgreementService {
	return &agreementService{
		agreementRepo:   agreementRepo,
		applicationRepo: applicationRepo,
		teacherRepo:     teacherRepo,
		notifier:        notifier,
	}
}

// CreateAsTeacher creates a DRAFT agreement with the caller as validator
func (s *agreementService) CreateAsTeacher(ctx context.Context, principal *domain.Principal, applicationID int64, req *dto.CreateAgreementRequest) (*domain.Agreement, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.agreement.create")
	defer span.End()

	validator, err := s.teacherRepo.GetByID(ctx, principal.AccountID)
	if err != nil {
		return nil, err
	}
	if validator == nil {
		return nil, domain.ErrTeacherNotFound
	}
	return s.create(ctx, applicationID, validator, req)
}

// CreateAsAdmin creates a DRAFT agreement with an explicit validator
func (s *agreementService) CreateAsAdmin(ctx context.Context, applicationID, teacherID int64, req *dto.CreateAgreementRequest) (*domain.Agreement, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.agreement.create_admin")
	defer span.End()

	validator, err := s.teacherRepo.GetByID(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	if validator == nil {
		return nil, domain.ErrTeacherNotFound
	}
	return s.create(ctx, applicationID, validator, req)
}

func (s *agreementService) create(ctx context.Context, applicationID int64, validator *domain.Teacher, req *dto.CreateAgreementRequest) (*domain.Agreement, error) {
	application, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if application == nil {
		return nil, domain.ErrApplicationNotFound
	}

	exists, err := s.agreementRepo.ExistsByApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAgreementAlreadyExists
	}

	// New agreements always start in DRAFT; a status carried in the
	// payload is ignored.
	agreement := &domain.Agreement{
		CreationDate:  time.Now(),
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		DocumentURL:   req.DocumentURL,
		Status:        domain.AgreementStatusDraft,
		ApplicationID: applicationID,
		Application:   application,
		ValidatorID:   validator.ID,
		Validator:     validator,
	}

	if err := s.agreementRepo.Create(ctx, agreement); err != nil {
		return nil, err
	}

	if application.Student != nil {
		s.notifier.Notify(ctx, &domain.Notification{
			Message:          "An internship agreement has been created for your application",
			NotificationDate: time.Now(),
			RelatedURL:       fmt.Sprintf("/agreements/%d", agreement.ID),
			UserID:           application.Student.UserID,
		})
	}
	return agreement, nil
}

// GetByID retrieves an agreement with its full ownership graph
func (s *agreementService) GetByID(ctx context.Context, id int64) (*domain.Agreement, error) {
	agreement, err := s.agreementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if agreement == nil {
		return nil, domain.ErrAgreementNotFound
	}
	return agreement, nil
}

// List retrieves all agreements
func (s *agreementService) List(ctx context.Context) ([]*domain.Agreement, error) {
	return s.agreementRepo.List(ctx)
}

// Update edits a DRAFT agreement. Students and companies may only edit
// agreements they own; teachers and admins may edit any DRAFT
// agreement. The request's status field is honored only when it asks
// for PENDING_VALIDATION; any other value is silently ignored so
// clients cannot bypass the validation step.
func (s *agreementService) Update(ctx context.Context, principal *domain.Principal, id int64, req *dto.UpdateAgreementRequest) (*domain.Agreement, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.agreement.update")
	defer span.End()
	span.SetAttributes(attribute.Int64("agreement.id", id))

	agreement, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// State is checked before ownership so a non-owner probing a
	// submitted agreement learns the same thing an owner would.
	if !agreement.CanUpdate() {
		return nil, domain.ErrInvalidAgreementState
	}
	if principal.HasRole(domain.RoleStudent) && !security.IsOwningStudent(principal, agreement) {
		return nil, domain.ErrForbidden
	}
	if principal.HasRole(domain.RoleCompany) && !security.IsOwningCompany(principal, agreement) {
		return nil, domain.ErrForbidden
	}

	if req.StartDate != nil {
		agreement.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		agreement.EndDate = *req.EndDate
	}
	if req.DocumentURL != "" {
		agreement.DocumentURL = req.DocumentURL
	}
	submitted := false
	if domain.AgreementStatus(req.Status) == domain.AgreementStatusPendingValidation {
		if err := agreement.SubmitForValidation(); err != nil {
			return nil, err
		}
		submitted = true
	}

	if err := s.agreementRepo.Update(ctx, agreement); err != nil {
		return nil, err
	}

	if submitted && agreement.Validator != nil {
		s.notifier.Notify(ctx, &domain.Notification{
			Message:          "An agreement is awaiting your validation",
			NotificationDate: time.Now(),
			RelatedURL:       fmt.Sprintf("/agreements/%d", agreement.ID),
			UserID:           agreement.Validator.UserID,
		})
	}
	return agreement, nil
}

// Validate records the assigned teacher's validation decision. The
// status flip is a compare-and-set so two concurrent validations of the
// same agreement cannot both succeed.
func (s *agreementService) Validate(ctx context.Context, principal *domain.Principal, id int64) (*domain.Agreement, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.agreement.validate")
	defer span.End()
	span.SetAttributes(attribute.Int64("agreement.id", id))

	agreement, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !security.IsAssignedValidator(principal, agreement) {
		return nil, domain.ErrForbidden
	}
	if !agreement.CanValidate() {
		return nil, domain.ErrInvalidAgreementState
	}

	ok, err := s.agreementRepo.CompareAndUpdateStatus(ctx, id,
		domain.AgreementStatusPendingValidation, domain.AgreementStatusValidated)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidAgreementState
	}
	agreement.Status = domain.AgreementStatusValidated

	if agreement.Application != nil && agreement.Application.Student != nil {
		s.notifier.Notify(ctx, &domain.Notification{
			Message:          "Your internship agreement has been validated",
			NotificationDate: time.Now(),
			RelatedURL:       fmt.Sprintf("/agreements/%d", agreement.ID),
			UserID:           agreement.Application.Student.UserID,
		})
	}
	return agreement, nil
}

// Delete removes an agreement regardless of its status
func (s *agreementService) Delete(ctx context.Context, id int64) error {
	ctx, span := telemetry.StartSpan(ctx, "service.agreement.delete")
	defer span.End()

	agreement, err := s.agreementRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if agreement == nil {
		return domain.ErrAgreementNotFound
	}
	return s.agreementRepo.Delete(ctx, id)
}
