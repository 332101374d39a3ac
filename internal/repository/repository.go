package repository

import (
	"context"

	"github.com/fokanendapascal/internship-management-app/internal/domain"
)

// Repositories return (nil, nil) when the requested row does not
// exist; services translate that into the domain's NotFound errors.

// UserRepository defines the interface for user account data access
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// StudentRepository defines the interface for student profile data access
type StudentRepository interface {
	Create(ctx context.Context, student *domain.Student) error
	GetByID(ctx context.Context, id int64) (*domain.Student, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Student, error)
	List(ctx context.Context) ([]*domain.Student, error)
	Update(ctx context.Context, student *domain.Student) error
	Delete(ctx context.Context, id int64) error
}

// TeacherRepository defines the interface for teacher profile data access
type TeacherRepository interface {
	Create(ctx context.Context, teacher *domain.Teacher) error
	GetByID(ctx context.Context, id int64) (*domain.Teacher, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Teacher, error)
	List(ctx context.Context) ([]*domain.Teacher, error)
	Update(ctx context.Context, teacher *domain.Teacher) error
	Delete(ctx context.Context, id int64) error
}

// CompanyRepository defines the interface for company profile data access
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	GetByID(ctx context.Context, id int64) (*domain.Company, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Company, error)
	List(ctx context.Context) ([]*domain.Company, error)
	Update(ctx context.Context, company *domain.Company) error
	Delete(ctx context.Context, id int64) error
}

// InternshipRepository defines the interface for internship offer data access
type InternshipRepository interface {
	Create(ctx context.Context, internship *domain.Internship) error
	GetByID(ctx context.Context, id int64) (*domain.Internship, error)
	List(ctx context.Context) ([]*domain.Internship, error)
	Update(ctx context.Context, internship *domain.Internship) error
	Delete(ctx context.Context, id int64) error
}

// ApplicationRepository defines the interface for application data access
type ApplicationRepository interface {
	Create(ctx context.Context, application *domain.Application) error
	GetByID(ctx context.Context, id int64) (*domain.Application, error)
	List(ctx context.Context) ([]*domain.Application, error)
	Update(ctx context.Context, application *domain.Application) error
	Delete(ctx context.Context, id int64) error
}

// AgreementRepository defines the interface for agreement data access.
// GetByID loads the full ownership graph (application, student,
// internship, company, validator) that the workflow's guards consult.
type AgreementRepository interface {
	Create(ctx context.Context, agreement *domain.Agreement) error
	GetByID(ctx context.Context, id int64) (*domain.Agreement, error)
	ExistsByApplication(ctx context.Context, applicationID int64) (bool, error)
	List(ctx context.Context) ([]*domain.Agreement, error)
	Update(ctx context.Context, agreement *domain.Agreement) error
	// CompareAndUpdateStatus atomically moves the agreement from one
	// status to another. Returns false when the agreement was not in
	// the expected status, leaving the row untouched.
	CompareAndUpdateStatus(ctx context.Context, id int64, from, to domain.AgreementStatus) (bool, error)
	Delete(ctx context.Context, id int64) error
}

// MessageRepository defines the interface for message data access
type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) error
	GetByID(ctx context.Context, id int64) (*domain.Message, error)
	ListConversation(ctx context.Context, userA, userB int64) ([]*domain.Message, error)
	MarkRead(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// NotificationRepository defines the interface for notification data access
type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) error
	GetByID(ctx context.Context, id int64) (*domain.Notification, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}
