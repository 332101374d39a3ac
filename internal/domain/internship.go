package domain

import "time"

// Internship represents an internship offer posted by a company.
type Internship struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	City        string    `json:"city"`
	Country     string    `json:"country"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	IsActive    bool      `json:"is_active"`
	IsPaid      bool      `json:"is_paid"`
	CompanyID   int64     `json:"company_id"`
	Company     *Company  `json:"company,omitempty"`
}

// ApplicationStatus represents the status of an internship application
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "PENDING"
	ApplicationStatusAccepted ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected ApplicationStatus = "REJECTED"
)

// IsValid checks if the status is a valid ApplicationStatus
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// String returns the string representation of ApplicationStatus
func (s ApplicationStatus) String() string {
	return string(s)
}

// Application represents a student's application to an internship.
type Application struct {
	ID              int64             `json:"id"`
	StudentID       int64             `json:"student_id"`
	Student         *Student          `json:"student,omitempty"`
	InternshipID    int64             `json:"internship_id"`
	Internship      *Internship       `json:"internship,omitempty"`
	Status          ApplicationStatus `json:"status"`
	CvURL           string            `json:"cv_url"`
	CoverLetter     string            `json:"cover_letter"`
	ApplicationDate time.Time         `json:"application_date"`
}

// IsPending checks if the application is still awaiting a decision.
func (a *Application) IsPending() bool {
	return a.Status == ApplicationStatusPending
}
