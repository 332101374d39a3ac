package dto

import "time"

// CreateInternshipRequest represents a new internship offer
type CreateInternshipRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description,omitempty"`
	City        string    `json:"city,omitempty"`
	Country     string    `json:"country,omitempty"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required"`
	IsActive    *bool     `json:"is_active,omitempty"`
	IsPaid      bool      `json:"is_paid,omitempty"`
	CompanyID   int64     `json:"company_id" binding:"required"`
}

// UpdateInternshipRequest represents an internship offer update
type UpdateInternshipRequest struct {
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	City        string     `json:"city,omitempty"`
	Country     string     `json:"country,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	IsActive    *bool      `json:"is_active,omitempty"`
	IsPaid      *bool      `json:"is_paid,omitempty"`
}

// CreateApplicationRequest represents a student applying to an internship
type CreateApplicationRequest struct {
	InternshipID int64  `json:"internship_id" binding:"required"`
	CoverLetter  string `json:"cover_letter,omitempty"`
}

// UpdateApplicationRequest represents the owning student revising an
// application's CV link and cover letter.
type UpdateApplicationRequest struct {
	CvURL       string `json:"cv_url" binding:"required"`
	CoverLetter string `json:"cover_letter" binding:"required"`
}

// DecideApplicationRequest represents a company's decision on an application
type DecideApplicationRequest struct {
	Status string `json:"status" binding:"required"`
}
