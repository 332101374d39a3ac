package domain

import "errors"

// Domain errors
var (
	// Authentication / authorization errors
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("access denied")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Account errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")

	// Profile errors
	ErrStudentNotFound = errors.New("student not found")
	ErrTeacherNotFound = errors.New("teacher not found")
	ErrCompanyNotFound = errors.New("company not found")

	// Internship / application errors
	ErrInternshipNotFound      = errors.New("internship not found")
	ErrApplicationNotFound     = errors.New("application not found")
	ErrInvalidApplicationState = errors.New("application already decided")

	// Agreement errors
	ErrAgreementNotFound      = errors.New("agreement not found")
	ErrInvalidAgreementState  = errors.New("invalid agreement state for this operation")
	ErrAgreementAlreadyExists = errors.New("agreement already exists for this application")

	// Messaging errors
	ErrMessageNotFound      = errors.New("message not found")
	ErrNotificationNotFound = errors.New("notification not found")
)
