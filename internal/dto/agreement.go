package dto

import "time"

// CreateAgreementRequest carries the initial period and optional
// document of a new agreement. Both dates are mandatory.
type CreateAgreementRequest struct {
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required"`
	DocumentURL string    `json:"document_url,omitempty"`
}

// UpdateAgreementRequest represents an edit of a DRAFT agreement. The
// status field may only request PENDING_VALIDATION; every other value
// is ignored so clients cannot skip the validation step.
type UpdateAgreementRequest struct {
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	DocumentURL string     `json:"document_url,omitempty"`
	Status      string     `json:"status,omitempty"`
}

// SendMessageRequest represents a direct message to another user
type SendMessageRequest struct {
	RecipientID int64  `json:"recipient_id" binding:"required"`
	Content     string `json:"content" binding:"required"`
}
