package domain

import "time"

// AgreementStatus represents the lifecycle status of an agreement
type AgreementStatus string

const (
	AgreementStatusDraft             AgreementStatus = "DRAFT"
	AgreementStatusPendingValidation AgreementStatus = "PENDING_VALIDATION"
	AgreementStatusValidated         AgreementStatus = "VALIDATED"
	AgreementStatusSentForSignature  AgreementStatus = "SENT_FOR_SIGNATURE"
	AgreementStatusSigned            AgreementStatus = "SIGNED"
	AgreementStatusCanceled          AgreementStatus = "CANCELED"
)

// IsValid checks if the status is a valid AgreementStatus
func (s AgreementStatus) IsValid() bool {
	switch s {
	case AgreementStatusDraft, AgreementStatusPendingValidation, AgreementStatusValidated,
		AgreementStatusSentForSignature, AgreementStatusSigned, AgreementStatusCanceled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s AgreementStatus) IsTerminal() bool {
	return s == AgreementStatusSigned || s == AgreementStatusCanceled
}

// String returns the string representation of AgreementStatus
func (s AgreementStatus) String() string {
	return string(s)
}

// Agreement is the internship-contract document tracked from draft to
// signature. It is bound to exactly one application for its whole life;
// the validator teacher may be unset only while the agreement is DRAFT.
type Agreement struct {
	ID            int64           `json:"id"`
	CreationDate  time.Time       `json:"creation_date"`
	StartDate     time.Time       `json:"start_date"`
	EndDate       time.Time       `json:"end_date"`
	Status        AgreementStatus `json:"status"`
	DocumentURL   string          `json:"document_url"`
	ApplicationID int64           `json:"application_id"`
	Application   *Application    `json:"application,omitempty"`
	ValidatorID   int64           `json:"validator_id"`
	Validator     *Teacher        `json:"validator,omitempty"`
}

// IsDraft checks if the agreement is still editable.
func (a *Agreement) IsDraft() bool {
	return a.Status == AgreementStatusDraft
}

// CanUpdate checks if the agreement accepts generic field updates.
// Only DRAFT agreements are mutable through the generic update path.
func (a *Agreement) CanUpdate() bool {
	return a.Status == AgreementStatusDraft
}

// CanValidate checks if the agreement is awaiting teacher validation.
func (a *Agreement) CanValidate() bool {
	return a.Status == AgreementStatusPendingValidation
}

// SubmitForValidation moves a DRAFT agreement to PENDING_VALIDATION.
func (a *Agreement) SubmitForValidation() error {
	if a.Status != AgreementStatusDraft {
		return ErrInvalidAgreementState
	}
	a.Status = AgreementStatusPendingValidation
	return nil
}

// Validate marks the agreement as validated by its assigned teacher.
func (a *Agreement) Validate() error {
	if !a.CanValidate() {
		return ErrInvalidAgreementState
	}
	a.Status = AgreementStatusValidated
	return nil
}

// SendForSignature moves a VALIDATED agreement out for signature.
func (a *Agreement) SendForSignature() error {
	if a.Status != AgreementStatusValidated {
		return ErrInvalidAgreementState
	}
	a.Status = AgreementStatusSentForSignature
	return nil
}

// Sign marks the agreement as signed by all parties. Terminal.
func (a *Agreement) Sign() error {
	if a.Status != AgreementStatusSentForSignature {
		return ErrInvalidAgreementState
	}
	a.Status = AgreementStatusSigned
	return nil
}

// Cancel aborts the agreement from any non-terminal status. Terminal.
func (a *Agreement) Cancel() error {
	if a.Status.IsTerminal() {
		return ErrInvalidAgreementState
	}
	a.Status = AgreementStatusCanceled
	return nil
}
