package domain

import (
	"errors"
	"testing"
)

func TestAgreementHappyPath(t *testing.T) {
	a := &Agreement{Status: AgreementStatusDraft}

	steps := []struct {
		name string
		do   func() error
		want AgreementStatus
	}{
		{"submit", a.SubmitForValidation, AgreementStatusPendingValidation},
		{"validate", a.Validate, AgreementStatusValidated},
		{"send", a.SendForSignature, AgreementStatusSentForSignature},
		{"sign", a.Sign, AgreementStatusSigned},
	}
	for _, s := range steps {
		if err := s.do(); err != nil {
			t.Fatalf("%s: %v", s.name, err)
		}
		if a.Status != s.want {
			t.Fatalf("%s: status %s, want %s", s.name, a.Status, s.want)
		}
	}
	if !a.Status.IsTerminal() {
		t.Error("SIGNED must be terminal")
	}
}

func TestAgreementRejectsOutOfOrderTransitions(t *testing.T) {
	cases := []struct {
		name string
		from AgreementStatus
		do   func(*Agreement) error
	}{
		{"validate draft", AgreementStatusDraft, (*Agreement).Validate},
		{"submit twice", AgreementStatusPendingValidation, (*Agreement).SubmitForValidation},
		{"sign before send", AgreementStatusValidated, (*Agreement).Sign},
		{"send unvalidated", AgreementStatusPendingValidation, (*Agreement).SendForSignature},
		{"validate signed", AgreementStatusSigned, (*Agreement).Validate},
	}
	for _, tc := range cases {
		a := &Agreement{Status: tc.from}
		if err := tc.do(a); !errors.Is(err, ErrInvalidAgreementState) {
			t.Errorf("%s: expected ErrInvalidAgreementState, got %v", tc.name, err)
		}
		if a.Status != tc.from {
			t.Errorf("%s: status mutated to %s on rejected transition", tc.name, a.Status)
		}
	}
}

func TestAgreementCancel(t *testing.T) {
	for _, from := range []AgreementStatus{
		AgreementStatusDraft,
		AgreementStatusPendingValidation,
		AgreementStatusValidated,
		AgreementStatusSentForSignature,
	} {
		a := &Agreement{Status: from}
		if err := a.Cancel(); err != nil {
			t.Errorf("cancel from %s: %v", from, err)
		}
		if a.Status != AgreementStatusCanceled {
			t.Errorf("cancel from %s: status %s", from, a.Status)
		}
	}

	for _, from := range []AgreementStatus{AgreementStatusSigned, AgreementStatusCanceled} {
		a := &Agreement{Status: from}
		if err := a.Cancel(); !errors.Is(err, ErrInvalidAgreementState) {
			t.Errorf("cancel from terminal %s: expected ErrInvalidAgreementState, got %v", from, err)
		}
	}
}

func TestAgreementCanUpdate(t *testing.T) {
	if !(&Agreement{Status: AgreementStatusDraft}).CanUpdate() {
		t.Error("DRAFT must be updatable")
	}
	for _, s := range []AgreementStatus{
		AgreementStatusPendingValidation,
		AgreementStatusValidated,
		AgreementStatusSentForSignature,
		AgreementStatusSigned,
		AgreementStatusCanceled,
	} {
		if (&Agreement{Status: s}).CanUpdate() {
			t.Errorf("%s must not be updatable", s)
		}
	}
}

func TestAgreementStatusIsValid(t *testing.T) {
	for _, s := range []AgreementStatus{
		AgreementStatusDraft, AgreementStatusPendingValidation, AgreementStatusValidated,
		AgreementStatusSentForSignature, AgreementStatusSigned, AgreementStatusCanceled,
	} {
		if !s.IsValid() {
			t.Errorf("%s reported invalid", s)
		}
	}
	if AgreementStatus("ARCHIVED").IsValid() {
		t.Error("unknown status reported valid")
	}
}
