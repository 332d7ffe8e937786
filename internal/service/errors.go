package service

import "errors"

var (
	// ErrUnauthorized covers both a missing principal and access to an
	// attempt owned by someone else. Deliberately not a not-found: the
	// access-control check is distinct from existence.
	ErrUnauthorized = errors.New("unauthorized")

	ErrExamNotFound        = errors.New("exam not found")
	ErrExamInactive        = errors.New("exam is not active")
	ErrExamEmpty           = errors.New("exam has no questions")
	ErrAttemptNotFound     = errors.New("attempt not found")
	ErrAttemptCompleted    = errors.New("attempt already completed")
	ErrWrongMode           = errors.New("operation only available in practice mode")
	ErrQuestionNotFound    = errors.New("question not found")
	ErrCertNotFound        = errors.New("certification not found")
	ErrOrderTaken          = errors.New("question order already used in this exam")
	ErrQuestionAttached    = errors.New("question already attached to this exam")
	ErrQuestionNotAttached = errors.New("question not attached to this exam")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid or expired token")
)
