package service

import (
	"errors"
	"testing"
	"time"

	"github.com/Nattie-Nkosi/certsim/internal/dto"
	"github.com/Nattie-Nkosi/certsim/internal/model"
	"github.com/Nattie-Nkosi/certsim/internal/repository"
)

// brokenAuditRepo fails every operation, standing in for an unavailable
// audit store.
type brokenAuditRepo struct{}

func (brokenAuditRepo) Create(*model.AuditLog) error {
	return errors.New("audit store unavailable")
}

func (brokenAuditRepo) FindPage(string, *uint, int, int) ([]model.AuditLog, error) {
	return nil, errors.New("audit store unavailable")
}

func (brokenAuditRepo) DeleteOlderThan(time.Time) (int64, error) {
	return 0, errors.New("audit store unavailable")
}

func TestAuditFailuresNeverBlockOperations(t *testing.T) {
	db := openTestDB(t)
	audit := NewAuditService(brokenAuditRepo{})
	svc := NewAttemptService(
		repository.NewExamRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewExamAttemptRepository(db),
		audit,
	)
	taker := seedUser(t, db, "taker@example.com")
	exam, questions := seedExam(t, db, 2, 30, 70)

	started, err := svc.StartAttempt(exam.ID, taker, model.ModeExam, ClientMeta{})
	if err != nil {
		t.Fatalf("start with broken audit store: %v", err)
	}
	if _, err := svc.RecordTabSwitch(started.AttemptID, taker); err != nil {
		t.Fatalf("tab switch with broken audit store: %v", err)
	}
	result, err := svc.SubmitAttempt(exam.ID, answerSheet(questions, 2), taker, ClientMeta{})
	if err != nil {
		t.Fatalf("submit with broken audit store: %v", err)
	}
	if result.Score != 100 || !result.Passed {
		t.Fatalf("grading altered by audit failure: score=%.1f passed=%t", result.Score, result.Passed)
	}
	if err := svc.DeleteAttempt(result.AttemptID, taker); err != nil {
		t.Fatalf("delete with broken audit store: %v", err)
	}

	// Retention purge against the broken store must not panic; it logs and
	// moves on.
	audit.PurgeExpired(30)
}

func TestAuditFailuresNeverBlockRegistration(t *testing.T) {
	db := openTestDB(t)
	svc := NewAuthService(
		repository.NewUserRepository(db),
		testTokenService(),
		NewAuditService(brokenAuditRepo{}),
	)

	resp, err := svc.Register(dto.RegisterRequest{
		Email:    "taker@example.com",
		Name:     "Taker",
		Password: "super-secret-1",
	}, ClientMeta{})
	if err != nil {
		t.Fatalf("register with broken audit store: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("registration returned no token")
	}
}
