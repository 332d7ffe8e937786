package service

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/Nattie-Nkosi/certsim/internal/dto"
	"github.com/Nattie-Nkosi/certsim/internal/model"
	"github.com/Nattie-Nkosi/certsim/internal/repository"
)

func newTestAdminExamService(t *testing.T) (AdminExamService, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	svc := NewAdminExamService(
		repository.NewCertificationRepository(db),
		repository.NewExamRepository(db),
		repository.NewQuestionRepository(db),
	)
	return svc, db
}

func questionOrder(t *testing.T, db *gorm.DB, examID, questionID uint) int {
	t.Helper()
	var link model.ExamQuestion
	err := db.Where("exam_id = ? AND question_id = ?", examID, questionID).First(&link).Error
	if err != nil {
		t.Fatalf("loading exam question link: %v", err)
	}
	return link.Order
}

func TestReorderQuestion_MovesWithoutFreeingSlot(t *testing.T) {
	svc, db := newTestAdminExamService(t)
	exam, questions := seedExam(t, db, 2, 30, 70)

	// Move the first question to an open slot.
	if err := svc.ReorderQuestion(exam.ID, questions[0].ID, 5); err != nil {
		t.Fatalf("reorder to free slot: %v", err)
	}
	if got := questionOrder(t, db, exam.ID, questions[0].ID); got != 5 {
		t.Fatalf("order not persisted: got %d, want 5", got)
	}

	// Moving onto an occupied slot is a conflict, and the loser keeps its
	// position.
	if err := svc.ReorderQuestion(exam.ID, questions[1].ID, 5); !errors.Is(err, ErrOrderTaken) {
		t.Fatalf("reorder to occupied slot: got %v, want ErrOrderTaken", err)
	}
	if got := questionOrder(t, db, exam.ID, questions[1].ID); got != 2 {
		t.Fatalf("failed reorder moved the question: got order %d, want 2", got)
	}

	// Re-asserting the current slot is a no-op, not a self-conflict.
	if err := svc.ReorderQuestion(exam.ID, questions[0].ID, 5); err != nil {
		t.Fatalf("reorder to own slot: %v", err)
	}
}

func TestReorderQuestion_RequiresAttachment(t *testing.T) {
	svc, db := newTestAdminExamService(t)
	exam, questions := seedExam(t, db, 1, 30, 70)

	loose := model.Question{
		CertificationID: exam.CertificationID,
		Text:            "Unattached question",
		Type:            model.QuestionSingleChoice,
		Answers: []model.Answer{
			{Text: "right", IsCorrect: true},
			{Text: "wrong"},
		},
	}
	if err := db.Create(&loose).Error; err != nil {
		t.Fatalf("seed loose question: %v", err)
	}

	if err := svc.ReorderQuestion(exam.ID, loose.ID, 2); !errors.Is(err, ErrQuestionNotAttached) {
		t.Fatalf("unattached question: got %v, want ErrQuestionNotAttached", err)
	}
	if err := svc.ReorderQuestion(9999, questions[0].ID, 2); !errors.Is(err, ErrExamNotFound) {
		t.Fatalf("missing exam: got %v, want ErrExamNotFound", err)
	}
}

func TestAttachQuestion_Conflicts(t *testing.T) {
	svc, db := newTestAdminExamService(t)
	exam, questions := seedExam(t, db, 2, 30, 70)

	// Same question twice.
	err := svc.AttachQuestion(exam.ID, dto.AttachQuestionDTO{QuestionID: questions[0].ID, Order: 9})
	if !errors.Is(err, ErrQuestionAttached) {
		t.Fatalf("re-attach: got %v, want ErrQuestionAttached", err)
	}

	// New question onto an occupied slot.
	extra := model.Question{
		CertificationID: exam.CertificationID,
		Text:            "Extra question",
		Type:            model.QuestionSingleChoice,
		Answers: []model.Answer{
			{Text: "right", IsCorrect: true},
			{Text: "wrong"},
		},
	}
	if err := db.Create(&extra).Error; err != nil {
		t.Fatalf("seed extra question: %v", err)
	}
	err = svc.AttachQuestion(exam.ID, dto.AttachQuestionDTO{QuestionID: extra.ID, Order: 1})
	if !errors.Is(err, ErrOrderTaken) {
		t.Fatalf("occupied order: got %v, want ErrOrderTaken", err)
	}

	// A free slot works.
	if err := svc.AttachQuestion(exam.ID, dto.AttachQuestionDTO{QuestionID: extra.ID, Order: 3}); err != nil {
		t.Fatalf("attach to free slot: %v", err)
	}
}
