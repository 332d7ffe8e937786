package service

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"gorm.io/gorm"

	"github.com/Nattie-Nkosi/certsim/internal/model"
	"github.com/Nattie-Nkosi/certsim/internal/repository"
)

func newTestCatalogService(t *testing.T) (CatalogService, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	svc := NewCatalogService(
		repository.NewCertificationRepository(db),
		repository.NewExamRepository(db),
	)
	return svc, db
}

func TestGetExamForTaking_NeverLeaksCorrectness(t *testing.T) {
	svc, db := newTestCatalogService(t)
	exam, questions := seedExam(t, db, 3, 30, 70)

	detail, err := svc.GetExamForTaking(exam.ID)
	if err != nil {
		t.Fatalf("get exam: %v", err)
	}
	if len(detail.Questions) != 3 {
		t.Fatalf("got %d questions, want 3", len(detail.Questions))
	}
	for i, q := range detail.Questions {
		if q.Order != i+1 {
			t.Fatalf("question %d out of order: got order %d", i, q.Order)
		}
		if len(q.Answers) != 4 {
			t.Fatalf("question %d: got %d answers, want 4", i, len(q.Answers))
		}
	}

	// Every seeded question has a known correct answer; the serialized
	// taker view must not carry the correctness bit in any shape.
	if len(questions[0].CorrectAnswerIDs()) == 0 {
		t.Fatalf("seed broken: no correct answers to leak")
	}
	encoded, err := json.Marshal(detail)
	if err != nil {
		t.Fatalf("marshal detail: %v", err)
	}
	body := string(encoded)
	for _, marker := range []string{"is_correct", "isCorrect", "IsCorrect", "correct_answer"} {
		if strings.Contains(body, marker) {
			t.Fatalf("taker exam view leaks correctness marker %q: %s", marker, body)
		}
	}
}

func TestGetExamForTaking_InactiveAndMissing(t *testing.T) {
	svc, db := newTestCatalogService(t)
	exam, _ := seedExam(t, db, 1, 30, 70)

	if err := db.Model(&model.Exam{}).Where("id = ?", exam.ID).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if _, err := svc.GetExamForTaking(exam.ID); !errors.Is(err, ErrExamInactive) {
		t.Fatalf("inactive exam: got %v, want ErrExamInactive", err)
	}
	if _, err := svc.GetExamForTaking(9999); !errors.Is(err, ErrExamNotFound) {
		t.Fatalf("missing exam: got %v, want ErrExamNotFound", err)
	}
}

func TestListExams_FiltersInactive(t *testing.T) {
	svc, db := newTestCatalogService(t)
	exam, _ := seedExam(t, db, 2, 30, 70)

	hidden := model.Exam{
		CertificationID: exam.CertificationID,
		Name:            "Retired Exam",
		Duration:        30,
		PassingScore:    70,
		IsActive:        false,
	}
	if err := db.Create(&hidden).Error; err != nil {
		t.Fatalf("seed inactive exam: %v", err)
	}

	exams, err := svc.ListExams(exam.CertificationID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(exams) != 1 {
		t.Fatalf("got %d exams, want 1 (inactive filtered)", len(exams))
	}
	if exams[0].ID != exam.ID || exams[0].QuestionCount != 2 {
		t.Fatalf("unexpected listing: %+v", exams[0])
	}

	if _, err := svc.ListExams(9999); !errors.Is(err, ErrCertNotFound) {
		t.Fatalf("missing certification: got %v, want ErrCertNotFound", err)
	}
}

func TestListCertifications_CountsExams(t *testing.T) {
	svc, db := newTestCatalogService(t)
	exam, _ := seedExam(t, db, 1, 30, 70)

	certs, err := svc.ListCertifications()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(certs) != 1 {
		t.Fatalf("got %d certifications, want 1", len(certs))
	}
	if certs[0].ID != exam.CertificationID || certs[0].ExamCount != 1 {
		t.Fatalf("unexpected summary: %+v", certs[0])
	}
}
