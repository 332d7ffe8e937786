package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Nattie-Nkosi/certsim/database"
	"github.com/Nattie-Nkosi/certsim/internal/dto"
	"github.com/Nattie-Nkosi/certsim/internal/model"
	"github.com/Nattie-Nkosi/certsim/internal/repository"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrating schema: %v", err)
	}
	return db
}

func newTestAttemptService(t *testing.T) (AttemptService, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	audit := NewAuditService(repository.NewAuditLogRepository(db))
	svc := NewAttemptService(
		repository.NewExamRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewExamAttemptRepository(db),
		audit,
	)
	return svc, db
}

func seedUser(t *testing.T, db *gorm.DB, email string) Principal {
	t.Helper()
	user := model.User{Email: email, Name: "Test Taker", PasswordHash: "x", Role: model.RoleUser}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seeding user: %v", err)
	}
	return Principal{ID: user.ID, Email: user.Email, Role: user.Role}
}

// seedExam creates a certification, questionCount single-choice questions (four
// answers each, the first one correct), and an exam referencing them in order.
func seedExam(t *testing.T, db *gorm.DB, questionCount, duration int, passingScore float64) (*model.Exam, []model.Question) {
	t.Helper()

	cert := model.Certification{Name: fmt.Sprintf("Cert %s", t.Name()), Vendor: "CompTIA"}
	if err := db.Create(&cert).Error; err != nil {
		t.Fatalf("seeding certification: %v", err)
	}

	exam := model.Exam{
		CertificationID: cert.ID,
		Name:            "Practice Exam 1",
		Duration:        duration,
		PassingScore:    passingScore,
		IsActive:        true,
	}
	if err := db.Create(&exam).Error; err != nil {
		t.Fatalf("seeding exam: %v", err)
	}

	questions := make([]model.Question, 0, questionCount)
	for i := 0; i < questionCount; i++ {
		q := model.Question{
			CertificationID: cert.ID,
			Text:            fmt.Sprintf("Question %d", i+1),
			Type:            model.QuestionSingleChoice,
			Answers: []model.Answer{
				{Text: "right", IsCorrect: true},
				{Text: "wrong A"},
				{Text: "wrong B"},
				{Text: "wrong C"},
			},
		}
		if err := db.Create(&q).Error; err != nil {
			t.Fatalf("seeding question %d: %v", i, err)
		}
		link := model.ExamQuestion{ExamID: exam.ID, QuestionID: q.ID, Order: i + 1}
		if err := db.Create(&link).Error; err != nil {
			t.Fatalf("attaching question %d: %v", i, err)
		}
		questions = append(questions, q)
	}
	return &exam, questions
}

// answerSheet builds a submission answering the first correctCount questions
// correctly and the rest with a wrong answer.
func answerSheet(questions []model.Question, correctCount int) map[string]dto.AnswerSelection {
	answers := make(map[string]dto.AnswerSelection, len(questions))
	for i, q := range questions {
		key := fmt.Sprint(q.ID)
		if i < correctCount {
			answers[key] = dto.AnswerSelection{IDs: []uint{q.Answers[0].ID}}
		} else {
			answers[key] = dto.AnswerSelection{IDs: []uint{q.Answers[1].ID}}
		}
	}
	return answers
}

func backdateStart(t *testing.T, db *gorm.DB, attemptID uint, by time.Duration) {
	t.Helper()
	err := db.Model(&model.ExamAttempt{}).
		Where("id = ?", attemptID).
		Update("server_start_time", time.Now().Add(-by)).Error
	if err != nil {
		t.Fatalf("backdating attempt %d: %v", attemptID, err)
	}
}

func TestStartAttempt_ResumeKeepsIdentity(t *testing.T) {
	svc, db := newTestAttemptService(t)
	taker := seedUser(t, db, "taker@example.com")
	exam, _ := seedExam(t, db, 3, 30, 70)

	first, err := svc.StartAttempt(exam.ID, taker, model.ModeExam, ClientMeta{IPAddress: "10.0.0.1"})
	if err != nil {
		t.Fatalf("first start: %v", err)
	}
	if first.Resuming {
		t.Fatalf("first start must not report resuming")
	}

	second, err := svc.StartAttempt(exam.ID, taker, model.ModeExam, ClientMeta{})
	if err != nil {
		t.Fatalf("second start: %v", err)
	}
	if !second.Resuming {
		t.Fatalf("second start must resume the open attempt")
	}
	if second.AttemptID != first.AttemptID {
		t.Fatalf("resume changed attempt identity: %d vs %d", second.AttemptID, first.AttemptID)
	}
	if drift := second.ServerStartTime.Sub(first.ServerStartTime); drift < -time.Second || drift > time.Second {
		t.Fatalf("resume reset the server start time: drift %v", drift)
	}
}

func TestStartAttempt_ModesAreIndependent(t *testing.T) {
	svc, db := newTestAttemptService(t)
	taker := seedUser(t, db, "taker@example.com")
	exam, _ := seedExam(t, db, 3, 30, 70)

	examRun, err := svc.StartAttempt(exam.ID, taker, model.ModeExam, ClientMeta{})
	if err != nil {
		t.Fatalf("start exam mode: %v", err)
	}
	practiceRun, err := svc.StartAttempt(exam.ID, taker, model.ModePractice, ClientMeta{})
	if err != nil {
		t.Fatalf("start practice mode: %v", err)
	}
	if practiceRun.Resuming {
		t.Fatalf("practice start must not resume the exam-mode attempt")
	}
	if practiceRun.AttemptID == examRun.AttemptID {
		t.Fatalf("exam and practice modes must get distinct attempts")
	}
}

func TestStartAttempt_UnknownExam(t *testing.T) {
	svc, db := newTestAttemptService(t)
	taker := seedUser(t, db, "taker@example.com")

	if _, err := svc.StartAttempt(9999, taker, model.ModeExam, ClientMeta{}); !errors.Is(err, ErrExamNotFound) {
		t.Fatalf("got %v, want ErrExamNotFound", err)
	}
}

func TestRecordTabSwitch_WarnsThenFlags(t *testing.T) {
	svc, db := newTestAttemptService(t)
	taker := seedUser(t, db, "taker@example.com")
	exam, _ := seedExam(t, db, 3, 30, 70)

	started, err := svc.StartAttempt(exam.ID, taker, model.ModeExam, ClientMeta{})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	first, err := svc.RecordTabSwitch(started.AttemptID, taker)
	if err != nil {
		t.Fatalf("switch 1: %v", err)
	}
	if first.TabSwitchCount != 1 || first.Warning {
		t.Fatalf("switch 1: got count=%d warning=%t, want 1/false", first.TabSwitchCount, first.Warning)
	}

	second, err := svc.RecordTabSwitch(started.AttemptID, taker)
	if err != nil {
		t.Fatalf("switch 2: %v", err)
	}
	if second.TabSwitchCount != 2 || !second.Warning {
		t.Fatalf("switch 2: got count=%d warning=%t, want 2/true", second.TabSwitchCount, second.Warning)
	}

	var midway model.ExamAttempt
	if err := db.First(&midway, started.AttemptID).Error; err != nil {
		t.Fatalf("reload after switch 2: %v", err)
	}
	if midway.Flagged {
		t.Fatalf("attempt must not be flagged at two switches")
	}

	third, err := svc.RecordTabSwitch(started.AttemptID, taker)
	if err != nil {
		t.Fatalf("switch 3: %v", err)
	}
	if third.TabSwitchCount != 3 || !third.Warning {
		t.Fatalf("switch 3: got count=%d warning=%t, want 3/true", third.TabSwitchCount, third.Warning)
	}

	var flagged model.ExamAttempt
	if err := db.First(&flagged, started.AttemptID).Error; err != nil {
		t.Fatalf("reload after switch 3: %v", err)
	}
	if !flagged.Flagged {
		t.Fatalf("attempt must be flagged at three switches")
	}
	if flagged.FlagReason != "Excessive tab switches: 3" {
		t.Fatalf("unexpected flag reason %q", flagged.FlagReason)
	}

	// A fourth switch keeps counting but must not duplicate the reason.
	if _, err := svc.RecordTabSwitch(started.AttemptID, taker); err != nil {
		t.Fatalf("switch 4: %v", err)
	}
	var after model.ExamAttempt
	if err := db.First(&after, started.AttemptID).Error; err != nil {
		t.Fatalf("reload after switch 4: %v", err)
	}
	if after.TabSwitchCount != 4 {
		t.Fatalf("switch 4: got count=%d, want 4", after.TabSwitchCount)
	}
	if after.FlagReason != "Excessive tab switches: 3" {
		t.Fatalf("flag reason rewritten on later switches: %q", after.FlagReason)
	}
}

func TestRecordTabSwitch_PracticeModeExempt(t *testing.T) {
	svc, db := newTestAttemptService(t)
	taker := seedUser(t, db, "taker@example.com")
	exam, _ := seedExam(t, db, 3, 30, 70)

	started, err := svc.StartAttempt(exam.ID, taker, model.ModePractice, ClientMeta{})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	for i := 0; i < 5; i++ {
		resp, err := svc.RecordTabSwitch(started.AttemptID, taker)
		if err != nil {
			t.Fatalf("switch %d: %v", i+1, err)
		}
		if resp.TabSwitchCount != 0 || resp.Warning {
			t.Fatalf("practice switch %d: got count=%d warning=%t, want 0/false", i+1, resp.TabSwitchCount, resp.Warning)
		}
	}

	var attempt model.ExamAttempt
	if err := db.First(&attempt, started.AttemptID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if attempt.TabSwitchCount != 0 || attempt.Flagged {
		t.Fatalf("practice attempt mutated: count=%d flagged=%t", attempt.TabSwitchCount, attempt.Flagged)
	}
}

func TestRecordTabSwitch_AccessControl(t *testing.T) {
	svc, db := newTestAttemptService(t)
	owner := seedUser(t, db, "owner@example.com")
	intruder := seedUser(t, db, "intruder@example.com")
	exam, questions := seedExam(t, db, 2, 30, 70)

	started, err := svc.StartAttempt(exam.ID, owner, model.ModeExam, ClientMeta{})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	if _, err := svc.RecordTabSwitch(started.AttemptID, intruder); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("foreign attempt: got %v, want ErrUnauthorized", err)
	}
	if _, err := svc.RecordTabSwitch(9999, owner); !errors.Is(err, ErrAttemptNotFound) {
		t.Fatalf("missing attempt: got %v, want ErrAttemptNotFound", err)
	}

	if _, err := svc.SubmitAttempt(exam.ID, answerSheet(questions, 2), owner, ClientMeta{}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := svc.RecordTabSwitch(started.AttemptID, owner); !errors.Is(err, ErrAttemptCompleted) {
		t.Fatalf("completed attempt: got %v, want ErrAttemptCompleted", err)
	}
}

func TestCheckAnswer_PracticeOnly(t *testing.T) {
	svc, db := newTestAttemptService(t)
	taker := seedUser(t, db, "taker@example.com")
	exam, _ := seedExam(t, db, 1, 30, 70)

	multi := model.Question{
		CertificationID: exam.CertificationID,
		Text:            "Pick both correct options",
		Type:            model.QuestionMultipleChoice,
		Explanation:     "A and B are required together.",
		Answers: []model.Answer{
			{Text: "A", IsCorrect: true},
			{Text: "B", IsCorrect: true},
			{Text: "C"},
		},
	}
	if err := db.Create(&multi).Error; err != nil {
		t.Fatalf("seeding multi question: %v", err)
	}

	practice, err := svc.StartAttempt(exam.ID, taker, model.ModePractice, ClientMeta{})
	if err != nil {
		t.Fatalf("start practice: %v", err)
	}

	full := []uint{multi.Answers[0].ID, multi.Answers[1].ID}
	resp, err := svc.CheckAnswer(practice.AttemptID, multi.ID, full, taker)
	if err != nil {
		t.Fatalf("check exact set: %v", err)
	}
	if !resp.Correct {
		t.Fatalf("exact correct set must be correct")
	}
	if len(resp.CorrectAnswerIDs) != 2 {
		t.Fatalf("expected 2 correct answer ids, got %v", resp.CorrectAnswerIDs)
	}
	if resp.Explanation != multi.Explanation {
		t.Fatalf("explanation not surfaced: %q", resp.Explanation)
	}

	partial, err := svc.CheckAnswer(practice.AttemptID, multi.ID, []uint{multi.Answers[0].ID}, taker)
	if err != nil {
		t.Fatalf("check partial set: %v", err)
	}
	if partial.Correct {
		t.Fatalf("partial selection must not be correct")
	}

	superset := append(full, multi.Answers[2].ID)
	extra, err := svc.CheckAnswer(practice.AttemptID, multi.ID, superset, taker)
	if err != nil {
		t.Fatalf("check superset: %v", err)
	}
	if extra.Correct {
		t.Fatalf("superset selection must not be correct")
	}

	if _, err := svc.CheckAnswer(practice.AttemptID, 9999, full, taker); !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("missing question: got %v, want ErrQuestionNotFound", err)
	}

	examRun, err := svc.StartAttempt(exam.ID, taker, model.ModeExam, ClientMeta{})
	if err != nil {
		t.Fatalf("start exam: %v", err)
	}
	if _, err := svc.CheckAnswer(examRun.AttemptID, multi.ID, full, taker); !errors.Is(err, ErrWrongMode) {
		t.Fatalf("exam-mode check: got %v, want ErrWrongMode", err)
	}
}

func TestSubmitAttempt_ScoresAgainstPassingScore(t *testing.T) {
	svc, db := newTestAttemptService(t)
	exam, questions := seedExam(t, db, 10, 60, 70)

	passer := seedUser(t, db, "passer@example.com")
	if _, err := svc.StartAttempt(exam.ID, passer, model.ModeExam, ClientMeta{}); err != nil {
		t.Fatalf("start: %v", err)
	}
	result, err := svc.SubmitAttempt(exam.ID, answerSheet(questions, 7), passer, ClientMeta{})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Score != 70 || !result.Passed {
		t.Fatalf("7/10: got score=%.1f passed=%t, want 70.0/true", result.Score, result.Passed)
	}
	if result.CorrectAnswers != 7 || result.TotalQuestions != 10 {
		t.Fatalf("7/10: got %d/%d", result.CorrectAnswers, result.TotalQuestions)
	}
	if result.Flagged {
		t.Fatalf("clean submission must not be flagged")
	}

	failer := seedUser(t, db, "failer@example.com")
	if _, err := svc.StartAttempt(exam.ID, failer, model.ModeExam, ClientMeta{}); err != nil {
		t.Fatalf("start: %v", err)
	}
	result, err = svc.SubmitAttempt(exam.ID, answerSheet(questions, 6), failer, ClientMeta{})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Score != 60 || result.Passed {
		t.Fatalf("6/10: got score=%.1f passed=%t, want 60.0/false", result.Score, result.Passed)
	}
}

func TestSubmitAttempt_ClosesAttemptOneWay(t *testing.T) {
	svc, db := newTestAttemptService(t)
	taker := seedUser(t, db, "taker@example.com")
	exam, questions := seedExam(t, db, 4, 30, 70)

	started, err := svc.StartAttempt(exam.ID, taker, model.ModeExam, ClientMeta{})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	result, err := svc.SubmitAttempt(exam.ID, answerSheet(questions, 4), taker, ClientMeta{})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.AttemptID != started.AttemptID {
		t.Fatalf("submit closed a different attempt: %d vs %d", result.AttemptID, started.AttemptID)
	}

	var closed model.ExamAttempt
	if err := db.First(&closed, started.AttemptID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if closed.CompletedAt == nil {
		t.Fatalf("submitted attempt must have a completion timestamp")
	}

	fresh, err := svc.StartAttempt(exam.ID, taker, model.ModeExam, ClientMeta{})
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	if fresh.Resuming || fresh.AttemptID == started.AttemptID {
		t.Fatalf("closed attempt was resumed: resuming=%t id=%d", fresh.Resuming, fresh.AttemptID)
	}
}

func TestSubmitAttempt_WithoutStartCreatesClosedAttempt(t *testing.T) {
	svc, db := newTestAttemptService(t)
	taker := seedUser(t, db, "taker@example.com")
	exam, questions := seedExam(t, db, 2, 30, 70)

	result, err := svc.SubmitAttempt(exam.ID, answerSheet(questions, 2), taker, ClientMeta{})
	if err != nil {
		t.Fatalf("submit without start: %v", err)
	}
	if result.AttemptID == 0 {
		t.Fatalf("fallback attempt was not persisted")
	}

	var attempt model.ExamAttempt
	if err := db.First(&attempt, result.AttemptID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if attempt.CompletedAt == nil || attempt.Flagged {
		t.Fatalf("fallback attempt should be closed and unflagged: completed=%v flagged=%t", attempt.CompletedAt, attempt.Flagged)
	}
}

func TestSubmitAttempt_TimeViolation(t *testing.T) {
	svc, db := newTestAttemptService(t)
	exam, questions := seedExam(t, db, 2, 30, 70)

	late := seedUser(t, db, "late@example.com")
	started, err := svc.StartAttempt(exam.ID, late, model.ModeExam, ClientMeta{})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	backdateStart(t, db, started.AttemptID, 35*time.Minute)

	result, err := svc.SubmitAttempt(exam.ID, answerSheet(questions, 2), late, ClientMeta{})
	if err != nil {
		t.Fatalf("late submit: %v", err)
	}
	if !result.Flagged {
		t.Fatalf("submission past duration plus grace must be flagged")
	}
	if result.Score != 100 {
		t.Fatalf("flagging must not alter the score, got %.1f", result.Score)
	}

	var attempt model.ExamAttempt
	if err := db.First(&attempt, started.AttemptID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if attempt.FlagReason != "Time exceeded" {
		t.Fatalf("unexpected flag reason %q", attempt.FlagReason)
	}

	onTime := seedUser(t, db, "ontime@example.com")
	started, err = svc.StartAttempt(exam.ID, onTime, model.ModeExam, ClientMeta{})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	backdateStart(t, db, started.AttemptID, 30*time.Minute)

	result, err = svc.SubmitAttempt(exam.ID, answerSheet(questions, 2), onTime, ClientMeta{})
	if err != nil {
		t.Fatalf("on-time submit: %v", err)
	}
	if result.Flagged {
		t.Fatalf("submission inside the grace window must not be flagged")
	}
}

func TestSubmitAttempt_PracticeNeverTimeFlagged(t *testing.T) {
	svc, db := newTestAttemptService(t)
	taker := seedUser(t, db, "taker@example.com")
	exam, questions := seedExam(t, db, 2, 30, 70)

	started, err := svc.StartAttempt(exam.ID, taker, model.ModePractice, ClientMeta{})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	backdateStart(t, db, started.AttemptID, 3*time.Hour)

	result, err := svc.SubmitAttempt(exam.ID, answerSheet(questions, 1), taker, ClientMeta{})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Flagged {
		t.Fatalf("practice submissions must not be time-flagged")
	}
}

func TestSubmitAttempt_EmptyAndMissingExam(t *testing.T) {
	svc, db := newTestAttemptService(t)
	taker := seedUser(t, db, "taker@example.com")
	exam, _ := seedExam(t, db, 0, 30, 70)

	if _, err := svc.SubmitAttempt(exam.ID, nil, taker, ClientMeta{}); !errors.Is(err, ErrExamEmpty) {
		t.Fatalf("empty exam: got %v, want ErrExamEmpty", err)
	}
	if _, err := svc.SubmitAttempt(9999, nil, taker, ClientMeta{}); !errors.Is(err, ErrExamNotFound) {
		t.Fatalf("missing exam: got %v, want ErrExamNotFound", err)
	}
}

func TestGetAttempt_OwnerScoped(t *testing.T) {
	svc, db := newTestAttemptService(t)
	owner := seedUser(t, db, "owner@example.com")
	intruder := seedUser(t, db, "intruder@example.com")
	exam, questions := seedExam(t, db, 2, 30, 70)

	if _, err := svc.StartAttempt(exam.ID, owner, model.ModeExam, ClientMeta{}); err != nil {
		t.Fatalf("start: %v", err)
	}
	result, err := svc.SubmitAttempt(exam.ID, answerSheet(questions, 1), owner, ClientMeta{})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	detail, err := svc.GetAttempt(result.AttemptID, owner)
	if err != nil {
		t.Fatalf("owner get: %v", err)
	}
	if detail.ExamName != exam.Name {
		t.Fatalf("exam name not resolved: %q", detail.ExamName)
	}
	if len(detail.Answers) != 2 {
		t.Fatalf("stored answers not decoded: %v", detail.Answers)
	}
	if detail.Score != result.Score {
		t.Fatalf("detail score %.1f != submit score %.1f", detail.Score, result.Score)
	}

	if _, err := svc.GetAttempt(result.AttemptID, intruder); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("foreign get: got %v, want ErrUnauthorized", err)
	}
	if _, err := svc.GetAttempt(9999, owner); !errors.Is(err, ErrAttemptNotFound) {
		t.Fatalf("missing get: got %v, want ErrAttemptNotFound", err)
	}
}

func TestGetMyAttempts_ListsOnlyCaller(t *testing.T) {
	svc, db := newTestAttemptService(t)
	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")
	exam, questions := seedExam(t, db, 2, 30, 70)

	if _, err := svc.StartAttempt(exam.ID, alice, model.ModeExam, ClientMeta{}); err != nil {
		t.Fatalf("alice start: %v", err)
	}
	if _, err := svc.SubmitAttempt(exam.ID, answerSheet(questions, 2), alice, ClientMeta{}); err != nil {
		t.Fatalf("alice submit: %v", err)
	}
	if _, err := svc.StartAttempt(exam.ID, alice, model.ModePractice, ClientMeta{}); err != nil {
		t.Fatalf("alice practice start: %v", err)
	}
	if _, err := svc.StartAttempt(exam.ID, bob, model.ModeExam, ClientMeta{}); err != nil {
		t.Fatalf("bob start: %v", err)
	}

	mine, err := svc.GetMyAttempts(alice)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("got %d attempts, want 2", len(mine))
	}
	for _, a := range mine {
		if a.ExamName != exam.Name {
			t.Fatalf("summary missing exam name: %+v", a)
		}
	}
}

func TestDeleteAttempt_OwnerScopedHardDelete(t *testing.T) {
	svc, db := newTestAttemptService(t)
	owner := seedUser(t, db, "owner@example.com")
	intruder := seedUser(t, db, "intruder@example.com")
	exam, _ := seedExam(t, db, 2, 30, 70)

	started, err := svc.StartAttempt(exam.ID, owner, model.ModeExam, ClientMeta{})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	if err := svc.DeleteAttempt(started.AttemptID, intruder); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("foreign delete: got %v, want ErrUnauthorized", err)
	}
	if err := svc.DeleteAttempt(started.AttemptID, owner); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if err := svc.DeleteAttempt(started.AttemptID, owner); !errors.Is(err, ErrAttemptNotFound) {
		t.Fatalf("repeat delete: got %v, want ErrAttemptNotFound", err)
	}

	var count int64
	if err := db.Model(&model.ExamAttempt{}).Where("id = ?", started.AttemptID).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("attempt row survived hard delete")
	}
}
