package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Nattie-Nkosi/certsim/internal/dto"
	"github.com/Nattie-Nkosi/certsim/internal/model"
	"github.com/Nattie-Nkosi/certsim/internal/repository"
)

const (
	// A taker gets one grace warning at the second switch; the third flags.
	tabSwitchWarnAt = 2
	tabSwitchFlagAt = 3

	// Submissions get one minute past the exam duration before the time
	// violation flag is raised.
	submitGraceMinutes = 1
)

// AttemptService is the exam-attempt lifecycle engine: start/resume,
// proctoring signals, practice feedback, grading, and owner-scoped
// retrieval/deletion. All state lives in the store; the service itself holds
// none between requests.
type AttemptService interface {
	StartAttempt(examID uint, principal Principal, mode string, meta ClientMeta) (*dto.StartAttemptResponse, error)
	RecordTabSwitch(attemptID uint, principal Principal) (*dto.TabSwitchResponse, error)
	CheckAnswer(attemptID, questionID uint, selection []uint, principal Principal) (*dto.CheckAnswerResponse, error)
	SubmitAttempt(examID uint, answers map[string]dto.AnswerSelection, principal Principal, meta ClientMeta) (*dto.SubmitExamResponse, error)
	GetMyAttempts(principal Principal) ([]dto.AttemptSummaryDTO, error)
	GetAttempt(attemptID uint, principal Principal) (*dto.AttemptDetailDTO, error)
	DeleteAttempt(attemptID uint, principal Principal) error
}

type attemptService struct {
	examRepo     repository.ExamRepository
	questionRepo repository.QuestionRepository
	attemptRepo  repository.ExamAttemptRepository
	audit        AuditService
}

func NewAttemptService(
	examRepo repository.ExamRepository,
	questionRepo repository.QuestionRepository,
	attemptRepo repository.ExamAttemptRepository,
	audit AuditService,
) AttemptService {
	return &attemptService{
		examRepo:     examRepo,
		questionRepo: questionRepo,
		attemptRepo:  attemptRepo,
		audit:        audit,
	}
}

func normalizeMode(mode string) string {
	if mode == model.ModePractice {
		return model.ModePractice
	}
	return model.ModeExam
}

// StartAttempt resumes the caller's open attempt for (exam, mode) or creates
// a new one. Resuming returns the original server start time so closing and
// reopening the exam view never resets the countdown or the proctoring
// counters.
func (s *attemptService) StartAttempt(examID uint, principal Principal, mode string, meta ClientMeta) (*dto.StartAttemptResponse, error) {
	mode = normalizeMode(mode)

	existing, err := s.attemptRepo.FindOpen(principal.ID, examID, mode)
	if err == nil {
		log.Info().Uint("attemptID", existing.ID).Uint("examID", examID).Uint("userID", principal.ID).Msg("StartAttempt: resuming open attempt")
		return startResponse(existing, true), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("looking up open attempt: %w", err)
	}

	exam, err := s.examRepo.FindByID(examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExamNotFound
		}
		return nil, err
	}

	attempt := model.ExamAttempt{
		UserID:          principal.ID,
		ExamID:          exam.ID,
		Mode:            mode,
		ServerStartTime: time.Now(),
		Answers:         datatypes.JSON([]byte(`{}`)),
		IPAddress:       meta.IPAddress,
		UserAgent:       meta.UserAgent,
	}
	if err := s.attemptRepo.Create(&attempt); err != nil {
		// A concurrent start won the partial unique index race; resume the
		// winner instead of surfacing the conflict.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			winner, findErr := s.attemptRepo.FindOpen(principal.ID, examID, mode)
			if findErr == nil {
				log.Info().Uint("attemptID", winner.ID).Msg("StartAttempt: lost create race, resuming winner")
				return startResponse(winner, true), nil
			}
		}
		log.Error().Err(err).Uint("examID", examID).Uint("userID", principal.ID).Msg("StartAttempt: failed to create attempt")
		return nil, err
	}

	action := model.AuditExamStart
	if mode == model.ModePractice {
		action = model.AuditPracticeStart
	}
	s.audit.Record(AuditEntry{
		UserID:    &principal.ID,
		Action:    action,
		Entity:    "ExamAttempt",
		EntityID:  fmt.Sprint(attempt.ID),
		Details:   fmt.Sprintf("exam %q mode %s", exam.Name, mode),
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
	})

	return startResponse(&attempt, false), nil
}

func startResponse(attempt *model.ExamAttempt, resuming bool) *dto.StartAttemptResponse {
	return &dto.StartAttemptResponse{
		AttemptID:       attempt.ID,
		Resuming:        resuming,
		ServerStartTime: attempt.ServerStartTime,
		TabSwitchCount:  attempt.TabSwitchCount,
		Mode:            attempt.Mode,
	}
}

// RecordTabSwitch registers one detected visibility-loss event. Practice
// attempts are exempt: the call succeeds without mutating anything.
func (s *attemptService) RecordTabSwitch(attemptID uint, principal Principal) (*dto.TabSwitchResponse, error) {
	attempt, err := s.loadOwned(attemptID, principal)
	if err != nil {
		return nil, err
	}
	if attempt.Completed() {
		return nil, ErrAttemptCompleted
	}
	if attempt.Mode == model.ModePractice {
		return &dto.TabSwitchResponse{TabSwitchCount: 0, Warning: false}, nil
	}

	attempt, err = s.attemptRepo.IncrementTabSwitch(attempt.ID)
	if err != nil {
		return nil, fmt.Errorf("incrementing tab switch count: %w", err)
	}

	if attempt.TabSwitchCount >= tabSwitchFlagAt && !attempt.Flagged {
		attempt.Flagged = true
		attempt.FlagReason = appendFlagReason(attempt.FlagReason,
			fmt.Sprintf("Excessive tab switches: %d", attempt.TabSwitchCount))
		if err := s.attemptRepo.Save(attempt); err != nil {
			return nil, fmt.Errorf("flagging attempt: %w", err)
		}
		log.Warn().Uint("attemptID", attempt.ID).Int("count", attempt.TabSwitchCount).Msg("Attempt flagged for excessive tab switches")
	}

	s.audit.Record(AuditEntry{
		UserID:   &principal.ID,
		Action:   model.AuditTabSwitch,
		Entity:   "ExamAttempt",
		EntityID: fmt.Sprint(attempt.ID),
		Details:  fmt.Sprintf("count=%d flagged=%t", attempt.TabSwitchCount, attempt.Flagged),
	})

	return &dto.TabSwitchResponse{
		TabSwitchCount: attempt.TabSwitchCount,
		Warning:        attempt.TabSwitchCount >= tabSwitchWarnAt,
	}, nil
}

// CheckAnswer gives immediate per-question feedback on a practice attempt.
// It grades fresh against the current question rows and persists nothing on
// the attempt.
func (s *attemptService) CheckAnswer(attemptID, questionID uint, selection []uint, principal Principal) (*dto.CheckAnswerResponse, error) {
	attempt, err := s.loadOwned(attemptID, principal)
	if err != nil {
		return nil, err
	}
	if attempt.Mode != model.ModePractice {
		return nil, ErrWrongMode
	}

	question, err := s.questionRepo.FindByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}

	return &dto.CheckAnswerResponse{
		Correct:          gradeSelection(question, selection),
		CorrectAnswerIDs: question.CorrectAnswerIDs(),
		Explanation:      question.Explanation,
	}, nil
}

// SubmitAttempt grades the submission and closes the attempt. This is the
// one-way open-to-closed transition; nothing un-completes an attempt. When no
// open attempt exists (client skipped start) a terminal attempt is created
// directly.
func (s *attemptService) SubmitAttempt(examID uint, answers map[string]dto.AnswerSelection, principal Principal, meta ClientMeta) (*dto.SubmitExamResponse, error) {
	exam, err := s.examRepo.FindByIDWithQuestions(examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExamNotFound
		}
		return nil, err
	}
	if len(exam.ExamQuestions) == 0 {
		return nil, ErrExamEmpty
	}

	now := time.Now()

	attempt, err := s.attemptRepo.FindOpenAnyMode(principal.ID, examID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("looking up open attempt: %w", err)
		}
		// Defensive fallback for clients that never called start. The
		// attempt is born closed, timed from the submission instant.
		attempt = &model.ExamAttempt{
			UserID:          principal.ID,
			ExamID:          exam.ID,
			Mode:            model.ModeExam,
			ServerStartTime: now,
			IPAddress:       meta.IPAddress,
			UserAgent:       meta.UserAgent,
		}
	}

	correctCount := 0
	normalized := make(map[string][]uint, len(exam.ExamQuestions))
	for _, eq := range exam.ExamQuestions {
		question := eq.Question
		key := strconv.FormatUint(uint64(question.ID), 10)
		selection := answers[key].IDs
		if len(selection) > 0 {
			normalized[key] = selection
		}
		if gradeSelection(&question, selection) {
			correctCount++
		}
	}

	total := len(exam.ExamQuestions)
	score := float64(correctCount) / float64(total) * 100
	passed := score >= exam.PassingScore

	// Time violation: EXAM mode only, measured from the server-assigned start
	// so client clocks cannot shrink the elapsed time.
	if attempt.Mode == model.ModeExam {
		allowed := time.Duration(exam.Duration+submitGraceMinutes) * time.Minute
		if now.Sub(attempt.ServerStartTime) > allowed {
			attempt.Flagged = true
			attempt.FlagReason = appendFlagReason(attempt.FlagReason, "Time exceeded")
			log.Warn().Uint("attemptID", attempt.ID).Dur("elapsed", now.Sub(attempt.ServerStartTime)).Msg("Submission exceeded exam duration")
		}
	}

	encoded, err := json.Marshal(normalized)
	if err != nil {
		return nil, fmt.Errorf("encoding answers: %w", err)
	}
	attempt.Answers = datatypes.JSON(encoded)
	attempt.Score = score
	attempt.Passed = passed
	attempt.CompletedAt = &now

	if err := s.attemptRepo.Save(attempt); err != nil {
		log.Error().Err(err).Uint("examID", examID).Uint("userID", principal.ID).Msg("SubmitAttempt: failed to persist attempt")
		return nil, err
	}

	s.audit.Record(AuditEntry{
		UserID:    &principal.ID,
		Action:    model.AuditExamSubmit,
		Entity:    "ExamAttempt",
		EntityID:  fmt.Sprint(attempt.ID),
		Details:   fmt.Sprintf("exam=%d score=%.1f passed=%t tabSwitches=%d flagged=%t", exam.ID, score, passed, attempt.TabSwitchCount, attempt.Flagged),
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
	})

	return &dto.SubmitExamResponse{
		AttemptID:      attempt.ID,
		Score:          score,
		Passed:         passed,
		CorrectAnswers: correctCount,
		TotalQuestions: total,
		PassingScore:   exam.PassingScore,
		Flagged:        attempt.Flagged,
	}, nil
}

func (s *attemptService) GetMyAttempts(principal Principal) ([]dto.AttemptSummaryDTO, error) {
	attempts, err := s.attemptRepo.FindAllByUser(principal.ID)
	if err != nil {
		return nil, fmt.Errorf("fetching attempts: %w", err)
	}

	dtos := make([]dto.AttemptSummaryDTO, 0, len(attempts))
	for _, attempt := range attempts {
		var summary dto.AttemptSummaryDTO
		if err := copier.Copy(&summary, &attempt); err != nil {
			log.Error().Err(err).Uint("attemptID", attempt.ID).Msg("GetMyAttempts: copy to summary DTO failed")
			continue
		}
		summary.ExamName = attempt.Exam.Name
		dtos = append(dtos, summary)
	}
	return dtos, nil
}

func (s *attemptService) GetAttempt(attemptID uint, principal Principal) (*dto.AttemptDetailDTO, error) {
	attempt, err := s.attemptRepo.FindByIDWithExam(attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttemptNotFound
		}
		return nil, err
	}
	if attempt.UserID != principal.ID {
		return nil, ErrUnauthorized
	}

	var detail dto.AttemptDetailDTO
	if err := copier.Copy(&detail, attempt); err != nil {
		return nil, fmt.Errorf("preparing attempt detail: %w", err)
	}
	detail.ExamName = attempt.Exam.Name
	detail.FlagReason = attempt.FlagReason

	if len(attempt.Answers) > 0 {
		answers := make(map[string][]uint)
		if err := json.Unmarshal(attempt.Answers, &answers); err != nil {
			log.Warn().Err(err).Uint("attemptID", attempt.ID).Msg("GetAttempt: stored answers unreadable")
		} else {
			detail.Answers = answers
		}
	}
	return &detail, nil
}

// DeleteAttempt is unconditional once ownership is confirmed; attempts have
// no soft-delete or retention at this layer.
func (s *attemptService) DeleteAttempt(attemptID uint, principal Principal) error {
	attempt, err := s.attemptRepo.FindByID(attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAttemptNotFound
		}
		return err
	}
	if attempt.UserID != principal.ID {
		return ErrUnauthorized
	}

	if err := s.attemptRepo.Delete(attempt.ID); err != nil {
		return fmt.Errorf("deleting attempt: %w", err)
	}

	s.audit.Record(AuditEntry{
		UserID:   &principal.ID,
		Action:   model.AuditAttemptDelete,
		Entity:   "ExamAttempt",
		EntityID: fmt.Sprint(attempt.ID),
		Details:  fmt.Sprintf("exam=%d mode=%s", attempt.ExamID, attempt.Mode),
	})
	return nil
}

func (s *attemptService) loadOwned(attemptID uint, principal Principal) (*model.ExamAttempt, error) {
	attempt, err := s.attemptRepo.FindByID(attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttemptNotFound
		}
		return nil, err
	}
	if attempt.UserID != principal.ID {
		return nil, ErrUnauthorized
	}
	return attempt, nil
}

func appendFlagReason(existing, reason string) string {
	if existing == "" {
		return reason
	}
	return existing + "; " + reason
}
