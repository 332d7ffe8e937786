package service

import (
	"testing"

	"github.com/Nattie-Nkosi/certsim/internal/model"
)

func TestAnswerSetsEqual(t *testing.T) {
	cases := []struct {
		name      string
		submitted []uint
		correct   []uint
		want      bool
	}{
		{"exact match", []uint{1, 2}, []uint{2, 1}, true},
		{"subset", []uint{1}, []uint{1, 2}, false},
		{"superset", []uint{1, 2, 3}, []uint{1, 2}, false},
		{"disjoint", []uint{3, 4}, []uint{1, 2}, false},
		{"both empty", nil, nil, true},
		{"duplicates collapse", []uint{1, 1, 2}, []uint{1, 2}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := answerSetsEqual(tc.submitted, tc.correct); got != tc.want {
				t.Fatalf("answerSetsEqual(%v, %v) = %t, want %t", tc.submitted, tc.correct, got, tc.want)
			}
		})
	}
}

func multiQuestion() *model.Question {
	return &model.Question{
		Type: model.QuestionMultipleChoice,
		Answers: []model.Answer{
			{ID: 1, IsCorrect: true},
			{ID: 2, IsCorrect: true},
			{ID: 3},
			{ID: 4},
		},
	}
}

func singleQuestion() *model.Question {
	return &model.Question{
		Type: model.QuestionSingleChoice,
		Answers: []model.Answer{
			{ID: 1, IsCorrect: true},
			{ID: 2},
			{ID: 3},
		},
	}
}

func TestGradeSelection_MultipleChoice(t *testing.T) {
	q := multiQuestion()

	if !gradeSelection(q, []uint{1, 2}) {
		t.Fatalf("exact correct set should grade true")
	}
	if gradeSelection(q, []uint{1}) {
		t.Fatalf("partial selection should grade false")
	}
	if gradeSelection(q, []uint{1, 2, 3}) {
		t.Fatalf("selection with an extra wrong answer should grade false")
	}
	if gradeSelection(q, nil) {
		t.Fatalf("empty selection should grade false")
	}
}

func TestGradeSelection_SingleChoice(t *testing.T) {
	q := singleQuestion()

	if !gradeSelection(q, []uint{1}) {
		t.Fatalf("correct single answer should grade true")
	}
	if gradeSelection(q, []uint{2}) {
		t.Fatalf("wrong single answer should grade false")
	}
	if gradeSelection(q, []uint{1, 2}) {
		t.Fatalf("two answers on a single-choice question should grade false")
	}
	if gradeSelection(q, nil) {
		t.Fatalf("empty selection should grade false")
	}
}

func TestGradeSelection_TrueFalse(t *testing.T) {
	q := &model.Question{
		Type: model.QuestionTrueFalse,
		Answers: []model.Answer{
			{ID: 10, IsCorrect: true},
			{ID: 11},
		},
	}
	if !gradeSelection(q, []uint{10}) {
		t.Fatalf("correct true/false answer should grade true")
	}
	if gradeSelection(q, []uint{11}) {
		t.Fatalf("wrong true/false answer should grade false")
	}
}
