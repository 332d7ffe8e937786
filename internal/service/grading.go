package service

import "github.com/Nattie-Nkosi/certsim/internal/model"

// answerSetsEqual compares two answer-id slices with set semantics: same
// cardinality (ignoring duplicates) and every submitted id present among the
// correct ids.
func answerSetsEqual(submitted, correct []uint) bool {
	subSet := make(map[uint]struct{}, len(submitted))
	for _, id := range submitted {
		subSet[id] = struct{}{}
	}
	corSet := make(map[uint]struct{}, len(correct))
	for _, id := range correct {
		corSet[id] = struct{}{}
	}
	if len(subSet) != len(corSet) {
		return false
	}
	for id := range subSet {
		if _, ok := corSet[id]; !ok {
			return false
		}
	}
	return true
}

// gradeSelection applies the grading rule for one question. Multi-select
// requires exact set equality with the correct answers; single-select (and
// true/false) requires exactly one submitted id that is among the correct
// ids. An empty selection is always wrong.
func gradeSelection(question *model.Question, submitted []uint) bool {
	if len(submitted) == 0 {
		return false
	}
	correct := question.CorrectAnswerIDs()
	if question.Type == model.QuestionMultipleChoice {
		return answerSetsEqual(submitted, correct)
	}
	if len(submitted) != 1 {
		return false
	}
	for _, id := range correct {
		if id == submitted[0] {
			return true
		}
	}
	return false
}
