package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// AnswerSelection is the wire shape for a selected answer: clients send either
// a single answer id (single-choice, true/false) or an array of ids
// (multiple-choice). Internally it is always a set of ids.
type AnswerSelection struct {
	IDs []uint
}

func (s *AnswerSelection) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		s.IDs = nil
		return nil
	}

	var single uint
	if err := json.Unmarshal(data, &single); err == nil {
		s.IDs = []uint{single}
		return nil
	}

	var many []uint
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("answer must be an answer id or an array of answer ids")
	}
	s.IDs = many
	return nil
}

func (s AnswerSelection) MarshalJSON() ([]byte, error) {
	if len(s.IDs) == 1 {
		return json.Marshal(s.IDs[0])
	}
	return json.Marshal(s.IDs)
}
