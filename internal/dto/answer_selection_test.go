package dto

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestAnswerSelection_UnmarshalSingle(t *testing.T) {
	var sel AnswerSelection
	if err := json.Unmarshal([]byte(`42`), &sel); err != nil {
		t.Fatalf("unmarshal single id: %v", err)
	}
	if !reflect.DeepEqual(sel.IDs, []uint{42}) {
		t.Fatalf("got %v, want [42]", sel.IDs)
	}
}

func TestAnswerSelection_UnmarshalArray(t *testing.T) {
	var sel AnswerSelection
	if err := json.Unmarshal([]byte(`[1, 2, 3]`), &sel); err != nil {
		t.Fatalf("unmarshal array: %v", err)
	}
	if !reflect.DeepEqual(sel.IDs, []uint{1, 2, 3}) {
		t.Fatalf("got %v, want [1 2 3]", sel.IDs)
	}
}

func TestAnswerSelection_UnmarshalNull(t *testing.T) {
	var sel AnswerSelection
	if err := json.Unmarshal([]byte(`null`), &sel); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if len(sel.IDs) != 0 {
		t.Fatalf("null should yield empty selection, got %v", sel.IDs)
	}
}

func TestAnswerSelection_UnmarshalRejectsStrings(t *testing.T) {
	var sel AnswerSelection
	if err := json.Unmarshal([]byte(`"abc"`), &sel); err == nil {
		t.Fatalf("expected error for string payload")
	}
}

func TestAnswerSelection_MarshalRoundTrip(t *testing.T) {
	out, err := json.Marshal(AnswerSelection{IDs: []uint{7}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != "7" {
		t.Fatalf("single id should marshal to a bare number, got %s", out)
	}

	out, err = json.Marshal(AnswerSelection{IDs: []uint{1, 2}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != "[1,2]" {
		t.Fatalf("multi ids should marshal to an array, got %s", out)
	}
}

func TestSubmitExamRequest_MixedShapes(t *testing.T) {
	payload := []byte(`{"answers": {"10": 3, "11": [4, 5]}}`)
	var req SubmitExamRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		t.Fatalf("unmarshal request: %v", err)
	}
	if !reflect.DeepEqual(req.Answers["10"].IDs, []uint{3}) {
		t.Fatalf("question 10: got %v", req.Answers["10"].IDs)
	}
	if !reflect.DeepEqual(req.Answers["11"].IDs, []uint{4, 5}) {
		t.Fatalf("question 11: got %v", req.Answers["11"].IDs)
	}
}
