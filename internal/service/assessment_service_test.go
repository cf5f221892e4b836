package service

import (
	"errors"
	"testing"

	"testbank_backend/internal/model"
	"testbank_backend/internal/util"
)

func isValidationError(err error) bool {
	var e *util.ValidationError
	return errors.As(err, &e)
}

func isNotFoundError(err error) bool {
	var e *util.NotFoundError
	return errors.As(err, &e)
}

func isConflictError(err error) bool {
	var e *util.ConflictError
	return errors.As(err, &e)
}

func TestAssessmentCreateNormalizesType(t *testing.T) {
	cases := []struct {
		rawType string
		want    string
	}{
		{"reading", model.AssessmentTypeReading},
		{"READING", model.AssessmentTypeReading},
		{"Reading", model.AssessmentTypeReading},
		{"writing", model.AssessmentTypeWriting},
		{"wRiTiNg", model.AssessmentTypeWriting},
	}

	for _, tc := range cases {
		svc, _, _, db := newFakeServices()
		if err := svc.Create(AssessmentRequest{Name: "SAT Practice", Type: tc.rawType}); err != nil {
			t.Fatalf("Create(%q): %v", tc.rawType, err)
		}
		if got := db.assessments[0].Type; got != tc.want {
			t.Errorf("Create(%q): stored type %q, want %q", tc.rawType, got, tc.want)
		}
	}
}

func TestAssessmentCreateReadingAttachesDefaultPassage(t *testing.T) {
	svc, _, _, db := newFakeServices()

	if err := svc.Create(AssessmentRequest{Name: "Reading 1", Type: "reading"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if len(db.passages) != 1 {
		t.Fatalf("got %d passages, want 1", len(db.passages))
	}
	p := db.passages[0]
	if p.AssessmentID != db.assessments[0].ID {
		t.Errorf("passage linked to assessment %d, want %d", p.AssessmentID, db.assessments[0].ID)
	}
	if p.Title != model.DefaultPassageTitle || p.Text != model.DefaultPassageText {
		t.Errorf("passage placeholder = (%q, %q), want (%q, %q)",
			p.Title, p.Text, model.DefaultPassageTitle, model.DefaultPassageText)
	}
}

func TestAssessmentCreateWritingHasNoPassage(t *testing.T) {
	svc, _, _, db := newFakeServices()

	if err := svc.Create(AssessmentRequest{Name: "Writing 1", Type: "Writing"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(db.passages) != 0 {
		t.Errorf("got %d passages, want 0", len(db.passages))
	}
}

func TestAssessmentCreateValidation(t *testing.T) {
	cases := []struct {
		name string
		req  AssessmentRequest
	}{
		{"empty name", AssessmentRequest{Name: "", Type: "Reading"}},
		{"blank name", AssessmentRequest{Name: "   ", Type: "Reading"}},
		{"empty type", AssessmentRequest{Name: "A", Type: ""}},
		{"unknown type", AssessmentRequest{Name: "A", Type: "Listening"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, _, _ := newFakeServices()
			err := svc.Create(tc.req)
			if !isValidationError(err) {
				t.Errorf("Create: got %v, want ValidationError", err)
			}
		})
	}
}

func TestAssessmentCreateDuplicateName(t *testing.T) {
	svc, _, _, _ := newFakeServices()

	if err := svc.Create(AssessmentRequest{Name: "SAT Practice", Type: "Reading"}); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	for _, dup := range []string{"SAT Practice", "sat practice", "SAT PRACTICE"} {
		err := svc.Create(AssessmentRequest{Name: dup, Type: "Writing"})
		if !isConflictError(err) {
			t.Errorf("Create(%q): got %v, want ConflictError", dup, err)
		}
	}
}

func TestAssessmentGet(t *testing.T) {
	svc, questions, _, _ := newFakeServices()

	if _, err := svc.Get("missing"); !isNotFoundError(err) {
		t.Errorf("Get(missing): got err %v, want NotFoundError", err)
	}

	if err := svc.Create(AssessmentRequest{Name: "Reading 1", Type: "reading"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := questions.Create(QuestionRequest{
		AssessmentName: "Reading 1",
		Text:           "What is the main idea?",
		Options:        []string{"A", "B", "C", "D"},
		AnswerIndex:    1,
	}); err != nil {
		t.Fatalf("create question: %v", err)
	}

	// 名称匹配大小写不敏感
	a, err := svc.Get("reading 1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(a.Questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(a.Questions))
	}
	if len(a.Questions[0].Options) != 4 {
		t.Errorf("got %d options, want 4", len(a.Questions[0].Options))
	}
	if a.Passage == nil {
		t.Error("passage not eagerly loaded")
	}
}

func TestAssessmentList(t *testing.T) {
	svc, _, _, _ := newFakeServices()

	for _, a := range []AssessmentRequest{
		{Name: "R1", Type: "Reading"},
		{Name: "W1", Type: "Writing"},
		{Name: "R2", Type: "reading"},
	} {
		if err := svc.Create(a); err != nil {
			t.Fatalf("Create(%q): %v", a.Name, err)
		}
	}

	reading, err := svc.List(model.TypeCodeReading)
	if err != nil {
		t.Fatalf("List(0): %v", err)
	}
	if len(reading) != 2 || reading[0] != "R1" || reading[1] != "R2" {
		t.Errorf("List(0) = %v, want [R1 R2] in insertion order", reading)
	}

	writing, err := svc.List(model.TypeCodeWriting)
	if err != nil {
		t.Fatalf("List(1): %v", err)
	}
	if len(writing) != 1 || writing[0] != "W1" {
		t.Errorf("List(1) = %v, want [W1]", writing)
	}

	for _, code := range []int{-1, 2, 42} {
		if _, err := svc.List(code); !isValidationError(err) {
			t.Errorf("List(%d): got %v, want ValidationError", code, err)
		}
	}
}

func TestAssessmentDeleteCascades(t *testing.T) {
	svc, questions, _, db := newFakeServices()

	if err := svc.Create(AssessmentRequest{Name: "Reading 1", Type: "Reading"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := questions.Create(QuestionRequest{
		AssessmentName: "Reading 1",
		Text:           "Q1",
		Options:        []string{"A", "B", "C", "D"},
		AnswerIndex:    0,
	}); err != nil {
		t.Fatalf("create question: %v", err)
	}

	if err := svc.Delete("reading 1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if len(db.assessments) != 0 || len(db.questions) != 0 || len(db.options) != 0 || len(db.passages) != 0 {
		t.Errorf("cascade left rows behind: assessments=%d questions=%d options=%d passages=%d",
			len(db.assessments), len(db.questions), len(db.options), len(db.passages))
	}

	if _, err := svc.Get("Reading 1"); !isNotFoundError(err) {
		t.Errorf("Get after delete: got %v, want NotFoundError", err)
	}
}

func TestAssessmentDeleteValidation(t *testing.T) {
	svc, _, _, _ := newFakeServices()

	if err := svc.Delete(""); !isValidationError(err) {
		t.Errorf("Delete(empty): got %v, want ValidationError", err)
	}
	if err := svc.Delete("missing"); !isNotFoundError(err) {
		t.Errorf("Delete(missing): got %v, want NotFoundError", err)
	}
}
