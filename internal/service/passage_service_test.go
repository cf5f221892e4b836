package service

import "testing"

func TestPassageCreateValidation(t *testing.T) {
	valid := PassageRequest{
		AssessmentName: "Reading 1",
		Title:          "The Water Cycle",
		Text:           "Evaporation, condensation...",
	}

	cases := []struct {
		name   string
		mutate func(r *PassageRequest)
	}{
		{"empty assessment name", func(r *PassageRequest) { r.AssessmentName = "" }},
		{"empty title", func(r *PassageRequest) { r.Title = "" }},
		{"empty text", func(r *PassageRequest) { r.Text = "" }},
		{"blank text", func(r *PassageRequest) { r.Text = "   " }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assessments, _, passages, _ := newFakeServices()
			seedAssessment(t, assessments, "Reading 1", "Reading")

			req := valid
			tc.mutate(&req)
			if err := passages.Create(req); !isValidationError(err) {
				t.Errorf("Create: got %v, want ValidationError", err)
			}
		})
	}
}

func TestPassageCreateUnknownAssessment(t *testing.T) {
	_, _, passages, _ := newFakeServices()

	err := passages.Create(PassageRequest{
		AssessmentName: "missing",
		Title:          "T",
		Text:           "body",
	})
	if !isNotFoundError(err) {
		t.Errorf("Create: got %v, want NotFoundError", err)
	}
}

func TestPassageCreateRejectsWritingAssessment(t *testing.T) {
	// 字段本身合法也不行：Writing 测评不允许挂文章
	assessments, _, passages, _ := newFakeServices()
	seedAssessment(t, assessments, "Writing 1", "Writing")

	err := passages.Create(PassageRequest{
		AssessmentName: "Writing 1",
		Title:          "T",
		Text:           "body",
	})
	if !isValidationError(err) {
		t.Errorf("Create: got %v, want ValidationError", err)
	}
}

func TestPassageCreateRejectsSecondPassage(t *testing.T) {
	// Reading 测评创建时已带占位文章，1:1 约束拒绝再挂一篇
	assessments, _, passages, _ := newFakeServices()
	seedAssessment(t, assessments, "Reading 1", "Reading")

	err := passages.Create(PassageRequest{
		AssessmentName: "Reading 1",
		Title:          "T",
		Text:           "body",
	})
	if !isConflictError(err) {
		t.Errorf("Create: got %v, want ConflictError", err)
	}
}

func TestPassageCreateLinksToAssessment(t *testing.T) {
	assessments, _, passages, db := newFakeServices()
	seedAssessment(t, assessments, "Reading 1", "Reading")

	// 拿掉占位文章模拟尚未挂接的 Reading 测评
	db.passages = nil

	if err := passages.Create(PassageRequest{
		AssessmentName: "reading 1",
		Title:          "The Water Cycle",
		Text:           "Evaporation, condensation...",
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if len(db.passages) != 1 {
		t.Fatalf("got %d passages, want 1", len(db.passages))
	}
	if db.passages[0].AssessmentID != db.assessments[0].ID {
		t.Errorf("passage linked to %d, want %d", db.passages[0].AssessmentID, db.assessments[0].ID)
	}
}
