package service

import (
	"errors"
	"strings"

	"testbank_backend/internal/model"
	"testbank_backend/internal/util"

	"gorm.io/gorm"
)

// QuestionRepo 由 repository.QuestionRepository 实现
type QuestionRepo interface {
	FindByText(assessmentID uint, text string) (*model.Question, error)
	CreateWithOptions(q *model.Question, options []model.Option) error
	DeleteCascade(q *model.Question) error
}

type QuestionService struct {
	Repo           QuestionRepo
	AssessmentRepo AssessmentRepo
}

func NewQuestionService(repo QuestionRepo, assessmentRepo AssessmentRepo) *QuestionService {
	return &QuestionService{Repo: repo, AssessmentRepo: assessmentRepo}
}

type QuestionRequest struct {
	AssessmentName string   `json:"assessmentName"`
	Text           string   `json:"text"`
	Options        []string `json:"options"`
	AnswerIndex    int      `json:"answerIndex"`
}

type QuestionDeleteRequest struct {
	AssessmentName string `json:"assessmentName"`
	Text           string `json:"text"`
}

// Create 校验后原子地创建题目和 4 个选项，answerIndex 指向的选项标记为正确答案。
func (s *QuestionService) Create(req QuestionRequest) error {
	name := strings.TrimSpace(req.AssessmentName)
	text := strings.TrimSpace(req.Text)
	if name == "" {
		return util.Invalidf("assessment name is required")
	}
	if text == "" {
		return util.Invalidf("question text is required")
	}
	if len(req.Options) != model.OptionsPerQuestion {
		return util.Invalidf("a question requires exactly %d options, got %d", model.OptionsPerQuestion, len(req.Options))
	}
	if req.AnswerIndex < 0 || req.AnswerIndex >= model.OptionsPerQuestion {
		return util.Invalidf("answer index must be between 0 and %d, got %d", model.OptionsPerQuestion-1, req.AnswerIndex)
	}

	a, err := s.AssessmentRepo.FindByName(name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.NotFoundf("assessment with name %q not found", name)
	}
	if err != nil {
		return err
	}

	if _, err := s.Repo.FindByText(a.ID, text); err == nil {
		return util.Conflictf("question with the same text already exists in assessment %q", a.Name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	q := &model.Question{AssessmentID: a.ID, Text: text}
	options := make([]model.Option, model.OptionsPerQuestion)
	for i, optionText := range req.Options {
		options[i] = model.Option{
			Text:      optionText,
			IsCorrect: i == req.AnswerIndex,
		}
	}

	return s.Repo.CreateWithOptions(q, options)
}

// Delete 删除题目，级联删除其选项
func (s *QuestionService) Delete(req QuestionDeleteRequest) error {
	name := strings.TrimSpace(req.AssessmentName)
	text := strings.TrimSpace(req.Text)
	if name == "" {
		return util.Invalidf("assessment name is required")
	}
	if text == "" {
		return util.Invalidf("question text is required")
	}

	a, err := s.AssessmentRepo.FindByName(name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.NotFoundf("assessment with name %q not found", name)
	}
	if err != nil {
		return err
	}

	q, err := s.Repo.FindByText(a.ID, text)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.NotFoundf("question with the given text not found in assessment %q", a.Name)
	}
	if err != nil {
		return err
	}

	return s.Repo.DeleteCascade(q)
}
