package service

import (
	"errors"
	"strings"

	"testbank_backend/internal/model"
	"testbank_backend/internal/util"

	"gorm.io/gorm"
)

// PassageRepo 由 repository.PassageRepository 实现
type PassageRepo interface {
	Create(p *model.Passage) error
	FindByAssessmentID(assessmentID uint) (*model.Passage, error)
}

type PassageService struct {
	Repo           PassageRepo
	AssessmentRepo AssessmentRepo
}

func NewPassageService(repo PassageRepo, assessmentRepo AssessmentRepo) *PassageService {
	return &PassageService{Repo: repo, AssessmentRepo: assessmentRepo}
}

type PassageRequest struct {
	AssessmentName string `json:"assessmentName"`
	Title          string `json:"title"`
	Text           string `json:"text"`
}

// Create 为 Reading 测评挂接文章。文章与测评 1:1，已有文章的测评拒绝重复挂接。
func (s *PassageService) Create(req PassageRequest) error {
	name := strings.TrimSpace(req.AssessmentName)
	title := strings.TrimSpace(req.Title)
	text := strings.TrimSpace(req.Text)
	if name == "" {
		return util.Invalidf("assessment name is required")
	}
	if title == "" {
		return util.Invalidf("passage title is required")
	}
	if text == "" {
		return util.Invalidf("passage text is required")
	}

	a, err := s.AssessmentRepo.FindByName(name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.NotFoundf("assessment with name %q not found", name)
	}
	if err != nil {
		return err
	}

	if !a.IsReading() {
		return util.Invalidf("passages can only be attached to Reading assessments, %q is a %s assessment", a.Name, a.Type)
	}

	if _, err := s.Repo.FindByAssessmentID(a.ID); err == nil {
		return util.Conflictf("assessment %q already has a passage", a.Name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	p := &model.Passage{
		AssessmentID: a.ID,
		Title:        title,
		Text:         text,
	}
	return s.Repo.Create(p)
}
