package service

import (
	"errors"
	"strings"

	"testbank_backend/internal/model"
	"testbank_backend/internal/util"

	"gorm.io/gorm"
)

// AssessmentRepo 是服务层对测评存储的最小依赖，由 repository.AssessmentRepository 实现。
type AssessmentRepo interface {
	FindByName(name string) (*model.Assessment, error)
	FindByNameWithRelations(name string) (*model.Assessment, error)
	ListNamesByType(assessmentType string) ([]string, error)
	CreateWithPassage(a *model.Assessment, p *model.Passage) error
	DeleteCascade(a *model.Assessment) error
}

type AssessmentService struct {
	Repo AssessmentRepo
}

func NewAssessmentService(repo AssessmentRepo) *AssessmentService {
	return &AssessmentService{Repo: repo}
}

type AssessmentRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Create 校验类型与名称唯一性后入库；Reading 类型同时创建占位文章。
func (s *AssessmentService) Create(req AssessmentRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return util.Invalidf("assessment name is required")
	}

	assessmentType := model.NormalizeType(req.Type)
	if assessmentType == "" {
		return util.Invalidf("assessment type must be Reading or Writing, got %q", req.Type)
	}

	_, err := s.Repo.FindByName(name)
	if err == nil {
		return util.Conflictf("assessment with name %q already exists", name)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	a := &model.Assessment{Name: name, Type: assessmentType}

	var p *model.Passage
	if assessmentType == model.AssessmentTypeReading {
		p = &model.Passage{
			Title: model.DefaultPassageTitle,
			Text:  model.DefaultPassageText,
		}
	}

	return s.Repo.CreateWithPassage(a, p)
}

// Get 返回测评及其题目（含选项）和文章
func (s *AssessmentService) Get(name string) (*model.Assessment, error) {
	a, err := s.Repo.FindByNameWithRelations(name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.NotFoundf("assessment with name %q not found", name)
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// List 按类型编码（0=Reading 1=Writing）返回入库顺序的测评名
func (s *AssessmentService) List(typeCode int) ([]string, error) {
	assessmentType, ok := model.TypeByCode(typeCode)
	if !ok {
		return nil, util.Invalidf("assessment type code must be 0 (Reading) or 1 (Writing), got %d", typeCode)
	}
	return s.Repo.ListNamesByType(assessmentType)
}

// Delete 删除测评，级联删除其题目、选项和文章
func (s *AssessmentService) Delete(name string) error {
	if strings.TrimSpace(name) == "" {
		return util.Invalidf("assessment name is required")
	}

	a, err := s.Repo.FindByName(name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.NotFoundf("assessment with name %q not found", name)
	}
	if err != nil {
		return err
	}

	return s.Repo.DeleteCascade(a)
}
