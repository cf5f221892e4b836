package repository

import (
	"strings"

	"testbank_backend/internal/model"

	"gorm.io/gorm"
)

type AssessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: db}
}

// FindByName 大小写不敏感匹配测评名
func (r *AssessmentRepository) FindByName(name string) (*model.Assessment, error) {
	var a model.Assessment
	err := r.DB.Where("LOWER(name) = ?", strings.ToLower(name)).First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// FindByNameWithRelations 预加载题目（含选项）和文章
func (r *AssessmentRepository) FindByNameWithRelations(name string) (*model.Assessment, error) {
	var a model.Assessment
	err := r.DB.
		Preload("Questions.Options").
		Preload("Passage").
		Where("LOWER(name) = ?", strings.ToLower(name)).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListNamesByType 按入库顺序返回指定类型的测评名
func (r *AssessmentRepository) ListNamesByType(assessmentType string) ([]string, error) {
	names := []string{}
	err := r.DB.Model(&model.Assessment{}).
		Where("type = ?", assessmentType).
		Order("id asc").
		Pluck("name", &names).Error
	return names, err
}

// CreateWithPassage 创建测评，Reading 类型连同文章一个事务写入
func (r *AssessmentRepository) CreateWithPassage(a *model.Assessment, p *model.Passage) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(a).Error; err != nil {
			return err
		}
		if p == nil {
			return nil
		}
		p.AssessmentID = a.ID
		return tx.Create(p).Error
	})
}

// DeleteCascade 删除测评及其题目、选项和文章
func (r *AssessmentRepository) DeleteCascade(a *model.Assessment) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var questionIDs []uint
		if err := tx.Model(&model.Question{}).
			Where("assessment_id = ?", a.ID).
			Pluck("id", &questionIDs).Error; err != nil {
			return err
		}
		if len(questionIDs) > 0 {
			if err := tx.Where("question_id IN ?", questionIDs).Delete(&model.Option{}).Error; err != nil {
				return err
			}
			if err := tx.Where("assessment_id = ?", a.ID).Delete(&model.Question{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("assessment_id = ?", a.ID).Delete(&model.Passage{}).Error; err != nil {
			return err
		}
		return tx.Delete(a).Error
	})
}
