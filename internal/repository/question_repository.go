package repository

import (
	"strings"

	"testbank_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

// FindByText 在指定测评下大小写不敏感匹配题干
func (r *QuestionRepository) FindByText(assessmentID uint, text string) (*model.Question, error) {
	var q model.Question
	err := r.DB.Where("assessment_id = ? AND LOWER(text) = ?", assessmentID, strings.ToLower(text)).
		First(&q).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// CreateWithOptions 题目和 4 个选项在一个事务内写入，要么全部落库要么全部回滚
func (r *QuestionRepository) CreateWithOptions(q *model.Question, options []model.Option) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(q).Error; err != nil {
			return err
		}
		for i := range options {
			options[i].QuestionID = q.ID
		}
		return tx.Create(&options).Error
	})
}

// DeleteCascade 删除题目及其选项
func (r *QuestionRepository) DeleteCascade(q *model.Question) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", q.ID).Delete(&model.Option{}).Error; err != nil {
			return err
		}
		return tx.Delete(q).Error
	})
}
