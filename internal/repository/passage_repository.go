package repository

import (
	"testbank_backend/internal/model"

	"gorm.io/gorm"
)

type PassageRepository struct {
	DB *gorm.DB
}

func NewPassageRepository(db *gorm.DB) *PassageRepository {
	return &PassageRepository{DB: db}
}

func (r *PassageRepository) Create(p *model.Passage) error {
	return r.DB.Create(p).Error
}

func (r *PassageRepository) FindByAssessmentID(assessmentID uint) (*model.Passage, error) {
	var p model.Passage
	err := r.DB.Where("assessment_id = ?", assessmentID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}
