package model

// 每道题固定 4 个选项
const OptionsPerQuestion = 4

// swagger:model Question
type Question struct {
	BaseModel
	AssessmentID uint     `gorm:"index;not null" json:"assessmentId"`
	Text         string   `gorm:"type:text;not null" json:"text"`
	Options      []Option `gorm:"foreignKey:QuestionID" json:"options"`
}

func (Question) TableName() string {
	return "questions"
}

// swagger:model Option
type Option struct {
	BaseModel
	QuestionID uint   `gorm:"index;not null" json:"questionId"`
	Text       string `gorm:"type:text;not null" json:"text"`
	IsCorrect  bool   `gorm:"default:false" json:"isCorrect"`
}

func (Option) TableName() string {
	return "options"
}
