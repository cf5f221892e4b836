package model

// Reading 测评创建时未提供文章则使用占位内容
const (
	DefaultPassageTitle = "Default title"
	DefaultPassageText  = "Default text..."
)

// swagger:model Passage
type Passage struct {
	BaseModel
	AssessmentID uint   `gorm:"uniqueIndex;not null" json:"assessmentId"`
	Title        string `gorm:"size:255;not null" json:"title"`
	Text         string `gorm:"type:text;not null" json:"text"`
}

func (Passage) TableName() string {
	return "passages"
}
