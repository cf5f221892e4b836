package model

import "strings"

// 测评类型，规范化后首字母大写存储
const (
	AssessmentTypeReading = "Reading"
	AssessmentTypeWriting = "Writing"
)

// 类型编码，列表接口使用 0=Reading 1=Writing
const (
	TypeCodeReading = 0
	TypeCodeWriting = 1
)

// swagger:model Assessment
type Assessment struct {
	BaseModel
	Name      string     `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Type      string     `gorm:"size:20;not null" json:"type"`
	Questions []Question `gorm:"foreignKey:AssessmentID" json:"questions"`
	Passage   *Passage   `gorm:"foreignKey:AssessmentID" json:"passage,omitempty"`
}

func (Assessment) TableName() string {
	return "assessments"
}

func (a *Assessment) IsReading() bool {
	return a.Type == AssessmentTypeReading
}

// NormalizeType 大小写不敏感地解析测评类型，返回规范化写法。
// 未知类型返回空串。
func NormalizeType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "reading":
		return AssessmentTypeReading
	case "writing":
		return AssessmentTypeWriting
	default:
		return ""
	}
}

// TypeByCode 将列表接口的类型编码映射为存储类型。
func TypeByCode(code int) (string, bool) {
	switch code {
	case TypeCodeReading:
		return AssessmentTypeReading, true
	case TypeCodeWriting:
		return AssessmentTypeWriting, true
	default:
		return "", false
	}
}
