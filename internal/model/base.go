package model

import "time"

// 删除操作为物理删除：名称带唯一索引，软删除残留行会挡住重建同名测评。
// swagger:model
type BaseModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
