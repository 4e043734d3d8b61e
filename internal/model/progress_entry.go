package model

import "time"

// ProgressEntry 一次学习会话的记录
// swagger:model ProgressEntry
type ProgressEntry struct {
	BaseModel
	UserID     uint           `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	SubjectID  uint           `gorm:"index;type:bigint unsigned;not null" json:"subjectId"`
	MaterialID *uint          `gorm:"type:bigint unsigned" json:"materialId,omitempty"`
	Material   *StudyMaterial `gorm:"foreignKey:MaterialID" json:"material,omitempty"`
	Date       time.Time      `gorm:"type:datetime;index" json:"date"`
	TimeSpent  float64        `gorm:"not null" json:"timeSpent"` // 分钟
	Tag        MaterialTag    `gorm:"type:enum('study','revision','notes','reference','assignment');not null" json:"tag"`
}

func (ProgressEntry) TableName() string {
	return "progress_entries"
}
