package model

import "time"

// AIModel 每个用户一条，持久化启发式预测器的完整状态
// TrainingData 与 Weights 以 JSON 文本整体读写，不做局部更新
// swagger:model AIModel
type AIModel struct {
	BaseModel
	UserID       uint      `gorm:"uniqueIndex;type:bigint unsigned;not null" json:"userId"`
	TrainingData string    `gorm:"type:longtext" json:"-"`
	Weights      string    `gorm:"type:text" json:"-"`
	Version      string    `gorm:"size:10;default:'1.0'" json:"version"`
	LastTrained  time.Time `gorm:"type:datetime" json:"lastTrained"`
}

func (AIModel) TableName() string {
	return "ai_models"
}
