package model

import "time"

// Streak 连续学习天数，给预测器提供 recentStreak 输入
// swagger:model Streak
type Streak struct {
	BaseModel
	UserID         uint       `gorm:"uniqueIndex;type:bigint unsigned;not null" json:"userId"`
	CurrentStreak  int        `gorm:"default:0" json:"currentStreak"`
	LongestStreak  int        `gorm:"default:0" json:"longestStreak"`
	LastStudyDate  *time.Time `gorm:"type:datetime" json:"lastStudyDate"`
	TotalStudyDays int        `gorm:"default:0" json:"totalStudyDays"`
}

func (Streak) TableName() string {
	return "streaks"
}
