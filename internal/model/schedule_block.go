package model

import "time"

// ScheduleBlock 一周课表里的一个具体学习块
// 整表按用户整体重建，从不增量修改
// swagger:model ScheduleBlock
type ScheduleBlock struct {
	BaseModel
	UserID          uint      `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	SubjectID       uint      `gorm:"index;type:bigint unsigned;not null" json:"subjectId"`
	Subject         *Subject  `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
	Day             Weekday   `gorm:"type:enum('Monday','Tuesday','Wednesday','Thursday','Friday','Saturday','Sunday');not null" json:"day"`
	StartTime       string    `gorm:"size:5;not null" json:"startTime"`
	EndTime         string    `gorm:"size:5;not null" json:"endTime"`
	DurationMinutes float64   `gorm:"not null" json:"durationMinutes"`
	WeekStartDate   time.Time `gorm:"type:datetime" json:"weekStartDate"`
	Completed       bool      `gorm:"default:false" json:"completed"`
}

func (ScheduleBlock) TableName() string {
	return "schedule_blocks"
}
