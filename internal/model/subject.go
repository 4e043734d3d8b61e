package model

import "time"

// Subject 科目，调度核心的主输入
// PriorityScore 只由优先级计算写入，范围 [0,1]
// swagger:model Subject
type Subject struct {
	BaseModel
	UserID        uint      `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	Name          string    `gorm:"size:255;not null" json:"name"`
	Difficulty    int       `gorm:"not null;default:3" json:"difficulty"` // 1-5
	StartDate     time.Time `gorm:"type:datetime;not null" json:"startDate"`
	ExamDate      time.Time `gorm:"type:datetime;not null" json:"examDate"`
	TargetHours   float64   `gorm:"default:0" json:"targetHours"`
	AllocatedTime float64   `gorm:"default:0" json:"allocatedTime"` // 每周分配小时数
	PriorityScore float64   `gorm:"default:0" json:"priorityScore"`
	Tags          string    `gorm:"size:500" json:"tags"` // 逗号分隔
}

func (Subject) TableName() string {
	return "subjects"
}
