package model

import "time"

type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// WeekConfig 每个用户一条，描述每周可用学习时间
// swagger:model WeekConfig
type WeekConfig struct {
	BaseModel
	UserID              uint            `gorm:"uniqueIndex;type:bigint unsigned;not null" json:"userId"`
	TotalAvailableHours float64         `gorm:"not null;default:40" json:"totalAvailableHours"`
	WeekStartDate       time.Time       `gorm:"type:datetime" json:"weekStartDate"`
	FreeTimeBlocks      []FreeTimeBlock `gorm:"foreignKey:WeekConfigID;constraint:OnDelete:CASCADE" json:"freeTimeBlocks"`
}

func (WeekConfig) TableName() string {
	return "week_configs"
}

// FreeTimeBlock 用户声明的空闲时间窗口，按 Position 保序
// swagger:model FreeTimeBlock
type FreeTimeBlock struct {
	BaseModel
	WeekConfigID uint    `gorm:"index;type:bigint unsigned;not null" json:"-"`
	Day          Weekday `gorm:"type:enum('Monday','Tuesday','Wednesday','Thursday','Friday','Saturday','Sunday');not null" json:"day"`
	StartTime    string  `gorm:"size:5;not null" json:"startTime"` // HH:MM
	EndTime      string  `gorm:"size:5;not null" json:"endTime"`   // HH:MM
	Position     int     `gorm:"not null;default:0" json:"position"`
}

func (FreeTimeBlock) TableName() string {
	return "free_time_blocks"
}
