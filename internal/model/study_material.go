package model

type MaterialTag string

const (
	TagStudy      MaterialTag = "study"
	TagRevision   MaterialTag = "revision"
	TagNotes      MaterialTag = "notes"
	TagReference  MaterialTag = "reference"
	TagAssignment MaterialTag = "assignment"
)

// StudyMaterial 科目下的学习材料，进度按投入时间对目标时长折算
// swagger:model StudyMaterial
type StudyMaterial struct {
	BaseModel
	UserID      uint        `gorm:"index;type:bigint unsigned;not null" json:"userId"`
	SubjectID   uint        `gorm:"index;type:bigint unsigned;not null" json:"subjectId"`
	Subject     *Subject    `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
	Title       string      `gorm:"size:255;not null" json:"title"`
	Tag         MaterialTag `gorm:"type:enum('study','revision','notes','reference','assignment');not null" json:"tag"`
	TargetHours float64     `gorm:"default:0" json:"targetHours"`
	TimeSpent   float64     `gorm:"default:0" json:"timeSpent"` // 分钟
	Progress    float64     `gorm:"default:0" json:"progress"`  // 0-100
}

func (StudyMaterial) TableName() string {
	return "study_materials"
}
