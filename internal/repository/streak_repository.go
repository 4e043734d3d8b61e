package repository

import (
	"study_planner_backend/internal/model"

	"gorm.io/gorm"
)

// StreakRepository 处理连续学习天数的数据访问

type StreakRepository struct {
	DB *gorm.DB
}

func NewStreakRepository(db *gorm.DB) *StreakRepository {
	return &StreakRepository{DB: db}
}

// FindByUserID 获取用户的连击记录
func (r *StreakRepository) FindByUserID(userID uint) (*model.Streak, error) {
	var streak model.Streak
	err := r.DB.Where("user_id = ?", userID).First(&streak).Error
	return &streak, err
}

// Save 创建或更新连击记录
func (r *StreakRepository) Save(streak *model.Streak) error {
	return r.DB.Save(streak).Error
}

// CurrentStreak 读取当前连击天数，没有记录时为 0
func (r *StreakRepository) CurrentStreak(userID uint) int {
	streak, err := r.FindByUserID(userID)
	if err != nil {
		return 0
	}
	return streak.CurrentStreak
}
