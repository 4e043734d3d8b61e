package repository

import (
	"study_planner_backend/internal/model"

	"gorm.io/gorm"
)

// WeekConfigRepository 处理每周可用时间配置的数据访问

type WeekConfigRepository struct {
	DB *gorm.DB
}

func NewWeekConfigRepository(db *gorm.DB) *WeekConfigRepository {
	return &WeekConfigRepository{DB: db}
}

// FindByUserID 获取用户的周配置，空闲时间块按 Position 保序
func (r *WeekConfigRepository) FindByUserID(userID uint) (*model.WeekConfig, error) {
	var config model.WeekConfig
	err := r.DB.Preload("FreeTimeBlocks", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	}).Where("user_id = ?", userID).First(&config).Error
	return &config, err
}

// Create 创建周配置
func (r *WeekConfigRepository) Create(config *model.WeekConfig) error {
	return r.DB.Create(config).Error
}

// Replace 整体替换周配置：总时长与全部空闲时间块一并覆盖
func (r *WeekConfigRepository) Replace(config *model.WeekConfig) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.WeekConfig{}).
			Where("id = ?", config.ID).
			Updates(map[string]interface{}{
				"total_available_hours": config.TotalAvailableHours,
				"week_start_date":       config.WeekStartDate,
			}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("week_config_id = ?", config.ID).
			Delete(&model.FreeTimeBlock{}).Error; err != nil {
			return err
		}
		for i := range config.FreeTimeBlocks {
			config.FreeTimeBlocks[i].ID = 0
			config.FreeTimeBlocks[i].WeekConfigID = config.ID
			config.FreeTimeBlocks[i].Position = i
			if err := tx.Create(&config.FreeTimeBlocks[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
