package repository

import (
	"study_planner_backend/internal/model"

	"gorm.io/gorm"
)

// ScheduleBlockRepository 处理课表块的数据访问

type ScheduleBlockRepository struct {
	DB *gorm.DB
}

func NewScheduleBlockRepository(db *gorm.DB) *ScheduleBlockRepository {
	return &ScheduleBlockRepository{DB: db}
}

// FindByUserID 获取用户当前的所有课表块，按天和开始时间排序
func (r *ScheduleBlockRepository) FindByUserID(userID uint) ([]model.ScheduleBlock, error) {
	var blocks []model.ScheduleBlock
	err := r.DB.Preload("Subject").
		Where("user_id = ?", userID).
		Order("FIELD(day,'Monday','Tuesday','Wednesday','Thursday','Friday','Saturday','Sunday'), start_time").
		Find(&blocks).Error
	return blocks, err
}

// ReplaceForUser 原子替换用户的整套课表：先删全量再插全量，单事务
func (r *ScheduleBlockRepository) ReplaceForUser(userID uint, blocks []model.ScheduleBlock) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("user_id = ?", userID).
			Delete(&model.ScheduleBlock{}).Error; err != nil {
			return err
		}
		if len(blocks) == 0 {
			return nil
		}
		return tx.Create(&blocks).Error
	})
}

// DeleteByUserID 删除用户的全部课表块
func (r *ScheduleBlockRepository) DeleteByUserID(userID uint) error {
	return r.DB.Unscoped().Where("user_id = ?", userID).Delete(&model.ScheduleBlock{}).Error
}
