package repository

import (
	"time"

	"study_planner_backend/internal/model"

	"gorm.io/gorm"
)

// ProgressRepository 处理学习进度记录的数据访问

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// Create 记录一次学习会话
func (r *ProgressRepository) Create(entry *model.ProgressEntry) error {
	return r.DB.Create(entry).Error
}

// FindByUserID 获取用户的全部进度记录
func (r *ProgressRepository) FindByUserID(userID uint) ([]model.ProgressEntry, error) {
	var entries []model.ProgressEntry
	err := r.DB.Where("user_id = ?", userID).Order("date").Find(&entries).Error
	return entries, err
}

// FindByUserIDSince 获取某时间之后的进度记录
func (r *ProgressRepository) FindByUserIDSince(userID uint, since time.Time) ([]model.ProgressEntry, error) {
	var entries []model.ProgressEntry
	err := r.DB.Where("user_id = ? AND date >= ?", userID, since).Order("date").Find(&entries).Error
	return entries, err
}
