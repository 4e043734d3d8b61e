package repository

import (
	"errors"
	"time"

	"study_planner_backend/internal/model"

	"gorm.io/gorm"
)

// AIModelRepository 处理预测器模型 blob 的数据访问，每用户一条

type AIModelRepository struct {
	DB *gorm.DB
}

func NewAIModelRepository(db *gorm.DB) *AIModelRepository {
	return &AIModelRepository{DB: db}
}

// FindByUserID 获取用户的模型记录，不存在时创建空白记录
func (r *AIModelRepository) FindByUserID(userID uint) (*model.AIModel, error) {
	var m model.AIModel
	err := r.DB.Where("user_id = ?", userID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		m = model.AIModel{
			UserID:      userID,
			Version:     "1.0",
			LastTrained: time.Now(),
		}
		if err := r.DB.Create(&m).Error; err != nil {
			return nil, err
		}
		return &m, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Save 整体写回模型 blob
func (r *AIModelRepository) Save(m *model.AIModel) error {
	return r.DB.Save(m).Error
}
