package repository

import (
	"study_planner_backend/internal/model"

	"gorm.io/gorm"
)

// MaterialRepository 处理学习材料的数据访问

type MaterialRepository struct {
	DB *gorm.DB
}

func NewMaterialRepository(db *gorm.DB) *MaterialRepository {
	return &MaterialRepository{DB: db}
}

// Create 创建学习材料
func (r *MaterialRepository) Create(material *model.StudyMaterial) error {
	return r.DB.Create(material).Error
}

// Update 更新学习材料
func (r *MaterialRepository) Update(material *model.StudyMaterial) error {
	return r.DB.Save(material).Error
}

// Delete 删除学习材料
func (r *MaterialRepository) Delete(id, userID uint) error {
	return r.DB.Where("id = ? AND user_id = ?", id, userID).Delete(&model.StudyMaterial{}).Error
}

// FindByIDAndUserID 根据ID和用户ID查找材料
func (r *MaterialRepository) FindByIDAndUserID(id, userID uint) (*model.StudyMaterial, error) {
	var material model.StudyMaterial
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&material).Error
	return &material, err
}

// FindByUserID 获取用户的所有材料
func (r *MaterialRepository) FindByUserID(userID uint) ([]model.StudyMaterial, error) {
	var materials []model.StudyMaterial
	err := r.DB.Preload("Subject").Where("user_id = ?", userID).Find(&materials).Error
	return materials, err
}

// FindByUserIDAndSubjectID 获取用户某科目下的材料
func (r *MaterialRepository) FindByUserIDAndSubjectID(userID, subjectID uint) ([]model.StudyMaterial, error) {
	var materials []model.StudyMaterial
	err := r.DB.Where("user_id = ? AND subject_id = ?", userID, subjectID).Find(&materials).Error
	return materials, err
}
