package repository

import (
	"study_planner_backend/internal/model"

	"gorm.io/gorm"
)

// SubjectRepository 处理科目的数据访问

type SubjectRepository struct {
	DB *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) *SubjectRepository {
	return &SubjectRepository{DB: db}
}

// Create 创建科目
func (r *SubjectRepository) Create(subject *model.Subject) error {
	return r.DB.Create(subject).Error
}

// Update 更新科目
func (r *SubjectRepository) Update(subject *model.Subject) error {
	return r.DB.Save(subject).Error
}

// UpdatePriorityScore 只回写优先级得分
func (r *SubjectRepository) UpdatePriorityScore(id uint, score float64) error {
	return r.DB.Model(&model.Subject{}).
		Where("id = ?", id).
		Update("priority_score", score).Error
}

// UpdateAllocatedTime 回写每周分配时长
func (r *SubjectRepository) UpdateAllocatedTime(id uint, hours float64) error {
	return r.DB.Model(&model.Subject{}).
		Where("id = ?", id).
		Update("allocated_time", hours).Error
}

// Delete 删除科目并级联清理材料、进度记录与课表块
func (r *SubjectRepository) Delete(id, userID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("subject_id = ? AND user_id = ?", id, userID).
			Delete(&model.StudyMaterial{}).Error; err != nil {
			return err
		}
		if err := tx.Where("subject_id = ? AND user_id = ?", id, userID).
			Delete(&model.ProgressEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("subject_id = ? AND user_id = ?", id, userID).
			Delete(&model.ScheduleBlock{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ? AND user_id = ?", id, userID).
			Delete(&model.Subject{}).Error
	})
}

// FindByID 根据ID查找科目
func (r *SubjectRepository) FindByID(id uint) (*model.Subject, error) {
	var subject model.Subject
	err := r.DB.First(&subject, id).Error
	return &subject, err
}

// FindByIDAndUserID 根据ID和用户ID查找科目
func (r *SubjectRepository) FindByIDAndUserID(id, userID uint) (*model.Subject, error) {
	var subject model.Subject
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&subject).Error
	return &subject, err
}

// FindByUserID 获取用户的所有科目
func (r *SubjectRepository) FindByUserID(userID uint) ([]model.Subject, error) {
	var subjects []model.Subject
	err := r.DB.Where("user_id = ?", userID).Order("exam_date").Find(&subjects).Error
	return subjects, err
}

// FindByUserIDOrderByPriority 按优先级降序获取用户科目
func (r *SubjectRepository) FindByUserIDOrderByPriority(userID uint) ([]model.Subject, error) {
	var subjects []model.Subject
	err := r.DB.Where("user_id = ?", userID).Order("priority_score DESC").Find(&subjects).Error
	return subjects, err
}
