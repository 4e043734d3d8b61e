package service

import (
	"study_planner_backend/internal/model"
	"study_planner_backend/internal/repository"
	"study_planner_backend/internal/util"
)

type MaterialService struct {
	MaterialRepo *repository.MaterialRepository
	SubjectRepo  *repository.SubjectRepository
}

func NewMaterialService(materialRepo *repository.MaterialRepository, subjectRepo *repository.SubjectRepository) *MaterialService {
	return &MaterialService{MaterialRepo: materialRepo, SubjectRepo: subjectRepo}
}

type CreateMaterialRequest struct {
	SubjectID   uint              `json:"subjectId" binding:"required"`
	Title       string            `json:"title" binding:"required"`
	Tag         model.MaterialTag `json:"tag" binding:"required"`
	TargetHours float64           `json:"targetHours"`
}

type UpdateMaterialRequest struct {
	Title       *string            `json:"title"`
	Tag         *model.MaterialTag `json:"tag"`
	TargetHours *float64           `json:"targetHours"`
}

// 算法四：材料进度折算
// 只有 study/revision/notes 三类按投入时间对目标时长折算，其余恒为 0
func CalculateProgress(material *model.StudyMaterial) float64 {
	switch material.Tag {
	case model.TagStudy, model.TagRevision, model.TagNotes:
	default:
		return 0
	}

	targetMinutes := material.TargetHours * 60
	if targetMinutes == 0 {
		return 0
	}

	percentage := material.TimeSpent / targetMinutes * 100
	if percentage > 100 {
		return 100
	}
	if percentage < 0 {
		return 0
	}
	return percentage
}

// CreateMaterial 在科目下创建学习材料
func (s *MaterialService) CreateMaterial(userID uint, req CreateMaterialRequest) (*model.StudyMaterial, error) {
	if !validTag(req.Tag) {
		return nil, util.ErrInvalidMaterialTag
	}
	if _, err := s.SubjectRepo.FindByIDAndUserID(req.SubjectID, userID); err != nil {
		return nil, err
	}

	material := &model.StudyMaterial{
		UserID:      userID,
		SubjectID:   req.SubjectID,
		Title:       req.Title,
		Tag:         req.Tag,
		TargetHours: req.TargetHours,
	}
	if err := s.MaterialRepo.Create(material); err != nil {
		return nil, err
	}
	return material, nil
}

// GetMaterials 获取用户的所有材料
func (s *MaterialService) GetMaterials(userID uint) ([]model.StudyMaterial, error) {
	return s.MaterialRepo.FindByUserID(userID)
}

// UpdateMaterial 更新材料，进度随目标时长变化重新折算
func (s *MaterialService) UpdateMaterial(userID, id uint, req UpdateMaterialRequest) (*model.StudyMaterial, error) {
	material, err := s.MaterialRepo.FindByIDAndUserID(id, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		material.Title = *req.Title
	}
	if req.Tag != nil {
		if !validTag(*req.Tag) {
			return nil, util.ErrInvalidMaterialTag
		}
		material.Tag = *req.Tag
	}
	if req.TargetHours != nil {
		material.TargetHours = *req.TargetHours
	}
	material.Progress = CalculateProgress(material)

	if err := s.MaterialRepo.Update(material); err != nil {
		return nil, err
	}
	return material, nil
}

// DeleteMaterial 删除材料
func (s *MaterialService) DeleteMaterial(userID, id uint) error {
	if _, err := s.MaterialRepo.FindByIDAndUserID(id, userID); err != nil {
		return err
	}
	return s.MaterialRepo.Delete(id, userID)
}

func validTag(tag model.MaterialTag) bool {
	switch tag {
	case model.TagStudy, model.TagRevision, model.TagNotes, model.TagReference, model.TagAssignment:
		return true
	}
	return false
}
