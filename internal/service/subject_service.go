package service

import (
	"time"

	"study_planner_backend/internal/model"
	"study_planner_backend/internal/repository"
	"study_planner_backend/internal/scheduler"
	"study_planner_backend/internal/util"
)

type SubjectService struct {
	SubjectRepo *repository.SubjectRepository
	Regenerator *Regenerator
}

func NewSubjectService(subjectRepo *repository.SubjectRepository, regenerator *Regenerator) *SubjectService {
	return &SubjectService{SubjectRepo: subjectRepo, Regenerator: regenerator}
}

type CreateSubjectRequest struct {
	Name        string    `json:"name" binding:"required"`
	Difficulty  int       `json:"difficulty" binding:"required,min=1,max=5"`
	StartDate   time.Time `json:"startDate"`
	ExamDate    time.Time `json:"examDate" binding:"required"`
	TargetHours float64   `json:"targetHours"`
	Tags        string    `json:"tags"`
}

type UpdateSubjectRequest struct {
	Name        *string    `json:"name"`
	Difficulty  *int       `json:"difficulty"`
	StartDate   *time.Time `json:"startDate"`
	ExamDate    *time.Time `json:"examDate"`
	TargetHours *float64   `json:"targetHours"`
	Tags        *string    `json:"tags"`
}

// CreateSubject 创建科目，初始优先级立即算好，并触发课表重建
func (s *SubjectService) CreateSubject(userID uint, req CreateSubjectRequest) (*model.Subject, error) {
	startDate := req.StartDate
	if startDate.IsZero() {
		startDate = time.Now()
	}
	if !req.ExamDate.After(startDate) {
		return nil, util.ErrExamDateNotAfterStart
	}

	subject := &model.Subject{
		UserID:      userID,
		Name:        req.Name,
		Difficulty:  req.Difficulty,
		StartDate:   startDate,
		ExamDate:    req.ExamDate,
		TargetHours: req.TargetHours,
		Tags:        req.Tags,
	}
	subject.PriorityScore = scheduler.Score(*subject, time.Now())

	if err := s.SubjectRepo.Create(subject); err != nil {
		return nil, err
	}

	s.Regenerator.Trigger(userID, scheduler.EventSubjectAdded)
	return subject, nil
}

// GetSubjects 获取用户的所有科目
func (s *SubjectService) GetSubjects(userID uint) ([]model.Subject, error) {
	return s.SubjectRepo.FindByUserID(userID)
}

// GetSubject 获取单个科目
func (s *SubjectService) GetSubject(userID, id uint) (*model.Subject, error) {
	return s.SubjectRepo.FindByIDAndUserID(id, userID)
}

// UpdateSubject 更新科目并触发课表重建（考试日期变动尤其重要）
func (s *SubjectService) UpdateSubject(userID, id uint, req UpdateSubjectRequest) (*model.Subject, error) {
	subject, err := s.SubjectRepo.FindByIDAndUserID(id, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		subject.Name = *req.Name
	}
	if req.Difficulty != nil {
		if *req.Difficulty < 1 || *req.Difficulty > 5 {
			return nil, util.ErrInvalidDifficulty
		}
		subject.Difficulty = *req.Difficulty
	}
	if req.StartDate != nil {
		subject.StartDate = *req.StartDate
	}
	if req.ExamDate != nil {
		subject.ExamDate = *req.ExamDate
	}
	if req.TargetHours != nil {
		subject.TargetHours = *req.TargetHours
	}
	if req.Tags != nil {
		subject.Tags = *req.Tags
	}

	subject.PriorityScore = scheduler.Score(*subject, time.Now())

	if err := s.SubjectRepo.Update(subject); err != nil {
		return nil, err
	}

	s.Regenerator.Trigger(userID, scheduler.EventSubjectUpdated)
	return subject, nil
}

// DeleteSubject 删除科目，依赖数据级联清理后触发课表重建
func (s *SubjectService) DeleteSubject(userID, id uint) error {
	if _, err := s.SubjectRepo.FindByIDAndUserID(id, userID); err != nil {
		return err
	}
	if err := s.SubjectRepo.Delete(id, userID); err != nil {
		return err
	}

	s.Regenerator.Trigger(userID, scheduler.EventSubjectDeleted)
	return nil
}
