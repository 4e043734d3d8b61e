package service

import (
	"errors"
	"time"

	"study_planner_backend/internal/model"
	"study_planner_backend/internal/repository"
	"study_planner_backend/internal/scheduler"
	"study_planner_backend/internal/util"

	"gorm.io/gorm"
)

type WeekConfigService struct {
	WeekConfigRepo *repository.WeekConfigRepository
	Regenerator    *Regenerator
}

func NewWeekConfigService(weekConfigRepo *repository.WeekConfigRepository, regenerator *Regenerator) *WeekConfigService {
	return &WeekConfigService{WeekConfigRepo: weekConfigRepo, Regenerator: regenerator}
}

type FreeTimeBlockInput struct {
	Day       model.Weekday `json:"day" binding:"required"`
	StartTime string        `json:"startTime" binding:"required"`
	EndTime   string        `json:"endTime" binding:"required"`
}

type UpdateWeekConfigRequest struct {
	TotalAvailableHours float64              `json:"totalAvailableHours" binding:"min=0"`
	FreeTimeBlocks      []FreeTimeBlockInput `json:"freeTimeBlocks"`
}

// GetOrCreate 获取用户周配置，没有时建一条 40 小时的空白默认
func (s *WeekConfigService) GetOrCreate(userID uint) (*model.WeekConfig, error) {
	config, err := s.WeekConfigRepo.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		config = &model.WeekConfig{
			UserID:              userID,
			TotalAvailableHours: 40,
			WeekStartDate:       time.Now(),
			FreeTimeBlocks:      []model.FreeTimeBlock{},
		}
		if err := s.WeekConfigRepo.Create(config); err != nil {
			return nil, err
		}
		return config, nil
	}
	if err != nil {
		return nil, err
	}
	return config, nil
}

// Update 整体覆盖周配置并触发课表重建
func (s *WeekConfigService) Update(userID uint, req UpdateWeekConfigRequest) (*model.WeekConfig, error) {
	for _, block := range req.FreeTimeBlocks {
		if !validWeekday(block.Day) {
			return nil, util.ErrInvalidWeekday
		}
	}

	config, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	config.TotalAvailableHours = req.TotalAvailableHours
	config.WeekStartDate = time.Now()
	config.FreeTimeBlocks = make([]model.FreeTimeBlock, len(req.FreeTimeBlocks))
	for i, block := range req.FreeTimeBlocks {
		config.FreeTimeBlocks[i] = model.FreeTimeBlock{
			Day:       block.Day,
			StartTime: block.StartTime,
			EndTime:   block.EndTime,
			Position:  i,
		}
	}

	if err := s.WeekConfigRepo.Replace(config); err != nil {
		return nil, err
	}

	s.Regenerator.Trigger(userID, scheduler.EventAvailabilityChanged)
	return config, nil
}

func validWeekday(day model.Weekday) bool {
	switch day {
	case model.Monday, model.Tuesday, model.Wednesday, model.Thursday,
		model.Friday, model.Saturday, model.Sunday:
		return true
	}
	return false
}
