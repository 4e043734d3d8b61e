package service

import (
	"errors"
	"fmt"
	"time"

	"study_planner_backend/internal/model"
	"study_planner_backend/internal/scheduler"
	"study_planner_backend/pkg/logger"
	"study_planner_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 排课流水线的编排层：重算优先级 → 分配时长 → 贪心排课 → 原子替换课表。
// 数据访问走下面的小接口，计算本身在 scheduler 包里是纯函数。

type SubjectStore interface {
	FindByUserID(userID uint) ([]model.Subject, error)
	UpdatePriorityScore(id uint, score float64) error
	UpdateAllocatedTime(id uint, hours float64) error
}

type WeekConfigStore interface {
	FindByUserID(userID uint) (*model.WeekConfig, error)
}

type ScheduleBlockStore interface {
	FindByUserID(userID uint) ([]model.ScheduleBlock, error)
	ReplaceForUser(userID uint, blocks []model.ScheduleBlock) error
	DeleteByUserID(userID uint) error
}

// RegenerationResult 一次重建的结果。前置条件不满足或内部失败都以
// Performed=false 返回，绝不把错误抛给触发它的那个请求。
type RegenerationResult struct {
	Performed     bool   `json:"performed"`
	Message       string `json:"message"`
	BlocksCreated int    `json:"blocksCreated"`
}

type ScheduleService struct {
	Subjects    SubjectStore
	WeekConfigs WeekConfigStore
	Blocks      ScheduleBlockStore

	now func() time.Time
}

func NewScheduleService(subjects SubjectStore, weekConfigs WeekConfigStore, blocks ScheduleBlockStore) *ScheduleService {
	return &ScheduleService{
		Subjects:    subjects,
		WeekConfigs: weekConfigs,
		Blocks:      blocks,
		now:         time.Now,
	}
}

// GetSchedule 返回用户当前课表
func (s *ScheduleService) GetSchedule(userID uint) ([]model.ScheduleBlock, error) {
	return s.Blocks.FindByUserID(userID)
}

// DeleteSchedule 清空用户课表
func (s *ScheduleService) DeleteSchedule(userID uint) error {
	return s.Blocks.DeleteByUserID(userID)
}

// Regenerate 完整跑一遍排课流水线并整体替换课表。
// 周配置缺失、没有空闲时间块或没有科目时跳过；任何内部失败都被吞掉、
// 记日志并以非致命结果上报。
func (s *ScheduleService) Regenerate(userID uint, reason scheduler.EventType) RegenerationResult {
	log := logger.L().With(
		zap.String("runId", model.GenerateUUID()),
		zap.Uint("userId", userID),
		zap.String("reason", string(reason)))
	log.Info("regenerating schedule")

	result, err := s.regenerate(userID, log)

	status := "skipped"
	switch {
	case err != nil:
		status = "error"
		log.Error("regeneration failed", zap.Error(err))
		result = RegenerationResult{Performed: false, Message: err.Error()}
	case result.Performed:
		status = "ok"
		monitoring.ScheduleBlocksCreated.Add(float64(result.BlocksCreated))
	}
	monitoring.RegenerationCounter.WithLabelValues(string(reason), status).Inc()

	return result
}

func (s *ScheduleService) regenerate(userID uint, log *zap.Logger) (RegenerationResult, error) {
	weekConfig, err := s.WeekConfigs.FindByUserID(userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return RegenerationResult{}, fmt.Errorf("load week config: %w", err)
	}
	if err != nil || weekConfig == nil || len(weekConfig.FreeTimeBlocks) == 0 {
		log.Info("skipping regeneration: week config not set")
		return RegenerationResult{Performed: false, Message: "Week config not set"}, nil
	}

	subjects, err := s.Subjects.FindByUserID(userID)
	if err != nil {
		return RegenerationResult{}, fmt.Errorf("load subjects: %w", err)
	}
	if len(subjects) == 0 {
		log.Info("skipping regeneration: no subjects")
		return RegenerationResult{Performed: false, Message: "No subjects found"}, nil
	}

	// 第一步：重算并回写优先级
	now := s.now()
	for i := range subjects {
		subjects[i].PriorityScore = scheduler.Score(subjects[i], now)
		if err := s.Subjects.UpdatePriorityScore(subjects[i].ID, subjects[i].PriorityScore); err != nil {
			return RegenerationResult{}, fmt.Errorf("persist priority score for subject %d: %w", subjects[i].ID, err)
		}
	}

	// 第二步：按优先级占比分配每周时长
	allocated := scheduler.Allocate(subjects, weekConfig.TotalAvailableHours)
	for _, subject := range allocated {
		if err := s.Subjects.UpdateAllocatedTime(subject.ID, subject.AllocatedTime); err != nil {
			return RegenerationResult{}, fmt.Errorf("persist allocated time for subject %d: %w", subject.ID, err)
		}
	}

	// 第三步：贪心装块
	blocks := scheduler.Pack(allocated, weekConfig.FreeTimeBlocks)

	for i := range blocks {
		blocks[i].UserID = userID
		blocks[i].WeekStartDate = weekConfig.WeekStartDate
	}

	// 第四步：删旧插新，单次原子替换
	if err := s.Blocks.ReplaceForUser(userID, blocks); err != nil {
		return RegenerationResult{}, fmt.Errorf("replace schedule blocks: %w", err)
	}

	log.Info("schedule regenerated", zap.Int("blocksCreated", len(blocks)))
	return RegenerationResult{
		Performed:     true,
		Message:       fmt.Sprintf("Schedule regenerated, %d blocks created", len(blocks)),
		BlocksCreated: len(blocks),
	}, nil
}
