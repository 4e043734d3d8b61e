package service

import (
	"time"

	"study_planner_backend/internal/model"
	"study_planner_backend/internal/repository"
	"study_planner_backend/internal/scheduler"
	"study_planner_backend/internal/util"
	"study_planner_backend/pkg/logger"

	"go.uber.org/zap"
)

type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
	MaterialRepo *repository.MaterialRepository
	SubjectRepo  *repository.SubjectRepository
	Streak       *StreakService
	AI           *AIService
	Regenerator  *Regenerator
}

func NewProgressService(
	progressRepo *repository.ProgressRepository,
	materialRepo *repository.MaterialRepository,
	subjectRepo *repository.SubjectRepository,
	streak *StreakService,
	aiService *AIService,
	regenerator *Regenerator,
) *ProgressService {
	return &ProgressService{
		ProgressRepo: progressRepo,
		MaterialRepo: materialRepo,
		SubjectRepo:  subjectRepo,
		Streak:       streak,
		AI:           aiService,
		Regenerator:  regenerator,
	}
}

type StudySessionResult struct {
	Material    *model.StudyMaterial `json:"material"`
	SessionTime float64              `json:"sessionTime"`
	Streak      *model.Streak        `json:"streak,omitempty"`
}

// RecordSession 记录一次学习会话：累加材料时间并折算进度、落一条进度记录、
// 更新连击、喂给预测器一条训练数据，最后触发课表重建。
// 连击和训练失败都不影响会话本身落库。
func (s *ProgressService) RecordSession(userID, materialID uint, timeSpentMinutes float64) (*StudySessionResult, error) {
	if timeSpentMinutes <= 0 {
		return nil, util.ErrInvalidTimeSpent
	}

	material, err := s.MaterialRepo.FindByIDAndUserID(materialID, userID)
	if err != nil {
		return nil, err
	}

	material.TimeSpent += timeSpentMinutes
	material.Progress = CalculateProgress(material)
	if err := s.MaterialRepo.Update(material); err != nil {
		return nil, err
	}

	now := time.Now()
	entry := &model.ProgressEntry{
		UserID:     userID,
		SubjectID:  material.SubjectID,
		MaterialID: &material.ID,
		Date:       now,
		TimeSpent:  timeSpentMinutes,
		Tag:        material.Tag,
	}
	if err := s.ProgressRepo.Create(entry); err != nil {
		return nil, err
	}

	streak, err := s.Streak.RecordStudyDay(userID, timeSpentMinutes)
	if err != nil {
		logger.L().Warn("streak not updated", zap.Uint("userId", userID), zap.Error(err))
		streak = nil
	}

	if subject, err := s.SubjectRepo.FindByID(material.SubjectID); err == nil {
		s.AI.TrainFromSession(userID, subject, timeSpentMinutes, now)
	}

	s.Regenerator.Trigger(userID, scheduler.EventStudySessionCompleted)

	return &StudySessionResult{
		Material:    material,
		SessionTime: timeSpentMinutes,
		Streak:      streak,
	}, nil
}

type SubjectProgress struct {
	Subject            string    `json:"subject"`
	SubjectID          uint      `json:"subjectId"`
	Difficulty         int       `json:"difficulty"`
	ExamDate           time.Time `json:"examDate"`
	TotalMaterials     int       `json:"totalMaterials"`
	CompletedMaterials int       `json:"completedMaterials"`
	TimeSpent          float64   `json:"timeSpent"`
	TargetTime         float64   `json:"targetTime"`
	Progress           int       `json:"progress"`
}

type DailyStudyTime struct {
	Day     string  `json:"day"`
	Minutes float64 `json:"minutes"`
}

type Analytics struct {
	TotalSubjects   int               `json:"totalSubjects"`
	TotalMaterials  int               `json:"totalMaterials"`
	TotalStudyTime  float64           `json:"totalStudyTime"`
	SubjectProgress []SubjectProgress `json:"subjectProgress"`
	WeeklyChart     []DailyStudyTime  `json:"weeklyChart"`
}

var chartDays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// GetAnalytics 汇总学习总量、各科目进度和最近 7 天的学习时间分布
func (s *ProgressService) GetAnalytics(userID uint) (*Analytics, error) {
	subjects, err := s.SubjectRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	materials, err := s.MaterialRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	totalStudyMinutes := 0.0
	for _, m := range materials {
		totalStudyMinutes += m.TimeSpent
	}

	subjectProgress := make([]SubjectProgress, 0, len(subjects))
	for _, subject := range subjects {
		totalTime, totalTarget := 0.0, 0.0
		totalCount, completedCount := 0, 0

		for _, m := range materials {
			if m.SubjectID != subject.ID {
				continue
			}
			totalCount++
			totalTime += m.TimeSpent
			totalTarget += m.TargetHours * 60
			if m.Progress >= 100 {
				completedCount++
			}
		}

		overall := 0.0
		if totalTarget > 0 {
			overall = totalTime / totalTarget * 100
			if overall > 100 {
				overall = 100
			}
		}

		subjectProgress = append(subjectProgress, SubjectProgress{
			Subject:            subject.Name,
			SubjectID:          subject.ID,
			Difficulty:         subject.Difficulty,
			ExamDate:           subject.ExamDate,
			TotalMaterials:     totalCount,
			CompletedMaterials: completedCount,
			TimeSpent:          totalTime,
			TargetTime:         totalTarget,
			Progress:           int(overall + 0.5),
		})
	}

	sevenDaysAgo := time.Now().AddDate(0, 0, -7)
	recent, err := s.ProgressRepo.FindByUserIDSince(userID, sevenDaysAgo)
	if err != nil {
		return nil, err
	}

	perDay := map[string]float64{}
	for _, entry := range recent {
		perDay[chartDays[int(entry.Date.Weekday())]] += entry.TimeSpent
	}

	weeklyChart := make([]DailyStudyTime, len(chartDays))
	for i, day := range chartDays {
		weeklyChart[i] = DailyStudyTime{Day: day, Minutes: perDay[day]}
	}

	return &Analytics{
		TotalSubjects:   len(subjects),
		TotalMaterials:  len(materials),
		TotalStudyTime:  totalStudyMinutes,
		SubjectProgress: subjectProgress,
		WeeklyChart:     weeklyChart,
	}, nil
}

// GetSubjectProgress 获取某科目下所有材料的进度
func (s *ProgressService) GetSubjectProgress(userID, subjectID uint) ([]model.StudyMaterial, error) {
	return s.MaterialRepo.FindByUserIDAndSubjectID(userID, subjectID)
}
