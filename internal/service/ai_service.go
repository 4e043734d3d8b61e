package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"study_planner_backend/internal/ai"
	"study_planner_backend/internal/model"
	"study_planner_backend/internal/repository"
	"study_planner_backend/internal/scheduler"
	"study_planner_backend/internal/util"
	"study_planner_backend/pkg/logger"
	"study_planner_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AIService 负责预测器模型 blob 的读写和各预测入口。
// 模型整体序列化存库，洞察报告走 Redis 缓存，训练时失效。

const insightsCacheTTL = 10 * time.Minute

type AIService struct {
	AIModelRepo *repository.AIModelRepository
	StreakRepo  *repository.StreakRepository
	SubjectRepo *repository.SubjectRepository
	Regenerator *Regenerator
	Redis       *redis.Client
}

func NewAIService(
	aiModelRepo *repository.AIModelRepository,
	streakRepo *repository.StreakRepository,
	subjectRepo *repository.SubjectRepository,
	regenerator *Regenerator,
	rdb *redis.Client,
) *AIService {
	return &AIService{
		AIModelRepo: aiModelRepo,
		StreakRepo:  streakRepo,
		SubjectRepo: subjectRepo,
		Regenerator: regenerator,
		Redis:       rdb,
	}
}

// loadStudyAI 把持久化 blob 还原成内存模型
func (s *AIService) loadStudyAI(userID uint) (*ai.StudyAI, *model.AIModel, error) {
	record, err := s.AIModelRepo.FindByUserID(userID)
	if err != nil {
		return nil, nil, err
	}

	studyAI := ai.NewStudyAI()
	m := ai.Model{}
	if record.TrainingData != "" {
		if err := json.Unmarshal([]byte(record.TrainingData), &m.TrainingData); err != nil {
			return nil, nil, fmt.Errorf("decode training data: %w", err)
		}
	}
	if record.Weights != "" {
		if err := json.Unmarshal([]byte(record.Weights), &m.Weights); err != nil {
			return nil, nil, fmt.Errorf("decode weights: %w", err)
		}
	}
	studyAI.Import(m)
	return studyAI, record, nil
}

// saveStudyAI 把内存模型整体写回
func (s *AIService) saveStudyAI(studyAI *ai.StudyAI, record *model.AIModel) error {
	exported := studyAI.Export()

	trainingData, err := json.Marshal(exported.TrainingData)
	if err != nil {
		return err
	}
	weights, err := json.Marshal(exported.Weights)
	if err != nil {
		return err
	}

	record.TrainingData = string(trainingData)
	record.Weights = string(weights)
	record.Version = exported.Version
	record.LastTrained = time.Now()
	return s.AIModelRepo.Save(record)
}

type TrainRequest struct {
	TimeOfDay         string  `json:"timeOfDay" binding:"required"`
	SubjectDifficulty int     `json:"subjectDifficulty" binding:"required,min=1,max=5"`
	DayOfWeek         string  `json:"dayOfWeek" binding:"required"`
	Completed         *bool   `json:"completed"`
	FocusScore        float64 `json:"focusScore"`
}

// Train 追加一条训练数据并持久化，随后触发课表重建
func (s *AIService) Train(userID uint, req TrainRequest) (int, error) {
	studyAI, record, err := s.loadStudyAI(userID)
	if err != nil {
		return 0, err
	}

	completed := true
	if req.Completed != nil {
		completed = *req.Completed
	}
	focusScore := req.FocusScore
	if focusScore == 0 {
		focusScore = 0.7
	}

	studyAI.AddTrainingData(ai.SessionInput{
		TimeOfDay:         req.TimeOfDay,
		SubjectDifficulty: req.SubjectDifficulty,
		DayOfWeek:         req.DayOfWeek,
		Completed:         completed,
		FocusScore:        focusScore,
	})

	if err := s.saveStudyAI(studyAI, record); err != nil {
		return 0, err
	}

	s.invalidateInsightsCache(userID)
	monitoring.AITrainingCounter.Inc()

	s.Regenerator.Trigger(userID, scheduler.EventStudySessionCompleted)
	return studyAI.SessionCount(), nil
}

// TrainFromSession 学习会话落库后的内部训练入口，失败只记日志
func (s *AIService) TrainFromSession(userID uint, subject *model.Subject, timeSpentMinutes float64, at time.Time) {
	studyAI, record, err := s.loadStudyAI(userID)
	if err != nil {
		logger.L().Error("AI training skipped", zap.Uint("userId", userID), zap.Error(err))
		return
	}

	focus := timeSpentMinutes / 60
	if focus > 1 {
		focus = 1
	}

	studyAI.AddTrainingData(ai.SessionInput{
		TimeOfDay:         at.Format(util.ClockFormat),
		SubjectDifficulty: subject.Difficulty,
		DayOfWeek:         at.Weekday().String(),
		Completed:         timeSpentMinutes >= 5, // 学满 5 分钟算完成
		FocusScore:        focus,
	})

	if err := s.saveStudyAI(studyAI, record); err != nil {
		logger.L().Error("AI training not persisted", zap.Uint("userId", userID), zap.Error(err))
		return
	}

	s.invalidateInsightsCache(userID)
	monitoring.AITrainingCounter.Inc()
}

type Prediction struct {
	Prediction int    `json:"prediction"` // 百分比
	Confidence string `json:"confidence"`
	Message    string `json:"message"`
}

// Predict 预测给定场景的成功概率，置信度按样本量分档
func (s *AIService) Predict(userID uint, timeOfDay string, subjectDifficulty int, dayOfWeek string) (*Prediction, error) {
	studyAI, _, err := s.loadStudyAI(userID)
	if err != nil {
		return nil, err
	}

	monitoring.AIPredictionCounter.Inc()

	if studyAI.SessionCount() == 0 {
		return &Prediction{
			Prediction: 50,
			Confidence: "low",
			Message:    "Not enough data yet. Keep studying to train the AI!",
		}, nil
	}

	recentStreak := s.StreakRepo.CurrentStreak(userID)
	probability := studyAI.PredictSuccess(timeOfDay, subjectDifficulty, dayOfWeek, recentStreak)

	confidence := "low"
	if studyAI.SessionCount() > 20 {
		confidence = "high"
	} else if studyAI.SessionCount() > 10 {
		confidence = "medium"
	}

	percent := int(probability*100 + 0.5)
	return &Prediction{
		Prediction: percent,
		Confidence: confidence,
		Message:    fmt.Sprintf("%d%% chance of successful study session", percent),
	}, nil
}

// GetInsights 返回洞察报告，优先走 Redis 缓存
func (s *AIService) GetInsights(userID uint) (*ai.Insights, error) {
	ctx := context.Background()
	cacheKey := fmt.Sprintf("studyplan:ai:insights:%d", userID)

	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
			var insights ai.Insights
			if err := json.Unmarshal([]byte(cached), &insights); err == nil {
				return &insights, nil
			}
		}
	}

	studyAI, _, err := s.loadStudyAI(userID)
	if err != nil {
		return nil, err
	}

	insights := studyAI.GetInsights()

	if s.Redis != nil {
		if payload, err := json.Marshal(insights); err == nil {
			s.Redis.Set(ctx, cacheKey, payload, insightsCacheTTL)
		}
	}
	return &insights, nil
}

func (s *AIService) invalidateInsightsCache(userID uint) {
	if s.Redis == nil {
		return
	}
	s.Redis.Del(context.Background(), fmt.Sprintf("studyplan:ai:insights:%d", userID))
}

// SlotRecommendation 每个科目预测成功率最高的时段
type SlotRecommendation struct {
	Subject            string `json:"subject"`
	Difficulty         int    `json:"difficulty"`
	BestDay            string `json:"bestDay"`
	BestTime           string `json:"bestTime"`
	SuccessProbability int    `json:"successProbability"`
}

type OptimizedSchedule struct {
	Optimized       bool                 `json:"optimized"`
	Message         string               `json:"message,omitempty"`
	Recommendations []SlotRecommendation `json:"recommendations,omitempty"`
}

var (
	candidateSlots = []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00", "19:00", "20:00"}
	candidateDays  = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
)

// Optimize 对每个科目穷举候选时段×工作日，按预测成功率挑最佳组合。
// 少于 5 条训练数据时不给建议。
func (s *AIService) Optimize(userID uint) (*OptimizedSchedule, error) {
	studyAI, _, err := s.loadStudyAI(userID)
	if err != nil {
		return nil, err
	}

	if studyAI.SessionCount() < 5 {
		return &OptimizedSchedule{
			Optimized: false,
			Message:   "Need at least 5 study sessions to optimize schedule",
		}, nil
	}

	subjects, err := s.SubjectRepo.FindByUserIDOrderByPriority(userID)
	if err != nil {
		return nil, err
	}
	if len(subjects) == 0 {
		return &OptimizedSchedule{Optimized: false, Message: "No subjects found"}, nil
	}

	recentStreak := s.StreakRepo.CurrentStreak(userID)

	recommendations := make([]SlotRecommendation, 0, len(subjects))
	for _, subject := range subjects {
		bestScore := 0.0
		bestTime := candidateSlots[0]
		bestDay := candidateDays[0]

		for _, slot := range candidateSlots {
			for _, day := range candidateDays {
				prediction := studyAI.PredictSuccess(slot, subject.Difficulty, day, recentStreak)
				if prediction > bestScore {
					bestScore = prediction
					bestTime = slot
					bestDay = day
				}
			}
		}

		recommendations = append(recommendations, SlotRecommendation{
			Subject:            subject.Name,
			Difficulty:         subject.Difficulty,
			BestDay:            bestDay,
			BestTime:           bestTime,
			SuccessProbability: int(bestScore*100 + 0.5),
		})
	}

	return &OptimizedSchedule{Optimized: true, Recommendations: recommendations}, nil
}
