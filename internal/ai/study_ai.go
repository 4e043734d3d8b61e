package ai

import (
	"strconv"
	"strings"
)

// 基于历史学习会话的相似度加权近邻估计器。
// “训练”只是累积数据，权重是固定超参数，不会从结果里学习更新。

const ModelVersion = "1.0"

// Weights 各特征在相似度中的固定权重，四项和为 1。
// RecentStreak 权重实际不参与相似度加权（只用前三项），连击的影响
// 单独作为预测末尾的加成进入，这里保留字段以保持模型 blob 的形状。
type Weights struct {
	TimeOfDay         float64 `json:"timeOfDay"`
	SubjectDifficulty float64 `json:"subjectDifficulty"`
	DayOfWeek         float64 `json:"dayOfWeek"`
	RecentStreak      float64 `json:"recentStreak"`
}

// DefaultWeights 默认超参数
func DefaultWeights() Weights {
	return Weights{
		TimeOfDay:         0.3,
		SubjectDifficulty: 0.4,
		DayOfWeek:         0.2,
		RecentStreak:      0.1,
	}
}

// TrainingSession 一条归一化后的历史会话，各特征均在 [0,1]
type TrainingSession struct {
	TimeOfDay         float64 `json:"timeOfDay"`
	SubjectDifficulty float64 `json:"subjectDifficulty"`
	DayOfWeek         float64 `json:"dayOfWeek"`
	Completed         float64 `json:"completed"` // 成功 1，失败 0
	FocusScore        float64 `json:"focusScore"`
}

// SessionInput 训练输入（原始单位）
type SessionInput struct {
	TimeOfDay         string // HH:MM
	SubjectDifficulty int    // 1-5
	DayOfWeek         string // Monday..Sunday
	Completed         bool
	FocusScore        float64 // 0-1，0 时取 0.5
}

// StudyAI 按用户维护的启发式预测器，历史只追加不删除
type StudyAI struct {
	trainingData []TrainingSession
	weights      Weights
}

func NewStudyAI() *StudyAI {
	return &StudyAI{
		trainingData: []TrainingSession{},
		weights:      DefaultWeights(),
	}
}

// SessionCount 已累积的会话条数
func (a *StudyAI) SessionCount() int {
	return len(a.trainingData)
}

// AddTrainingData 归一化并追加一条会话记录
func (a *StudyAI) AddTrainingData(session SessionInput) {
	completed := 0.0
	if session.Completed {
		completed = 1.0
	}
	focus := session.FocusScore
	if focus == 0 {
		focus = 0.5
	}

	a.trainingData = append(a.trainingData, TrainingSession{
		TimeOfDay:         normalizeTime(session.TimeOfDay),
		SubjectDifficulty: float64(session.SubjectDifficulty) / 5,
		DayOfWeek:         normalizeDayOfWeek(session.DayOfWeek),
		Completed:         completed,
		FocusScore:        focus,
	})
}

// PredictSuccess 预测给定时间/难度/星期/连击组合的成功概率，范围 [0,1]。
// 没有历史数据时返回 0.5。
func (a *StudyAI) PredictSuccess(timeOfDay string, subjectDifficulty int, dayOfWeek string, recentStreak int) float64 {
	if len(a.trainingData) == 0 {
		return 0.5
	}

	normalizedTime := normalizeTime(timeOfDay)
	normalizedDiff := float64(subjectDifficulty) / 5
	normalizedDay := normalizeDayOfWeek(dayOfWeek)
	normalizedStreak := float64(recentStreak) / 7
	if normalizedStreak > 1 {
		normalizedStreak = 1
	}

	totalSimilarity := 0.0
	weightedSuccess := 0.0

	for _, data := range a.trainingData {
		timeSimilarity := 1 - abs(data.TimeOfDay-normalizedTime)
		diffSimilarity := 1 - abs(data.SubjectDifficulty-normalizedDiff)
		daySimilarity := 1 - abs(data.DayOfWeek-normalizedDay)

		similarity := timeSimilarity*a.weights.TimeOfDay +
			diffSimilarity*a.weights.SubjectDifficulty +
			daySimilarity*a.weights.DayOfWeek

		totalSimilarity += similarity
		weightedSuccess += similarity * data.Completed
	}

	prediction := 0.5
	if totalSimilarity > 0 {
		prediction = weightedSuccess / totalSimilarity
	}

	// 连击越长给一点点加成，封顶 0.1
	streakBoost := normalizedStreak * 0.1

	return clamp01(prediction + streakBoost)
}

// Model 预测器的完整可持久化状态
type Model struct {
	TrainingData []TrainingSession `json:"trainingData"`
	Weights      Weights           `json:"weights"`
	Version      string            `json:"version"`
}

// Export 导出完整状态
func (a *StudyAI) Export() Model {
	return Model{
		TrainingData: a.trainingData,
		Weights:      a.weights,
		Version:      ModelVersion,
	}
}

// Import 从持久化状态恢复，空 blob 等价于全新模型
func (a *StudyAI) Import(m Model) {
	if m.TrainingData != nil {
		a.trainingData = m.TrainingData
	}
	zero := Weights{}
	if m.Weights != zero {
		a.weights = m.Weights
	}
}

// normalizeTime 把 HH:MM 映射到一天的 [0,1]
func normalizeTime(timeString string) float64 {
	parts := strings.SplitN(timeString, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	return (float64(hours) + float64(minutes)/60) / 24
}

var dayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// normalizeDayOfWeek 周一映射 0，周日映射 1，未知为中值 0.5
func normalizeDayOfWeek(dayName string) float64 {
	for i, name := range dayNames {
		if name == dayName {
			return float64(i) / 6
		}
	}
	return 0.5
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
