package ai

import (
	"fmt"
	"math"
)

// 洞察报告：按归一化时段与难度分桶统计历史成功率

const minSessionsForInsights = 5

// Insights AI 学到的使用模式汇总，百分比取整
type Insights struct {
	Ready             bool   `json:"ready"`
	Message           string `json:"message,omitempty"`
	TotalSessions     int    `json:"totalSessions,omitempty"`
	BestTimeOfDay     string `json:"bestTimeOfDay,omitempty"`
	BestTimeScore     int    `json:"bestTimeScore,omitempty"`
	MorningSuccess    int    `json:"morningSuccess,omitempty"`
	AfternoonSuccess  int    `json:"afternoonSuccess,omitempty"`
	EveningSuccess    int    `json:"eveningSuccess,omitempty"`
	EasyTaskSuccess   int    `json:"easyTaskSuccess,omitempty"`
	MediumTaskSuccess int    `json:"mediumTaskSuccess,omitempty"`
	HardTaskSuccess   int    `json:"hardTaskSuccess,omitempty"`
	Recommendation    string `json:"recommendation,omitempty"`
}

// GetInsights 汇总历史会话；少于 5 条时报告未就绪
func (a *StudyAI) GetInsights() Insights {
	if len(a.trainingData) < minSessionsForInsights {
		return Insights{
			Ready:   false,
			Message: "Need more study sessions to learn patterns (minimum 5)",
		}
	}

	morningSuccess := a.successRateForTimeRange(0, 0.4)
	afternoonSuccess := a.successRateForTimeRange(0.4, 0.7)
	eveningSuccess := a.successRateForTimeRange(0.7, 1)

	bestTime := "Evening"
	if morningSuccess > afternoonSuccess && morningSuccess > eveningSuccess {
		bestTime = "Morning"
	} else if afternoonSuccess > eveningSuccess {
		bestTime = "Afternoon"
	}

	bestTimeScore := math.Max(morningSuccess, math.Max(afternoonSuccess, eveningSuccess))

	easySuccess := a.successRateForDifficulty(0, 0.4)
	mediumSuccess := a.successRateForDifficulty(0.4, 0.7)
	hardSuccess := a.successRateForDifficulty(0.7, 1)

	return Insights{
		Ready:             true,
		TotalSessions:     len(a.trainingData),
		BestTimeOfDay:     bestTime,
		BestTimeScore:     roundPercent(bestTimeScore),
		MorningSuccess:    roundPercent(morningSuccess),
		AfternoonSuccess:  roundPercent(afternoonSuccess),
		EveningSuccess:    roundPercent(eveningSuccess),
		EasyTaskSuccess:   roundPercent(easySuccess),
		MediumTaskSuccess: roundPercent(mediumSuccess),
		HardTaskSuccess:   roundPercent(hardSuccess),
		Recommendation:    recommendation(bestTime, bestTimeScore),
	}
}

func (a *StudyAI) successRateForTimeRange(minTime, maxTime float64) float64 {
	total, successes := 0, 0
	for _, d := range a.trainingData {
		if d.TimeOfDay >= minTime && d.TimeOfDay < maxTime {
			total++
			if d.Completed == 1 {
				successes++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(successes) / float64(total)
}

func (a *StudyAI) successRateForDifficulty(minDiff, maxDiff float64) float64 {
	total, successes := 0, 0
	for _, d := range a.trainingData {
		if d.SubjectDifficulty >= minDiff && d.SubjectDifficulty < maxDiff {
			total++
			if d.Completed == 1 {
				successes++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(successes) / float64(total)
}

func recommendation(bestTime string, score float64) string {
	if score > 0.8 {
		return fmt.Sprintf("You excel during %s sessions! Schedule difficult subjects then.", bestTime)
	}
	if score > 0.6 {
		return fmt.Sprintf("%s works well for you. Consider this for important topics.", bestTime)
	}
	return "Try different study times to find your peak focus hours."
}

func roundPercent(x float64) int {
	return int(math.Round(x * 100))
}
