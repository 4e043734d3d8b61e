package scheduler

import (
	"math"
	"time"

	"study_planner_backend/internal/model"
)

// 算法一：优先级评分
// score = 0.5*时间紧迫度 + 0.5*难度系数，范围 [0,1]
// 考试已过或 examDate 不晚于 startDate 时记 0

func daysBetween(from, to time.Time) int {
	return int(math.Floor(to.Sub(from).Hours() / 24))
}

// Score 计算科目的优先级得分，给定 now 时为纯函数
func Score(subject model.Subject, now time.Time) float64 {
	totalDays := daysBetween(subject.StartDate, subject.ExamDate)
	daysLeft := daysBetween(now, subject.ExamDate)

	if totalDays <= 0 || daysLeft < 0 {
		return 0
	}

	timeUrgency := 1 - float64(daysLeft)/float64(totalDays)
	difficultyFactor := float64(subject.Difficulty) / 5

	return timeUrgency*0.5 + difficultyFactor*0.5
}
