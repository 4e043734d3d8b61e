package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictColdStart(t *testing.T) {
	a := NewStudyAI()
	assert.Equal(t, 0.5, a.PredictSuccess("09:00", 3, "Monday", 2))
}

func TestPredictBounded(t *testing.T) {
	a := NewStudyAI()
	for i := 0; i < 10; i++ {
		a.AddTrainingData(SessionInput{
			TimeOfDay:         "09:00",
			SubjectDifficulty: 3,
			DayOfWeek:         "Monday",
			Completed:         true,
			FocusScore:        0.8,
		})
	}

	// 再大的连击也不能把概率顶出 [0,1]
	for _, streak := range []int{0, 3, 7, 100, 100000} {
		p := a.PredictSuccess("09:00", 3, "Monday", streak)
		assert.GreaterOrEqual(t, p, 0.0, "streak %d", streak)
		assert.LessOrEqual(t, p, 1.0, "streak %d", streak)
	}
}

func TestPredictAllFailuresStaysLow(t *testing.T) {
	a := NewStudyAI()
	for i := 0; i < 6; i++ {
		a.AddTrainingData(SessionInput{
			TimeOfDay:         "20:00",
			SubjectDifficulty: 5,
			DayOfWeek:         "Sunday",
			Completed:         false,
		})
	}

	p := a.PredictSuccess("20:00", 5, "Sunday", 0)
	assert.Equal(t, 0.0, p)
}

func TestPredictStreakBoost(t *testing.T) {
	a := NewStudyAI()
	a.AddTrainingData(SessionInput{
		TimeOfDay:         "09:00",
		SubjectDifficulty: 3,
		DayOfWeek:         "Monday",
		Completed:         false,
	})

	base := a.PredictSuccess("09:00", 3, "Monday", 0)
	boosted := a.PredictSuccess("09:00", 3, "Monday", 7)
	assert.InDelta(t, base+0.1, boosted, 1e-9)
}

func TestPredictUnknownWeekdayDegrades(t *testing.T) {
	a := NewStudyAI()
	a.AddTrainingData(SessionInput{
		TimeOfDay:         "09:00",
		SubjectDifficulty: 3,
		DayOfWeek:         "Monday",
		Completed:         true,
	})

	// 未知星期名退化为中值，不报错
	p := a.PredictSuccess("09:00", 3, "Someday", 0)
	assert.GreaterOrEqual(t, p, 0.0)
	assert.LessOrEqual(t, p, 1.0)
}

func TestInsightsNotReady(t *testing.T) {
	a := NewStudyAI()
	for i := 0; i < 4; i++ {
		a.AddTrainingData(SessionInput{
			TimeOfDay:         "09:00",
			SubjectDifficulty: 2,
			DayOfWeek:         "Tuesday",
			Completed:         true,
		})
	}

	insights := a.GetInsights()
	assert.False(t, insights.Ready)
	assert.Contains(t, insights.Message, "minimum 5")
}

func TestInsightsMorningStreak(t *testing.T) {
	a := NewStudyAI()
	times := []string{"06:00", "06:30", "07:00", "07:15", "07:45", "08:00"}
	for _, at := range times {
		a.AddTrainingData(SessionInput{
			TimeOfDay:         at,
			SubjectDifficulty: 3,
			DayOfWeek:         "Wednesday",
			Completed:         true,
		})
	}

	insights := a.GetInsights()
	require.True(t, insights.Ready)
	assert.Equal(t, 6, insights.TotalSessions)
	assert.Equal(t, "Morning", insights.BestTimeOfDay)
	assert.Equal(t, 100, insights.MorningSuccess)
	assert.Equal(t, 100, insights.BestTimeScore)
	assert.Contains(t, insights.Recommendation, "Morning")
}

func TestInsightsDifficultyBuckets(t *testing.T) {
	a := NewStudyAI()
	// 难度 1 → 0.2 (easy桶)，难度 3 → 0.6 (medium桶)，难度 4 → 0.8 (hard桶)
	sessions := []struct {
		difficulty int
		completed  bool
	}{
		{1, true}, {1, true},
		{3, true}, {3, false},
		{4, false}, {4, false},
	}
	for _, s := range sessions {
		a.AddTrainingData(SessionInput{
			TimeOfDay:         "10:00",
			SubjectDifficulty: s.difficulty,
			DayOfWeek:         "Thursday",
			Completed:         s.completed,
		})
	}

	insights := a.GetInsights()
	require.True(t, insights.Ready)
	assert.Equal(t, 100, insights.EasyTaskSuccess)
	assert.Equal(t, 50, insights.MediumTaskSuccess)
	assert.Equal(t, 0, insights.HardTaskSuccess)
}

func TestExportImportRoundTrip(t *testing.T) {
	a := NewStudyAI()
	for i := 0; i < 7; i++ {
		a.AddTrainingData(SessionInput{
			TimeOfDay:         "14:00",
			SubjectDifficulty: 4,
			DayOfWeek:         "Friday",
			Completed:         i%2 == 0,
			FocusScore:        0.6,
		})
	}

	exported := a.Export()
	assert.Equal(t, ModelVersion, exported.Version)
	assert.Len(t, exported.TrainingData, 7)

	restored := NewStudyAI()
	restored.Import(exported)

	assert.Equal(t, a.SessionCount(), restored.SessionCount())
	assert.Equal(t,
		a.PredictSuccess("14:00", 4, "Friday", 3),
		restored.PredictSuccess("14:00", 4, "Friday", 3))
}

func TestImportEmptyModelKeepsDefaults(t *testing.T) {
	a := NewStudyAI()
	a.Import(Model{})

	assert.Equal(t, 0, a.SessionCount())
	assert.Equal(t, 0.5, a.PredictSuccess("09:00", 3, "Monday", 0))
}

func TestDefaultWeightsSumToOne(t *testing.T) {
	w := DefaultWeights()
	assert.InDelta(t, 1.0, w.TimeOfDay+w.SubjectDifficulty+w.DayOfWeek+w.RecentStreak, 1e-9)
}
