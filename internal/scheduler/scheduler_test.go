package scheduler

import (
	"math"
	"testing"
	"time"

	"study_planner_backend/internal/model"
)

const epsilon = 1e-9

func assertFloat(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %.6f, want %.6f", name, got, want)
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// --- Score ---

func TestScoreHalfwayMaxDifficulty(t *testing.T) {
	subject := model.Subject{
		Difficulty: 5,
		StartDate:  date(2025, 3, 1),
		ExamDate:   date(2025, 3, 11),
	}
	// 中点：urgency 0.5，难度 1.0
	got := Score(subject, date(2025, 3, 6))
	assertFloat(t, "score", got, 0.75)
}

func TestScoreAtStartDate(t *testing.T) {
	subject := model.Subject{
		Difficulty: 5,
		StartDate:  date(2025, 3, 1),
		ExamDate:   date(2025, 3, 11),
	}
	got := Score(subject, date(2025, 3, 1))
	assertFloat(t, "score", got, 0.5)
}

func TestScoreExamPassed(t *testing.T) {
	subject := model.Subject{
		Difficulty: 5,
		StartDate:  date(2025, 3, 1),
		ExamDate:   date(2025, 3, 11),
	}
	got := Score(subject, date(2025, 3, 12))
	assertFloat(t, "score", got, 0)
}

func TestScoreExamPassedByHours(t *testing.T) {
	subject := model.Subject{
		Difficulty: 3,
		StartDate:  date(2025, 3, 1),
		ExamDate:   date(2025, 3, 11),
	}
	now := time.Date(2025, 3, 11, 6, 0, 0, 0, time.UTC)
	assertFloat(t, "score", Score(subject, now), 0)
}

func TestScoreInvalidWindow(t *testing.T) {
	subject := model.Subject{
		Difficulty: 5,
		StartDate:  date(2025, 3, 11),
		ExamDate:   date(2025, 3, 1),
	}
	assertFloat(t, "score", Score(subject, date(2025, 3, 5)), 0)

	subject.ExamDate = subject.StartDate
	assertFloat(t, "score", Score(subject, date(2025, 3, 11)), 0)
}

func TestScoreBounds(t *testing.T) {
	start := date(2025, 1, 1)
	exam := date(2025, 4, 1)
	for difficulty := 1; difficulty <= 5; difficulty++ {
		for day := 0; day <= 90; day += 5 {
			subject := model.Subject{Difficulty: difficulty, StartDate: start, ExamDate: exam}
			score := Score(subject, start.AddDate(0, 0, day))
			if score < 0 || score > 1 {
				t.Errorf("score(difficulty=%d, day=%d) = %.4f, out of [0,1]", difficulty, day, score)
			}
		}
	}
}

// --- Allocate ---

func TestAllocateProportional(t *testing.T) {
	subjects := []model.Subject{
		{Name: "Math", PriorityScore: 0.8},
		{Name: "History", PriorityScore: 0.2},
	}
	out := Allocate(subjects, 40)

	assertFloat(t, "math", out[0].AllocatedTime, 32)
	assertFloat(t, "history", out[1].AllocatedTime, 8)
}

func TestAllocateConservation(t *testing.T) {
	subjects := []model.Subject{
		{PriorityScore: 0.31},
		{PriorityScore: 0.57},
		{PriorityScore: 0.12},
		{PriorityScore: 0.93},
	}
	out := Allocate(subjects, 21.5)

	sum := 0.0
	for _, s := range out {
		if s.AllocatedTime < 0 {
			t.Errorf("negative allocation %.4f", s.AllocatedTime)
		}
		sum += s.AllocatedTime
	}
	if math.Abs(sum-21.5) > 1e-9 {
		t.Errorf("sum of allocations = %.6f, want 21.5", sum)
	}
}

func TestAllocateAbstainsOnZeroPriority(t *testing.T) {
	subjects := []model.Subject{
		{Name: "A", AllocatedTime: 3},
		{Name: "B"},
	}
	out := Allocate(subjects, 40)

	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	// 弃权：输入原样返回，不做任何再分配
	assertFloat(t, "A", out[0].AllocatedTime, 3)
	assertFloat(t, "B", out[1].AllocatedTime, 0)
}

func TestAllocateEmpty(t *testing.T) {
	out := Allocate(nil, 40)
	if len(out) != 0 {
		t.Errorf("len = %d, want 0", len(out))
	}
}

// --- Pack ---

func TestPackSharedWindow(t *testing.T) {
	subjects := []model.Subject{
		{BaseModel: model.BaseModel{ID: 2}, Name: "B", PriorityScore: 0.3, AllocatedTime: 1.0},
		{BaseModel: model.BaseModel{ID: 1}, Name: "A", PriorityScore: 0.9, AllocatedTime: 1.5},
	}
	blocks := []model.FreeTimeBlock{
		{Day: model.Monday, StartTime: "09:00", EndTime: "11:00"},
	}

	schedule := Pack(subjects, blocks)

	if len(schedule) != 2 {
		t.Fatalf("blocks scheduled = %d, want 2", len(schedule))
	}

	// A 优先，占 09:00-10:30；B 只剩 0.5h，多出的 0.5h 被丢弃
	if schedule[0].SubjectID != 1 || schedule[0].StartTime != "09:00" || schedule[0].EndTime != "10:30" {
		t.Errorf("first block = %+v", schedule[0])
	}
	assertFloat(t, "A minutes", schedule[0].DurationMinutes, 90)

	if schedule[1].SubjectID != 2 || schedule[1].StartTime != "10:30" || schedule[1].EndTime != "11:00" {
		t.Errorf("second block = %+v", schedule[1])
	}
	assertFloat(t, "B minutes", schedule[1].DurationMinutes, 30)
}

func TestPackPriorityWinsScarceWindow(t *testing.T) {
	subjects := []model.Subject{
		{BaseModel: model.BaseModel{ID: 1}, PriorityScore: 0.2, AllocatedTime: 2},
		{BaseModel: model.BaseModel{ID: 2}, PriorityScore: 0.8, AllocatedTime: 2},
	}
	blocks := []model.FreeTimeBlock{
		{Day: model.Tuesday, StartTime: "19:00", EndTime: "21:00"},
	}

	schedule := Pack(subjects, blocks)

	if len(schedule) != 1 {
		t.Fatalf("blocks scheduled = %d, want 1", len(schedule))
	}
	if schedule[0].SubjectID != 2 {
		t.Errorf("window went to subject %d, want the higher-priority 2", schedule[0].SubjectID)
	}
}

func TestPackSkipsDegenerateBlocks(t *testing.T) {
	subjects := []model.Subject{
		{BaseModel: model.BaseModel{ID: 1}, PriorityScore: 0.5, AllocatedTime: 1},
	}
	blocks := []model.FreeTimeBlock{
		{Day: model.Monday, StartTime: "10:00", EndTime: "10:00"},
		{Day: model.Monday, StartTime: "12:00", EndTime: "11:00"},
		{Day: model.Monday, StartTime: "14:00", EndTime: "16:00"},
	}

	schedule := Pack(subjects, blocks)

	if len(schedule) != 1 {
		t.Fatalf("blocks scheduled = %d, want 1", len(schedule))
	}
	if schedule[0].StartTime != "14:00" || schedule[0].EndTime != "15:00" {
		t.Errorf("block = %+v, want 14:00-15:00", schedule[0])
	}
}

func TestPackContainment(t *testing.T) {
	subjects := []model.Subject{
		{BaseModel: model.BaseModel{ID: 1}, PriorityScore: 0.9, AllocatedTime: 5},
		{BaseModel: model.BaseModel{ID: 2}, PriorityScore: 0.6, AllocatedTime: 4},
		{BaseModel: model.BaseModel{ID: 3}, PriorityScore: 0.3, AllocatedTime: 3},
	}
	blocks := []model.FreeTimeBlock{
		{Day: model.Monday, StartTime: "09:00", EndTime: "12:00"},
		{Day: model.Wednesday, StartTime: "18:00", EndTime: "20:00"},
		{Day: model.Saturday, StartTime: "08:00", EndTime: "13:00"},
	}

	schedule := Pack(subjects, blocks)

	used := map[model.Weekday]float64{}
	for _, b := range schedule {
		window, ok := findWindow(blocks, b.Day)
		if !ok {
			t.Fatalf("block on %s has no declared window", b.Day)
		}
		if ClockToMinutes(b.StartTime) < ClockToMinutes(window.StartTime) ||
			ClockToMinutes(b.EndTime) > ClockToMinutes(window.EndTime) {
			t.Errorf("block %s %s-%s escapes window %s-%s",
				b.Day, b.StartTime, b.EndTime, window.StartTime, window.EndTime)
		}
		used[b.Day] += b.DurationMinutes
	}

	for day, minutes := range used {
		window, _ := findWindow(blocks, day)
		capacity := BlockDurationHours(window.StartTime, window.EndTime) * 60
		if minutes > capacity+1e-9 {
			t.Errorf("%s: %f minutes scheduled into a %f minute window", day, minutes, capacity)
		}
	}
}

func TestPackFractionalAllocations(t *testing.T) {
	// 按优先级占比分出来的时长普遍带小数分钟，
	// 取整后每个块的 DurationMinutes 必须等于钟面跨度，且总量不超窗口
	subjects := []model.Subject{
		{BaseModel: model.BaseModel{ID: 1}, PriorityScore: 0.9, AllocatedTime: 27.96 / 60},
		{BaseModel: model.BaseModel{ID: 2}, PriorityScore: 0.3, AllocatedTime: 33.0 / 60},
	}
	blocks := []model.FreeTimeBlock{
		{Day: model.Monday, StartTime: "09:00", EndTime: "10:00"},
	}

	schedule := Pack(subjects, blocks)

	if len(schedule) != 2 {
		t.Fatalf("blocks scheduled = %d, want 2", len(schedule))
	}

	total := 0.0
	for _, b := range schedule {
		span := float64(ClockToMinutes(b.EndTime) - ClockToMinutes(b.StartTime))
		assertFloat(t, "clock span matches duration", span, b.DurationMinutes)
		total += b.DurationMinutes
	}
	if total > 60+epsilon {
		t.Errorf("%.4f minutes emitted into a 60-minute window", total)
	}

	// 27.96 取整到 28，剩余 32 分钟全给第二个科目
	assertFloat(t, "first duration", schedule[0].DurationMinutes, 28)
	if schedule[0].EndTime != "09:28" {
		t.Errorf("first block ends %s, want 09:28", schedule[0].EndTime)
	}
	assertFloat(t, "second duration", schedule[1].DurationMinutes, 32)
	if schedule[1].EndTime != "10:00" {
		t.Errorf("second block ends %s, want 10:00", schedule[1].EndTime)
	}
}

func findWindow(blocks []model.FreeTimeBlock, day model.Weekday) (model.FreeTimeBlock, bool) {
	for _, b := range blocks {
		if b.Day == day {
			return b, true
		}
	}
	return model.FreeTimeBlock{}, false
}

func TestPackDoesNotMutateInput(t *testing.T) {
	subjects := []model.Subject{
		{BaseModel: model.BaseModel{ID: 1}, PriorityScore: 0.5, AllocatedTime: 1},
	}
	blocks := []model.FreeTimeBlock{
		{Day: model.Friday, StartTime: "09:00", EndTime: "11:00"},
	}

	Pack(subjects, blocks)

	if blocks[0].StartTime != "09:00" {
		t.Errorf("input block mutated: start = %s", blocks[0].StartTime)
	}
}

// --- ShouldRegenerate ---

func TestShouldRegenerate(t *testing.T) {
	cases := []struct {
		event EventType
		want  bool
	}{
		{EventStudySessionCompleted, true},
		{EventSubjectAdded, true},
		{EventSubjectUpdated, true},
		{EventSubjectDeleted, true},
		{EventAvailabilityChanged, true},
		{EventType("material_uploaded"), false},
		{EventType(""), false},
	}

	for _, c := range cases {
		if got := ShouldRegenerate(c.event); got != c.want {
			t.Errorf("ShouldRegenerate(%q) = %v, want %v", c.event, got, c.want)
		}
	}
}
