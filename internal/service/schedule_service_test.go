package service

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"study_planner_backend/internal/model"
	"study_planner_backend/internal/scheduler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeSubjectStore struct {
	mu       sync.Mutex
	subjects []model.Subject

	scores    map[uint]float64
	allocated map[uint]float64
	findErr   error
}

func newFakeSubjectStore(subjects ...model.Subject) *fakeSubjectStore {
	return &fakeSubjectStore{
		subjects:  subjects,
		scores:    make(map[uint]float64),
		allocated: make(map[uint]float64),
	}
}

func (f *fakeSubjectStore) FindByUserID(userID uint) ([]model.Subject, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	out := make([]model.Subject, len(f.subjects))
	copy(out, f.subjects)
	return out, nil
}

func (f *fakeSubjectStore) UpdatePriorityScore(id uint, score float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scores[id] = score
	return nil
}

func (f *fakeSubjectStore) UpdateAllocatedTime(id uint, hours float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.allocated[id] = hours
	return nil
}

type fakeWeekConfigStore struct {
	config  *model.WeekConfig
	findErr error
}

func (f *fakeWeekConfigStore) FindByUserID(userID uint) (*model.WeekConfig, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if f.config == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.config, nil
}

type fakeBlockStore struct {
	inFlight int32 // atomic
	overlaps int32 // atomic

	mu       sync.Mutex
	blocks   []model.ScheduleBlock
	replaces int
	deletes  int
}

func (f *fakeBlockStore) FindByUserID(userID uint) ([]model.ScheduleBlock, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.blocks, nil
}

func (f *fakeBlockStore) ReplaceForUser(userID uint, blocks []model.ScheduleBlock) error {
	if atomic.AddInt32(&f.inFlight, 1) > 1 {
		atomic.StoreInt32(&f.overlaps, 1)
	}
	time.Sleep(time.Millisecond) // 拉开交错窗口
	defer atomic.AddInt32(&f.inFlight, -1)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.blocks = blocks
	f.replaces++
	return nil
}

func (f *fakeBlockStore) sawOverlap() bool {
	return atomic.LoadInt32(&f.overlaps) == 1
}

func (f *fakeBlockStore) DeleteByUserID(userID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.blocks = nil
	f.deletes++
	return nil
}

func (f *fakeBlockStore) replaceCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.replaces
}

func subjectFixture(id uint, name string, difficulty int, daysUntilExam int, now time.Time) model.Subject {
	s := model.Subject{
		Name:       name,
		Difficulty: difficulty,
		StartDate:  now.AddDate(0, 0, -7),
		ExamDate:   now.AddDate(0, 0, daysUntilExam),
	}
	s.ID = id
	return s
}

func weekConfigFixture(hours float64) *model.WeekConfig {
	return &model.WeekConfig{
		TotalAvailableHours: hours,
		WeekStartDate:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		FreeTimeBlocks: []model.FreeTimeBlock{
			{Day: model.Monday, StartTime: "09:00", EndTime: "12:00"},
			{Day: model.Tuesday, StartTime: "14:00", EndTime: "18:00"},
		},
	}
}

func newTestScheduleService(subjects *fakeSubjectStore, weekConfig *fakeWeekConfigStore, blocks *fakeBlockStore) *ScheduleService {
	svc := NewScheduleService(subjects, weekConfig, blocks)
	svc.now = func() time.Time {
		return time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestRegenerateSkipsWithoutWeekConfig(t *testing.T) {
	subjects := newFakeSubjectStore(subjectFixture(1, "Math", 3, 14, time.Now()))
	blocks := &fakeBlockStore{}
	svc := newTestScheduleService(subjects, &fakeWeekConfigStore{}, blocks)

	result := svc.Regenerate(1, scheduler.EventSubjectAdded)

	assert.False(t, result.Performed)
	assert.Equal(t, "Week config not set", result.Message)
	assert.Zero(t, blocks.replaceCount(), "skipped regeneration must not touch the schedule")
}

func TestRegenerateSkipsWithoutFreeTimeBlocks(t *testing.T) {
	config := weekConfigFixture(40)
	config.FreeTimeBlocks = nil
	blocks := &fakeBlockStore{}
	svc := newTestScheduleService(newFakeSubjectStore(), &fakeWeekConfigStore{config: config}, blocks)

	result := svc.Regenerate(1, scheduler.EventAvailabilityChanged)

	assert.False(t, result.Performed)
	assert.Zero(t, blocks.replaceCount())
}

func TestRegenerateSkipsWithoutSubjects(t *testing.T) {
	blocks := &fakeBlockStore{}
	svc := newTestScheduleService(newFakeSubjectStore(), &fakeWeekConfigStore{config: weekConfigFixture(40)}, blocks)

	result := svc.Regenerate(1, scheduler.EventSubjectDeleted)

	assert.False(t, result.Performed)
	assert.Equal(t, "No subjects found", result.Message)
	assert.Zero(t, blocks.replaceCount())
}

func TestRegeneratePipeline(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	subjects := newFakeSubjectStore(
		subjectFixture(1, "Math", 5, 3, now),
		subjectFixture(2, "History", 2, 30, now),
	)
	config := weekConfigFixture(7)
	blocks := &fakeBlockStore{}
	svc := newTestScheduleService(subjects, &fakeWeekConfigStore{config: config}, blocks)

	result := svc.Regenerate(1, scheduler.EventSubjectAdded)

	require.True(t, result.Performed)
	assert.Equal(t, 1, blocks.replaceCount())
	assert.Equal(t, result.BlocksCreated, len(blocks.blocks))
	require.NotEmpty(t, blocks.blocks)

	// 优先级和分配时长都要回写
	assert.Len(t, subjects.scores, 2)
	assert.Len(t, subjects.allocated, 2)
	assert.Greater(t, subjects.scores[uint(1)], subjects.scores[uint(2)], "sooner exam and higher difficulty must outrank")

	var totalHours float64
	for _, block := range blocks.blocks {
		assert.Equal(t, uint(1), block.UserID)
		assert.Equal(t, config.WeekStartDate, block.WeekStartDate)
		totalHours += block.DurationMinutes / 60
	}
	assert.InDelta(t, config.TotalAvailableHours, totalHours, 1e-9, "free windows cover the weekly hours, so every allocated hour lands")
}

func TestRegenerateWeekConfigFailureIsErrorNotSkip(t *testing.T) {
	blocks := &fakeBlockStore{}
	weekConfigs := &fakeWeekConfigStore{findErr: errors.New("connection refused")}
	svc := newTestScheduleService(newFakeSubjectStore(), weekConfigs, blocks)

	result := svc.Regenerate(1, scheduler.EventSubjectAdded)

	assert.False(t, result.Performed)
	assert.Contains(t, result.Message, "load week config", "a storage failure must not read as a missing config")
	assert.Zero(t, blocks.replaceCount())
}

func TestRegenerateLoadFailureIsNonFatal(t *testing.T) {
	subjects := newFakeSubjectStore()
	subjects.findErr = errors.New("db gone")
	blocks := &fakeBlockStore{}
	svc := newTestScheduleService(subjects, &fakeWeekConfigStore{config: weekConfigFixture(40)}, blocks)

	result := svc.Regenerate(1, scheduler.EventSubjectAdded)

	assert.False(t, result.Performed)
	assert.Contains(t, result.Message, "load subjects")
	assert.Zero(t, blocks.replaceCount())
}

func TestDeleteSchedule(t *testing.T) {
	blocks := &fakeBlockStore{blocks: []model.ScheduleBlock{{Day: model.Monday}}}
	svc := newTestScheduleService(newFakeSubjectStore(), &fakeWeekConfigStore{}, blocks)

	require.NoError(t, svc.DeleteSchedule(1))

	remaining, err := svc.GetSchedule(1)
	require.NoError(t, err)
	assert.Empty(t, remaining)
	assert.Equal(t, 1, blocks.deletes)
}
