package service

import (
	"sync"
	"testing"
	"time"

	"study_planner_backend/internal/scheduler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegenerator(blocks *fakeBlockStore) *Regenerator {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	subjects := newFakeSubjectStore(subjectFixture(1, "Math", 4, 10, now))
	svc := newTestScheduleService(subjects, &fakeWeekConfigStore{config: weekConfigFixture(5)}, blocks)
	return NewRegenerator(svc)
}

func TestTriggerIgnoresNonRegenerationEvents(t *testing.T) {
	blocks := &fakeBlockStore{}
	r := newTestRegenerator(blocks)
	defer r.Stop()

	assert.False(t, r.Trigger(1, scheduler.EventManualGenerate))
	assert.False(t, r.Trigger(1, scheduler.EventType("unknown")))
}

func TestTriggerRunsQueuedRegeneration(t *testing.T) {
	blocks := &fakeBlockStore{}
	r := newTestRegenerator(blocks)

	require.True(t, r.Trigger(1, scheduler.EventSubjectAdded))

	// Stop 等待队列排空，之后结果必须可见
	r.Stop()
	assert.Equal(t, 1, blocks.replaceCount())
	assert.NotEmpty(t, blocks.blocks)
}

func TestTriggerCoalescesBurst(t *testing.T) {
	blocks := &fakeBlockStore{}
	r := newTestRegenerator(blocks)

	const burst = 50
	queued := 0
	for i := 0; i < burst; i++ {
		if r.Trigger(1, scheduler.EventSubjectUpdated) {
			queued++
		}
	}
	r.Stop()

	assert.Equal(t, burst, queued, "Trigger never blocks or rejects regeneration events")
	assert.LessOrEqual(t, blocks.replaceCount(), burst)
	assert.GreaterOrEqual(t, blocks.replaceCount(), 1)
}

func TestTriggerAfterStop(t *testing.T) {
	blocks := &fakeBlockStore{}
	r := newTestRegenerator(blocks)
	r.Stop()

	assert.False(t, r.Trigger(1, scheduler.EventSubjectAdded))
	r.Stop() // 重复 Stop 必须安全
}

func TestRegenerateNowReturnsResult(t *testing.T) {
	blocks := &fakeBlockStore{}
	r := newTestRegenerator(blocks)
	defer r.Stop()

	result := r.RegenerateNow(1)

	require.True(t, result.Performed)
	assert.Greater(t, result.BlocksCreated, 0)
	assert.Equal(t, 1, blocks.replaceCount())
}

func TestRegenerateNowAfterStop(t *testing.T) {
	blocks := &fakeBlockStore{}
	r := newTestRegenerator(blocks)
	r.Stop()

	// 关机路径：队列已排空，直接执行
	result := r.RegenerateNow(1)

	require.True(t, result.Performed)
	assert.Equal(t, 1, blocks.replaceCount())
}

func TestRegenerateNowDoesNotInterleaveWithQueue(t *testing.T) {
	blocks := &fakeBlockStore{}
	r := newTestRegenerator(blocks)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		r.Trigger(1, scheduler.EventSubjectUpdated)
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.RegenerateNow(1)
		}()
	}
	wg.Wait()
	r.Stop()

	assert.False(t, blocks.sawOverlap(), "manual and queued regenerations for one user must not run concurrently")
	assert.GreaterOrEqual(t, blocks.replaceCount(), 20)
}

func TestTriggerSeparateUsersGetSeparateQueues(t *testing.T) {
	blocks := &fakeBlockStore{}
	r := newTestRegenerator(blocks)

	require.True(t, r.Trigger(1, scheduler.EventSubjectAdded))
	require.True(t, r.Trigger(2, scheduler.EventSubjectAdded))
	r.Stop()

	assert.Equal(t, 2, blocks.replaceCount())
}
