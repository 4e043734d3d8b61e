package service

import (
	"sync"

	"study_planner_backend/internal/scheduler"
	"study_planner_backend/pkg/logger"

	"go.uber.org/zap"
)

// Regenerator 把课表重建从触发它的请求里解耦出来：Trigger 从不阻塞调用方，
// 每个用户一条串行队列，排队中的重复请求只保留一个（合并），
// 保证同一用户的两次重建不会交错进行。
// 手动重建走 RegenerateNow，同步返回结果，但和队列里的重建共用每用户互斥锁。

type regenWorker struct {
	requests chan scheduler.EventType

	// 持有期间表示一次重建正在执行，手动路径与队列路径共用
	exec sync.Mutex
}

type Regenerator struct {
	schedule *ScheduleService

	mu      sync.Mutex
	workers map[uint]*regenWorker
	wg      sync.WaitGroup
	stopped bool
}

func NewRegenerator(schedule *ScheduleService) *Regenerator {
	return &Regenerator{
		schedule: schedule,
		workers:  make(map[uint]*regenWorker),
	}
}

// workerLocked 返回该用户的队列，必要时启动。调用方必须持有 r.mu
func (r *Regenerator) workerLocked(userID uint) *regenWorker {
	w, ok := r.workers[userID]
	if !ok {
		w = &regenWorker{requests: make(chan scheduler.EventType, 1)}
		r.workers[userID] = w
		r.wg.Add(1)
		go r.run(userID, w)
	}
	return w
}

// ensureWorker 返回该用户的队列，必要时启动；已停止时返回 nil
func (r *Regenerator) ensureWorker(userID uint) *regenWorker {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped {
		return nil
	}
	return r.workerLocked(userID)
}

// Trigger 在事件属于重建触发集时为该用户排队一次重建。
// 返回是否入队（不表示重建成功，结果只进日志与指标）。
func (r *Regenerator) Trigger(userID uint, event scheduler.EventType) bool {
	if !scheduler.ShouldRegenerate(event) {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped {
		return false
	}

	select {
	case r.workerLocked(userID).requests <- event:
	default:
		// 已有待处理请求，合并
	}
	return true
}

// RegenerateNow 同步执行一次重建并返回结果。
// 与该用户队列里的异步重建互斥，不会交错进行。
func (r *Regenerator) RegenerateNow(userID uint) RegenerationResult {
	w := r.ensureWorker(userID)
	if w == nil {
		// 已停止（关机中），直接跑：此时队列已排空，不存在交错
		return r.schedule.Regenerate(userID, scheduler.EventManualGenerate)
	}

	w.exec.Lock()
	defer w.exec.Unlock()
	return r.schedule.Regenerate(userID, scheduler.EventManualGenerate)
}

func (r *Regenerator) run(userID uint, w *regenWorker) {
	defer r.wg.Done()
	for event := range w.requests {
		w.exec.Lock()
		result := r.schedule.Regenerate(userID, event)
		w.exec.Unlock()
		if !result.Performed {
			logger.L().Info("regeneration not performed",
				zap.Uint("userId", userID),
				zap.String("reason", string(event)),
				zap.String("message", result.Message))
		}
	}
}

// Stop 关闭所有用户队列并等待在跑的重建结束
func (r *Regenerator) Stop() {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.stopped = true
	for _, w := range r.workers {
		close(w.requests)
	}
	r.mu.Unlock()
	r.wg.Wait()
}
