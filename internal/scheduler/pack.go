package scheduler

import (
	"sort"

	"study_planner_backend/internal/model"
)

// 算法三：贪心排课
// 优先级高的科目先占块；块按调用方给定的顺序消耗，每个科目都从第一个块
// 重新扫描；块被占用后原地前移起点，缩到非正时长即被后续扫描跳过。
// 每周空闲时间不够时，剩余配额直接丢弃，不报错不结转。

// Pack 把已分配时长的科目装进空闲时间窗口，产出具体学习块。
// 输入切片不会被修改。
func Pack(subjects []model.Subject, freeTimeBlocks []model.FreeTimeBlock) []model.ScheduleBlock {
	sorted := make([]model.Subject, len(subjects))
	copy(sorted, subjects)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PriorityScore > sorted[j].PriorityScore
	})

	blocks := make([]model.FreeTimeBlock, len(freeTimeBlocks))
	copy(blocks, freeTimeBlocks)

	schedule := []model.ScheduleBlock{}

	for _, subject := range sorted {
		remainingTime := subject.AllocatedTime

		for j := range blocks {
			if remainingTime <= 0 {
				break
			}

			block := &blocks[j]

			blockDuration := BlockDurationHours(block.StartTime, block.EndTime)
			if blockDuration <= 0 {
				continue
			}

			timeToSchedule := remainingTime
			if blockDuration < timeToSchedule {
				timeToSchedule = blockDuration
			}

			// 时间串只有分钟精度，取整到整分钟后所有字段用同一个值，
			// 保证 DurationMinutes 与 EndTime−StartTime 一致且不超出窗口
			scheduledMinutes := int(timeToSchedule*60 + 0.5)
			if scheduledMinutes <= 0 {
				continue
			}

			schedule = append(schedule, model.ScheduleBlock{
				SubjectID:       subject.ID,
				Day:             block.Day,
				StartTime:       block.StartTime,
				EndTime:         AddMinutes(block.StartTime, scheduledMinutes),
				DurationMinutes: float64(scheduledMinutes),
			})

			remainingTime -= float64(scheduledMinutes) / 60

			// 占用的部分从块头切掉，剩余部分留给后面的科目
			block.StartTime = AddMinutes(block.StartTime, scheduledMinutes)
		}
	}

	return schedule
}
