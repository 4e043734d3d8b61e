package scheduler

import "study_planner_backend/internal/model"

// 算法二：按优先级比例分配每周总学习时长

// Allocate 把 totalAvailableHours 按 priorityScore 占比分给各科目，
// 返回带 AllocatedTime 的副本。总优先级为 0 时不分配，原样返回：
// 没有任何优先级信号时平均分配并不公平，宁可弃权。
func Allocate(subjects []model.Subject, totalAvailableHours float64) []model.Subject {
	if len(subjects) == 0 {
		return []model.Subject{}
	}

	totalPriority := 0.0
	for _, s := range subjects {
		totalPriority += s.PriorityScore
	}

	if totalPriority == 0 {
		return subjects
	}

	allocated := make([]model.Subject, len(subjects))
	for i, s := range subjects {
		s.AllocatedTime = s.PriorityScore / totalPriority * totalAvailableHours
		allocated[i] = s
	}
	return allocated
}
