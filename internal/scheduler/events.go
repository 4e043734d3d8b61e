package scheduler

// 触发课表重建的事件类型
type EventType string

const (
	EventStudySessionCompleted EventType = "study_session_completed"
	EventSubjectAdded          EventType = "subject_added"
	EventSubjectUpdated        EventType = "subject_updated"
	EventSubjectDeleted        EventType = "subject_deleted"
	EventAvailabilityChanged   EventType = "availability_changed"

	// EventManualGenerate 不走事件队列，只作为手动触发的标记
	EventManualGenerate EventType = "manual_generate"
)

var regenerationTriggers = map[EventType]bool{
	EventStudySessionCompleted: true,
	EventSubjectAdded:          true,
	EventSubjectUpdated:        true,
	EventSubjectDeleted:        true,
	EventAvailabilityChanged:   true,
}

// ShouldRegenerate 判断事件是否需要重建课表
func ShouldRegenerate(eventType EventType) bool {
	return regenerationTriggers[eventType]
}
