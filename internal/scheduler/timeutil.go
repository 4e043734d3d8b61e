package scheduler

import (
	"fmt"
	"strconv"
	"strings"
)

// 时间一律为 24 小时制 HH:MM 字符串，按总分钟数做算术

// ClockToMinutes 把 HH:MM 转成当天分钟数，格式非法返回 0
func ClockToMinutes(clock string) int {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return hour*60 + minute
}

// BlockDurationHours 计算时间窗口时长（小时），endTime 早于 startTime 时为负
func BlockDurationHours(startTime, endTime string) float64 {
	return float64(ClockToMinutes(endTime)-ClockToMinutes(startTime)) / 60
}

// AddMinutes 给时间加整分钟数，超过午夜按 24 小时取模回绕，天标签不变
func AddMinutes(clock string, minutes int) string {
	total := ClockToMinutes(clock) + minutes
	hour := (total / 60) % 24
	minute := total % 60
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
