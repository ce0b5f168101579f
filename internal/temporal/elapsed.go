package temporal

import (
	"time"

	"taskPlanner/internal/models/task"
)

// CalculateElapsed считает накопленное время работы в секундах:
// сохранённая база плюс дельта работающего таймера на момент now.
// Если часы ушли назад (now раньше старта), дельта прижимается к нулю.
func CalculateElapsed(base int64, startedAt *time.Time, now time.Time) int64 {
	if startedAt == nil {
		return base
	}

	delta := int64(now.Sub(*startedAt) / time.Second)
	if delta < 0 {
		delta = 0
	}

	return base + delta
}

func Elapsed(t *task.Task, now time.Time) int64 {
	return CalculateElapsed(t.ElapsedSeconds, t.TimerStartedAt, now)
}
