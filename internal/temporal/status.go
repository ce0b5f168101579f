package temporal

import (
	"time"

	"taskPlanner/internal/models/task"
)

// EffectiveStatus — вычисленный статус для отображения. Для терминальных
// задач совпадает с сохранённым, для активных выводится из дедлайна и now.
type EffectiveStatus string

const EffectiveOnTrack EffectiveStatus = "on_track"
const EffectiveDueSoon EffectiveStatus = "due_soon"
const EffectiveDueToday EffectiveStatus = "due_today"
const EffectiveOverdue EffectiveStatus = "overdue"
const EffectiveCompleted EffectiveStatus = "completed"
const EffectiveCancelled EffectiveStatus = "cancelled"

const secondsPerDay = 86400

// ResolveStatus выводит статус непериодической задачи.
// Completed и cancelled никогда не показываются просроченными.
// Задача без дедлайна лежит в бэклоге и всегда on_track.
func ResolveStatus(t *task.Task, now time.Time) EffectiveStatus {
	switch t.Status {
	case task.StatusCompleted:
		return EffectiveCompleted
	case task.StatusCancelled:
		return EffectiveCancelled
	}

	if t.Deadline == nil {
		return EffectiveOnTrack
	}

	deadline := *t.Deadline

	if now.After(deadline) {
		return EffectiveOverdue
	}
	if SameDay(deadline, now) {
		return EffectiveDueToday
	}
	if deadline.Sub(now) <= 24*time.Hour {
		return EffectiveDueSoon
	}

	return EffectiveOnTrack
}

// DaysOverdue — на сколько дней просрочена задача. Ноль ровно тогда,
// когда now <= deadline; любая ненулевая просрочка округляется вверх,
// опоздание на минуты — это уже "1 день".
func DaysOverdue(t *task.Task, now time.Time) int {
	if t.Status.IsTerminal() || t.Deadline == nil {
		return 0
	}
	if !now.After(*t.Deadline) {
		return 0
	}

	overdueSeconds := int64(now.Sub(*t.Deadline) / time.Second)
	days := int((overdueSeconds + secondsPerDay - 1) / secondsPerDay)
	if days < 1 {
		days = 1
	}

	return days
}

// IsLate — общий признак просроченности для отчётов: у повторяющихся
// задач это опоздание по сегодняшней обязанности, у остальных — просроченный
// дедлайн либо легаси-статус late из старых данных
func IsLate(t *task.Task, now time.Time) bool {
	if t.IsRecurring {
		return IsLateToday(t, now)
	}
	if t.Status == task.StatusLate {
		return true
	}
	return ResolveStatus(t, now) == EffectiveOverdue
}
