package temporal

import (
	"fmt"
	"time"

	"taskPlanner/internal/models/task"
)

// ScheduledOn — назначена ли повторяющаяся задача на календарный день day.
// Пустой набор дней недели не совпадает ни с одним днём.
func ScheduledOn(t *task.Task, day time.Time) bool {
	if !t.IsRecurring {
		return false
	}
	return t.ScheduledOnWeekday(int(day.Weekday()))
}

// DoneOn — отмечено ли выполнение повторяющейся задачи в день day.
// Слот выполнения один: отметка в другой день перезаписывает предыдущую,
// истории по дням нет.
func DoneOn(t *task.Task, day time.Time) bool {
	if t.LastRecurringCompletion == nil {
		return false
	}
	return SameDay(*t.LastRecurringCompletion, day)
}

// IsLateToday — просрочена ли сегодняшняя обязанность повторяющейся задачи.
// Просрочка наступает строго после дневного дедлайна "HH:MM";
// ровно в момент дедлайна задача ещё не опоздала.
func IsLateToday(t *task.Task, now time.Time) bool {
	if !t.IsRecurring {
		return false
	}
	if IsSuspendedNow(t, now) {
		return false
	}
	if !ScheduledOn(t, now) {
		return false
	}
	if DoneOn(t, now) {
		return false
	}

	cutoff, ok := parseCutoff(t.RecurringTime)
	if !ok {
		return false
	}

	return secondsOfDay(now) > cutoff
}

// parseCutoff разбирает "HH:MM" в секунды от начала дня
func parseCutoff(value string) (int, bool) {
	if value == "" {
		return 0, false
	}

	var hours, minutes int
	if _, err := fmt.Sscanf(value, "%d:%d", &hours, &minutes); err != nil {
		return 0, false
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, false
	}

	return hours*3600 + minutes*60, true
}

func secondsOfDay(instant time.Time) int {
	return instant.Hour()*3600 + instant.Minute()*60 + instant.Second()
}
