package report

import (
	"time"

	"taskPlanner/internal/models/task"
	"taskPlanner/internal/temporal"
)

// longWindowDays — периоды от года и длиннее покрывают все дни недели
// многократно, повторяющиеся задачи включаются без сканирования по дням
const longWindowDays = 365

// BelongsToWindow решает, относится ли задача к отчётному периоду.
// Пять веток проверяются строго по порядку: повторяющаяся, выполненная,
// отменённая, активная в текущем окне, активная в историческом окне.
func BelongsToWindow(t *task.Task, w Window, now time.Time) bool {
	isCurrent := w.IsCurrent(now)

	switch {
	case t.IsRecurring:
		return recurringBelongs(t, w, now, isCurrent)
	case t.Status == task.StatusCompleted:
		return completedBelongs(t, w)
	case t.Status == task.StatusCancelled:
		return cancelledBelongs(t, w)
	case isCurrent:
		return activeCurrentBelongs(t, w)
	default:
		return activeHistoricalBelongs(t, w)
	}
}

// Filter возвращает задачи периода, сохраняя исходный порядок набора
func Filter(tasks []*task.Task, w Window, now time.Time) []*task.Task {
	res := []*task.Task{}
	for _, t := range tasks {
		if BelongsToWindow(t, w, now) {
			res = append(res, t)
		}
	}
	return res
}

func recurringBelongs(t *task.Task, w Window, now time.Time, isCurrent bool) bool {
	// приостановленные не показываются в текущем окне
	if isCurrent && temporal.IsSuspendedNow(t, now) {
		return false
	}

	// открытый период: повторяющаяся задача актуальна всегда
	if w.IsOpen() {
		return true
	}

	if t.LastRecurringCompletion != nil && w.Contains(*t.LastRecurringCompletion) {
		return true
	}

	if w.SpanDays() >= longWindowDays {
		return true
	}

	// сканируем дни периода на совпадение по дню недели; историческая
	// приостановка здесь сознательно не учитывается
	for day := *w.Start; !day.After(*w.End); day = day.AddDate(0, 0, 1) {
		if t.ScheduledOnWeekday(int(day.Weekday())) {
			return true
		}
	}

	return false
}

// выполненная задача принадлежит только периоду, в котором была закрыта
func completedBelongs(t *task.Task, w Window) bool {
	if t.CompletedAt == nil {
		return false
	}
	return w.Contains(*t.CompletedAt)
}

func cancelledBelongs(t *task.Task, w Window) bool {
	return w.Contains(referenceInstant(t))
}

// текущее окно: бэклог без дедлайна виден всегда, просроченные из прошлого
// подтягиваются, задачи с дедлайном строго после конца окна — нет
func activeCurrentBelongs(t *task.Task, w Window) bool {
	if t.Deadline == nil {
		return true
	}
	if w.End == nil {
		return true
	}
	return !t.Deadline.After(*w.End)
}

// историческое окно: без подтягивания, только задачи с дедлайном
// (или датой создания) внутри периода
func activeHistoricalBelongs(t *task.Task, w Window) bool {
	return w.Contains(referenceInstant(t))
}

func referenceInstant(t *task.Task) time.Time {
	if t.Deadline != nil {
		return *t.Deadline
	}
	return t.CreatedAt
}
