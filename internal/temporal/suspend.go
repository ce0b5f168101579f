package temporal

import (
	"time"

	"taskPlanner/internal/models/task"
)

// IsSuspendedNow — приостановлена ли повторяющаяся задача прямо сейчас.
// SuspendedUntil — последний день приостановки включительно: задача
// возобновляется со следующего календарного дня, время суток не важно.
func IsSuspendedNow(t *task.Task, now time.Time) bool {
	if !t.IsRecurring || !t.IsSuspended {
		return false
	}

	// без границы — приостановка бессрочная
	if t.SuspendedUntil == nil {
		return true
	}

	return !DateOf(now).After(DateOf(*t.SuspendedUntil))
}

// DateOf обрезает момент до начала календарного дня
func DateOf(instant time.Time) time.Time {
	y, m, d := instant.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, instant.Location())
}

// SameDay — попадают ли два момента в один календарный день
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
