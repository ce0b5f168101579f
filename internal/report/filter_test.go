package report_test

import (
	"testing"
	"time"

	"taskPlanner/internal/models/task"
	"taskPlanner/internal/report"

	"github.com/stretchr/testify/assert"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
	return &d
}

func instantPtr(year int, month time.Month, day, hour, min int) *time.Time {
	d := time.Date(year, month, day, hour, min, 0, 0, time.Local)
	return &d
}

// TestWindow_Bounds тестирует разворачивание дат в границы суток
func TestWindow_Bounds(t *testing.T) {
	w := report.NewWindow(datePtr(2025, 1, 1), datePtr(2025, 1, 31))

	assert.True(t, w.Contains(time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)))
	assert.True(t, w.Contains(time.Date(2025, 1, 31, 23, 59, 59, 0, time.Local)))
	assert.False(t, w.Contains(time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local)))
	assert.False(t, w.Contains(time.Date(2024, 12, 31, 23, 59, 59, 0, time.Local)))

	assert.Equal(t, 31, w.SpanDays())
}

// TestWindow_OpenBounds тестирует открытые границы
func TestWindow_OpenBounds(t *testing.T) {
	open := report.NewWindow(nil, nil)
	assert.True(t, open.IsOpen())
	assert.True(t, open.Contains(time.Date(1999, 1, 1, 0, 0, 0, 0, time.Local)))
	assert.True(t, open.IsCurrent(time.Now()))

	onlyFrom := report.NewWindow(datePtr(2025, 1, 1), nil)
	assert.True(t, onlyFrom.IsOpen())
	assert.False(t, onlyFrom.Contains(time.Date(2024, 12, 31, 0, 0, 0, 0, time.Local)))
	assert.True(t, onlyFrom.Contains(time.Date(2030, 1, 1, 0, 0, 0, 0, time.Local)))
}

// TestBelongsToWindow_ActivePulledIntoCurrent тестирует подтягивание
// просроченной задачи из прошлого в текущее окно
func TestBelongsToWindow_ActivePulledIntoCurrent(t *testing.T) {
	// окно января 2025, now внутри
	w := report.NewWindow(datePtr(2025, 1, 1), datePtr(2025, 1, 31))
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.Local)

	overdueFromPast := &task.Task{
		Status:   task.StatusActive,
		Deadline: instantPtr(2024, 12, 20, 9, 0),
	}
	assert.True(t, report.BelongsToWindow(overdueFromPast, w, now))

	// бэклог без дедлайна виден в текущем окне всегда
	backlog := &task.Task{Status: task.StatusActive}
	assert.True(t, report.BelongsToWindow(backlog, w, now))

	// дедлайн строго после конца окна — не входит
	future := &task.Task{
		Status:   task.StatusActive,
		Deadline: instantPtr(2025, 2, 10, 9, 0),
	}
	assert.False(t, report.BelongsToWindow(future, w, now))
}

// TestBelongsToWindow_ActiveHistorical тестирует историческое окно:
// без подтягивания, только по дедлайну или дате создания
func TestBelongsToWindow_ActiveHistorical(t *testing.T) {
	// окно декабря 2024, now за его пределами
	w := report.NewWindow(datePtr(2024, 12, 1), datePtr(2024, 12, 31))
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.Local)

	insideByDeadline := &task.Task{
		Status:   task.StatusActive,
		Deadline: instantPtr(2024, 12, 20, 9, 0),
	}
	assert.True(t, report.BelongsToWindow(insideByDeadline, w, now))

	outside := &task.Task{
		Status:   task.StatusActive,
		Deadline: instantPtr(2025, 1, 5, 9, 0),
	}
	assert.False(t, report.BelongsToWindow(outside, w, now))

	// бэклог попадает по дате создания
	backlogCreatedInside := &task.Task{
		Status:    task.StatusActive,
		CreatedAt: time.Date(2024, 12, 5, 10, 0, 0, 0, time.Local),
	}
	assert.True(t, report.BelongsToWindow(backlogCreatedInside, w, now))

	backlogCreatedLater := &task.Task{
		Status:    task.StatusActive,
		CreatedAt: time.Date(2025, 1, 2, 10, 0, 0, 0, time.Local),
	}
	assert.False(t, report.BelongsToWindow(backlogCreatedLater, w, now))
}

// TestBelongsToWindow_Completed тестирует выполненные задачи:
// принадлежат только окну своего закрытия
func TestBelongsToWindow_Completed(t *testing.T) {
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.Local)
	completed := &task.Task{
		Status:      task.StatusCompleted,
		Deadline:    instantPtr(2025, 1, 20, 9, 0),
		CompletedAt: instantPtr(2024, 12, 28, 16, 0),
	}

	december := report.NewWindow(datePtr(2024, 12, 1), datePtr(2024, 12, 31))
	january := report.NewWindow(datePtr(2025, 1, 1), datePtr(2025, 1, 31))

	assert.True(t, report.BelongsToWindow(completed, december, now))
	// в январское окно не подтягивается, несмотря на январский дедлайн
	assert.False(t, report.BelongsToWindow(completed, january, now))
}

// TestBelongsToWindow_Cancelled тестирует отменённые задачи
func TestBelongsToWindow_Cancelled(t *testing.T) {
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.Local)
	w := report.NewWindow(datePtr(2025, 1, 1), datePtr(2025, 1, 31))

	byDeadline := &task.Task{
		Status:   task.StatusCancelled,
		Deadline: instantPtr(2025, 1, 10, 9, 0),
	}
	assert.True(t, report.BelongsToWindow(byDeadline, w, now))

	byCreation := &task.Task{
		Status:    task.StatusCancelled,
		CreatedAt: time.Date(2025, 1, 3, 9, 0, 0, 0, time.Local),
	}
	assert.True(t, report.BelongsToWindow(byCreation, w, now))

	outside := &task.Task{
		Status:   task.StatusCancelled,
		Deadline: instantPtr(2024, 11, 1, 9, 0),
	}
	assert.False(t, report.BelongsToWindow(outside, w, now))
}

// TestBelongsToWindow_Recurring тестирует ветку повторяющихся задач
func TestBelongsToWindow_Recurring(t *testing.T) {
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.Local)
	january := report.NewWindow(datePtr(2025, 1, 1), datePtr(2025, 1, 31))

	// день недели из набора встречается в окне
	mondays := &task.Task{
		Status:        task.StatusActive,
		IsRecurring:   true,
		RecurringDays: []int{1},
	}
	assert.True(t, report.BelongsToWindow(mondays, january, now))

	// однодневное окно вторника не содержит понедельника
	// 2025-01-07 — вторник
	tuesdayOnly := report.NewWindow(datePtr(2025, 1, 7), datePtr(2025, 1, 7))
	assert.False(t, report.BelongsToWindow(mondays, tuesdayOnly, now))

	// отметка выполнения внутри окна включает задачу даже вне её дней
	doneInWindow := &task.Task{
		Status:                  task.StatusActive,
		IsRecurring:             true,
		RecurringDays:           []int{1},
		LastRecurringCompletion: instantPtr(2025, 1, 7, 10, 0),
	}
	assert.True(t, report.BelongsToWindow(doneInWindow, tuesdayOnly, now))
}

// TestBelongsToWindow_RecurringSuspended тестирует исключение
// приостановленных из текущего окна
func TestBelongsToWindow_RecurringSuspended(t *testing.T) {
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.Local)
	suspended := &task.Task{
		Status:        task.StatusActive,
		IsRecurring:   true,
		RecurringDays: []int{1, 2, 3, 4, 5},
		IsSuspended:   true,
	}

	current := report.NewWindow(datePtr(2025, 1, 1), datePtr(2025, 1, 31))
	assert.False(t, report.BelongsToWindow(suspended, current, now))

	// в историческом окне приостановка не проверяется
	december := report.NewWindow(datePtr(2024, 12, 1), datePtr(2024, 12, 31))
	assert.True(t, report.BelongsToWindow(suspended, december, now))
}

// TestBelongsToWindow_RecurringLongAndOpenWindows тестирует быстрые пути:
// окна от года и открытые границы включают повторяющиеся задачи сразу
func TestBelongsToWindow_RecurringLongAndOpenWindows(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)
	// набор дней пуст — сканирование по дням никогда бы не совпало
	inert := &task.Task{
		Status:        task.StatusActive,
		IsRecurring:   true,
		RecurringDays: []int{},
	}

	year := report.NewWindow(datePtr(2025, 1, 1), datePtr(2025, 12, 31))
	assert.True(t, report.BelongsToWindow(inert, year, now))

	open := report.NewWindow(datePtr(2025, 1, 1), nil)
	assert.True(t, report.BelongsToWindow(inert, open, now))

	short := report.NewWindow(datePtr(2025, 6, 1), datePtr(2025, 6, 30))
	assert.False(t, report.BelongsToWindow(inert, short, now))
}

// TestFilter тестирует сохранение исходного порядка набора
func TestFilter(t *testing.T) {
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.Local)
	w := report.NewWindow(datePtr(2025, 1, 1), datePtr(2025, 1, 31))

	first := &task.Task{Status: task.StatusActive, Title: "first"}
	excluded := &task.Task{Status: task.StatusActive, Deadline: instantPtr(2025, 3, 1, 9, 0), Title: "excluded"}
	second := &task.Task{Status: task.StatusActive, Title: "second"}

	got := report.Filter([]*task.Task{first, excluded, second}, w, now)

	assert.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Title)
	assert.Equal(t, "second", got[1].Title)
}
