package temporal_test

import (
	"testing"
	"time"

	"taskPlanner/internal/models/task"
	"taskPlanner/internal/temporal"

	"github.com/stretchr/testify/assert"
)

// 2025-06-02 — понедельник
var monday = time.Date(2025, 6, 2, 10, 0, 0, 0, time.Local)

func recurringTask(days []int, cutoff string) *task.Task {
	return &task.Task{
		Status:        task.StatusActive,
		IsRecurring:   true,
		RecurringDays: days,
		RecurringTime: cutoff,
	}
}

// TestScheduledOn тестирует назначение по дням недели независимо от now
func TestScheduledOn(t *testing.T) {
	// Пн/Ср/Пт
	tk := recurringTask([]int{1, 3, 5}, "")

	for offset := 0; offset < 7; offset++ {
		day := monday.AddDate(0, 0, offset)
		weekday := int(day.Weekday())

		expected := weekday == 1 || weekday == 3 || weekday == 5
		assert.Equal(t, expected, temporal.ScheduledOn(tk, day), "день недели %d", weekday)
	}
}

// TestScheduledOn_EmptyDays тестирует вырожденный набор: пустой список
// дней не совпадает ни с одним днём, задача инертна
func TestScheduledOn_EmptyDays(t *testing.T) {
	tk := recurringTask([]int{}, "")

	for offset := 0; offset < 7; offset++ {
		assert.False(t, temporal.ScheduledOn(tk, monday.AddDate(0, 0, offset)))
	}
}

// TestScheduledOn_NotRecurring тестирует обычную задачу
func TestScheduledOn_NotRecurring(t *testing.T) {
	tk := &task.Task{Status: task.StatusActive}
	assert.False(t, temporal.ScheduledOn(tk, monday))
}

// TestDoneOn тестирует отметку выполнения по календарному дню
func TestDoneOn(t *testing.T) {
	completion := time.Date(2025, 6, 2, 8, 30, 0, 0, time.Local)
	tk := recurringTask([]int{1}, "")
	tk.LastRecurringCompletion = &completion

	assert.True(t, temporal.DoneOn(tk, monday))
	assert.True(t, temporal.DoneOn(tk, time.Date(2025, 6, 2, 23, 0, 0, 0, time.Local)))
	assert.False(t, temporal.DoneOn(tk, monday.AddDate(0, 0, 1)))

	tk.LastRecurringCompletion = nil
	assert.False(t, temporal.DoneOn(tk, monday))
}

// TestIsLateToday тестирует опоздание по дневному дедлайну
func TestIsLateToday(t *testing.T) {
	doneToday := time.Date(2025, 6, 2, 7, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		task     func() *task.Task
		now      time.Time
		expected bool
	}{
		{
			name:     "после дедлайна — опоздание",
			task:     func() *task.Task { return recurringTask([]int{1}, "09:00") },
			now:      time.Date(2025, 6, 2, 9, 0, 1, 0, time.Local),
			expected: true,
		},
		{
			name:     "ровно в момент дедлайна ещё не опоздание",
			task:     func() *task.Task { return recurringTask([]int{1}, "09:00") },
			now:      time.Date(2025, 6, 2, 9, 0, 0, 0, time.Local),
			expected: false,
		},
		{
			name:     "до дедлайна",
			task:     func() *task.Task { return recurringTask([]int{1}, "09:00") },
			now:      time.Date(2025, 6, 2, 8, 59, 59, 0, time.Local),
			expected: false,
		},
		{
			name:     "дедлайн не задан",
			task:     func() *task.Task { return recurringTask([]int{1}, "") },
			now:      time.Date(2025, 6, 2, 23, 0, 0, 0, time.Local),
			expected: false,
		},
		{
			name:     "не назначена на сегодня",
			task:     func() *task.Task { return recurringTask([]int{3}, "09:00") },
			now:      time.Date(2025, 6, 2, 10, 0, 0, 0, time.Local),
			expected: false,
		},
		{
			name: "уже выполнена сегодня",
			task: func() *task.Task {
				tk := recurringTask([]int{1}, "09:00")
				tk.LastRecurringCompletion = &doneToday
				return tk
			},
			now:      time.Date(2025, 6, 2, 10, 0, 0, 0, time.Local),
			expected: false,
		},
		{
			name: "приостановлена",
			task: func() *task.Task {
				tk := recurringTask([]int{1}, "09:00")
				tk.IsSuspended = true
				return tk
			},
			now:      time.Date(2025, 6, 2, 10, 0, 0, 0, time.Local),
			expected: false,
		},
		{
			name:     "непериодическая задача",
			task:     func() *task.Task { return &task.Task{Status: task.StatusActive} },
			now:      time.Date(2025, 6, 2, 10, 0, 0, 0, time.Local),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := temporal.IsLateToday(tt.task(), tt.now)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// TestIsLateToday_BadCutoff тестирует кривой формат дневного дедлайна:
// нечитаемое значение трактуется как отсутствие дедлайна, не ошибка
func TestIsLateToday_BadCutoff(t *testing.T) {
	tk := recurringTask([]int{1}, "25:99")
	now := time.Date(2025, 6, 2, 23, 0, 0, 0, time.Local)

	assert.False(t, temporal.IsLateToday(tk, now))
}
