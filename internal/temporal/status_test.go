package temporal_test

import (
	"testing"
	"time"

	"taskPlanner/internal/models/task"
	"taskPlanner/internal/temporal"

	"github.com/stretchr/testify/assert"
)

func activeTask(deadline *time.Time) *task.Task {
	return &task.Task{
		Status:   task.StatusActive,
		Deadline: deadline,
	}
}

// TestResolveStatus тестирует вывод отображаемого статуса
func TestResolveStatus(t *testing.T) {
	deadline := time.Date(2025, 1, 10, 9, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		task     *task.Task
		now      time.Time
		expected temporal.EffectiveStatus
	}{
		{
			name:     "без дедлайна — бэклог, всегда on_track",
			task:     activeTask(nil),
			now:      time.Date(2030, 1, 1, 0, 0, 0, 0, time.Local),
			expected: temporal.EffectiveOnTrack,
		},
		{
			name:     "дедлайн далеко",
			task:     activeTask(&deadline),
			now:      time.Date(2025, 1, 1, 9, 0, 0, 0, time.Local),
			expected: temporal.EffectiveOnTrack,
		},
		{
			name:     "дедлайн в ближайшие сутки",
			task:     activeTask(&deadline),
			now:      time.Date(2025, 1, 9, 10, 0, 0, 0, time.Local),
			expected: temporal.EffectiveDueSoon,
		},
		{
			name:     "дедлайн сегодня",
			task:     activeTask(&deadline),
			now:      time.Date(2025, 1, 10, 8, 0, 0, 0, time.Local),
			expected: temporal.EffectiveDueToday,
		},
		{
			name:     "строго после дедлайна — просрочена",
			task:     activeTask(&deadline),
			now:      time.Date(2025, 1, 10, 9, 0, 1, 0, time.Local),
			expected: temporal.EffectiveOverdue,
		},
		{
			name:     "ровно в момент дедлайна ещё не просрочена",
			task:     activeTask(&deadline),
			now:      deadline,
			expected: temporal.EffectiveDueToday,
		},
		{
			name: "completed никогда не показывается просроченной",
			task: &task.Task{
				Status:   task.StatusCompleted,
				Deadline: &deadline,
			},
			now:      time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local),
			expected: temporal.EffectiveCompleted,
		},
		{
			name: "cancelled сохраняет статус",
			task: &task.Task{
				Status:   task.StatusCancelled,
				Deadline: &deadline,
			},
			now:      time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local),
			expected: temporal.EffectiveCancelled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := temporal.ResolveStatus(tt.task, tt.now)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// TestDaysOverdue тестирует подсчёт дней просрочки
func TestDaysOverdue(t *testing.T) {
	deadline := time.Date(2025, 1, 10, 9, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		task     *task.Task
		now      time.Time
		expected int
	}{
		{
			name:     "ровно ноль при now == deadline",
			task:     activeTask(&deadline),
			now:      deadline,
			expected: 0,
		},
		{
			name:     "до дедлайна ноль",
			task:     activeTask(&deadline),
			now:      deadline.Add(-time.Minute),
			expected: 0,
		},
		{
			name:     "опоздание на минуты — уже один день",
			task:     activeTask(&deadline),
			now:      deadline.Add(5 * time.Minute),
			expected: 1,
		},
		{
			name:     "47 часов просрочки — два дня",
			task:     activeTask(&deadline),
			now:      time.Date(2025, 1, 12, 8, 0, 0, 0, time.Local),
			expected: 2,
		},
		{
			name:     "без дедлайна просрочки нет",
			task:     activeTask(nil),
			now:      time.Date(2030, 1, 1, 0, 0, 0, 0, time.Local),
			expected: 0,
		},
		{
			name: "терминальный статус не просрочен",
			task: &task.Task{
				Status:   task.StatusCompleted,
				Deadline: &deadline,
			},
			now:      time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local),
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := temporal.DaysOverdue(tt.task, tt.now)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// TestResolveStatus_Scenario проверяет сквозной сценарий: активная задача
// с дедлайном 2025-01-10T09:00 на момент 2025-01-12T08:00 просрочена на 2 дня
func TestResolveStatus_Scenario(t *testing.T) {
	deadline := time.Date(2025, 1, 10, 9, 0, 0, 0, time.Local)
	now := time.Date(2025, 1, 12, 8, 0, 0, 0, time.Local)
	tk := activeTask(&deadline)

	assert.Equal(t, temporal.EffectiveOverdue, temporal.ResolveStatus(tk, now))
	assert.Equal(t, 2, temporal.DaysOverdue(tk, now))
}

// TestIsLate тестирует общий признак просроченности для отчётов
func TestIsLate(t *testing.T) {
	deadline := time.Date(2025, 1, 10, 9, 0, 0, 0, time.Local)
	now := time.Date(2025, 1, 12, 8, 0, 0, 0, time.Local)

	overdue := activeTask(&deadline)
	assert.True(t, temporal.IsLate(overdue, now))

	// легаси-статус трактуется как просрочка даже без дедлайна
	legacy := &task.Task{Status: task.StatusLate}
	assert.True(t, temporal.IsLate(legacy, now))

	backlog := activeTask(nil)
	assert.False(t, temporal.IsLate(backlog, now))
}
