package temporal_test

import (
	"testing"
	"time"

	"taskPlanner/internal/models/task"
	"taskPlanner/internal/temporal"

	"github.com/stretchr/testify/assert"
)

// TestCalculateElapsed_NoTimer тестирует накопление без запущенного таймера
func TestCalculateElapsed_NoTimer(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)

	got := temporal.CalculateElapsed(3600, nil, now)
	assert.Equal(t, int64(3600), got)
}

// TestCalculateElapsed_RunningTimer тестирует накопление с работающим таймером
func TestCalculateElapsed_RunningTimer(t *testing.T) {
	started := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		base     int64
		now      time.Time
		expected int64
	}{
		{
			name:     "прошло 90 секунд",
			base:     100,
			now:      started.Add(90 * time.Second),
			expected: 190,
		},
		{
			name:     "дробные секунды отбрасываются вниз",
			base:     0,
			now:      started.Add(90*time.Second + 900*time.Millisecond),
			expected: 90,
		},
		{
			name:     "ровно в момент старта",
			base:     50,
			now:      started,
			expected: 50,
		},
		{
			name:     "часы ушли назад — дельта прижимается к нулю",
			base:     500,
			now:      started.Add(-time.Hour),
			expected: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := temporal.CalculateElapsed(tt.base, &started, tt.now)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// TestCalculateElapsed_Monotonic тестирует монотонность накопления:
// при неостановленном таймере более позднее now даёт не меньшее значение
func TestCalculateElapsed_Monotonic(t *testing.T) {
	started := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)

	prev := int64(-1)
	for i := 0; i < 10; i++ {
		now := started.Add(time.Duration(i) * 17 * time.Second)
		got := temporal.CalculateElapsed(42, &started, now)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
}

// TestCalculateElapsed_StopContinuity тестирует непрерывность на границе
// остановки: зафиксированная база равна значению перед остановкой
func TestCalculateElapsed_StopContinuity(t *testing.T) {
	started := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)
	stopAt := started.Add(125 * time.Second)

	beforeStop := temporal.CalculateElapsed(200, &started, stopAt)

	// фиксация: база := вычисленное, старт очищается
	settledBase := beforeStop
	afterStop := temporal.CalculateElapsed(settledBase, nil, stopAt)

	assert.Equal(t, beforeStop, afterStop)
	assert.Equal(t, int64(325), afterStop)
}

// TestElapsed тестирует обёртку над снимком задачи
func TestElapsed(t *testing.T) {
	started := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)
	now := started.Add(30 * time.Second)

	withTimer := &task.Task{ElapsedSeconds: 10, TimerStartedAt: &started}
	withoutTimer := &task.Task{ElapsedSeconds: 10}

	assert.Equal(t, int64(40), temporal.Elapsed(withTimer, now))
	assert.Equal(t, int64(10), temporal.Elapsed(withoutTimer, now))
}
