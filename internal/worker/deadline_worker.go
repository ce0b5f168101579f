package worker

import (
	"context"
	"fmt"
	"time"

	"taskPlanner/internal/logger"
	"taskPlanner/internal/models/task"
	"taskPlanner/internal/service"
	"taskPlanner/internal/temporal"

	"go.uber.org/zap"
)

// DeadlineWorker периодически пересчитывает временные факты по задачам
// с приближающимся или прошедшим дедлайном и пишет сводку в лог.
// Статусы не записываются: просроченность всегда вычисляется, хранить
// её означало бы второй источник правды.
type DeadlineWorker struct {
	repo      service.TaskRepository
	clock     temporal.Clock
	interval  time.Duration
	batchSize int
}

func NewDeadlineWorker(repo service.TaskRepository, clock temporal.Clock, interval *time.Duration, batchSize *int) *DeadlineWorker {
	var intervalToSet time.Duration
	if interval == nil {
		intervalToSet = 5 * time.Minute
	} else {
		intervalToSet = *interval
	}

	var batchToSet int
	if batchSize == nil {
		batchToSet = 100
	} else {
		batchToSet = *batchSize
	}

	return &DeadlineWorker{
		repo:      repo,
		clock:     clock,
		interval:  intervalToSet,
		batchSize: batchToSet,
	}
}

func (w *DeadlineWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			logger.Info("Worker: Фоновая проверка дедлайнов", zap.Time("started_at", w.clock.Now()))
			w.Check(ctx)
		case <-ctx.Done():
			logger.Info("Worker: Фоновая проверка останавливается")
			return
		}
	}
}

// Check — один проход: выборка задач с дедлайном до горизонта
// и подсчёт просроченных/горящих на текущий момент
func (w *DeadlineWorker) Check(ctx context.Context) {
	start := time.Now()
	now := w.clock.Now()

	tasks, err := w.getApproachingTasks(ctx, now)
	if err != nil {
		logger.Warn("Worker: ошибка получения задач", zap.Error(err))
		return
	}

	overdueCount := 0
	dueSoonCount := 0
	lateRecurringCount := 0

	for _, t := range tasks {
		if t.IsRecurring {
			if temporal.IsLateToday(t, now) {
				lateRecurringCount++
			}
			continue
		}

		switch temporal.ResolveStatus(t, now) {
		case temporal.EffectiveOverdue:
			overdueCount++
		case temporal.EffectiveDueSoon, temporal.EffectiveDueToday:
			dueSoonCount++
		}
	}

	duration := time.Since(start)
	logger.Info(
		"Worker: Завершение проверки дедлайнов",
		zap.Duration("ms", duration),
		zap.Int("checked", len(tasks)),
		zap.Int("overdue", overdueCount),
		zap.Int("due_soon", dueSoonCount),
		zap.Int("late_recurring", lateRecurringCount),
	)
}

// задачи с дедлайном в пределах суток вперёд
func (w *DeadlineWorker) getApproachingTasks(ctx context.Context, now time.Time) ([]*task.Task, error) {
	horizon := now.Add(24 * time.Hour)

	tasks, err := w.repo.GetTasksDueBefore(ctx, horizon, w.batchSize)
	if err != nil {
		return nil, fmt.Errorf("получение задач с дедлайном: %w", err)
	}
	return tasks, nil
}
