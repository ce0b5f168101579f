package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taskPlanner/internal/logger"
	"taskPlanner/internal/models/task"
	"taskPlanner/internal/report"
	rep "taskPlanner/internal/repository"
	"taskPlanner/internal/temporal"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// здесь происходит проверка ошибок бизнес-логики и все переходы состояний;
// движок времени только читает снимок задачи, мутирует всегда сервис

type TaskService struct {
	repo  TaskRepository
	clock temporal.Clock
}

func NewTaskService(repo TaskRepository, clock temporal.Clock) TaskService {
	return TaskService{
		repo:  repo,
		clock: clock,
	}
}

func (s *TaskService) HealthCheck(ctx context.Context) error {
	if err := s.repo.HealthCheck(ctx); err != nil {
		return fmt.Errorf("проверка здоровья сервиса: %w", err)
	}
	return nil
}

type CreateParams struct {
	Title         string
	Description   string
	Requester     string
	Deadline      *time.Time
	IsPriority    bool
	ParentID      *uuid.UUID
	IsRecurring   bool
	RecurringDays []int
	RecurringTime string
}

func (s *TaskService) CreateTask(ctx context.Context, ownerID uuid.UUID, params CreateParams) (uuid.UUID, error) {
	if params.Title == "" {
		return uuid.Nil, NewValidationError("title", "название не может быть пустым")
	}
	if err := validateRecurrence(params.IsRecurring, params.RecurringDays); err != nil {
		return uuid.Nil, err
	}

	id := uuid.New()
	newTask := &task.Task{
		UUID:          id,
		OwnerID:       ownerID,
		Title:         params.Title,
		Description:   params.Description,
		Requester:     params.Requester,
		Status:        task.StatusActive,
		Deadline:      params.Deadline,
		CreatedAt:     s.clock.Now(),
		IsPriority:    params.IsPriority,
		ParentID:      params.ParentID,
		IsRecurring:   params.IsRecurring,
		RecurringDays: params.RecurringDays,
		RecurringTime: params.RecurringTime,
		Comments:      []task.Comment{},
	}

	return id, s.repo.Create(ctx, newTask)
}

// пустой набор дней недели дал бы вечно неназначенную задачу-зомби,
// поэтому отклоняем его на создании и редактировании
func validateRecurrence(isRecurring bool, days []int) error {
	if !isRecurring {
		return nil
	}
	if len(days) == 0 {
		return NewValidationError("recurring_days", "набор дней недели не может быть пустым")
	}
	for _, d := range days {
		if d < 0 || d > 6 {
			return NewValidationError("recurring_days", "день недели должен быть в диапазоне 0..6")
		}
	}
	return nil
}

func (s *TaskService) GetTaskByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, rep.ErrNotFound) {
			logger.Info("Service: Задача не найдена", zap.String("target_id", id.String()))
			return nil, NewNotFound(id.String())
		}
		return nil, fmt.Errorf("получение задачи: %w", err)
	}
	return t, nil
}

// TaskView — задача вместе с вычисленными временными фактами на момент now
type TaskView struct {
	Task            *task.Task               `json:"task"`
	EffectiveStatus temporal.EffectiveStatus `json:"effective_status"`
	DaysOverdue     int                      `json:"days_overdue"`
	IsSuspendedNow  bool                     `json:"is_suspended_now"`
	ScheduledToday  bool                     `json:"scheduled_today"`
	DoneToday       bool                     `json:"done_today"`
	LateToday       bool                     `json:"late_today"`
	ElapsedSeconds  int64                    `json:"elapsed_seconds"`
}

func buildView(t *task.Task, now time.Time) TaskView {
	return TaskView{
		Task:            t,
		EffectiveStatus: temporal.ResolveStatus(t, now),
		DaysOverdue:     temporal.DaysOverdue(t, now),
		IsSuspendedNow:  temporal.IsSuspendedNow(t, now),
		ScheduledToday:  temporal.ScheduledOn(t, now),
		DoneToday:       temporal.DoneOn(t, now),
		LateToday:       temporal.IsLateToday(t, now),
		ElapsedSeconds:  temporal.Elapsed(t, now),
	}
}

func (s *TaskService) GetTaskView(ctx context.Context, id uuid.UUID) (TaskView, error) {
	t, err := s.GetTaskByID(ctx, id)
	if err != nil {
		return TaskView{}, err
	}
	return buildView(t, s.clock.Now()), nil
}

func (s *TaskService) ListTaskViews(ctx context.Context, ownerID uuid.UUID) ([]TaskView, error) {
	tasks, err := s.repo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("получение задач владельца: %w", err)
	}

	now := s.clock.Now()
	views := make([]TaskView, len(tasks))
	for i, t := range tasks {
		views[i] = buildView(t, now)
	}
	return views, nil
}

func (s *TaskService) UpdateTaskByID(ctx context.Context, id uuid.UUID, options ...task.TaskOption) error {
	t, err := s.GetTaskByID(ctx, id)
	if err != nil {
		return err
	}

	if t.Status.IsTerminal() {
		return NewAlreadyTerminal(id.String(), string(t.Status))
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(t)
	}

	if err := validateRecurrence(t.IsRecurring, t.RecurringDays); err != nil {
		return err
	}

	return s.repo.Update(ctx, t)
}

func (s *TaskService) CompleteTask(ctx context.Context, id uuid.UUID) error {
	return s.terminate(ctx, id, task.StatusCompleted)
}

func (s *TaskService) CancelTask(ctx context.Context, id uuid.UUID) error {
	return s.terminate(ctx, id, task.StatusCancelled)
}

// terminate выполняет терминальный переход одним обновлением: таймер
// гасится с фиксацией накопленного времени, приоритет снимается,
// completed_at выставляется вместе со статусом. Читатель никогда не
// увидит completed-задачу с работающим таймером.
func (s *TaskService) terminate(ctx context.Context, id uuid.UUID, target task.Status) error {
	t, err := s.GetTaskByID(ctx, id)
	if err != nil {
		return err
	}

	if t.Status.IsTerminal() {
		return NewAlreadyTerminal(id.String(), string(t.Status))
	}

	now := s.clock.Now()

	if t.TimerStartedAt != nil {
		t.ElapsedSeconds = temporal.CalculateElapsed(t.ElapsedSeconds, t.TimerStartedAt, now)
		t.TimerStartedAt = nil
	}

	t.IsPriority = false
	t.Status = target

	if target == task.StatusCompleted {
		t.CompletedAt = &now
		// задача без дедлайна навсегда осталась бы в бэклоге —
		// при завершении датируем её моментом закрытия
		if t.Deadline == nil {
			t.Deadline = &now
		}
	} else {
		t.CompletedAt = nil
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return fmt.Errorf("терминальный переход: %w", err)
	}

	logger.Info("Service: Терминальный переход",
		zap.String("task_id", id.String()),
		zap.String("status", string(target)))
	return nil
}

func (s *TaskService) StartTimer(ctx context.Context, id uuid.UUID) error {
	t, err := s.GetTaskByID(ctx, id)
	if err != nil {
		return err
	}

	if t.Status.IsTerminal() {
		return NewAlreadyTerminal(id.String(), string(t.Status))
	}
	if t.TimerStartedAt != nil {
		return NewTimerError("TIMER_ALREADY_RUNNING", id.String(), "таймер уже запущен")
	}

	now := s.clock.Now()
	t.TimerStartedAt = &now

	return s.repo.Update(ctx, t)
}

// StopTimer фиксирует накопленное время: база и отметка старта
// пишутся одним обновлением, иначе секунды теряются или удваиваются
func (s *TaskService) StopTimer(ctx context.Context, id uuid.UUID) error {
	t, err := s.GetTaskByID(ctx, id)
	if err != nil {
		return err
	}

	if t.TimerStartedAt == nil {
		return NewTimerError("TIMER_NOT_RUNNING", id.String(), "таймер не запущен")
	}

	now := s.clock.Now()
	t.ElapsedSeconds = temporal.CalculateElapsed(t.ElapsedSeconds, t.TimerStartedAt, now)
	t.TimerStartedAt = nil

	return s.repo.Update(ctx, t)
}

// ToggleRecurringCompletion ставит или снимает отметку выполнения
// сегодняшней обязанности. Слот один: повторная отметка в тот же день
// идемпотентна, отметка в другой день перезаписывает прошлую.
func (s *TaskService) ToggleRecurringCompletion(ctx context.Context, id uuid.UUID, done bool) error {
	t, err := s.GetTaskByID(ctx, id)
	if err != nil {
		return err
	}

	if !t.IsRecurring {
		return NewNotRecurring(id.String())
	}

	if done {
		now := s.clock.Now()
		t.LastRecurringCompletion = &now
	} else {
		t.LastRecurringCompletion = nil
	}

	return s.repo.Update(ctx, t)
}

func (s *TaskService) SuspendTask(ctx context.Context, id uuid.UUID, until *time.Time) error {
	t, err := s.GetTaskByID(ctx, id)
	if err != nil {
		return err
	}

	if !t.IsRecurring {
		return NewNotRecurring(id.String())
	}

	t.IsSuspended = true
	t.SuspendedUntil = until

	return s.repo.Update(ctx, t)
}

func (s *TaskService) ResumeTask(ctx context.Context, id uuid.UUID) error {
	t, err := s.GetTaskByID(ctx, id)
	if err != nil {
		return err
	}

	if !t.IsRecurring {
		return NewNotRecurring(id.String())
	}

	t.IsSuspended = false
	t.SuspendedUntil = nil

	return s.repo.Update(ctx, t)
}

func (s *TaskService) AddComment(ctx context.Context, id uuid.UUID, text string) (uuid.UUID, error) {
	if text == "" {
		return uuid.Nil, NewValidationError("text", "комментарий не может быть пустым")
	}

	t, err := s.GetTaskByID(ctx, id)
	if err != nil {
		return uuid.Nil, err
	}

	comment := task.Comment{
		UUID:      uuid.New(),
		Text:      text,
		CreatedAt: s.clock.Now(),
	}
	t.Comments = append(t.Comments, comment)

	return comment.UUID, s.repo.Update(ctx, t)
}

func (s *TaskService) DeleteTaskByID(ctx context.Context, id uuid.UUID) error {
	t, err := s.GetTaskByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.DeleteSoft(ctx, t)
}

// BuildReport собирает отчёт за период: выборка задач владельца,
// фильтрация по принадлежности периоду, агрегация метрик
func (s *TaskService) BuildReport(ctx context.Context, ownerID uuid.UUID, from, to *time.Time) (report.Report, error) {
	start := time.Now()

	tasks, err := s.repo.GetByOwner(ctx, ownerID)
	if err != nil {
		return report.Report{}, fmt.Errorf("получение задач для отчёта: %w", err)
	}

	now := s.clock.Now()
	w := report.NewWindow(from, to)
	filtered := report.Filter(tasks, w, now)
	rep := report.BuildReport(filtered, w, now)

	logger.Info("Service: Отчёт построен",
		zap.String("owner_id", ownerID.String()),
		zap.Int("tasks_total", len(tasks)),
		zap.Int("tasks_in_window", len(filtered)),
		zap.Duration("ms", time.Since(start)))

	return rep, nil
}
