package postgres

import (
	"context"
	"fmt"
	"time"

	"taskPlanner/internal/logger"
	"taskPlanner/internal/models/task"
	repo "taskPlanner/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type Storage struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, connString string) (*Storage, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		logger.Error("Repository: Ошибка загрузки конфига", err)
		return nil, fmt.Errorf("загрузка конфига: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnIdleTime = time.Minute * 5

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		logger.Error("Repository: Ошибка создания пула", err)
		return nil, fmt.Errorf("создание пула: %w", err)
	}

	err = pool.Ping(ctx)
	if err != nil {
		logger.Error("Repository: Неудачная проверка ping", err)
		return nil, fmt.Errorf("проверка соединения ping: %w", err)
	}

	logger.Info("Repository: Успешное создание подключения к PostgreSQL")
	return &Storage{pool: pool}, nil
}

func (s *Storage) Close() {
	s.pool.Close()
	logger.Info("Repository: Закрытие всех соединений PostgreSQL")
}

func (s *Storage) HealthCheck(ctx context.Context) error {
	err := s.pool.Ping(ctx)
	if err != nil {
		logger.Error("Repository: Неудачная проверка ping", err)
		return fmt.Errorf("проверка соединения ping: %w", err)
	}
	logger.Info("Repository: Соединение стабильно")
	return nil
}

const taskColumns = `uuid, owner_id, title, description, requester, status,
	deadline, created_at, updated_at, completed_at,
	elapsed_time_seconds, timer_started_at,
	is_priority, order_index, parent_id,
	is_recurring, recurring_days, recurring_time, last_recurring_completion,
	is_suspended, suspended_until, comments,
	version, flag, deleted_at`

func scanTask(row pgx.Row) (*task.Task, error) {
	t := &task.Task{}
	err := row.Scan(
		&t.UUID, &t.OwnerID, &t.Title, &t.Description, &t.Requester, &t.Status,
		&t.Deadline, &t.CreatedAt, &t.UpdatedAt, &t.CompletedAt,
		&t.ElapsedSeconds, &t.TimerStartedAt,
		&t.IsPriority, &t.OrderIndex, &t.ParentID,
		&t.IsRecurring, &t.RecurringDays, &t.RecurringTime, &t.LastRecurringCompletion,
		&t.IsSuspended, &t.SuspendedUntil, &t.Comments,
		&t.Version, &t.Flag, &t.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Storage) Create(ctx context.Context, taskToCreate *task.Task) error {
	start := time.Now()

	query := `INSERT INTO tasks (uuid, owner_id, title, description, requester, status,
				deadline, created_at,
				elapsed_time_seconds, timer_started_at,
				is_priority, order_index, parent_id,
				is_recurring, recurring_days, recurring_time, last_recurring_completion,
				is_suspended, suspended_until, comments,
				version, flag)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), $8, $9, $10, $11, $12,
				$13, $14, $15, $16, $17, $18, $19, 1, $20)
			RETURNING created_at, version`

	err := s.pool.QueryRow(ctx, query,
		taskToCreate.UUID,
		taskToCreate.OwnerID,
		taskToCreate.Title,
		taskToCreate.Description,
		taskToCreate.Requester,
		taskToCreate.Status,
		taskToCreate.Deadline,
		taskToCreate.ElapsedSeconds,
		taskToCreate.TimerStartedAt,
		taskToCreate.IsPriority,
		taskToCreate.OrderIndex,
		taskToCreate.ParentID,
		taskToCreate.IsRecurring,
		taskToCreate.RecurringDays,
		taskToCreate.RecurringTime,
		taskToCreate.LastRecurringCompletion,
		taskToCreate.IsSuspended,
		taskToCreate.SuspendedUntil,
		taskToCreate.Comments,
		task.FlagActive,
	).Scan(&taskToCreate.CreatedAt, &taskToCreate.Version)

	if err != nil {
		logger.Error("Repository: Создание задачи", err, zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("создание задачи: %w", err)
	}

	taskToCreate.Flag = task.FlagActive

	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Repository: Медленная операция", zap.Duration("ms", time.Since(start)))
	}
	return nil
}

func (s *Storage) Update(ctx context.Context, taskToUpdate *task.Task) error {
	start := time.Now()

	query := `UPDATE tasks
			SET title = $1,
				description = $2,
				requester = $3,
				status = $4,
				deadline = $5,
				completed_at = $6,
				elapsed_time_seconds = $7,
				timer_started_at = $8,
				is_priority = $9,
				order_index = $10,
				parent_id = $11,
				is_recurring = $12,
				recurring_days = $13,
				recurring_time = $14,
				last_recurring_completion = $15,
				is_suspended = $16,
				suspended_until = $17,
				comments = $18,
				version = version + 1,
				updated_at = NOW()
			WHERE uuid = $19 AND version = $20
			RETURNING updated_at, version`

	err := s.pool.QueryRow(ctx, query,
		taskToUpdate.Title,
		taskToUpdate.Description,
		taskToUpdate.Requester,
		taskToUpdate.Status,
		taskToUpdate.Deadline,
		taskToUpdate.CompletedAt,
		taskToUpdate.ElapsedSeconds,
		taskToUpdate.TimerStartedAt,
		taskToUpdate.IsPriority,
		taskToUpdate.OrderIndex,
		taskToUpdate.ParentID,
		taskToUpdate.IsRecurring,
		taskToUpdate.RecurringDays,
		taskToUpdate.RecurringTime,
		taskToUpdate.LastRecurringCompletion,
		taskToUpdate.IsSuspended,
		taskToUpdate.SuspendedUntil,
		taskToUpdate.Comments,
		taskToUpdate.UUID,
		taskToUpdate.Version,
	).Scan(&taskToUpdate.UpdatedAt, &taskToUpdate.Version)

	if err != nil {
		if err == pgx.ErrNoRows {
			logger.Warn("Конфликт версий при обновлении",
				zap.String("task_id", taskToUpdate.UUID.String()),
				zap.Int("expected_version", taskToUpdate.Version))
			return repo.ErrVersionConflict
		}

		logger.Error("Repository: Обновление задачи", err, zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("обновление задачи: %w", err)
	}

	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Repository: Медленная операция", zap.Duration("ms", time.Since(start)))
	}
	return nil
}

func (s *Storage) GetByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	start := time.Now()

	query := `SELECT ` + taskColumns + `
			FROM tasks
			WHERE uuid = $1 AND flag != $2`

	t, err := scanTask(s.pool.QueryRow(ctx, query, id, task.FlagDeleted))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, repo.ErrNotFound
		}

		logger.Error("Repository: Получение задачи", err, zap.Duration("ms", time.Since(start)))
		return nil, fmt.Errorf("получение задачи: %w", err)
	}

	return t, nil
}

// все живые задачи владельца в порядке создания
func (s *Storage) GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]*task.Task, error) {
	start := time.Now()

	query := `SELECT ` + taskColumns + `
			FROM tasks
			WHERE owner_id = $1 AND flag != $2
			ORDER BY created_at, uuid`

	rows, err := s.pool.Query(ctx, query, ownerID, task.FlagDeleted)
	if err != nil {
		logger.Error("Repository: Получение задач владельца", err, zap.Duration("ms", time.Since(start)))
		return nil, fmt.Errorf("получение задач владельца: %w", err)
	}
	defer rows.Close()

	tasks := []*task.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("чтение строки: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("обход строк: %w", err)
	}

	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Repository: Медленная операция", zap.Duration("ms", time.Since(start)))
	}
	return tasks, nil
}

func (s *Storage) GetTasksDueBefore(ctx context.Context, deadline time.Time, limit int) ([]*task.Task, error) {
	start := time.Now()

	query := `SELECT ` + taskColumns + `
			FROM tasks
			WHERE flag = $1
				AND status NOT IN ($2, $3)
				AND deadline IS NOT NULL
				AND deadline < $4
			ORDER BY deadline
			LIMIT $5`

	rows, err := s.pool.Query(ctx, query,
		task.FlagActive, task.StatusCompleted, task.StatusCancelled, deadline, limit)
	if err != nil {
		logger.Error("Repository: Получение просроченных задач", err, zap.Duration("ms", time.Since(start)))
		return nil, fmt.Errorf("получение просроченных задач: %w", err)
	}
	defer rows.Close()

	tasks := []*task.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("чтение строки: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("обход строк: %w", err)
	}

	return tasks, nil
}

// мягкое удаление задачи
func (s *Storage) DeleteSoft(ctx context.Context, taskToDelete *task.Task) error {
	start := time.Now()

	query := `UPDATE tasks
				SET deleted_at = NOW(),
				flag = $1,
				version = version + 1
			WHERE uuid = $2 AND version = $3
			RETURNING deleted_at, version`

	err := s.pool.QueryRow(ctx, query, task.FlagDeleted, taskToDelete.UUID, taskToDelete.Version).
		Scan(&taskToDelete.DeletedAt, &taskToDelete.Version)

	if err != nil {
		if err == pgx.ErrNoRows {
			logger.Warn("Конфликт версий при мягком удалении",
				zap.String("task_id", taskToDelete.UUID.String()),
				zap.Int("expected_version", taskToDelete.Version))
			return repo.ErrVersionConflict
		}

		logger.Error("Repository: Мягкое удаление задачи", err, zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("мягкое удаление: %w", err)
	}

	taskToDelete.Flag = task.FlagDeleted

	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Repository: Медленная операция", zap.Duration("ms", time.Since(start)))
	}
	return nil
}

// полное удаление из БД
func (s *Storage) DeleteFull(ctx context.Context, uuid uuid.UUID) error {
	start := time.Now()

	query := `DELETE FROM tasks
				WHERE uuid = $1`

	_, err := s.pool.Exec(ctx, query, uuid)

	if err != nil {
		logger.Error("Repository: Полное удаление задачи", err, zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("полное удаление: %w", err)
	}

	if time.Since(start) > time.Millisecond*100 {
		logger.Warn("Repository: Медленная операция", zap.Duration("ms", time.Since(start)))
	}

	return nil
}
