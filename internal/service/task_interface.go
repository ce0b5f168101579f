package service

import (
	"context"
	"time"

	"taskPlanner/internal/models/task"

	"github.com/google/uuid"
)

type TaskRepository interface {
	HealthCheck(context.Context) error
	Create(context.Context, *task.Task) error
	Update(context.Context, *task.Task) error
	GetByID(context.Context, uuid.UUID) (*task.Task, error)
	GetByOwner(context.Context, uuid.UUID) ([]*task.Task, error)
	GetTasksDueBefore(context.Context, time.Time, int) ([]*task.Task, error)
	DeleteSoft(context.Context, *task.Task) error
	DeleteFull(context.Context, uuid.UUID) error
}
