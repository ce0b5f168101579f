package handlers

import (
	"context"
	"time"

	"taskPlanner/internal/models/task"
	"taskPlanner/internal/report"
	"taskPlanner/internal/service"

	"github.com/google/uuid"
)

type Service interface {
	HealthCheck(context.Context) error
	CreateTask(context.Context, uuid.UUID, service.CreateParams) (uuid.UUID, error)
	GetTaskView(context.Context, uuid.UUID) (service.TaskView, error)
	ListTaskViews(context.Context, uuid.UUID) ([]service.TaskView, error)
	UpdateTaskByID(context.Context, uuid.UUID, ...task.TaskOption) error
	CompleteTask(context.Context, uuid.UUID) error
	CancelTask(context.Context, uuid.UUID) error
	StartTimer(context.Context, uuid.UUID) error
	StopTimer(context.Context, uuid.UUID) error
	ToggleRecurringCompletion(context.Context, uuid.UUID, bool) error
	SuspendTask(context.Context, uuid.UUID, *time.Time) error
	ResumeTask(context.Context, uuid.UUID) error
	AddComment(context.Context, uuid.UUID, string) (uuid.UUID, error)
	DeleteTaskByID(context.Context, uuid.UUID) error
	BuildReport(context.Context, uuid.UUID, *time.Time, *time.Time) (report.Report, error)
}
