package dto

import (
	"time"

	"taskPlanner/internal/models/task"
	"taskPlanner/internal/service"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Requester     string     `json:"requester,omitempty"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	IsPriority    bool       `json:"is_priority"`
	ParentID      *uuid.UUID `json:"parent_id,omitempty"`
	IsRecurring   bool       `json:"is_recurring"`
	RecurringDays []int      `json:"recurring_days,omitempty"`
	RecurringTime string     `json:"recurring_time,omitempty"`
}

type UpdateTaskRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Requester   *string    `json:"requester,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	IsPriority  *bool      `json:"is_priority,omitempty"`
	OrderIndex  *int       `json:"order_index,omitempty"`
}

type SuspendRequest struct {
	// последний день приостановки включительно, "2006-01-02"; пусто — бессрочно
	Until *string `json:"until,omitempty"`
}

type ToggleCompletionRequest struct {
	Done bool `json:"done"`
}

type CommentRequest struct {
	Text string `json:"text"`
}

type TaskResponse struct {
	UUID            uuid.UUID  `json:"id"`
	OwnerID         uuid.UUID  `json:"owner_id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Requester       string     `json:"requester,omitempty"`
	Status          string     `json:"status"`
	EffectiveStatus string     `json:"effective_status"`
	Deadline        *time.Time `json:"deadline,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	DaysOverdue     int        `json:"days_overdue"`
	ElapsedSeconds  int64      `json:"elapsed_seconds"`
	TimerRunning    bool       `json:"timer_running"`
	IsPriority      bool       `json:"is_priority"`
	OrderIndex      int        `json:"order_index"`
	ParentID        *uuid.UUID `json:"parent_id,omitempty"`
	IsRecurring     bool       `json:"is_recurring"`
	RecurringDays   []int      `json:"recurring_days,omitempty"`
	RecurringTime   string     `json:"recurring_time,omitempty"`
	ScheduledToday  bool       `json:"scheduled_today"`
	DoneToday       bool       `json:"done_today"`
	LateToday       bool       `json:"late_today"`
	IsSuspendedNow  bool       `json:"is_suspended_now"`
	SuspendedUntil  *time.Time `json:"suspended_until,omitempty"`
	Comments        []task.Comment `json:"comments"`
}

func FromView(v service.TaskView) TaskResponse {
	t := v.Task
	return TaskResponse{
		UUID:            t.UUID,
		OwnerID:         t.OwnerID,
		Title:           t.Title,
		Description:     t.Description,
		Requester:       t.Requester,
		Status:          string(t.Status),
		EffectiveStatus: string(v.EffectiveStatus),
		Deadline:        t.Deadline,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
		CompletedAt:     t.CompletedAt,
		DaysOverdue:     v.DaysOverdue,
		ElapsedSeconds:  v.ElapsedSeconds,
		TimerRunning:    t.TimerStartedAt != nil,
		IsPriority:      t.IsPriority,
		OrderIndex:      t.OrderIndex,
		ParentID:        t.ParentID,
		IsRecurring:     t.IsRecurring,
		RecurringDays:   t.RecurringDays,
		RecurringTime:   t.RecurringTime,
		ScheduledToday:  v.ScheduledToday,
		DoneToday:       v.DoneToday,
		LateToday:       v.LateToday,
		IsSuspendedNow:  v.IsSuspendedNow,
		SuspendedUntil:  t.SuspendedUntil,
		Comments:        t.Comments,
	}
}

func FromViewList(views []service.TaskView) []TaskResponse {
	result := make([]TaskResponse, len(views))
	for i, v := range views {
		result[i] = FromView(v)
	}
	return result
}
