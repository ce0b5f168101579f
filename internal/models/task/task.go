package task

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	UUID        uuid.UUID `json:"uuid" db:"uuid"`
	OwnerID     uuid.UUID `json:"owner_id" db:"owner_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Requester   string    `json:"requester,omitempty" db:"requester"`
	Status      Status    `json:"status" db:"status"`

	// Deadline отсутствует у задач из бэклога — такие задачи никогда не просрочены
	Deadline    *time.Time `json:"deadline,omitempty" db:"deadline"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty" db:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty" db:"completed_at"`

	ElapsedSeconds int64      `json:"elapsed_time_seconds" db:"elapsed_time_seconds"`
	TimerStartedAt *time.Time `json:"timer_started_at,omitempty" db:"timer_started_at"`

	IsPriority bool `json:"is_priority" db:"is_priority"`
	OrderIndex int  `json:"order_index" db:"order_index"`

	ParentID *uuid.UUID `json:"parent_id,omitempty" db:"parent_id"`

	IsRecurring             bool       `json:"is_recurring" db:"is_recurring"`
	RecurringDays           []int      `json:"recurring_days,omitempty" db:"recurring_days"` // 0..6, воскресенье = 0
	RecurringTime           string     `json:"recurring_time,omitempty" db:"recurring_time"` // "HH:MM" или пусто
	LastRecurringCompletion *time.Time `json:"last_recurring_completion,omitempty" db:"last_recurring_completion"`

	IsSuspended    bool       `json:"is_suspended" db:"is_suspended"`
	SuspendedUntil *time.Time `json:"suspended_until,omitempty" db:"suspended_until"`

	Comments []Comment `json:"comments" db:"comments"`

	Version   int        `json:"version" db:"version"`
	Flag      Flag       `json:"flag" db:"flag"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

type Comment struct {
	UUID        uuid.UUID `json:"uuid"`
	Text        string    `json:"text"`
	CreatedAt   time.Time `json:"created_at"`
	IsCompleted bool      `json:"is_completed"`
}

type Status string
type Flag string

const StatusActive Status = "active"
const StatusCompleted Status = "completed"
const StatusCancelled Status = "cancelled"

// StatusLate — легаси-статус из старых данных: читаем, считаем в отчётах,
// но сами никогда не записываем, просроченность всегда вычисляется
const StatusLate Status = "late"

const FlagDeleted Flag = "deleted"
const FlagActive Flag = "active"

// IsTerminal — из completed и cancelled переходов больше нет
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (t *Task) ScheduledOnWeekday(weekday int) bool {
	for _, d := range t.RecurringDays {
		if d == weekday {
			return true
		}
	}
	return false
}
