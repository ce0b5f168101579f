package task

import (
	"time"

	"github.com/google/uuid"
)

type TaskOption func(*Task)

func WithTitle(title string) TaskOption {
	if title == "" {
		return nil
	}
	return func(task *Task) {
		task.Title = title
	}
}

func WithDescription(description string) TaskOption {
	return func(task *Task) {
		task.Description = description
	}
}

func WithRequester(requester string) TaskOption {
	return func(task *Task) {
		task.Requester = requester
	}
}

func WithDeadline(deadline *time.Time) TaskOption {
	return func(task *Task) {
		task.Deadline = deadline
	}
}

func WithPriority(isPriority bool) TaskOption {
	return func(task *Task) {
		task.IsPriority = isPriority
	}
}

func WithOrderIndex(index int) TaskOption {
	return func(task *Task) {
		task.OrderIndex = index
	}
}

func WithParent(parentID *uuid.UUID) TaskOption {
	return func(task *Task) {
		task.ParentID = parentID
	}
}

func WithRecurrence(days []int, dailyCutoff string) TaskOption {
	return func(task *Task) {
		task.IsRecurring = true
		task.RecurringDays = days
		task.RecurringTime = dailyCutoff
	}
}

func WithoutRecurrence() TaskOption {
	return func(task *Task) {
		task.IsRecurring = false
		task.RecurringDays = nil
		task.RecurringTime = ""
		task.LastRecurringCompletion = nil
		task.IsSuspended = false
		task.SuspendedUntil = nil
	}
}
