package report

import (
	"math"
	"sort"
	"time"

	"taskPlanner/internal/models/task"
	"taskPlanner/internal/temporal"

	"github.com/google/uuid"
)

const mostActiveLimit = 5

// Report — агрегированные метрики по отфильтрованному набору задач периода
type Report struct {
	Total                      int          `json:"total"`
	Completed                  int          `json:"completed"`
	StandardCompleted          int          `json:"standard_completed"`
	RecurringCompletedInPeriod int          `json:"recurring_completed_in_period"`
	Pending                    int          `json:"pending"`
	Late                       int          `json:"late"`
	Priority                   int          `json:"priority"`
	TotalTimeSeconds           int64        `json:"total_time_seconds"`
	CompletionRate             int          `json:"completion_rate"`
	StatusDistribution         Distribution `json:"status_distribution"`
	MostActiveTasks            []TaskTime   `json:"most_active_tasks"`
}

type Distribution struct {
	Todo                   int `json:"todo"`
	Late                   int `json:"late"`
	StandardCompleted      int `json:"standard_completed"`
	RecurringCompleted     int `json:"recurring_completed"`
	RecurringTotalInPeriod int `json:"recurring_total_in_period"`
	Cancelled              int `json:"cancelled"`
}

type TaskTime struct {
	TaskID  uuid.UUID `json:"task_id"`
	Title   string    `json:"title"`
	Seconds int64     `json:"seconds"`
}

// BuildReport считает метрики отчёта по уже отфильтрованному набору
func BuildReport(tasks []*task.Task, w Window, now time.Time) Report {
	rep := Report{
		Total:           len(tasks),
		MostActiveTasks: []TaskTime{},
	}

	windowHasToday := w.IsCurrent(now)
	byTime := []TaskTime{}

	for _, t := range tasks {
		elapsed := temporal.Elapsed(t, now)
		rep.TotalTimeSeconds += elapsed
		if elapsed > 0 {
			byTime = append(byTime, TaskTime{TaskID: t.UUID, Title: t.Title, Seconds: elapsed})
		}

		recurringDone := t.IsRecurring &&
			t.LastRecurringCompletion != nil &&
			w.Contains(*t.LastRecurringCompletion)
		if recurringDone {
			rep.RecurringCompletedInPeriod++
		}

		if !t.IsRecurring && t.Status == task.StatusCompleted {
			rep.StandardCompleted++
		}

		// опоздание повторяющихся имеет смысл только когда сегодня внутри окна
		late := false
		if t.IsRecurring {
			late = windowHasToday && temporal.IsLateToday(t, now)
		} else {
			late = temporal.IsLate(t, now)
		}
		if late {
			rep.Late++
		}

		pending := !t.Status.IsTerminal() &&
			!recurringDone &&
			!temporal.IsSuspendedNow(t, now)
		if pending {
			rep.Pending++
			if t.IsPriority {
				rep.Priority++
			}
		}

		countDistribution(&rep.StatusDistribution, t, recurringDone, late)
	}

	rep.Completed = rep.StandardCompleted + rep.RecurringCompletedInPeriod

	if rep.Total > 0 {
		rep.CompletionRate = int(math.Round(100 * float64(rep.Completed) / float64(rep.Total)))
	}

	// топ задач по затраченному времени; стабильная сортировка сохраняет
	// исходный порядок при равенстве
	sort.SliceStable(byTime, func(i, j int) bool {
		return byTime[i].Seconds > byTime[j].Seconds
	})
	if len(byTime) > mostActiveLimit {
		byTime = byTime[:mostActiveLimit]
	}
	rep.MostActiveTasks = byTime

	return rep
}

func countDistribution(d *Distribution, t *task.Task, recurringDone, late bool) {
	if t.IsRecurring {
		d.RecurringTotalInPeriod++

		switch {
		case recurringDone:
			d.RecurringCompleted++
		case late:
			d.Late++
		default:
			// в том числе не назначенные на сегодня — отдельной корзины
			// для них нет, они остаются в todo
			d.Todo++
		}
		return
	}

	switch {
	case t.Status == task.StatusCancelled:
		d.Cancelled++
	case t.Status == task.StatusCompleted:
		d.StandardCompleted++
	case late:
		d.Late++
	default:
		d.Todo++
	}
}
