package report

import (
	"time"

	"taskPlanner/internal/temporal"
)

// Window — отчётный период. Каждая граница опциональна: открытая граница
// считается всегда истинной со своей стороны. Даты границ разворачиваются
// в начало и конец календарного дня локального времени.
type Window struct {
	Start *time.Time
	End   *time.Time
}

// NewWindow строит период из опциональных дат
func NewWindow(from, to *time.Time) Window {
	w := Window{}

	if from != nil {
		start := temporal.DateOf(*from)
		w.Start = &start
	}
	if to != nil {
		end := temporal.DateOf(*to).Add(24*time.Hour - time.Nanosecond)
		w.End = &end
	}

	return w
}

// Contains — попадает ли момент в период, границы включительно
func (w Window) Contains(instant time.Time) bool {
	if w.Start != nil && instant.Before(*w.Start) {
		return false
	}
	if w.End != nil && instant.After(*w.End) {
		return false
	}
	return true
}

// IsCurrent — содержит ли период момент now ("текущее окно")
func (w Window) IsCurrent(now time.Time) bool {
	return w.Contains(now)
}

// IsOpen — открыта ли хотя бы одна граница
func (w Window) IsOpen() bool {
	return w.Start == nil || w.End == nil
}

// SpanDays — длина периода в календарных днях; для открытых периодов не определена
func (w Window) SpanDays() int {
	if w.IsOpen() {
		return 0
	}
	return int(w.End.Sub(*w.Start)/(24*time.Hour)) + 1
}
