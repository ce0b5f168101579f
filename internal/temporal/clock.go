package temporal

import "time"

// Clock отдаёт текущий момент. Внутри движка время никогда не читается
// неявно — все функции принимают now параметром, поэтому вся логика
// воспроизводима в тестах без моков времени.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

func NewClock() Clock {
	return realClock{}
}
