package service

import "fmt"

type BusinessError struct {
	Code    string
	Message string
	Details map[string]any
	Err     error
}

type Detail struct {
	Key     string
	Payload any
}

func (b *BusinessError) Error() string {
	if b.Err != nil {
		return fmt.Sprintf("[%s] %s: %s", b.Code, b.Message, b.Err.Error())
	}
	return fmt.Sprintf("[%s] %s", b.Code, b.Message)
}

func ToDetail(key string, payload any) Detail {
	return Detail{
		Key:     key,
		Payload: payload,
	}
}

func NewBusinessError(code string, message string, details ...Detail) *BusinessError {
	BusErr := &BusinessError{
		Code:    code,
		Message: message,
		Details: make(map[string]any),
	}

	for _, detail := range details {
		BusErr.Details[detail.Key] = detail.Payload
	}

	return BusErr
}

func NewNotFound(id string) *BusinessError {
	return &BusinessError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("задача %s не найдена", id),
		Details: map[string]any{
			"id": id,
		},
	}
}

func NewValidationError(field, reason string) *BusinessError {
	return &BusinessError{
		Code:    "VALIDATION_ERROR",
		Message: fmt.Sprintf("Неверное значение поля '%s': %s", field, reason),
		Details: map[string]any{
			"field":  field,
			"reason": reason,
		},
	}
}

func NewAlreadyTerminal(id string, status string) *BusinessError {
	return &BusinessError{
		Code:    "ALREADY_TERMINAL",
		Message: fmt.Sprintf("задача %s уже в конечном статусе %s", id, status),
		Details: map[string]any{
			"id":     id,
			"status": status,
		},
	}
}

func NewTimerError(code, id, reason string) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: fmt.Sprintf("таймер задачи %s: %s", id, reason),
		Details: map[string]any{
			"id":     id,
			"reason": reason,
		},
	}
}

func NewNotRecurring(id string) *BusinessError {
	return &BusinessError{
		Code:    "NOT_RECURRING",
		Message: fmt.Sprintf("задача %s не является повторяющейся", id),
		Details: map[string]any{
			"id": id,
		},
	}
}
