package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"taskPlanner/internal/handlers/dto"
	"taskPlanner/internal/logger"
	"taskPlanner/internal/models/task"
	"taskPlanner/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TaskHandler struct {
	TaskService Service
}

func NewTaskHandler(taskService Service) TaskHandler {
	return TaskHandler{
		TaskService: taskService,
	}
}

// taskIDFromRequest достаёт и проверяет id задачи из пути
func taskIDFromRequest(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idParam := chi.URLParam(r, "id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		logger.Warn("HTTP: Не удалось получить id",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "не удалось получить id:"+err.Error())
		return uuid.Nil, false
	}

	if id == uuid.Nil {
		logger.Warn("HTTP: Неверное значение id",
			zap.String("error", "nil id"),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "id не может быть пустым")
		return uuid.Nil, false
	}

	return id, true
}

// ownerFromRequest достаёт владельца из заголовка X-Owner-ID;
// аутентификация — забота внешнего слоя, здесь только идентификатор
func ownerFromRequest(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	ownerParam := r.Header.Get("X-Owner-ID")
	ownerID, err := uuid.Parse(ownerParam)
	if err != nil || ownerID == uuid.Nil {
		logger.Warn("HTTP: Неверный заголовок X-Owner-ID",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "заголовок X-Owner-ID должен содержать uuid владельца")
		return uuid.Nil, false
	}
	return ownerID, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, target any) bool {
	if !checkContentType(r, "application/json") {
		logger.Warn("HTTP: Неверный тип контента",
			zap.String("expected", "application/json"),
			zap.String("received", r.Header.Get("Content-Type")),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusUnsupportedMediaType, "Content-Type должен быть application/json")
		return false
	}

	decoder := json.NewDecoder(r.Body)
	defer r.Body.Close()

	if err := decoder.Decode(target); err != nil {
		logger.Warn("HTTP: ошибка чтения JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "неверное тело запроса:"+err.Error())
		return false
	}
	return true
}

func (s *TaskHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP: Health check")

	if err := s.TaskService.HealthCheck(r.Context()); err != nil {
		responseWithError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	healthCheck(w)
}

func (s *TaskHandler) PostTask(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	var request dto.CreateTaskRequest
	if !decodeBody(w, r, &request) {
		return
	}

	if request.Title == "" {
		logger.Warn("HTTP: Ошибка валидации",
			zap.String("field", "title"),
			zap.String("error", "empty_field"),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "название не может быть пустым")
		return
	}

	logger.Info("HTTP: Вызов сервиса создания задач")
	id, err := s.TaskService.CreateTask(r.Context(), ownerID, service.CreateParams{
		Title:         request.Title,
		Description:   request.Description,
		Requester:     request.Requester,
		Deadline:      request.Deadline,
		IsPriority:    request.IsPriority,
		ParentID:      request.ParentID,
		IsRecurring:   request.IsRecurring,
		RecurringDays: request.RecurringDays,
		RecurringTime: request.RecurringTime,
	})
	if err != nil {
		if handleBusinessError(w, err) {
			return
		}

		logger.Error("HTTP: Ошибка Service", err,
			zap.String("operation", "create_task"),
			zap.String("client_ip", r.RemoteAddr),
			zap.Duration("ms", time.Since(start)))

		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: Задача создана",
		zap.String("task_id", id.String()),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusCreated))

	responseWithJSON(w, http.StatusCreated, toPayload("id", id))
}

func (s *TaskHandler) GetTasks(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	logger.Info("HTTP: Вызов сервиса для получения задач")

	views, err := s.TaskService.ListTaskViews(r.Context(), ownerID)
	if err != nil {
		logger.Error("HTTP: Ошибка Service", err)
		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: Задачи получены",
		zap.Int("count", len(views)),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithBody(w, http.StatusOK, dto.FromViewList(views))
}

func (s *TaskHandler) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := taskIDFromRequest(w, r)
	if !ok {
		return
	}

	logger.Info("HTTP: Вызов сервиса для получения задачи")

	view, err := s.TaskService.GetTaskView(r.Context(), id)
	if err != nil {
		if handleBusinessError(w, err) {
			return
		}

		logger.Error("HTTP: Ошибка в Service", err,
			zap.String("operation", "get_task"),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: Задача получена",
		zap.String("task_id", id.String()),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithBody(w, http.StatusOK, dto.FromView(view))
}

func (s *TaskHandler) UpdateTaskByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := taskIDFromRequest(w, r)
	if !ok {
		return
	}

	var request dto.UpdateTaskRequest
	if !decodeBody(w, r, &request) {
		return
	}

	options := []task.TaskOption{}
	if request.Title != nil {
		options = append(options, task.WithTitle(*request.Title))
	}
	if request.Description != nil {
		options = append(options, task.WithDescription(*request.Description))
	}
	if request.Requester != nil {
		options = append(options, task.WithRequester(*request.Requester))
	}
	if request.Deadline != nil {
		options = append(options, task.WithDeadline(request.Deadline))
	}
	if request.IsPriority != nil {
		options = append(options, task.WithPriority(*request.IsPriority))
	}
	if request.OrderIndex != nil {
		options = append(options, task.WithOrderIndex(*request.OrderIndex))
	}

	logger.Info("HTTP: запрос к сервису обновления данных")

	err := s.TaskService.UpdateTaskByID(r.Context(), id, options...)
	if err != nil {
		if handleBusinessError(w, err) {
			return
		}

		logger.Error("HTTP: ошибка в Service", err,
			zap.String("operation", "update_task"),
			zap.String("client_addr", r.RemoteAddr))

		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: Задача обновлена",
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithBody(w, http.StatusOK, request)
}

func (s *TaskHandler) DeleteTaskByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := taskIDFromRequest(w, r)
	if !ok {
		return
	}

	logger.Info("HTTP: Обращение к сервису для удаления задачи")

	err := s.TaskService.DeleteTaskByID(r.Context(), id)
	if err != nil {
		if handleBusinessError(w, err) {
			return
		}

		logger.Error("HTTP: ошибка в Service", err,
			zap.String("operation", "delete_task"),
			zap.String("client_addr", r.RemoteAddr))

		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: Задача удалена",
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusNoContent))

	w.WriteHeader(http.StatusNoContent)
}

// transition — общий каркас для переходов без тела запроса
func (s *TaskHandler) transition(w http.ResponseWriter, r *http.Request, operation string,
	call func(id uuid.UUID) error) {

	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := taskIDFromRequest(w, r)
	if !ok {
		return
	}

	logger.Info("HTTP: Вызов сервиса", zap.String("operation", operation))

	if err := call(id); err != nil {
		if handleBusinessError(w, err) {
			return
		}

		logger.Error("HTTP: ошибка в Service", err,
			zap.String("operation", operation),
			zap.String("client_addr", r.RemoteAddr))

		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: Переход выполнен",
		zap.String("operation", operation),
		zap.String("task_id", id.String()),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithJSON(w, http.StatusOK, toPayload("id", id))
}

func (s *TaskHandler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, "complete_task", func(id uuid.UUID) error {
		return s.TaskService.CompleteTask(r.Context(), id)
	})
}

func (s *TaskHandler) CancelTask(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, "cancel_task", func(id uuid.UUID) error {
		return s.TaskService.CancelTask(r.Context(), id)
	})
}

func (s *TaskHandler) StartTimer(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, "start_timer", func(id uuid.UUID) error {
		return s.TaskService.StartTimer(r.Context(), id)
	})
}

func (s *TaskHandler) StopTimer(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, "stop_timer", func(id uuid.UUID) error {
		return s.TaskService.StopTimer(r.Context(), id)
	})
}

func (s *TaskHandler) ResumeTask(w http.ResponseWriter, r *http.Request) {
	s.transition(w, r, "resume_task", func(id uuid.UUID) error {
		return s.TaskService.ResumeTask(r.Context(), id)
	})
}

func (s *TaskHandler) ToggleRecurringCompletion(w http.ResponseWriter, r *http.Request) {
	var request dto.ToggleCompletionRequest
	if !decodeBody(w, r, &request) {
		return
	}

	s.transition(w, r, "toggle_recurring_completion", func(id uuid.UUID) error {
		return s.TaskService.ToggleRecurringCompletion(r.Context(), id, request.Done)
	})
}

func (s *TaskHandler) SuspendTask(w http.ResponseWriter, r *http.Request) {
	var request dto.SuspendRequest
	if !decodeBody(w, r, &request) {
		return
	}

	var until *time.Time
	if request.Until != nil {
		parsed, err := time.ParseInLocation("2006-01-02", *request.Until, time.Local)
		if err != nil {
			logger.Warn("HTTP: Ошибка валидации",
				zap.String("field", "until"),
				zap.Error(err),
				zap.String("client_ip", r.RemoteAddr))

			responseWithError(w, http.StatusBadRequest, "until должен быть датой в формате 2006-01-02")
			return
		}
		until = &parsed
	}

	s.transition(w, r, "suspend_task", func(id uuid.UUID) error {
		return s.TaskService.SuspendTask(r.Context(), id, until)
	})
}

func (s *TaskHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	id, ok := taskIDFromRequest(w, r)
	if !ok {
		return
	}

	var request dto.CommentRequest
	if !decodeBody(w, r, &request) {
		return
	}

	logger.Info("HTTP: Вызов сервиса добавления комментария")

	commentID, err := s.TaskService.AddComment(r.Context(), id, request.Text)
	if err != nil {
		if handleBusinessError(w, err) {
			return
		}

		logger.Error("HTTP: ошибка в Service", err,
			zap.String("operation", "add_comment"),
			zap.String("client_addr", r.RemoteAddr))

		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: Комментарий добавлен",
		zap.String("task_id", id.String()),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusCreated))

	responseWithJSON(w, http.StatusCreated, toPayload("id", commentID))
}
