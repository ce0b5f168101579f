package handlers

import (
	"net/http"
	"time"

	"taskPlanner/internal/logger"

	"go.uber.org/zap"
)

// GetReport строит отчёт за период ?from=2006-01-02&to=2006-01-02;
// обе границы опциональны, кривые даты отклоняются сразу на входе
func (s *TaskHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN:")

	ownerID, ok := ownerFromRequest(w, r)
	if !ok {
		return
	}

	from, ok := parseDateParam(w, r, "from")
	if !ok {
		return
	}
	to, ok := parseDateParam(w, r, "to")
	if !ok {
		return
	}

	logger.Info("HTTP: Вызов сервиса построения отчёта")

	rep, err := s.TaskService.BuildReport(r.Context(), ownerID, from, to)
	if err != nil {
		logger.Error("HTTP: Ошибка Service", err,
			zap.String("operation", "build_report"),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info("HTTP_OUT: Отчёт построен",
		zap.Int("total", rep.Total),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusOK))

	responseWithBody(w, http.StatusOK, rep)
}

func parseDateParam(w http.ResponseWriter, r *http.Request, name string) (*time.Time, bool) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return nil, true
	}

	parsed, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		logger.Warn("HTTP: Неверное значение параметра",
			zap.String("query", name),
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, name+" должен быть датой в формате 2006-01-02")
		return nil, false
	}

	return &parsed, true
}
