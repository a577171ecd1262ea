package handlers

import (
	"net/http"

	"gw-fraud-scoring/internal/api/middlew"
	"gw-fraud-scoring/internal/service"
	"gw-fraud-scoring/pkg/response"
)

type StatisticsHandler struct {
	statistics service.Statistics
}

func NewStatisticsHandler(statistics service.Statistics) *StatisticsHandler {
	return &StatisticsHandler{statistics: statistics}
}

// Dashboard godoc
// @Summary      Сводка для дашборда
// @Description  Итоги по всем транзакциям, распределение решений по сохранённой вероятности, топ рискованных клиентов и тренды по дням
// @Tags         statistics
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.DashboardStats
// @Failure      500 {object} response.ErrorResponse
// @Router       /statistics/dashboard [get]
func (h *StatisticsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	const op = "handler.Dashboard"
	log := middlew.GetLogger(r.Context())

	stats, err := h.statistics.Dashboard(r.Context())
	if err != nil {
		writeServiceError(w, log, op, err, "Statistics not found")
		return
	}

	response.WriteJSONSuccess(w, log, http.StatusOK, stats)
}

// Customer godoc
// @Summary      Аналитика клиента
// @Description  Итоги, поведенческие показатели и временные ряды по одному клиенту
// @Tags         statistics
// @Produce      json
// @Security     BearerAuth
// @Param        customerID path string true "ID клиента"
// @Success      200 {object} models.CustomerAnalytics
// @Failure      400 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /statistics/customers/{customerID} [get]
func (h *StatisticsHandler) Customer(w http.ResponseWriter, r *http.Request) {
	const op = "handler.CustomerAnalytics"
	log := middlew.GetLogger(r.Context())

	customerID := customerIDParam(r)
	if customerID == "" {
		response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_request", "customerID is required")
		return
	}

	analytics, err := h.statistics.CustomerAnalytics(r.Context(), customerID)
	if err != nil {
		writeServiceError(w, log, op, err, "Customer not found")
		return
	}

	response.WriteJSONSuccess(w, log, http.StatusOK, analytics)
}
