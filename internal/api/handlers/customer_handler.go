package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"gw-fraud-scoring/internal/api/middlew"
	"gw-fraud-scoring/internal/service"
	"gw-fraud-scoring/pkg/response"
)

type CustomerHandler struct {
	transactions service.Transactions
}

func NewCustomerHandler(transactions service.Transactions) *CustomerHandler {
	return &CustomerHandler{transactions: transactions}
}

func customerIDParam(r *http.Request) string {
	return strings.TrimSpace(chi.URLParam(r, "customerID"))
}

// Transactions godoc
// @Summary      История транзакций клиента
// @Description  Все транзакции клиента, свежие сначала
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        customerID path string true "ID клиента"
// @Success      200 {array} models.Transaction
// @Failure      400 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /customers/{customerID}/transactions [get]
func (h *CustomerHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	const op = "handler.CustomerTransactions"
	log := middlew.GetLogger(r.Context())

	customerID := customerIDParam(r)
	if customerID == "" {
		response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_request", "customerID is required")
		return
	}

	history, err := h.transactions.ListByCustomer(r.Context(), customerID)
	if err != nil {
		writeServiceError(w, log, op, err, "Customer not found")
		return
	}

	response.WriteJSONSuccess(w, log, http.StatusOK, history)
}

// Stats godoc
// @Summary      Статистика клиента
// @Description  Агрегаты по истории клиента: средняя сумма, частота за час и сутки, число получателей
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        customerID path string true "ID клиента"
// @Success      200 {object} models.CustomerStats
// @Failure      400 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /customers/{customerID}/stats [get]
func (h *CustomerHandler) Stats(w http.ResponseWriter, r *http.Request) {
	const op = "handler.CustomerStats"
	log := middlew.GetLogger(r.Context())

	customerID := customerIDParam(r)
	if customerID == "" {
		response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_request", "customerID is required")
		return
	}

	stats, err := h.transactions.CustomerStats(r.Context(), customerID)
	if err != nil {
		writeServiceError(w, log, op, err, "Customer not found")
		return
	}

	response.WriteJSONSuccess(w, log, http.StatusOK, stats)
}

// Behavior godoc
// @Summary      Поведенческая сводка клиента
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        customerID path string true "ID клиента"
// @Success      200 {object} models.BehaviorSummaryResponse
// @Failure      400 {object} response.ErrorResponse
// @Router       /customers/{customerID}/behavior [get]
func (h *CustomerHandler) Behavior(w http.ResponseWriter, r *http.Request) {
	const op = "handler.CustomerBehavior"
	log := middlew.GetLogger(r.Context())

	customerID := customerIDParam(r)
	if customerID == "" {
		response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_request", "customerID is required")
		return
	}

	summary, err := h.transactions.BehaviorSummary(r.Context(), customerID)
	if err != nil {
		writeServiceError(w, log, op, err, "Customer not found")
		return
	}

	response.WriteJSONSuccess(w, log, http.StatusOK, summary)
}
