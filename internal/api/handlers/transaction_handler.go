package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"gw-fraud-scoring/internal/api/middlew"
	"gw-fraud-scoring/internal/models"
	"gw-fraud-scoring/internal/service"
	"gw-fraud-scoring/pkg/response"
)

type TransactionHandler struct {
	transactions service.Transactions
	analyzer     service.Analyzer
}

func NewTransactionHandler(transactions service.Transactions, analyzer service.Analyzer) *TransactionHandler {
	return &TransactionHandler{
		transactions: transactions,
		analyzer:     analyzer,
	}
}

// Create godoc
// @Summary      Загрузка транзакции
// @Description  Сохраняет транзакцию со статусом PENDING. Отрицательная сумма отклоняется.
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body models.CreateTransactionRequest true "Транзакция"
// @Success      201 {object} models.Transaction
// @Failure      400 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /transactions [post]
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handler.CreateTransaction"
	log := middlew.GetLogger(r.Context())

	var req models.CreateTransactionRequest
	if err := response.DecodeJSON(w, r, &req); err != nil {
		log.Warn("invalid JSON body", slog.String("op", op), slog.String("error", err.Error()))
		response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_json", "Invalid JSON body")
		return
	}

	created, err := h.transactions.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, log, op, err, "Transaction not found")
		return
	}

	response.WriteJSONSuccess(w, log, http.StatusCreated, created)
}

// queryInt пустой параметр заменяется значением по умолчанию
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

// List godoc
// @Summary      Список всех транзакций
// @Description  Постраничный список, свежие сначала. Страницы нумеруются с нуля.
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "Номер страницы" default(0)
// @Param        size query int false "Размер страницы, до 500" default(100)
// @Success      200 {object} models.TransactionPage
// @Failure      400 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /transactions [get]
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handler.ListTransactions"
	log := middlew.GetLogger(r.Context())

	page, err := queryInt(r, "page", 0)
	if err != nil {
		response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_request", "Invalid page")
		return
	}
	size, err := queryInt(r, "size", service.DefaultPageSize)
	if err != nil {
		response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_request", "Invalid size")
		return
	}

	result, err := h.transactions.ListPage(r.Context(), page, size)
	if err != nil {
		writeServiceError(w, log, op, err, "Transactions not found")
		return
	}

	response.WriteJSONSuccess(w, log, http.StatusOK, result)
}

// Fraudulent godoc
// @Summary      Мошеннические транзакции
// @Description  Последние 100 транзакций с меткой мошенничества
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Transaction
// @Failure      500 {object} response.ErrorResponse
// @Router       /transactions/fraudulent [get]
func (h *TransactionHandler) Fraudulent(w http.ResponseWriter, r *http.Request) {
	const op = "handler.ListFraudulent"
	log := middlew.GetLogger(r.Context())

	list, err := h.transactions.ListFraudulent(r.Context())
	if err != nil {
		writeServiceError(w, log, op, err, "Transactions not found")
		return
	}

	response.WriteJSONSuccess(w, log, http.StatusOK, list)
}

// GetByID godoc
// @Summary      Получение транзакции
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID транзакции"
// @Success      200 {object} models.Transaction
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /transactions/{id} [get]
func (h *TransactionHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	const op = "handler.GetTransaction"
	log := middlew.GetLogger(r.Context())

	id, err := int64Param(r, "id")
	if err != nil {
		response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_request", "Invalid transaction ID")
		return
	}

	tx, err := h.transactions.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, log, op, err, "Transaction not found")
		return
	}

	response.WriteJSONSuccess(w, log, http.StatusOK, tx)
}

// Analyze godoc
// @Summary      Анализ транзакции
// @Description  Оценивает транзакцию в режиме LIVE, сохраняет вероятность и статус
// @Tags         analysis
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID транзакции"
// @Success      200 {object} models.AnalysisResult
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /transactions/{id}/analyze [post]
func (h *TransactionHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	h.analyze(w, r, models.LiveMode)
}

// Replay godoc
// @Summary      Повторный анализ размеченной транзакции
// @Description  Оценивает транзакцию в режиме REPLAY с калибровкой по известной метке
// @Tags         analysis
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID транзакции"
// @Success      200 {object} models.AnalysisResult
// @Failure      400 {object} response.ErrorResponse
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      422 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /transactions/{id}/replay [post]
func (h *TransactionHandler) Replay(w http.ResponseWriter, r *http.Request) {
	h.analyze(w, r, models.ReplayMode)
}

func (h *TransactionHandler) analyze(w http.ResponseWriter, r *http.Request, mode models.AnalysisMode) {
	const op = "handler.Analyze"
	log := middlew.GetLogger(r.Context())

	id, err := int64Param(r, "id")
	if err != nil {
		response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_request", "Invalid transaction ID")
		return
	}

	res, err := h.analyzer.Analyze(r.Context(), id, mode)
	if err != nil {
		writeServiceError(w, log, op, err, "Transaction not found")
		return
	}

	response.WriteJSONSuccess(w, log, http.StatusOK, res)
}

// LatestAnalysis godoc
// @Summary      Последний сохранённый анализ
// @Description  Возвращает последнюю запись архива анализов по транзакции
// @Tags         analysis
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID транзакции"
// @Success      200 {object} models.AnalysisRecord
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /transactions/{id}/analysis [get]
func (h *TransactionHandler) LatestAnalysis(w http.ResponseWriter, r *http.Request) {
	const op = "handler.LatestAnalysis"
	log := middlew.GetLogger(r.Context())

	id, err := int64Param(r, "id")
	if err != nil {
		response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_request", "Invalid transaction ID")
		return
	}

	record, err := h.analyzer.LatestAnalysis(r.Context(), id)
	if err != nil {
		writeServiceError(w, log, op, err, "No analysis found for transaction")
		return
	}

	response.WriteJSONSuccess(w, log, http.StatusOK, record)
}
