package handlers

import (
	"log/slog"
	"net/http"

	"gw-fraud-scoring/internal/api/middlew"
	"gw-fraud-scoring/internal/models"
	"gw-fraud-scoring/internal/service"
	"gw-fraud-scoring/pkg/response"
)

type BatchHandler struct {
	batches service.Batches
}

func NewBatchHandler(batches service.Batches) *BatchHandler {
	return &BatchHandler{batches: batches}
}

// Upload godoc
// @Summary      Загрузка пачки транзакций
// @Description  Сохраняет транзакции под новым batch_id и возвращает итог загрузки. Невалидные записи и дубликаты попадают в failed_records.
// @Tags         batches
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body models.BatchUploadRequest true "Пачка транзакций"
// @Success      201 {object} models.BatchJob
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /batches [post]
func (h *BatchHandler) Upload(w http.ResponseWriter, r *http.Request) {
	const op = "handler.UploadBatch"
	log := middlew.GetLogger(r.Context())

	claims, ok := middlew.GetClaims(r.Context())
	if !ok {
		response.WriteJSONError(w, log, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	var req models.BatchUploadRequest
	if err := response.DecodeJSON(w, r, &req); err != nil {
		log.Warn("invalid JSON body", slog.String("op", op), slog.String("error", err.Error()))
		response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_json", "Invalid JSON body")
		return
	}

	job, err := h.batches.Upload(r.Context(), claims.Username, req)
	if err != nil {
		writeServiceError(w, log, op, err, "Batch not found")
		return
	}

	response.WriteJSONSuccess(w, log, http.StatusCreated, job)
}

// Status godoc
// @Summary      Статус загрузки
// @Tags         batches
// @Produce      json
// @Security     BearerAuth
// @Param        batchID path int true "ID батча"
// @Success      200 {object} models.BatchJob
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /batches/{batchID} [get]
func (h *BatchHandler) Status(w http.ResponseWriter, r *http.Request) {
	const op = "handler.BatchStatus"
	log := middlew.GetLogger(r.Context())

	batchID, err := int64Param(r, "batchID")
	if err != nil {
		response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_request", "Invalid batch ID")
		return
	}

	job, err := h.batches.Status(r.Context(), batchID)
	if err != nil {
		writeServiceError(w, log, op, err, "Batch not found")
		return
	}

	response.WriteJSONSuccess(w, log, http.StatusOK, job)
}

// History godoc
// @Summary      История загрузок
// @Description  Загрузки текущего пользователя, новые сначала
// @Tags         batches
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.BatchJob
// @Failure      401 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /batches/history [get]
func (h *BatchHandler) History(w http.ResponseWriter, r *http.Request) {
	const op = "handler.BatchHistory"
	log := middlew.GetLogger(r.Context())

	claims, ok := middlew.GetClaims(r.Context())
	if !ok {
		response.WriteJSONError(w, log, http.StatusUnauthorized, "unauthorized", "Authentication required")
		return
	}

	jobs, err := h.batches.History(r.Context(), claims.Username)
	if err != nil {
		writeServiceError(w, log, op, err, "Batch not found")
		return
	}

	response.WriteJSONSuccess(w, log, http.StatusOK, jobs)
}

// Replay godoc
// @Summary      Повторный анализ батча
// @Description  Анализирует в режиме REPLAY все транзакции батча. Транзакции без метки считаются в failed.
// @Tags         analysis
// @Produce      json
// @Security     BearerAuth
// @Param        batchID path int true "ID батча"
// @Success      200 {object} models.BatchReplayResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /batches/{batchID}/replay [post]
func (h *BatchHandler) Replay(w http.ResponseWriter, r *http.Request) {
	const op = "handler.ReplayBatch"
	log := middlew.GetLogger(r.Context())

	batchID, err := int64Param(r, "batchID")
	if err != nil {
		response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_request", "Invalid batch ID")
		return
	}

	resp, err := h.batches.ReplayBatch(r.Context(), batchID)
	if err != nil {
		writeServiceError(w, log, op, err, "Batch not found or empty")
		return
	}

	response.WriteJSONSuccess(w, log, http.StatusOK, resp)
}
