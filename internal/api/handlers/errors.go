package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"gw-fraud-scoring/internal/custom_err"
	"gw-fraud-scoring/pkg/response"
)

var errInvalidID = errors.New("id must be a positive integer")

// writeServiceError переводит ошибки сервисного слоя в HTTP-ответ
func writeServiceError(w http.ResponseWriter, log *slog.Logger, op string, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, custom_err.ErrNotFound):
		log.Info("resource not found", slog.String("op", op))
		response.WriteJSONError(w, log, http.StatusNotFound, "not_found", notFoundMsg)
	case errors.Is(err, custom_err.ErrInvalidAmount):
		response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_amount", err.Error())
	case errors.Is(err, custom_err.ErrInvalidInput):
		response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_input", err.Error())
	case errors.Is(err, custom_err.ErrInvalidMode):
		response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_mode", "Unsupported analysis mode")
	case errors.Is(err, custom_err.ErrMissingLabel):
		log.Warn("replay requested for unlabeled transaction", slog.String("op", op))
		response.WriteJSONError(w, log, http.StatusUnprocessableEntity, "missing_label", "Transaction has no ground-truth label")
	case errors.Is(err, custom_err.ErrDuplicateRequest):
		response.WriteJSONError(w, log, http.StatusConflict, "duplicate", "Transaction already exists")
	case errors.Is(err, custom_err.ErrConcurrentUpdate):
		response.WriteJSONError(w, log, http.StatusConflict, "concurrent_update", "Transaction was modified concurrently, retry the request")
	default:
		log.Error("request failed", slog.String("op", op), slog.String("error", err.Error()))
		response.WriteJSONError(w, log, http.StatusInternalServerError, "internal_error", "An internal error occurred")
	}
}

func int64Param(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}
