package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"gw-fraud-scoring/internal/api/middlew"
	"gw-fraud-scoring/internal/custom_err"
	"gw-fraud-scoring/internal/models"
	"gw-fraud-scoring/internal/service"
	"gw-fraud-scoring/pkg/response"
)

type AuthHandler struct {
	service service.Auth
}

func NewAuthHandler(service service.Auth) *AuthHandler {
	return &AuthHandler{
		service: service,
	}
}

// Login godoc
// @Summary      Авторизация аналитика
// @Description  Проверяет логин и пароль и возвращает JWT токен с ролью пользователя
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body models.LoginRequest true "Данные входа"
// @Success      200 {object} models.LoginResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	const op = "handler.Login"
	log := middlew.GetLogger(r.Context())

	var req models.LoginRequest
	if err := response.DecodeJSON(w, r, &req); err != nil {
		log.Warn("invalid JSON body", slog.String("op", op), slog.String("error", err.Error()))
		response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_json", "Invalid JSON body")
		return
	}

	log.Info("user login attempt", slog.String("op", op), slog.String("username", req.Username))

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, custom_err.ErrInvalidCredentials):
			log.Info("invalid credentials", slog.String("op", op), slog.String("username", req.Username))
			response.WriteJSONError(w, log, http.StatusUnauthorized, "invalid_credentials", "Invalid username or password")
		case errors.Is(err, custom_err.ErrInvalidInput):
			response.WriteJSONError(w, log, http.StatusBadRequest, "invalid_input", err.Error())
		default:
			log.Error("failed to login user", slog.String("op", op), slog.String("error", err.Error()))
			response.WriteJSONError(w, log, http.StatusInternalServerError, "internal_error", "An internal error occurred")
		}
		return
	}

	response.WriteJSONSuccess(w, log, http.StatusOK, resp)
}
