// Package signup реализует HTTP-обработчик регистрации пользователей.
//
// Обработчик декодирует JSON формы, делегирует регистрацию сервису и
// переводит ошибки бизнес-уровня в HTTP-статусы: нарушение правил валидации —
// 400, занятый email — 409, сбой хранилища — 500.
package signup

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/registration-service/internal/http/response"
	"github.com/magabrotheeeer/registration-service/internal/lib/sl"
	services "github.com/magabrotheeeer/registration-service/internal/services/signup"
)

// Handler обрабатывает HTTP-запросы регистрации.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Регистрация пользователя
// @Description Проверяет данные формы, хеширует пароль и сохраняет запись. Сессия не выдается.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body services.Payload true "Данные формы регистрации"
// @Success 201 {object} response.MessageResponse "Пользователь зарегистрирован"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или нарушение правил валидации"
// @Failure 409 {object} response.ErrorResponse "Email уже зарегистрирован"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /signup [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.signup"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req services.Payload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("email", req.Email))

	user, err := h.service.Register(r.Context(), req)
	if err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.As(err, &validationErr):
			log.Error("validation failed", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(validationErr.Message))
		case errors.Is(err, services.ErrEmailTaken):
			log.Error("email already registered", slog.String("email", req.Email))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("Email is already registered"))
		default:
			log.Error("registration failed", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to register user"))
		}
		return
	}

	log.Info("user registered", slog.String("id", user.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.Message("User registered successfully"))
}
