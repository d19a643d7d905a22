// Package list реализует HTTP-обработчик списка пользователей
// для административной панели. Доступен только аутентифицированным
// пользователям; хэш пароля и фотография в ответ не включаются.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/registration-service/internal/http/response"
	"github.com/magabrotheeeer/registration-service/internal/lib/sl"
	"github.com/magabrotheeeer/registration-service/internal/models"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Service описывает интерфейс бизнес-логики списка пользователей.
type Service interface {
	List(ctx context.Context, limit, offset int) ([]*models.User, error)
}

// Item — представление пользователя в ответе списка.
type Item struct {
	ID          string  `json:"id"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       string  `json:"email"`
	PhoneNumber *string `json:"phoneNumber"`
	Gender      string  `json:"gender"`
	Birthdate   *string `json:"birthdate"`
	District    *string `json:"district"`
	BloodGroup  *string `json:"bloodGroup"`
	CreatedAt   string  `json:"createdAt"`
}

// Handler обрабатывает HTTP-запросы списка пользователей.
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
// @Summary Список пользователей
// @Description Возвращает зарегистрированных пользователей с пагинацией, новые записи первыми.
// @Tags Users
// @Produce  json
// @Param limit query int false "Размер страницы (по умолчанию 20, максимум 100)"
// @Param offset query int false "Смещение"
// @Success 200 {object} map[string]any "Страница списка"
// @Failure 401 {object} response.ErrorResponse "Нет или неверный токен"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Security BearerAuth
// @Router /users [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	limit := parseQueryInt(r, "limit", defaultLimit)
	if limit <= 0 || limit > maxLimit {
		limit = defaultLimit
	}
	offset := parseQueryInt(r, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	users, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		log.Error("failed to list users", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list users"))
		return
	}

	items := make([]Item, 0, len(users))
	for _, u := range users {
		items = append(items, Item{
			ID:          u.ID,
			FirstName:   u.FirstName,
			LastName:    u.LastName,
			Email:       u.Email,
			PhoneNumber: u.PhoneNumber,
			Gender:      u.Gender,
			Birthdate:   u.Birthdate,
			District:    u.District,
			BloodGroup:  u.BloodGroup,
			CreatedAt:   u.CreatedAt.Format("2006-01-02T15:04:05.000Z07:00"),
		})
	}

	render.JSON(w, r, map[string]any{
		"users": items,
		"count": len(items),
	})
}

func parseQueryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return val
}
