// Package health реализует проверку готовности сервиса.
package health

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

// Handler обрабатывает запрос проверки готовности.
type Handler struct {
	log *slog.Logger
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{
		log: log,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	render.JSON(w, r, map[string]any{
		"status": "ok",
	})
}
