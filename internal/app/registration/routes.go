// Package registration собирает HTTP-приложение сервиса регистрации.
package registration

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/registration-service/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/registration-service/internal/http/handlers/auth/signup"
	"github.com/magabrotheeeer/registration-service/internal/http/handlers/health"
	"github.com/magabrotheeeer/registration-service/internal/http/handlers/user/list"
	"github.com/magabrotheeeer/registration-service/internal/http/middlewarectx"
	"github.com/magabrotheeeer/registration-service/internal/http/response"
	authservice "github.com/magabrotheeeer/registration-service/internal/services/auth"
	signupservice "github.com/magabrotheeeer/registration-service/internal/services/signup"
	usersservice "github.com/magabrotheeeer/registration-service/internal/services/users"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, registrationService *signupservice.RegistrationService, authService *authservice.AuthService, usersService *usersservice.UsersService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	// Контракт API: не-POST на /api/signup и любой неподдерживаемый метод
	// получают JSON с кодом 405.
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
		render.JSON(w, r, response.Error("Method not allowed"))
	})

	r.Route("/api", func(r chi.Router) {
		// Открытые конечные точки
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/signup", signup.New(logger, registrationService).ServeHTTP)
			r.Post("/login", login.New(logger, authService).ServeHTTP)
		})

		// Группа с JWT аутентификацией: операции административной панели
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Get("/users", list.New(logger, usersService).ServeHTTP)
		})

		r.Get("/health", health.New(logger).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
