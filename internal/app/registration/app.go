package registration

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/registration-service/internal/cache"
	"github.com/magabrotheeeer/registration-service/internal/config"
	jwtlib "github.com/magabrotheeeer/registration-service/internal/lib/jwt"
	"github.com/magabrotheeeer/registration-service/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/registration-service/internal/migrations"
	authservice "github.com/magabrotheeeer/registration-service/internal/services/auth"
	signupservice "github.com/magabrotheeeer/registration-service/internal/services/signup"
	usersservice "github.com/magabrotheeeer/registration-service/internal/services/users"
	"github.com/magabrotheeeer/registration-service/internal/storage/repository"
)

// App инкапсулирует HTTP-сервер сервиса регистрации и его зависимости.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	conn   *amqp.Connection
}

// New собирает приложение: хранилище, миграции, кеш, брокер сообщений,
// сервисы и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, err
	}
	if err = repository.CheckDatabaseReady(db); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	conn, err := rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		return nil, err
	}
	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.GetRegistrationQueues())
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	publisher := rabbitmq.NewPublisher(ch, rabbitmq.RegistrationExchange)

	jwtMaker := jwtlib.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	registrationService := signupservice.NewRegistrationService(db, publisher, logger)
	authService := authservice.NewAuthService(db, jwtMaker)
	usersService := usersservice.NewUsersService(db, cacheRedis, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, registrationService, authService, usersService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		conn:   conn,
	}, nil
}

// Run запускает HTTP-сервер и корректно останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.db.DB.Close()
		_ = a.conn.Close()
		return err
	}
}
