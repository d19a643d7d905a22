package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/registration-service/internal/lib/password"
	"github.com/magabrotheeeer/registration-service/internal/models"
)

// ErrEmailTaken возвращается при попытке регистрации с уже занятым email.
var ErrEmailTaken = errors.New("email is already registered")

// Ключ маршрутизации события успешной регистрации.
const routingKeyRegistered = "registered"

// UserRepository описывает контракт хранилища пользователей.
type UserRepository interface {
	// FindUserByEmail возвращает пользователя по email или nil, если не найден.
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	// AddUser добавляет запись пользователя в коллекцию.
	AddUser(ctx context.Context, user models.User) error
}

// EventPublisher публикует доменные события регистрации в брокер сообщений.
type EventPublisher interface {
	Publish(routingKey string, message any) error
}

// RegistrationService реализует поток регистрации: валидация, проверка
// дубликата, хеширование пароля, сохранение и публикация события.
type RegistrationService struct {
	users  UserRepository
	events EventPublisher
	log    *slog.Logger
}

// NewRegistrationService создает новый экземпляр RegistrationService.
func NewRegistrationService(users UserRepository, events EventPublisher, log *slog.Logger) *RegistrationService {
	return &RegistrationService{
		users:  users,
		events: events,
		log:    log,
	}
}

// Register создает нового пользователя. Хэш пароля и запись в хранилище
// выполняются только после прохождения всех проверок; сессия при регистрации
// не выдается — пользователь входит отдельно.
func (s *RegistrationService) Register(ctx context.Context, req Payload) (*models.User, error) {
	const op = "services.signup.Register"

	user, err := ValidateAndNormalize(req)
	if err != nil {
		return nil, err
	}

	existing, err := s.users.FindUserByEmail(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := password.GetHash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	user.ID = strconv.FormatInt(now.UnixMilli(), 10)
	user.PasswordHash = hash
	user.CreatedAt = now

	if err := s.users.AddUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("registered new user", slog.String("id", user.ID), slog.String("email", user.Email))

	if s.events != nil {
		event := models.SignupEvent{
			EventID:   uuid.New().String(),
			UserID:    user.ID,
			Email:     user.Email,
			FirstName: user.FirstName,
			CreatedAt: now,
		}
		if err := s.events.Publish(routingKeyRegistered, event); err != nil {
			s.log.Warn("failed to publish signup event", slog.String("user_id", user.ID), slog.Any("err", err))
		}
	}

	return user, nil
}
