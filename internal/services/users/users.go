// Package services содержит бизнес-логику списка пользователей для
// административной панели, включая кеширование страниц списка.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/registration-service/internal/models"
)

// Время жизни закешированной страницы списка. Новые регистрации становятся
// видимыми в панели не позднее чем через этот интервал.
const listCacheTTL = time.Minute

// UserRepository определяет методы чтения пользователей из хранилища.
type UserRepository interface {
	// ListUsers возвращает пользователей с пагинацией, новые записи первыми.
	ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// UsersService отдает страницы списка пользователей, используя кеш.
type UsersService struct {
	repo  UserRepository
	cache Cache
	log   *slog.Logger
}

// NewUsersService создает новый экземпляр UsersService.
func NewUsersService(repo UserRepository, cache Cache, log *slog.Logger) *UsersService {
	return &UsersService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// List возвращает страницу списка пользователей, сначала пробуя кеш.
func (s *UsersService) List(ctx context.Context, limit, offset int) ([]*models.User, error) {
	cacheKey := fmt.Sprintf("users:list:%d:%d", limit, offset)

	var cached []*models.User
	found, err := s.cache.Get(cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read users list from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found {
		return cached, nil
	}

	users, err := s.repo.ListUsers(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(cacheKey, users, listCacheTTL); err != nil {
		s.log.Warn("failed to cache users list", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return users, nil
}
