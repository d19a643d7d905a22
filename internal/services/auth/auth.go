// Package services содержит логику бизнес-уровня для аутентификации пользователей.
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/magabrotheeeer/registration-service/internal/lib/jwt"
	"github.com/magabrotheeeer/registration-service/internal/lib/password"
	"github.com/magabrotheeeer/registration-service/internal/models"
)

// ErrInvalidCredentials возвращается при неверной паре email/пароль.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository описывает контракт для поиска пользователей в базе данных.
type UserRepository interface {
	// FindUserByEmail возвращает пользователя по email или nil, если не найден.
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService отвечает за вход в систему и валидацию JWT.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Login проверяет пароль пользователя и генерирует JWT.
//
// Email нормализуется так же, как при регистрации, поэтому вход
// нечувствителен к регистру и пробелам по краям.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	user, err := s.users.FindUserByEmail(ctx, normalized)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.jwtMaker.GenerateToken(user.Email, user.ID)
}

// ValidateToken проверяет JWT и возвращает claims, если токен корректен.
func (s *AuthService) ValidateToken(tokenStr string) (*jwt.CustomClaims, error) {
	return s.jwtMaker.ParseToken(tokenStr)
}
