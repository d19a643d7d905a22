package signup

import (
	"context"

	"github.com/magabrotheeeer/registration-service/internal/models"
	services "github.com/magabrotheeeer/registration-service/internal/services/signup"
)

// Service описывает интерфейс бизнес-логики регистрации.
type Service interface {
	Register(ctx context.Context, req services.Payload) (*models.User, error)
}
