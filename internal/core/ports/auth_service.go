package ports

import (
	"context"

	"github.com/userhub/account-service/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.Account, error)
	Login(ctx context.Context, email, password string) (*domain.Account, error)
	AccountByID(ctx context.Context, id string) (*domain.Account, error)
}
