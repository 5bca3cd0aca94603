package ports

import (
	"context"

	"github.com/userhub/account-service/internal/core/domain"
)

// AccountRepository defines the interface for account persistence.
// Implementations map their "not found" and "duplicate key" conditions
// to domain.ErrUserNotFound and domain.ErrUserExists.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
}
