package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/userhub/account-service/internal/core/domain"
	"github.com/userhub/account-service/internal/core/ports"
)

const defaultCacheTTL = 5 * time.Minute

// AccountCache decorates an AccountRepository with a Redis cache for
// FindByID, the read-only lookup path. FindByEmail feeds login's
// counter logic and is deliberately never cached; Create and Update
// invalidate. Key format: account:<id>
type AccountCache struct {
	inner  ports.AccountRepository
	client *redis.Client
	ttl    time.Duration
}

// cachedAccount carries every field, including the password hash that
// domain.Account hides from JSON.
type cachedAccount struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	Token        string `json:"token"`
	FailedLogins int    `json:"failed_logins"`
	LastFailAt   *int64 `json:"last_fail_at"`
}

func NewAccountCache(inner ports.AccountRepository, client *redis.Client, ttl time.Duration) *AccountCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &AccountCache{inner: inner, client: client, ttl: ttl}
}

func (c *AccountCache) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	created, err := c.inner.Create(ctx, account)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, created.ID)
	return created, nil
}

func (c *AccountCache) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return c.inner.FindByEmail(ctx, email)
}

func (c *AccountCache) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err == nil {
		var ca cachedAccount
		if err := json.Unmarshal(raw, &ca); err == nil {
			return &domain.Account{
				ID:           ca.ID,
				Username:     ca.Username,
				Email:        ca.Email,
				PasswordHash: ca.PasswordHash,
				Token:        ca.Token,
				FailedLogins: ca.FailedLogins,
				LastFailAt:   ca.LastFailAt,
			}, nil
		}
	}

	account, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	raw, err = json.Marshal(cachedAccount{
		ID:           account.ID,
		Username:     account.Username,
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		Token:        account.Token,
		FailedLogins: account.FailedLogins,
		LastFailAt:   account.LastFailAt,
	})
	if err == nil {
		// Best effort; a failed cache write must not fail the lookup.
		_ = c.client.Set(ctx, c.key(account.ID), raw, c.ttl).Err()
	}
	return account, nil
}

func (c *AccountCache) Update(ctx context.Context, account *domain.Account) error {
	if err := c.inner.Update(ctx, account); err != nil {
		return err
	}
	c.invalidate(ctx, account.ID)
	return nil
}

func (c *AccountCache) invalidate(ctx context.Context, id string) {
	_ = c.client.Del(ctx, c.key(id)).Err()
}

func (c *AccountCache) key(id string) string {
	return fmt.Sprintf("account:%s", id)
}
