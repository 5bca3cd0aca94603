package memory

import (
	"context"
	"testing"

	"github.com/userhub/account-service/internal/core/domain"
)

func TestAccountRepository_CreateAndFind(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Account{Username: "alice", Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}

	byEmail, err := repo.FindByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("FindByEmail returned error: %v", err)
	}
	if byEmail.ID != created.ID {
		t.Fatalf("expected id %s, got %s", created.ID, byEmail.ID)
	}

	byID, err := repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if byID.Username != "alice" {
		t.Fatalf("unexpected username: %s", byID.Username)
	}
}

func TestAccountRepository_DuplicateEmail(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, &domain.Account{Email: "bob@example.com"}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := repo.Create(ctx, &domain.Account{Email: "bob@example.com"}); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAccountRepository_NotFound(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	if _, err := repo.FindByEmail(ctx, "ghost@example.com"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := repo.FindByID(ctx, "nope"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if err := repo.Update(ctx, &domain.Account{ID: "nope"}); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound on update, got %v", err)
	}
}

func TestAccountRepository_UpdateIsolation(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Account{Email: "carol@example.com"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	created.FailedLogins = 3
	if err := repo.Update(ctx, created); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	// Mutating the caller's copy after Update must not leak into the store.
	created.FailedLogins = 99

	stored, err := repo.FindByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if stored.FailedLogins != 3 {
		t.Fatalf("expected failedLogins 3, got %d", stored.FailedLogins)
	}
}
