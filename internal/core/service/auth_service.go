package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/userhub/account-service/internal/core/domain"
	"github.com/userhub/account-service/internal/core/ports"
	"github.com/userhub/account-service/internal/core/validate"
)

const bcryptCost = 10

// AuthService implements registration, login, and account lookup.
//
// When exec is non-nil, the lookup-then-write section of Login runs
// under it keyed by the account email, so concurrent attempts against
// one account cannot under-count failedLogins. A nil exec runs the
// section inline with last-writer-wins semantics.
type AuthService struct {
	repo   ports.AccountRepository
	issuer ports.TokenIssuer
	exec   ports.KeyedExecutor
	now    func() time.Time
}

func NewAuthService(repo ports.AccountRepository, issuer ports.TokenIssuer, exec ports.KeyedExecutor) *AuthService {
	return &AuthService{
		repo:   repo,
		issuer: issuer,
		exec:   exec,
		now:    time.Now,
	}
}

// Register creates a new account. Credential checks run in a fixed
// order before any store access; the first failure wins. The account id
// is minted before the single insert so the registration token can
// embed it and the record is written exactly once, fully formed.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.Account, error) {
	if username == "" {
		return nil, domain.ErrMissingUsername
	}
	if email == "" {
		return nil, domain.ErrMissingEmail
	}
	if !validate.Email(email) {
		return nil, domain.ErrInvalidEmail
	}
	if password == "" {
		return nil, domain.ErrMissingPassword
	}
	if !validate.Password(password) {
		return nil, domain.ErrInvalidPassword
	}

	email = strings.ToLower(email)
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if err != domain.ErrUserNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FailedLogins: 0,
		LastFailAt:   nil,
	}

	tok, err := s.issuer.Issue(account.ID, account.Email, account.Username)
	if err != nil {
		return nil, err
	}
	account.Token = tok

	return s.repo.Create(ctx, account)
}

// Login authenticates an account by email and password, enforcing the
// failed-login lockout. Every branch that mutates the account persists
// before returning.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Account, error) {
	if email == "" {
		return nil, domain.ErrMissingEmail
	}
	if password == "" {
		return nil, domain.ErrMissingPassword
	}

	var account *domain.Account
	attempt := func() error {
		var err error
		account, err = s.attemptLogin(ctx, email, password)
		return err
	}

	var err error
	if s.exec != nil {
		err = s.exec.Do(ctx, strings.ToLower(email), attempt)
	} else {
		err = attempt()
	}
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (s *AuthService) attemptLogin(ctx context.Context, email, password string) (*domain.Account, error) {
	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if account.Locked() {
		if !account.LockoutExpired(s.now()) {
			// Inside the window: no password check, no counter mutation.
			return nil, domain.ErrAccountLocked
		}
		account.ClearFailures()
		if err := s.repo.Update(ctx, account); err != nil {
			return nil, err
		}
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		account.RecordFailure(s.now())
		if err := s.repo.Update(ctx, account); err != nil {
			return nil, err
		}
		return nil, domain.ErrIncorrectPassword
	}

	account.ClearFailures()
	tok, err := s.issuer.Issue(account.ID, account.Email, account.Username)
	if err != nil {
		return nil, err
	}
	account.Token = tok
	if err := s.repo.Update(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// AccountByID fetches an account for the read-only lookup endpoint.
func (s *AuthService) AccountByID(ctx context.Context, id string) (*domain.Account, error) {
	return s.repo.FindByID(ctx, id)
}
