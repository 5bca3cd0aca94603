package ports

import "github.com/userhub/account-service/internal/core/domain"

// TokenIssuer signs and verifies bearer tokens embedding an account's
// identity. Verify collapses all failure modes (bad signature, wrong
// algorithm, expired) into a single error so callers cannot tell them
// apart.
type TokenIssuer interface {
	Issue(accountID, email, username string) (string, error)
	Verify(token string) (*domain.Claims, error)
}
