package domain

import "time"

const (
	// MaxFailedLogins is the number of consecutive failed attempts after
	// which an account is locked.
	MaxFailedLogins = 5
	// LockoutWindow is how long a locked account stays locked after its
	// last failed attempt.
	LockoutWindow = 3600 * time.Second
)

// Account models a registered user. Email is the primary lookup key and
// is stored lowercased; PasswordHash never leaves the process.
type Account struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Token        string `json:"token,omitempty"`
	FailedLogins int    `json:"failed_logins"`
	LastFailAt   *int64 `json:"last_fail_at"` // epoch milliseconds, nil when clear
}

// Locked reports whether the failed-login counter has reached the
// lockout threshold. Whether the lockout is still in force depends on
// LockoutExpired.
func (a *Account) Locked() bool {
	return a.FailedLogins >= MaxFailedLogins
}

// LockoutExpired reports whether the lockout window has elapsed since
// the last failed attempt. An account with no recorded failure is
// treated as expired.
func (a *Account) LockoutExpired(now time.Time) bool {
	if a.LastFailAt == nil {
		return true
	}
	elapsed := now.Sub(time.UnixMilli(*a.LastFailAt))
	return elapsed >= LockoutWindow
}

// RecordFailure increments the failed-login counter and stamps the
// failure time.
func (a *Account) RecordFailure(now time.Time) {
	a.FailedLogins++
	ms := now.UnixMilli()
	a.LastFailAt = &ms
}

// ClearFailures resets the failed-login counter and the failure
// timestamp.
func (a *Account) ClearFailures() {
	a.FailedLogins = 0
	a.LastFailAt = nil
}

// Claims is the identity triple embedded in a bearer token.
type Claims struct {
	AccountID string
	Email     string
	Username  string
}
