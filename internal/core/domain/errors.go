package domain

// AuthError is a typed authentication failure carrying a fixed
// machine-readable code alongside the human-readable message. The
// package-level sentinels below are the only instances; callers match
// them with errors.Is.
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string { return e.Message }

var (
	ErrMissingUsername   = &AuthError{Code: "MISSING_USERNAME", Message: "please enter your username"}
	ErrMissingEmail      = &AuthError{Code: "MISSING_EMAIL", Message: "please enter your email"}
	ErrInvalidEmail      = &AuthError{Code: "INVALID_EMAIL", Message: "please enter a valid email address"}
	ErrMissingPassword   = &AuthError{Code: "MISSING_PASSWORD", Message: "please enter your password"}
	ErrInvalidPassword   = &AuthError{Code: "INVALID_PASSWORD", Message: "password must contain at least 8 characters, including lowercase letter, uppercase letter, and number"}
	ErrUserExists        = &AuthError{Code: "USER_ALREADY_EXISTS", Message: "a user with this email is already registered"}
	ErrUserNotFound      = &AuthError{Code: "USER_NOT_FOUND", Message: "user not found"}
	ErrAccountLocked     = &AuthError{Code: "ACCOUNT_LOCKED", Message: "account is locked, please try again later"}
	ErrIncorrectPassword = &AuthError{Code: "INCORRECT_PASSWORD", Message: "incorrect password"}
)
