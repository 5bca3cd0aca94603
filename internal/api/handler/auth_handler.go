package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/userhub/account-service/internal/api/metrics"
	"github.com/userhub/account-service/internal/core/domain"
	"github.com/userhub/account-service/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// accountResponse is the wire shape for both auth operations.
type accountResponse struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Token        string `json:"token"`
	FailedLogins int    `json:"failed_logins"`
	LastFailAt   *int64 `json:"last_fail_at"`
}

func toAccountResponse(a *domain.Account) accountResponse {
	return accountResponse{
		ID:           a.ID,
		Username:     a.Username,
		Email:        a.Email,
		Token:        a.Token,
		FailedLogins: a.FailedLogins,
		LastFailAt:   a.LastFailAt,
	}
}

// errorResponse carries the human message plus the machine-readable
// failure code.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// authErrorStatus maps a domain failure code to its HTTP status.
func authErrorStatus(code string) int {
	switch code {
	case "USER_ALREADY_EXISTS":
		return http.StatusConflict
	case "USER_NOT_FOUND":
		return http.StatusNotFound
	case "INCORRECT_PASSWORD":
		return http.StatusUnauthorized
	case "ACCOUNT_LOCKED":
		return http.StatusLocked
	default:
		// MISSING_* and INVALID_* kinds.
		return http.StatusBadRequest
	}
}

func writeAuthError(c echo.Context, err error) error {
	var ae *domain.AuthError
	if errors.As(err, &ae) {
		return c.JSON(authErrorStatus(ae.Code), errorResponse{Error: ae.Message, Code: ae.Code})
	}
	return err
}

func resultLabel(err error) string {
	if err == nil {
		return "success"
	}
	var ae *domain.AuthError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return "error"
}

// Register creates a new account.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  accountResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	account, err := h.authService.Register(c.Request().Context(), req.Username, req.Email, req.Password)
	metrics.RegistrationsTotal.WithLabelValues(resultLabel(err)).Inc()
	if err != nil {
		return writeAuthError(c, err)
	}

	return c.JSON(http.StatusCreated, toAccountResponse(account))
}

// Login authenticates an account and returns it with a fresh token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  accountResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      423   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	start := time.Now()
	account, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	label := resultLabel(err)
	metrics.LoginsTotal.WithLabelValues(label).Inc()
	metrics.LoginDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())
	if err != nil {
		return writeAuthError(c, err)
	}

	return c.JSON(http.StatusOK, toAccountResponse(account))
}
