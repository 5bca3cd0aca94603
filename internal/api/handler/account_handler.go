package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userhub/account-service/internal/core/domain"
	"github.com/userhub/account-service/internal/core/ports"
)

type AccountHandler struct {
	authService ports.AuthService
}

func NewAccountHandler(authService ports.AuthService) *AccountHandler {
	return &AccountHandler{authService: authService}
}

// accountView is the read-only lookup shape: no token, no counters.
type accountView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Get returns an account by id.
//
// @Summary      Fetch an account
// @Tags         accounts
// @Produce      json
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  accountView
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /accounts/{id} [get]
func (h *AccountHandler) Get(c echo.Context) error {
	account, err := h.authService.AccountByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if err == domain.ErrUserNotFound {
			return c.JSON(http.StatusNotFound, errorResponse{Error: domain.ErrUserNotFound.Message, Code: domain.ErrUserNotFound.Code})
		}
		return err
	}

	return c.JSON(http.StatusOK, accountView{
		ID:       account.ID,
		Username: account.Username,
		Email:    account.Email,
	})
}
