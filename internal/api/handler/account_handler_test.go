package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/userhub/account-service/internal/core/domain"
)

func getAccount(e *echo.Echo, id string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/accounts/"+id, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/accounts/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

func TestAccountHandler_Get_Success(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		lookupFn: func(ctx context.Context, id string) (*domain.Account, error) {
			if id != "acc_1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return &domain.Account{
				ID:           "acc_1",
				Username:     "alice",
				Email:        "alice@example.com",
				Token:        "should-not-leak",
				PasswordHash: "should-not-leak",
			}, nil
		},
	}
	h := NewAccountHandler(stub)

	c, rec := getAccount(e, "acc_1")
	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "acc_1" || resp["username"] != "alice" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, leaked := resp["token"]; leaked {
		t.Fatalf("token must not appear in lookup response")
	}
}

func TestAccountHandler_Get_NotFound(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		lookupFn: func(ctx context.Context, id string) (*domain.Account, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewAccountHandler(stub)

	c, rec := getAccount(e, "ghost")
	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Code != "USER_NOT_FOUND" {
		t.Fatalf("expected USER_NOT_FOUND, got %s", resp.Code)
	}
}
