package token

import (
	"testing"
	"time"
)

func TestIssuer_RoundTrip(t *testing.T) {
	iss := NewIssuer("secret", time.Hour)

	signed, err := iss.Issue("acc_1", "alice@example.com", "alice")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if signed == "" {
		t.Fatalf("expected non-empty token")
	}

	claims, err := iss.Verify(signed)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.AccountID != "acc_1" {
		t.Fatalf("unexpected account id: %s", claims.AccountID)
	}
	if claims.Email != "alice@example.com" {
		t.Fatalf("unexpected email: %s", claims.Email)
	}
	if claims.Username != "alice" {
		t.Fatalf("unexpected username: %s", claims.Username)
	}
}

func TestIssuer_Expired(t *testing.T) {
	iss := &Issuer{secret: []byte("secret"), ttl: -time.Minute}

	signed, err := iss.Issue("acc_1", "alice@example.com", "alice")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := iss.Verify(signed); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestIssuer_WrongSecret(t *testing.T) {
	signed, err := NewIssuer("secret-a", time.Hour).Issue("acc_1", "a@b.c", "a")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := NewIssuer("secret-b", time.Hour).Verify(signed); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestIssuer_Garbage(t *testing.T) {
	iss := NewIssuer("secret", time.Hour)
	if _, err := iss.Verify("not-a-token"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestNewIssuer_DefaultTTL(t *testing.T) {
	iss := NewIssuer("secret", 0)
	if iss.ttl != DefaultTTL {
		t.Fatalf("expected default ttl %v, got %v", DefaultTTL, iss.ttl)
	}
}
