package service

import (
	"errors"
	"testing"

	"github.com/Nattie-Nkosi/certsim/config"
	"github.com/Nattie-Nkosi/certsim/internal/model"
)

func testTokenService() TokenService {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpiryHours = 1
	return NewTokenService(cfg)
}

func TestTokenRoundTrip(t *testing.T) {
	svc := testTokenService()
	user := &model.User{ID: 7, Email: "taker@example.com", Role: model.RoleUser}

	token, err := svc.Issue(user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	principal, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if principal.ID != 7 || principal.Email != "taker@example.com" || principal.Role != model.RoleUser {
		t.Fatalf("unexpected principal: %+v", principal)
	}
	if principal.IsAdmin() {
		t.Fatalf("USER role must not be admin")
	}
}

func TestTokenRejectsTampering(t *testing.T) {
	svc := testTokenService()
	token, err := svc.Issue(&model.User{ID: 1, Email: "a@b.c", Role: model.RoleAdmin})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := svc.Parse(token + "x"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("tampered token: got %v, want ErrInvalidToken", err)
	}
	if _, err := svc.Parse("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("garbage token: got %v, want ErrInvalidToken", err)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := testTokenService().Issue(&model.User{ID: 2, Email: "x@y.z", Role: model.RoleUser})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	other := &config.Config{}
	other.JWT.Secret = "different-secret"
	other.JWT.ExpiryHours = 1

	if _, err := NewTokenService(other).Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("wrong secret: got %v, want ErrInvalidToken", err)
	}
}
