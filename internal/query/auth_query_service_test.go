package query

import (
	"errors"
	"testing"
	"time"

	"github.com/minibank/ledger-api/internal/cqrs"
	"github.com/minibank/ledger-api/internal/models"
	"github.com/minibank/ledger-api/internal/repository"
	"github.com/minibank/ledger-api/internal/token"
)

func newAuthTestService() (*AuthQueryService, *token.Service) {
	repo := repository.NewAccountRepository([]models.Account{
		{Username: "user1", Password: "password123", Balance: 1000},
	})
	tokens := token.NewService([]byte("test-secret"), time.Hour)
	return NewAuthQueryService(repo, tokens), tokens
}

func TestLogin(t *testing.T) {
	svc, tokens := newAuthTestService()

	signed, err := svc.Login(cqrs.LoginCommand{Username: "user1", Password: "password123"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	claims, err := tokens.Verify(signed)
	if err != nil {
		t.Fatalf("issued token failed verification: %v", err)
	}
	if claims.Username != "user1" {
		t.Errorf("expected token bound to user1, got %q", claims.Username)
	}
}

func TestLoginRejected(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "user1", "wrongpass"},
		{"unknown user", "ghost", "password123"},
		{"empty credentials", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newAuthTestService()
			_, err := svc.Login(cqrs.LoginCommand{Username: tt.username, Password: tt.password})
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}
