package query

import (
	"errors"

	"github.com/minibank/ledger-api/internal/cqrs"
	"github.com/minibank/ledger-api/internal/repository"
	"github.com/minibank/ledger-api/internal/token"
)

// ErrInvalidCredentials covers both unknown usernames and wrong passwords;
// login deliberately does not say which.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthQueryService handles login. There is no command service for auth
// because issuing a token does not mutate application state.
type AuthQueryService struct {
	accounts *repository.AccountRepository
	tokens   *token.Service
}

func NewAuthQueryService(accounts *repository.AccountRepository, tokens *token.Service) *AuthQueryService {
	return &AuthQueryService{accounts: accounts, tokens: tokens}
}

// Login checks the credentials and returns a signed bearer token.
func (s *AuthQueryService) Login(cmd cqrs.LoginCommand) (string, error) {
	if !s.accounts.ValidateCredentials(cmd.Username, cmd.Password) {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(cmd.Username)
}
