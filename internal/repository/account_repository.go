package repository

import (
	"errors"
	"fmt"
	"sync"

	"github.com/minibank/ledger-api/internal/models"
)

// ErrUnknownUser is returned when a username has no account. Callers behind
// the auth middleware only pass verified usernames, so post-login this should
// not occur, but the contract is defined regardless.
var ErrUnknownUser = errors.New("unknown user")

// InsufficientFundsError rejects a withdrawal that would take the balance
// below zero. It carries both amounts so the caller can report them.
type InsufficientFundsError struct {
	CurrentBalance  float64
	RequestedAmount float64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: balance %v, requested %v", e.CurrentBalance, e.RequestedAmount)
}

// account pairs a balance with its own mutex so that adjustments against
// different usernames never contend with each other.
type account struct {
	mu       sync.Mutex
	password string
	balance  float64
}

// AccountRepository is an in-memory account store. The account set is fixed
// at construction (no runtime create/delete), so map lookups are lock-free;
// only balance mutation takes the per-account lock.
type AccountRepository struct {
	accounts map[string]*account
}

func NewAccountRepository(seed []models.Account) *AccountRepository {
	accounts := make(map[string]*account, len(seed))
	for _, a := range seed {
		accounts[a.Username] = &account{password: a.Password, balance: a.Balance}
	}
	return &AccountRepository{accounts: accounts}
}

// GetBalance returns the current balance for username.
func (r *AccountRepository) GetBalance(username string) (float64, error) {
	acc, ok := r.accounts[username]
	if !ok {
		return 0, ErrUnknownUser
	}
	acc.mu.Lock()
	defer acc.mu.Unlock()
	return acc.balance, nil
}

// AdjustBalance applies delta (negative for withdrawals) atomically and
// returns the new balance. The read-check-write happens under the account
// lock, so the balance can never go negative even under concurrent calls;
// on rejection the balance is left unchanged.
func (r *AccountRepository) AdjustBalance(username string, delta float64) (float64, error) {
	acc, ok := r.accounts[username]
	if !ok {
		return 0, ErrUnknownUser
	}
	acc.mu.Lock()
	defer acc.mu.Unlock()
	if acc.balance+delta < 0 {
		return 0, &InsufficientFundsError{
			CurrentBalance:  acc.balance,
			RequestedAmount: -delta,
		}
	}
	acc.balance += delta
	return acc.balance, nil
}

// ValidateCredentials reports whether username exists with this password.
func (r *AccountRepository) ValidateCredentials(username, password string) bool {
	acc, ok := r.accounts[username]
	if !ok {
		return false
	}
	return acc.password == password
}
