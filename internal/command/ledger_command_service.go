package command

import (
	"errors"
	"math"

	"github.com/minibank/ledger-api/internal/cqrs"
	"github.com/minibank/ledger-api/internal/repository"
)

// ErrInvalidAmount rejects deposits and withdrawals whose amount is not a
// positive finite number.
var ErrInvalidAmount = errors.New("amount must be a positive number")

// LedgerCommandService applies balance mutations. Validation happens here so
// the repository only ever sees well-formed deltas.
type LedgerCommandService struct {
	accounts *repository.AccountRepository
}

func NewLedgerCommandService(accounts *repository.AccountRepository) *LedgerCommandService {
	return &LedgerCommandService{accounts: accounts}
}

// Deposit credits the account and returns the new balance.
func (s *LedgerCommandService) Deposit(cmd cqrs.DepositCommand) (float64, error) {
	if !validAmount(cmd.Amount) {
		return 0, ErrInvalidAmount
	}
	return s.accounts.AdjustBalance(cmd.Username, cmd.Amount)
}

// Withdraw debits the account and returns the new balance. An
// *repository.InsufficientFundsError passes through unchanged so the handler
// can report both the current balance and the requested amount.
func (s *LedgerCommandService) Withdraw(cmd cqrs.WithdrawCommand) (float64, error) {
	if !validAmount(cmd.Amount) {
		return 0, ErrInvalidAmount
	}
	return s.accounts.AdjustBalance(cmd.Username, -cmd.Amount)
}

func validAmount(amount float64) bool {
	return amount > 0 && !math.IsNaN(amount) && !math.IsInf(amount, 0)
}
