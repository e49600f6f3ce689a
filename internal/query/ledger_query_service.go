package query

import (
	"github.com/minibank/ledger-api/internal/cqrs"
	"github.com/minibank/ledger-api/internal/repository"
)

// LedgerQueryService serves balance reads.
type LedgerQueryService struct {
	accounts *repository.AccountRepository
}

func NewLedgerQueryService(accounts *repository.AccountRepository) *LedgerQueryService {
	return &LedgerQueryService{accounts: accounts}
}

func (s *LedgerQueryService) GetBalance(q cqrs.GetBalanceQuery) (float64, error) {
	return s.accounts.GetBalance(q.Username)
}
