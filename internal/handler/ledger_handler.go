package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/minibank/ledger-api/internal/command"
	"github.com/minibank/ledger-api/internal/cqrs"
	"github.com/minibank/ledger-api/internal/middleware"
	"github.com/minibank/ledger-api/internal/repository"
)

// LedgerCommander defines the write-side operations used by LedgerHandler.
type LedgerCommander interface {
	Deposit(cqrs.DepositCommand) (float64, error)
	Withdraw(cqrs.WithdrawCommand) (float64, error)
}

// LedgerQuerier defines the read-side operations used by LedgerHandler.
type LedgerQuerier interface {
	GetBalance(cqrs.GetBalanceQuery) (float64, error)
}

type LedgerHandler struct {
	commands LedgerCommander
	queries  LedgerQuerier
}

type TransactionRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type BalanceResponse struct {
	Balance float64 `json:"balance"`
}

type TransactionResponse struct {
	Message    string  `json:"message"`
	NewBalance float64 `json:"newBalance"`
}

type InsufficientBalanceResponse struct {
	Message         string  `json:"message"`
	CurrentBalance  float64 `json:"currentBalance"`
	RequestedAmount float64 `json:"requestedAmount"`
}

func NewLedgerHandler(commands LedgerCommander, queries LedgerQuerier) *LedgerHandler {
	return &LedgerHandler{commands: commands, queries: queries}
}

func (h *LedgerHandler) GetBalance(c *gin.Context) {
	username, _ := middleware.GetUsername(c)

	balance, err := h.queries.GetBalance(cqrs.GetBalanceQuery{Username: username})
	if err != nil {
		middleware.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, BalanceResponse{Balance: balance})
}

func (h *LedgerHandler) Deposit(c *gin.Context) {
	username, _ := middleware.GetUsername(c)

	req, ok := bindTransactionRequest(c)
	if !ok {
		return
	}

	newBalance, err := h.commands.Deposit(cqrs.DepositCommand{
		Username: username,
		Amount:   req.Amount,
	})
	if err != nil {
		respondTransactionError(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{
		Message:    fmt.Sprintf("Deposited $%s", formatAmount(req.Amount)),
		NewBalance: newBalance,
	})
}

func (h *LedgerHandler) Withdraw(c *gin.Context) {
	username, _ := middleware.GetUsername(c)

	req, ok := bindTransactionRequest(c)
	if !ok {
		return
	}

	newBalance, err := h.commands.Withdraw(cqrs.WithdrawCommand{
		Username: username,
		Amount:   req.Amount,
	})
	if err != nil {
		respondTransactionError(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{
		Message:    fmt.Sprintf("Withdrew $%s", formatAmount(req.Amount)),
		NewBalance: newBalance,
	})
}

func bindTransactionRequest(c *gin.Context) (TransactionRequest, bool) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "amount must be a positive number")
		return req, false
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "amount must be a positive number")
		return req, false
	}
	return req, true
}

func respondTransactionError(c *gin.Context, err error) {
	var insufficient *repository.InsufficientFundsError
	switch {
	case errors.Is(err, command.ErrInvalidAmount):
		middleware.RespondWithError(c, http.StatusBadRequest, "amount must be a positive number")
	case errors.As(err, &insufficient):
		c.JSON(http.StatusConflict, InsufficientBalanceResponse{
			Message:         "Insufficient balance",
			CurrentBalance:  insufficient.CurrentBalance,
			RequestedAmount: insufficient.RequestedAmount,
		})
	default:
		middleware.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// formatAmount renders amounts without trailing zeros, so 500 stays "500"
// and 500.5 stays "500.5" in response messages.
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
