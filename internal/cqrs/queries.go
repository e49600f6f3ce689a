package cqrs

// GetBalanceQuery fetches the current balance for an authenticated user.
type GetBalanceQuery struct {
	Username string
}
