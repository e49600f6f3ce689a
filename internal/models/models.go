package models

// Account is the write model for a single user's ledger entry. Passwords are
// stored as-is; credential hardening is out of scope for this service.
type Account struct {
	Username string  `json:"username"`
	Password string  `json:"-"`
	Balance  float64 `json:"balance"`
}
